// Package classify infers coarse device metadata from model directives:
// a device class from the model type, and a voltage domain and threshold
// flavor from the model name.
//
// The name-based heuristics encode open-PDK naming conventions (for
// example sky130's nfet_01v8_lvt). Models from foundries with other
// conventions may come back unclassified or partially classified; treat
// the output as a best-effort hint, not ground truth.
package classify

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

// DeviceClass is the coarse functional category inferred for a model.
type DeviceClass int

const (
	Unknown DeviceClass = iota
	Nmos
	Pmos
	Bipolar
	Diode
	Resistor
	Capacitor
	Inductor
	Moscap
	TransmissionLine
	Other
)

var classNames = map[DeviceClass]string{
	Unknown:          "unknown",
	Nmos:             "nmos",
	Pmos:             "pmos",
	Bipolar:          "bipolar",
	Diode:            "diode",
	Resistor:         "resistor",
	Capacitor:        "capacitor",
	Inductor:         "inductor",
	Moscap:           "moscap",
	TransmissionLine: "tline",
}

func (c DeviceClass) String() string {
	if name, ok := classNames[c]; ok {
		return name
	}
	return "other"
}

func (c DeviceClass) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

func (c *DeviceClass) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	for class, candidate := range classNames {
		if candidate == name {
			*c = class
			return nil
		}
	}
	if name == "other" {
		*c = Other
		return nil
	}
	return fmt.Errorf("unknown device class %q", name)
}

// classRule maps model-type substrings (or exact single-letter SPICE
// primitives) to a device class. Order matters: "moscap" must win over
// the bare "cap" and "mos" matches below it.
type classRule struct {
	contains []string
	exact    []string
	class    DeviceClass
}

var classRules = []classRule{
	{contains: []string{"moscap"}, class: Moscap},
	{contains: []string{"nmos", "nfet"}, class: Nmos},
	{contains: []string{"pmos", "pfet"}, class: Pmos},
	{contains: []string{"npn", "pnp", "bjt"}, class: Bipolar},
	{contains: []string{"diode"}, exact: []string{"d"}, class: Diode},
	{contains: []string{"tline", "transmission"}, class: TransmissionLine},
	{contains: []string{"res"}, exact: []string{"r"}, class: Resistor},
	{contains: []string{"cap"}, exact: []string{"c"}, class: Capacitor},
	{contains: []string{"ind"}, exact: []string{"l"}, class: Inductor},
}

// Device classifies a model-type token into a device class.
func Device(modelType string) DeviceClass {
	t := strings.ToLower(strings.TrimSpace(modelType))
	if t == "" {
		return Unknown
	}
	for _, rule := range classRules {
		for _, exact := range rule.exact {
			if t == exact {
				return rule.class
			}
		}
		for _, sub := range rule.contains {
			if strings.Contains(t, sub) {
				return rule.class
			}
		}
	}
	return Other
}

var voltagePattern = regexp.MustCompile(`(\d+)v(\d+)`)

// VoltageDomain extracts a voltage domain from a model name using the
// <digits>v<digits> convention: nfet_01v8 -> "1.8V", cap_mim_2v0 ->
// "2V". Returns "" when the name carries no such marker.
func VoltageDomain(name string) string {
	m := voltagePattern.FindStringSubmatch(strings.ToLower(name))
	if m == nil {
		return ""
	}
	whole := strings.TrimLeft(m[1], "0")
	if whole == "" {
		whole = "0"
	}
	frac := strings.TrimRight(m[2], "0")
	if frac == "" {
		return whole + "V"
	}
	return whole + "." + frac + "V"
}

// vtFlavors are the recognized threshold-voltage name tokens.
var vtFlavors = []string{"ulvt", "llvt", "slvt", "lvt", "rvt", "svt", "nvt", "hvt", "mvt"}

// ThresholdFlavor extracts a threshold-voltage flavor from a model
// name. A flavor counts only as a whole underscore-delimited token,
// so "pfet_lvt" matches but "pfetlvt" does not.
func ThresholdFlavor(name string) string {
	for _, part := range strings.Split(strings.ToLower(name), "_") {
		for _, flavor := range vtFlavors {
			if part == flavor {
				return flavor
			}
		}
	}
	return ""
}
