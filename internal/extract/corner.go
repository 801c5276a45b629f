package extract

import "strings"

// Corner is the ephemeral parse of a library/section label: the
// original label plus its primary corner name and optional detail,
// split on the first "_" or "-". Only used while building scope frames.
type Corner struct {
	Label  string
	Name   string
	Detail string
}

// ParseCorner interprets a label as a corner. The label is case-folded
// and split on the first "_" or "-": "ss_hv" yields name "ss" with
// detail "hv". An empty label does not parse.
func ParseCorner(label string) (Corner, bool) {
	label = strings.ToLower(strings.TrimSpace(label))
	if label == "" {
		return Corner{}, false
	}
	c := Corner{Label: label, Name: label}
	if i := strings.IndexAny(label, "_-"); i >= 0 {
		c.Name = label[:i]
		c.Detail = label[i+1:]
	}
	if c.Name == "" {
		return Corner{}, false
	}
	return c, true
}
