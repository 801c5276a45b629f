// Package extract implements the deep model-extraction pass: a
// recursive descent over a deck file and everything it transitively
// includes, tracking the library/section/include scopes that give each
// .model directive its meaning.
package extract

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdkscan-dev/pdkscan/internal/classify"
	"github.com/pdkscan-dev/pdkscan/internal/deck"
	"github.com/pdkscan-dev/pdkscan/internal/fileutil"
	"github.com/pdkscan-dev/pdkscan/internal/pathutil"
)

// PartialModel is one occurrence of a .model directive, attributed with
// the scope frames active at that point. Occurrences sharing a name are
// merged into a canonical record by the scan aggregator.
type PartialModel struct {
	Name            string
	ModelType       string
	DeviceClass     classify.DeviceClass
	VoltageDomain   string
	ThresholdFlavor string
	Corners         []string
	CornerDetails   []string
	Sections        []string
	SourceFile      string
	Deck            string
}

// visitKey prevents reprocessing the same (file, inherited section
// filter) pair. The same file may legitimately be visited once with no
// filter and once under a corner filter, each with its own attribution;
// an identical pair, however, is processed at most once, which is what
// makes the traversal terminate on include cycles.
type visitKey struct {
	path   string
	filter string
}

type extractor struct {
	workspaceRoot string
	deckPath      string
	visited       map[visitKey]bool
	frames        FrameStack
	sections      []sectionEntry
	partials      []PartialModel
	warnings      []string
}

// sectionEntry is one literal open section label, plus whether opening
// it also pushed a SectionBlock frame (so endsection can pop both).
type sectionEntry struct {
	name   string
	framed bool
}

// Deck walks one top-level deck and all of its reachable includes and
// returns every model occurrence found, with warnings for unreadable
// files. A non-empty section scopes the whole traversal, exactly as an
// "include ... section=<label>" of the deck would: models outside the
// named section are skipped and the corner parsed from the label is
// attributed to everything found. A file that cannot be read degrades
// to a warning: its directives are skipped but everything found
// elsewhere is kept.
func Deck(workspaceRoot, deckPath, section string) ([]PartialModel, []string) {
	e := &extractor{
		workspaceRoot: workspaceRoot,
		deckPath:      deckPath,
		visited:       make(map[visitKey]bool),
	}
	if corner, ok := ParseCorner(section); ok {
		e.frames.Push(Frame{Kind: IncludeWithSection, Corner: corner})
		e.walk(deckPath, corner.Label)
	} else {
		e.walk(deckPath, "")
	}
	return e.partials, e.warnings
}

func (e *extractor) walk(path, filter string) {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	key := visitKey{path: pathutil.FoldKey(abs), filter: filter}
	if e.visited[key] {
		return
	}
	e.visited[key] = true

	f, err := os.Open(abs)
	if err != nil {
		e.warnf("cannot read %s: %v", abs, err)
		return
	}
	defer f.Close()

	dir := filepath.Dir(abs)
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || deck.IsComment(line) {
			continue
		}
		e.directive(line, abs, dir, filter)
	}
	if err := scanner.Err(); err != nil {
		e.warnf("error reading %s: %v", abs, err)
	}
}

func (e *extractor) directive(line, file, dir, filter string) {
	tokens := fileutil.FieldsQuoted(line)
	if len(tokens) == 0 {
		return
	}
	args := tokens[1:]

	switch strings.ToLower(tokens[0]) {
	case ".lib":
		e.handleLib(args, dir)
	case ".endl":
		e.frames.PopMatching(LibraryBlock)
	case "section":
		e.openSection(args)
	case "endsection":
		e.closeSection()
	case "include", ".include":
		e.handleInclude(args, dir, filter)
	case ".model":
		e.handleModel(args, file, filter)
	}
}

// handleLib covers both forms of .lib: the "path corner" pair that
// recurses into another file restricted to a corner, and the bare
// corner label that opens a library block in place.
func (e *extractor) handleLib(args []string, dir string) {
	if len(args) == 0 {
		return
	}

	if len(args) >= 2 && looksLikePath(args[0]) {
		corner, ok := ParseCorner(args[1])
		if !ok {
			return
		}
		target := pathutil.Resolve(args[0], e.workspaceRoot, dir)
		e.recurse(target, corner.Label, Frame{Kind: IncludeWithSection, Corner: corner})
		return
	}

	if corner, ok := ParseCorner(args[0]); ok {
		e.frames.Push(Frame{Kind: LibraryBlock, Corner: corner})
	}
}

func (e *extractor) handleInclude(args []string, dir, filter string) {
	if len(args) == 0 {
		return
	}
	target := pathutil.Resolve(args[0], e.workspaceRoot, dir)

	for _, arg := range args[1:] {
		label, ok := strings.CutPrefix(strings.ToLower(arg), "section=")
		if !ok {
			continue
		}
		if corner, parsed := ParseCorner(label); parsed {
			e.recurse(target, corner.Label, Frame{Kind: IncludeWithSection, Corner: corner})
			return
		}
	}

	// No section argument: the inherited filter stays in force.
	e.recurse(target, filter, Frame{})
}

// recurse enters an included file, restoring the frame and section
// stacks afterwards so unbalanced blocks inside the include cannot
// leak into the including file.
func (e *extractor) recurse(target, filter string, frame Frame) {
	frameDepth := e.frames.Len()
	sectionDepth := len(e.sections)
	if frame.Kind == IncludeWithSection {
		e.frames.Push(frame)
	}

	e.walk(target, filter)

	e.frames.Truncate(frameDepth)
	e.sections = e.sections[:sectionDepth]
}

func (e *extractor) openSection(args []string) {
	if len(args) == 0 {
		return
	}
	label := strings.ToLower(args[0])
	corner, ok := ParseCorner(label)
	e.sections = append(e.sections, sectionEntry{name: label, framed: ok})
	if ok {
		e.frames.Push(Frame{Kind: SectionBlock, Corner: corner})
	}
}

func (e *extractor) closeSection() {
	if len(e.sections) == 0 {
		return
	}
	entry := e.sections[len(e.sections)-1]
	e.sections = e.sections[:len(e.sections)-1]
	if entry.framed {
		e.frames.PopMatching(SectionBlock)
	}
}

func (e *extractor) handleModel(args []string, file, filter string) {
	if len(args) == 0 {
		return
	}
	if filter != "" && !e.sectionOpen(filter) {
		return
	}

	name := args[0]
	modelType := ""
	if len(args) > 1 {
		modelType = args[1]
	}

	p := PartialModel{
		Name:            name,
		ModelType:       modelType,
		DeviceClass:     classify.Device(modelType),
		VoltageDomain:   classify.VoltageDomain(name),
		ThresholdFlavor: classify.ThresholdFlavor(name),
		SourceFile:      file,
		Deck:            e.deckPath,
	}
	for _, frame := range e.frames.Frames() {
		p.Corners = append(p.Corners, frame.Corner.Name)
		if frame.Corner.Detail != "" {
			p.CornerDetails = append(p.CornerDetails, frame.Corner.Detail)
		}
	}
	for _, s := range e.sections {
		p.Sections = append(p.Sections, s.name)
	}
	e.partials = append(e.partials, p)
}

func (e *extractor) sectionOpen(filter string) bool {
	for _, s := range e.sections {
		if s.name == filter {
			return true
		}
	}
	return false
}

func (e *extractor) warnf(format string, args ...any) {
	e.warnings = append(e.warnings, fmt.Sprintf(format, args...))
}

// looksLikePath distinguishes ".lib path corner" from ".lib corner": a
// path token carries a directory separator or a file extension.
func looksLikePath(token string) bool {
	return strings.ContainsAny(token, `/\`) || filepath.Ext(token) != ""
}
