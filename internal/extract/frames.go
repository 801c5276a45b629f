package extract

// FrameKind tags a scope frame with the construct that opened it.
type FrameKind int

const (
	// LibraryBlock is a ".lib <corner>" block, closed by ".endl".
	LibraryBlock FrameKind = iota
	// SectionBlock is a "section <label>" block whose label parses as
	// a corner, closed by "endsection".
	SectionBlock
	// IncludeWithSection is an include (or ".lib path corner") that
	// restricts traversal to one section; closed when the recursive
	// call returns.
	IncludeWithSection
)

func (k FrameKind) String() string {
	switch k {
	case LibraryBlock:
		return "lib"
	case SectionBlock:
		return "section"
	case IncludeWithSection:
		return "include"
	default:
		return "unknown"
	}
}

// Frame is one entry of the traversal-time stack recording which
// corner context currently encloses the parser's position.
type Frame struct {
	Kind   FrameKind
	Corner Corner
}

// FrameStack is the restricted pushdown automaton of the extractor:
// plain push plus a single pop-until-matching-kind operation, so the
// transition table stays auditable without file I/O.
type FrameStack struct {
	frames []Frame
}

func (s *FrameStack) Push(f Frame) {
	s.frames = append(s.frames, f)
}

// PopMatching pops frames down to and including the innermost frame of
// the given kind. When no such frame is on the stack it is a no-op and
// reports false (an unmatched .endl or endsection must not disturb
// unrelated enclosing frames).
func (s *FrameStack) PopMatching(kind FrameKind) bool {
	for i := len(s.frames) - 1; i >= 0; i-- {
		if s.frames[i].Kind == kind {
			s.frames = s.frames[:i]
			return true
		}
	}
	return false
}

// Len returns the current stack depth. Used with Truncate to restore
// the caller's frames after an include returns, even when the included
// file left blocks unclosed.
func (s *FrameStack) Len() int {
	return len(s.frames)
}

func (s *FrameStack) Truncate(n int) {
	if n < len(s.frames) {
		s.frames = s.frames[:n]
	}
}

// Frames returns the active frames, outermost first. The returned
// slice aliases the stack; callers must not retain it across pushes.
func (s *FrameStack) Frames() []Frame {
	return s.frames
}
