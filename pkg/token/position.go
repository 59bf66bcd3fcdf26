package token

import "fmt"

// Location is a point in the source text.
// Line 0 means "no location".
type Location struct {
	Line   int // 1-based line number
	Column int // 1-based column number, counted in characters
	Offset int // 0-based byte offset
}

// IsValid returns true if the location is valid (line > 0).
func (l Location) IsValid() bool {
	return l.Line > 0
}

// Before reports whether l sorts strictly before other (line, then column).
func (l Location) Before(other Location) bool {
	if l.Line != other.Line {
		return l.Line < other.Line
	}
	return l.Column < other.Column
}

func (l Location) String() string {
	return fmt.Sprintf("line %d column %d", l.Line, l.Column)
}

// Span is a half-open range [Start, End) of source text.
// The zero Span is empty and marks an unknown range.
type Span struct {
	Start Location
	End   Location
}

// NewSpan builds a span from two locations.
func NewSpan(start, end Location) Span {
	return Span{Start: start, End: end}
}

// EmptySpan returns the empty span.
func EmptySpan() Span {
	return Span{}
}

// IsEmpty reports whether the span carries no location.
func (s Span) IsEmpty() bool {
	return !s.Start.IsValid() && !s.End.IsValid()
}

// IsValid returns true if both start and end positions are valid.
func (s Span) IsValid() bool {
	return s.Start.IsValid() && s.End.IsValid()
}

// Contains returns true if the span contains the given byte offset.
func (s Span) Contains(offset int) bool {
	return offset >= s.Start.Offset && offset < s.End.Offset
}

// Encloses reports whether other lies inside s. Empty spans are enclosed by
// everything.
func (s Span) Encloses(other Span) bool {
	if other.IsEmpty() {
		return true
	}
	if s.IsEmpty() {
		return false
	}
	return !other.Start.Before(s.Start) && !s.End.Before(other.End)
}

// Union returns the smallest span covering both s and other. The empty span
// is the identity element.
func (s Span) Union(other Span) Span {
	switch {
	case s.IsEmpty():
		return other
	case other.IsEmpty():
		return s
	}
	out := s
	if other.Start.Before(out.Start) {
		out.Start = other.Start
	}
	if out.End.Before(other.End) {
		out.End = other.End
	}
	return out
}

// UnionSpans folds Union over spans.
func UnionSpans(spans ...Span) Span {
	var out Span
	for _, sp := range spans {
		out = out.Union(sp)
	}
	return out
}

func (s Span) String() string {
	if s.IsEmpty() {
		return "(empty)"
	}
	return fmt.Sprintf("(%d,%d)-(%d,%d)", s.Start.Line, s.Start.Column, s.End.Line, s.End.Column)
}
