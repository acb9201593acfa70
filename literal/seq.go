// Package literal represents literal byte sequences extracted from
// compiled patterns.
//
// A Literal is one concrete byte string a pattern can produce; a Seq is
// the ordered set of alternatives known for a pattern. When every member
// of a Seq is complete, the Seq describes the pattern's text exactly and
// can drive a multi-substring prefilter instead of the tree matcher.
package literal

import "bytes"

// Literal is a byte sequence a pattern can match. Complete reports
// whether the bytes are an entire alternative (true) or only a known
// prefix of one (false).
type Literal struct {
	Bytes    []byte
	Complete bool
}

// NewLiteral creates a Literal from the given bytes and completeness flag.
func NewLiteral(b []byte, complete bool) Literal {
	return Literal{
		Bytes:    b,
		Complete: complete,
	}
}

// Len returns the length of the literal in bytes.
func (l Literal) Len() int {
	return len(l.Bytes)
}

// String renders the literal for debugging output.
// Format: "literal{bytes, complete=true/false}"
func (l Literal) String() string {
	complete := "false"
	if l.Complete {
		complete = "true"
	}
	return "literal{" + string(l.Bytes) + ", complete=" + complete + "}"
}

// Seq is an ordered sequence of alternative literals. The zero value is
// not meaningful; use NewSeq.
//
// Example: extracting from the pattern (foo|bar) yields a Seq of the two
// complete literals "foo" and "bar".
type Seq struct {
	literals []Literal
}

// NewSeq creates a sequence from the given literals.
func NewSeq(lits ...Literal) *Seq {
	return &Seq{
		literals: lits,
	}
}

// Push appends a literal to the sequence.
func (s *Seq) Push(l Literal) {
	s.literals = append(s.literals, l)
}

// Len returns the number of literals in the sequence.
func (s *Seq) Len() int {
	return len(s.literals)
}

// Get returns the literal at index i. The index must be in range.
func (s *Seq) Get(i int) Literal {
	return s.literals[i]
}

// IsEmpty reports whether the sequence holds no literals.
func (s *Seq) IsEmpty() bool {
	return len(s.literals) == 0
}

// Complete reports whether every literal in the sequence is complete.
// An empty sequence is not complete: it carries no alternatives at all.
func (s *Seq) Complete() bool {
	if s.IsEmpty() {
		return false
	}
	for _, l := range s.literals {
		if !l.Complete {
			return false
		}
	}
	return true
}

// Inexact returns a copy of the sequence with every literal demoted to a
// prefix. Used when extraction learns that unknown text follows what has
// been collected so far.
func (s *Seq) Inexact() *Seq {
	out := &Seq{literals: make([]Literal, len(s.literals))}
	for i, l := range s.literals {
		out.literals[i] = Literal{Bytes: l.Bytes, Complete: false}
	}
	return out
}

// Longest returns the length in bytes of the longest literal, 0 for an
// empty sequence.
func (s *Seq) Longest() int {
	longest := 0
	for _, l := range s.literals {
		if l.Len() > longest {
			longest = l.Len()
		}
	}
	return longest
}

// HasByte reports whether any literal in the sequence contains b.
func (s *Seq) HasByte(b byte) bool {
	for _, l := range s.literals {
		if bytes.IndexByte(l.Bytes, b) != -1 {
			return true
		}
	}
	return false
}

// String renders the sequence for debugging output.
func (s *Seq) String() string {
	out := "seq["
	for i, l := range s.literals {
		if i > 0 {
			out += ", "
		}
		out += l.String()
	}
	return out + "]"
}
