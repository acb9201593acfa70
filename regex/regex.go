// Package regex implements a small byte-oriented pattern engine.
//
// The syntax is a restricted subset of the usual notation: literal
// characters, \d and \w classes, escaped literals, [...] and [^...]
// character groups without ranges, the . wildcard, + and ? quantifiers,
// (a|b|c) alternation, and ^/$ anchors at the pattern edges. Matching is
// greedy and never backtracks: a quantifier keeps everything it
// consumed, an alternation commits to its first matching branch, and a
// sequence fails outright when a later element cannot match what is
// left. That makes matching very predictable and very fast, at the cost
// of rejecting some strings a backtracking engine would accept, for
// example a+a on "aaa".
package regex

import (
	"fmt"

	"github.com/coregx/ahocorasick"

	"github.com/mfroeh/minigrep/literal"
)

// Pattern is a compiled pattern. Compile is the only constructor; a
// Pattern is immutable afterwards and safe for concurrent use from any
// number of goroutines.
type Pattern struct {
	src      string
	atStart  bool
	untilEnd bool
	root     *node
	lits     *literal.Seq
	auto     *ahocorasick.Automaton
}

// Compile parses a pattern.
//
// A leading '^' and a trailing '$' act as anchors and are stripped
// before the body is parsed; anywhere else those characters match
// themselves, as do all characters without a meaning of their own
// (including '*', '{' and '}').
func Compile(pattern string) (Pattern, error) {
	body := pattern

	atStart := false
	if len(body) > 0 && body[0] == '^' {
		atStart = true
		body = body[1:]
	}

	untilEnd := false
	if len(body) > 0 && body[len(body)-1] == '$' {
		untilEnd = true
		body = body[:len(body)-1]
	}

	p := parser{pattern: body}
	if atStart {
		p.base = 1
	}
	root, _, err := p.parseSequence("")
	if err != nil {
		return Pattern{}, fmt.Errorf("failed to compile %q: %w", pattern, err)
	}

	pat := Pattern{
		src:      pattern,
		atStart:  atStart,
		untilEnd: untilEnd,
		root:     root,
		lits:     extract(root),
	}
	pat.auto = buildAutomaton(pat)
	return pat, nil
}

// MustCompile is Compile for patterns known to be valid. It panics when
// the pattern does not compile.
func MustCompile(pattern string) Pattern {
	pat, err := Compile(pattern)
	if err != nil {
		panic(err)
	}
	return pat
}

// String returns the source text the pattern was compiled from.
func (p Pattern) String() string {
	return p.src
}

// Literals returns the literal alternatives known for the pattern. When
// the returned sequence is complete, those strings are exactly the texts
// the pattern matches.
func (p Pattern) Literals() *literal.Seq {
	return p.lits
}

// MatchString reports whether the pattern matches anywhere in s. The
// haystack is one line of text: trailing newlines count towards its
// contents but not towards its length, so '$' anchors to the logical end
// of the line.
func (p Pattern) MatchString(s string) (bool, error) {
	if p.auto != nil {
		return p.auto.IsMatch([]byte(s)), nil
	}
	loc, err := p.FindStringIndex(s)
	return loc != nil, err
}

// FindStringIndex returns the byte span [start, end) of the first match
// of the pattern in s, or nil when there is none. Start offsets are
// tried left to right and the tree match at each offset is final, so the
// span is the engine's greedy interpretation, not the longest or
// leftmost-longest one.
func (p Pattern) FindStringIndex(s string) ([]int, error) {
	min, err := p.root.minSize()
	if err != nil {
		return nil, err
	}
	n := effectiveLen(s)
	if min > n {
		return nil, nil
	}

	last := n - min
	if p.atStart {
		last = 0
	}
	for off := 0; off <= last; off++ {
		consumed, ok, err := p.root.match(s, off)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		if p.untilEnd && consumed != n-off {
			continue
		}
		return []int{off, off + consumed}, nil
	}
	return nil, nil
}

// effectiveLen is the length of s without its trailing newlines.
func effectiveLen(s string) int {
	n := len(s)
	for n > 0 && s[n-1] == '\n' {
		n--
	}
	return n
}
