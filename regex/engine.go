package regex

import (
	"fmt"
)

type op uint8

const (
	opEmpty op = iota
	opChar
	opDigit
	opAlphaNum
	opWildcard
	opCharGroup
	opOneOrMore
	opOptional
	opSequence
	opAlternation
	opOneOrMoreMark
	opOptionalMark
)

func (o op) String() string {
	switch o {
	case opEmpty:
		return "Empty"
	case opChar:
		return "Char"
	case opDigit:
		return "Digit"
	case opAlphaNum:
		return "AlphaNum"
	case opWildcard:
		return "Wildcard"
	case opCharGroup:
		return "CharGroup"
	case opOneOrMore:
		return "OneOrMore"
	case opOptional:
		return "Optional"
	case opSequence:
		return "Sequence"
	case opAlternation:
		return "Alternation"
	case opOneOrMoreMark:
		return "OneOrMorePlaceholder"
	case opOptionalMark:
		return "OptionalPlaceholder"
	}
	return "unknown"
}

// node is one node of a compiled pattern tree. Which fields are set
// depends on op: ch for opChar, set and negated for opCharGroup, inner
// for the quantifiers, children for opSequence and opAlternation.
//
// opEmpty and the placeholder ops only exist while parsing; a finished
// tree never contains them.
type node struct {
	op       op
	ch       byte
	set      map[byte]bool
	negated  bool
	inner    *node
	children []*node
}

// match evaluates the node against haystack starting at pos and reports
// how many bytes it consumed. A failed match consumes nothing.
// Quantifiers and alternations commit to their first success and are
// never revisited, so a later failure in a sequence cannot re-shape an
// earlier match.
func (n *node) match(haystack string, pos int) (int, bool, error) {
	switch n.op {
	case opChar:
		if pos < len(haystack) && haystack[pos] == n.ch {
			return 1, true, nil
		}
		return 0, false, nil
	case opDigit:
		if pos < len(haystack) && isDigit(haystack[pos]) {
			return 1, true, nil
		}
		return 0, false, nil
	case opAlphaNum:
		if pos < len(haystack) && isAlphaNum(haystack[pos]) {
			return 1, true, nil
		}
		return 0, false, nil
	case opWildcard:
		if pos < len(haystack) && haystack[pos] != '\n' {
			return 1, true, nil
		}
		return 0, false, nil
	case opCharGroup:
		if pos < len(haystack) && n.set[haystack[pos]] != n.negated {
			return 1, true, nil
		}
		return 0, false, nil
	case opOneOrMore:
		consumed, ok, err := n.inner.match(haystack, pos)
		if !ok || err != nil {
			return 0, false, err
		}
		for {
			adv, more, err := n.inner.match(haystack, pos+consumed)
			if err != nil {
				return 0, false, err
			}
			// stop on zero-width repetitions to avoid looping forever
			if !more || adv == 0 {
				break
			}
			consumed += adv
		}
		return consumed, true, nil
	case opOptional:
		consumed, ok, err := n.inner.match(haystack, pos)
		if err != nil {
			return 0, false, err
		}
		if !ok {
			return 0, true, nil
		}
		return consumed, true, nil
	case opSequence:
		// the first failing child fails the whole sequence, earlier
		// children are not retried with shorter matches
		consumed := 0
		for _, c := range n.children {
			adv, ok, err := c.match(haystack, pos+consumed)
			if !ok || err != nil {
				return 0, false, err
			}
			consumed += adv
		}
		return consumed, true, nil
	case opAlternation:
		// first matching branch wins, declaration order is the only tie-break
		for _, b := range n.children {
			consumed, ok, err := b.match(haystack, pos)
			if err != nil {
				return 0, false, err
			}
			if ok {
				return consumed, true, nil
			}
		}
		return 0, false, nil
	}
	return 0, false, fmt.Errorf("%w: %s", ErrInvalidNode, n.op)
}

// minSize is the smallest number of bytes the node can ever consume. The
// scan driver uses it to rule out start offsets without matching.
func (n *node) minSize() (int, error) {
	switch n.op {
	case opChar, opDigit, opAlphaNum, opWildcard, opCharGroup:
		return 1, nil
	case opOneOrMore:
		return n.inner.minSize()
	case opOptional:
		return 0, nil
	case opSequence:
		sum := 0
		for _, c := range n.children {
			m, err := c.minSize()
			if err != nil {
				return 0, err
			}
			sum += m
		}
		return sum, nil
	case opAlternation:
		smallest := 0
		for i, b := range n.children {
			m, err := b.minSize()
			if err != nil {
				return 0, err
			}
			if i == 0 || m < smallest {
				smallest = m
			}
		}
		return smallest, nil
	}
	return 0, fmt.Errorf("%w: %s", ErrInvalidNode, n.op)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isAlphaNum(c byte) bool {
	return isDigit(c) || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c == '_'
}
