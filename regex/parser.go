package regex

import (
	"errors"
	"fmt"
	"strings"
)

// parser is a byte cursor over the pattern body after the anchors have
// been stripped off. base restores original-string offsets in errors
// when a leading '^' was removed.
type parser struct {
	pattern string
	pos     int
	base    int
}

func (p *parser) eof() bool {
	return p.pos >= len(p.pattern)
}

func (p *parser) peek() byte {
	return p.pattern[p.pos]
}

func (p *parser) next() byte {
	c := p.pattern[p.pos]
	p.pos++
	return c
}

// fragment is one lexical unit: either a node (a finished atom, a
// quantifier placeholder, or the opEmpty end-of-input sentinel) or a
// bare literal byte. Only bare literals can terminate a sequence fold;
// an escaped character always arrives as a Char node, which is how \|
// and \) stay ordinary members of a group.
type fragment struct {
	node *node
	lit  byte
}

// parseFragment consumes exactly one lexical unit from the stream.
func (p *parser) parseFragment() (fragment, error) {
	if p.eof() {
		return fragment{node: &node{op: opEmpty}}, nil
	}
	switch c := p.next(); c {
	case '\\':
		if p.eof() {
			return fragment{}, newSyntaxError(p.base+p.pos-1, ErrTrailingBackslash)
		}
		switch e := p.next(); e {
		case 'd':
			return fragment{node: &node{op: opDigit}}, nil
		case 'w':
			return fragment{node: &node{op: opAlphaNum}}, nil
		default:
			return fragment{node: &node{op: opChar, ch: e}}, nil
		}
	case '[':
		return p.parseCharGroup()
	case '(':
		return p.parseGroup()
	case '+':
		return fragment{node: &node{op: opOneOrMoreMark}}, nil
	case '?':
		return fragment{node: &node{op: opOptionalMark}}, nil
	case '.':
		return fragment{node: &node{op: opWildcard}}, nil
	default:
		return fragment{lit: c}, nil
	}
}

// parseCharGroup collects members until an unescaped ']'. A '^' right
// after the opening bracket negates the group, later ones are ordinary
// members. There is no range syntax, '-' is a member like any other, and
// duplicates collapse into the set.
func (p *parser) parseCharGroup() (fragment, error) {
	start := p.pos - 1

	negated := false
	if !p.eof() && p.peek() == '^' {
		negated = true
		p.next()
	}

	set := make(map[byte]bool)
	for {
		if p.eof() {
			return fragment{}, newSyntaxError(p.base+start, ErrUnbalancedBrackets)
		}
		c := p.next()
		if c == ']' {
			break
		}
		if c == '\\' {
			if p.eof() {
				return fragment{}, newSyntaxError(p.base+start, ErrUnbalancedBrackets)
			}
			c = p.next()
		}
		set[c] = true
	}
	return fragment{node: &node{op: opCharGroup, set: set, negated: negated}}, nil
}

// parseGroup folds one sequence per alternation branch, consuming the
// '|' between branches and the closing ')'.
func (p *parser) parseGroup() (fragment, error) {
	start := p.pos - 1

	var branches []*node
	for {
		branch, term, err := p.parseSequence("|)")
		if err != nil {
			if errors.Is(err, ErrUnexpectedEOF) {
				return fragment{}, newSyntaxError(p.base+start, fmt.Errorf("%w: %w", ErrUnbalancedParens, ErrUnexpectedEOF))
			}
			return fragment{}, err
		}
		branches = append(branches, branch)
		if term == ')' {
			return fragment{node: &node{op: opAlternation, children: branches}}, nil
		}
	}
}

// parseSequence folds fragments into one Sequence node until the input
// ends or a bare literal from stop terminates the fold. The terminator
// is returned alongside, 0 when the sequence ran to the end of the
// input. Running out of input is only fine at the top level; inside a
// group it means the group was never closed.
func (p *parser) parseSequence(stop string) (*node, byte, error) {
	var atoms []*node
	for {
		f, err := p.parseFragment()
		if err != nil {
			return nil, 0, err
		}

		if f.node == nil {
			if strings.IndexByte(stop, f.lit) >= 0 {
				return &node{op: opSequence, children: atoms}, f.lit, nil
			}
			atoms = append(atoms, &node{op: opChar, ch: f.lit})
			continue
		}

		switch f.node.op {
		case opEmpty:
			if stop != "" {
				return nil, 0, newSyntaxError(p.base+p.pos, ErrUnexpectedEOF)
			}
			return &node{op: opSequence, children: atoms}, 0, nil
		case opOneOrMoreMark, opOptionalMark:
			// a quantifier binds to the most recent atom
			if len(atoms) == 0 {
				return nil, 0, newSyntaxError(p.base+p.pos-1, ErrDanglingQuantifier)
			}
			wrap := opOneOrMore
			if f.node.op == opOptionalMark {
				wrap = opOptional
			}
			atoms[len(atoms)-1] = &node{op: wrap, inner: atoms[len(atoms)-1]}
		default:
			atoms = append(atoms, f.node)
		}
	}
}
