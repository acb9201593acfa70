package regex

import (
	"github.com/mfroeh/minigrep/literal"
)

// Extraction gives up rather than grow without bound.
const (
	maxLiteralAlts = 16
	maxLiteralLen  = 64
)

// extract computes the literal alternatives of a subtree bottom-up.
// Characters extend the running literals and alternations multiply
// them; any other construct demotes what has been collected so far to
// prefixes. A multi-branch alternation also has to be the last element
// of its sequence to stay complete: the matcher commits to the first
// matching branch, so text that follows could turn a committed branch
// into a dead end the tree match never revisits, and the literals would
// then promise matches the engine refuses.
func extract(n *node) *literal.Seq {
	switch n.op {
	case opChar:
		return literal.NewSeq(literal.NewLiteral([]byte{n.ch}, true))
	case opSequence:
		acc := literal.NewSeq(literal.NewLiteral(nil, true))
		for _, c := range n.children {
			if !acc.Complete() || acc.Len() > 1 {
				return acc.Inexact()
			}
			acc = cross(acc, extract(c))
		}
		return acc
	case opAlternation:
		out := literal.NewSeq()
		for _, b := range n.children {
			bs := extract(b)
			for i := 0; i < bs.Len(); i++ {
				out.Push(bs.Get(i))
			}
			if out.Len() > maxLiteralAlts {
				return unknownSeq()
			}
		}
		return out
	default:
		return unknownSeq()
	}
}

// cross extends every literal in acc with every alternative in next.
// Callers ensure acc is complete.
func cross(acc, next *literal.Seq) *literal.Seq {
	if acc.Len()*next.Len() > maxLiteralAlts {
		return unknownSeq()
	}
	out := literal.NewSeq()
	for i := 0; i < acc.Len(); i++ {
		a := acc.Get(i)
		for j := 0; j < next.Len(); j++ {
			b := next.Get(j)
			joined := make([]byte, 0, a.Len()+b.Len())
			joined = append(joined, a.Bytes...)
			joined = append(joined, b.Bytes...)
			if len(joined) > maxLiteralLen {
				return unknownSeq()
			}
			out.Push(literal.NewLiteral(joined, b.Complete))
		}
	}
	return out
}

// unknownSeq is the no-knowledge result: a single empty prefix.
func unknownSeq() *literal.Seq {
	return literal.NewSeq(literal.NewLiteral(nil, false))
}
