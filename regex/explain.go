package regex

import (
	"fmt"
	"slices"
	"strings"
)

// Explain renders the compiled tree one node per line, for the repl and
// for debugging pattern surprises.
func (p Pattern) Explain() string {
	var b strings.Builder
	fmt.Fprintf(&b, "pattern %q", p.src)
	if p.atStart {
		b.WriteString(", anchored at start")
	}
	if p.untilEnd {
		b.WriteString(", anchored at end")
	}
	b.WriteByte('\n')
	explainNode(&b, p.root, "", true)
	return b.String()
}

func explainNode(b *strings.Builder, n *node, prefix string, last bool) {
	connector, childPrefix := "├─ ", prefix+"│  "
	if last {
		connector, childPrefix = "└─ ", prefix+"   "
	}
	fmt.Fprintf(b, "%s%s%s\n", prefix, connector, describe(n))

	var kids []*node
	switch n.op {
	case opOneOrMore, opOptional:
		kids = []*node{n.inner}
	case opSequence, opAlternation:
		kids = n.children
	}
	for i, k := range kids {
		explainNode(b, k, childPrefix, i == len(kids)-1)
	}
}

func describe(n *node) string {
	switch n.op {
	case opChar:
		return fmt.Sprintf("Char %q", n.ch)
	case opCharGroup:
		if n.negated {
			return fmt.Sprintf("CharGroup negated %q", setMembers(n.set))
		}
		return fmt.Sprintf("CharGroup %q", setMembers(n.set))
	default:
		return n.op.String()
	}
}

// setMembers lists the group members in byte order so output is stable.
func setMembers(set map[byte]bool) string {
	members := make([]byte, 0, len(set))
	for c := range set {
		members = append(members, c)
	}
	slices.Sort(members)
	return string(members)
}
