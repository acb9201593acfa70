package regex

import (
	"github.com/coregx/ahocorasick"
)

// buildAutomaton returns a multi-literal automaton that answers
// containment for the pattern, or nil when the tree scan has to do it.
// The automaton only replaces the scan when both give the same verdict
// on every haystack, which restricts it to patterns where:
//
//   - both anchors are absent, so an occurrence anywhere is a match,
//   - the extracted literals are complete, so the pattern's text is the
//     literals and nothing else,
//   - no literal is empty or carries a newline, so trailing-newline
//     trimming cannot change the verdict.
//
// MatchString consults it for containment only; reported spans always
// come from the scan, whose first-offset-first-branch order the
// automaton does not reproduce.
func buildAutomaton(p Pattern) *ahocorasick.Automaton {
	if p.atStart || p.untilEnd {
		return nil
	}
	if !p.lits.Complete() || p.lits.HasByte('\n') {
		return nil
	}

	builder := ahocorasick.NewBuilder()
	for i := 0; i < p.lits.Len(); i++ {
		lit := p.lits.Get(i)
		if lit.Len() == 0 {
			return nil
		}
		builder.AddPattern(lit.Bytes)
	}
	auto, err := builder.Build()
	if err != nil {
		// the tree scan handles every pattern, so a failed build only
		// costs the shortcut
		return nil
	}
	return auto
}
