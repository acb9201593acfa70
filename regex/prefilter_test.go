package regex

import (
	"testing"
)

func TestAutomatonEligibility(t *testing.T) {
	tests := map[string]struct {
		givenRe  string
		wantAuto bool
	}{
		"plain literal":            {givenRe: "cat", wantAuto: true},
		"alternation":              {givenRe: "(cat|dog)", wantAuto: true},
		"trailing alternation":     {givenRe: "gray (wolf|fox)", wantAuto: true},
		"text after alternation":   {givenRe: "(cat|dog)x", wantAuto: false},
		"start anchor":             {givenRe: "^cat", wantAuto: false},
		"end anchor":               {givenRe: "cat$", wantAuto: false},
		"optional inside branch":   {givenRe: "(ca?t|dog)", wantAuto: false},
		"class":                    {givenRe: `\d`, wantAuto: false},
		"quantifier":               {givenRe: "ab+", wantAuto: false},
		"empty alternation branch": {givenRe: "(a|)", wantAuto: false},
		"empty pattern":            {givenRe: "", wantAuto: false},
		"literal with a newline":   {givenRe: "a\nb", wantAuto: false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			// when
			re := MustCompile(tt.givenRe)

			// then
			if got := re.auto != nil; got != tt.wantAuto {
				t.Errorf("Compile(%q) automaton = %v, want %v", tt.givenRe, got, tt.wantAuto)
			}
		})
	}
}

// On every eligible pattern the automaton answers for the scan, so the
// two must never disagree.
func TestAutomatonAgreesWithScan(t *testing.T) {
	patterns := []string{
		"cat", "(cat|dog)", "gray (wolf|fox)", "(a|ab)", "(ab|a)",
		"(alpha|bravo|charlie|delta)",
	}
	haystacks := []string{
		"", "cat", "dog", "catalog", "a", "ab", "xaby", "ba",
		"gray fox den", "a gray wolf", "gray wol",
		"bravo!", "charlie and delta", "alphabet\n", "cat\n", "dog\n\n",
		"no pets here",
	}

	for _, reSrc := range patterns {
		re := MustCompile(reSrc)
		if re.auto == nil {
			t.Fatalf("Compile(%q) has no automaton, test expects an eligible pattern", reSrc)
		}
		scan := re
		scan.auto = nil

		for _, s := range haystacks {
			fast, err := re.MatchString(s)
			if err != nil {
				t.Fatalf("automaton MatchString(%q, %q): %v", reSrc, s, err)
			}
			slow, err := scan.MatchString(s)
			if err != nil {
				t.Fatalf("scan MatchString(%q, %q): %v", reSrc, s, err)
			}
			if fast != slow {
				t.Errorf("MatchString(%q, %q) = %v via automaton, %v via scan", reSrc, s, fast, slow)
			}
		}
	}
}

// FindStringIndex reports the scan's span even when containment went
// through the automaton: aho-corasick's leftmost match can differ from
// first-offset-first-branch order.
func TestFindStringIndexIgnoresAutomaton(t *testing.T) {
	re := MustCompile("(ab|a)")
	if re.auto == nil {
		t.Fatal("pattern unexpectedly has no automaton")
	}

	loc, err := re.FindStringIndex("xab")
	if err != nil {
		t.Fatalf("FindStringIndex: %v", err)
	}
	if len(loc) != 2 || loc[0] != 1 || loc[1] != 3 {
		t.Errorf("FindStringIndex = %v, want [1 3]", loc)
	}
}
