package regex

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLiterals(t *testing.T) {
	tests := map[string]struct {
		givenRe      string
		wantLits     []string
		wantComplete bool
	}{
		"plain literal": {
			givenRe: "cat", wantLits: []string{"cat"}, wantComplete: true,
		},
		"empty pattern is the empty literal": {
			givenRe: "", wantLits: []string{""}, wantComplete: true,
		},
		"alternation": {
			givenRe: "(cat|dog)", wantLits: []string{"cat", "dog"}, wantComplete: true,
		},
		"empty branch": {
			givenRe: "(a|)", wantLits: []string{"a", ""}, wantComplete: true,
		},
		"prefix times trailing alternation": {
			givenRe: "gray (wolf|fox)", wantLits: []string{"gray wolf", "gray fox"}, wantComplete: true,
		},
		"nested group": {
			givenRe: "((a|b))", wantLits: []string{"a", "b"}, wantComplete: true,
		},
		"escapes contribute their character": {
			givenRe: `\(x\)`, wantLits: []string{"(x)"}, wantComplete: true,
		},
		"text after alternation demotes to prefixes": {
			givenRe: "(cat|dog)x", wantLits: []string{"cat", "dog"}, wantComplete: false,
		},
		"optional stops extraction": {
			givenRe: "ca?t", wantLits: []string{"c"}, wantComplete: false,
		},
		"optional branch poisons the set": {
			givenRe: "(ca?t|dog)", wantLits: []string{"c", "dog"}, wantComplete: false,
		},
		"class knows nothing": {
			givenRe: `\d`, wantLits: []string{""}, wantComplete: false,
		},
		"quantifier knows nothing": {
			givenRe: "a+", wantLits: []string{""}, wantComplete: false,
		},
		"anchors are not part of the text": {
			givenRe: "^cat$", wantLits: []string{"cat"}, wantComplete: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			// when
			lits := MustCompile(tt.givenRe).Literals()

			// then
			got := make([]string, 0, lits.Len())
			for i := 0; i < lits.Len(); i++ {
				got = append(got, string(lits.Get(i).Bytes))
			}
			if d := cmp.Diff(tt.wantLits, got); d != "" {
				t.Errorf("got literal diff (-want +got):\n%s", d)
			}
			if lits.Complete() != tt.wantComplete {
				t.Errorf("Complete() = %v, want %v", lits.Complete(), tt.wantComplete)
			}
		})
	}
}

func TestLiteralsGiveUpOnSize(t *testing.T) {
	tests := map[string]struct {
		givenRe string
	}{
		"too many alternatives": {
			// 17 branches, one over the cap
			givenRe: "(a|b|c|d|e|f|g|h|i|j|k|l|m|n|o|p|q)",
		},
		"literal too long": {
			givenRe: strings.Repeat("a", maxLiteralLen+1),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			// when
			lits := MustCompile(tt.givenRe).Literals()

			// then
			if lits.Complete() {
				t.Errorf("Literals(%q).Complete() = true, want abandoned extraction", tt.givenRe)
			}
		})
	}
}

func TestLiteralsAtTheCap(t *testing.T) {
	// when
	lits := MustCompile(strings.Repeat("a", maxLiteralLen)).Literals()

	// then
	if !lits.Complete() {
		t.Fatalf("Complete() = false, want a literal at the cap to survive")
	}
	if lits.Longest() != maxLiteralLen {
		t.Errorf("Longest() = %d, want %d", lits.Longest(), maxLiteralLen)
	}
}
