package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"

	"github.com/mfroeh/minigrep/regex"
)

type replCmd struct{}

func (c *replCmd) Run() error {
	rl, err := readline.New("> ")
	if err != nil {
		return err
	}
	defer rl.Close()

	fmt.Fprintln(os.Stderr, "Set a pattern with :pattern <p>, then type lines to match it against. :quit leaves.")

	s := repl{out: os.Stdout, errOut: os.Stderr}
	for {
		line, err := rl.Readline()
		if err != nil {
			if errors.Is(err, readline.ErrInterrupt) || errors.Is(err, io.EOF) {
				break
			}
			fmt.Fprintln(os.Stderr, err)
			continue
		}

		if s.exec(line) {
			break
		}
		rl.SetPrompt(s.prompt())
	}
	return nil
}

// repl is the state carried between lines: the pattern compiled so far
// and where output goes.
type repl struct {
	pat    regex.Pattern
	loaded bool
	out    io.Writer
	errOut io.Writer
}

// prompt shows the pattern lines are being matched against.
func (s *repl) prompt() string {
	if !s.loaded {
		return "> "
	}
	return s.pat.String() + "> "
}

// exec handles one line and reports whether the loop should stop. A
// leading colon introduces a command, anything else is a haystack for
// the current pattern. Errors go to errOut and never end the session.
func (s *repl) exec(line string) bool {
	if !strings.HasPrefix(line, ":") {
		s.match(line)
		return false
	}

	cmd, rest, _ := strings.Cut(line[1:], " ")
	switch cmd {
	case "quit", "q":
		return true
	case "pattern", "p":
		pat, err := regex.Compile(rest)
		if err != nil {
			fmt.Fprintln(s.errOut, err)
			return false
		}
		s.pat = pat
		s.loaded = true
	case "tree", "t":
		if s.ready() {
			fmt.Fprint(s.out, s.pat.Explain())
		}
	case "lits", "l":
		if s.ready() {
			fmt.Fprintln(s.out, s.pat.Literals())
		}
	default:
		fmt.Fprintf(s.errOut, "unknown command %q, have :pattern :tree :lits :quit\n", cmd)
	}
	return false
}

func (s *repl) match(line string) {
	if !s.ready() {
		return
	}
	loc, err := s.pat.FindStringIndex(line)
	if err != nil {
		fmt.Fprintln(s.errOut, err)
		return
	}
	if loc == nil {
		fmt.Fprintln(s.out, "no match")
		return
	}
	fmt.Fprintf(s.out, "match at %d..%d: %s\n", loc[0], loc[1], highlight(line, loc))
}

func (s *repl) ready() bool {
	if !s.loaded {
		fmt.Fprintln(s.errOut, "no pattern set, use :pattern <p> first")
	}
	return s.loaded
}
