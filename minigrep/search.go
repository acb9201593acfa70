package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"

	"github.com/mfroeh/minigrep/regex"
)

var matchColor = color.New(color.FgRed)

type searchCmd struct {
	ExtendedRegexp bool     `short:"E" required:"" help:"Interpret the pattern as an extended expression. Required."`
	Pattern        string   `arg:"" name:"pattern" help:"Pattern to search for."`
	Paths          []string `arg:"" optional:"" name:"path" help:"Files or directories to search. Standard input when absent." type:"path"`

	in  io.Reader
	out io.Writer
}

func (c *searchCmd) Run() error {
	if c.in == nil {
		c.in = os.Stdin
	}
	if c.out == nil {
		c.out = os.Stdout
	}

	re, err := regex.Compile(c.Pattern)
	if err != nil {
		return err
	}

	if len(c.Paths) == 0 {
		matched, err := searchReader(c.out, c.in, re)
		if err != nil {
			return err
		}
		if !matched {
			return errNoMatch
		}
		return nil
	}

	matched := false
	for _, path := range c.Paths {
		info, err := os.Lstat(path)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}

		var hit bool
		if info.IsDir() {
			hit, err = searchDir(c.out, path, re)
		} else {
			hit, err = searchFile(c.out, path, re)
		}
		if err != nil {
			return err
		}
		matched = matched || hit
	}
	if !matched {
		return errNoMatch
	}
	return nil
}

// searchReader copies matching lines of r to out, so piping one line in
// answers plain containment through the exit code.
func searchReader(out io.Writer, r io.Reader, re regex.Pattern) (bool, error) {
	matched := false
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := sc.Text()
		ok, err := re.MatchString(line)
		if err != nil {
			return matched, err
		}
		if ok {
			matched = true
			fmt.Fprintln(out, line)
		}
	}
	return matched, sc.Err()
}

// searchDir searches every file below root. Symlinks are followed when
// they resolve to files; broken links and links to directories are
// skipped.
func searchDir(out io.Writer, root string, re regex.Pattern) (bool, error) {
	matched := false
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		if d.Type()&fs.ModeSymlink != 0 {
			info, err := os.Stat(path)
			if err != nil {
				if errors.Is(err, fs.ErrNotExist) {
					return nil
				}
				return err
			}
			if info.IsDir() {
				return nil
			}
		}

		hit, err := searchFile(out, path, re)
		matched = matched || hit
		return err
	})
	return matched, err
}

// searchFile prints every matching line as path:lineno:line, with the
// matched span highlighted.
func searchFile(out io.Writer, path string, re regex.Pattern) (bool, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return false, err
	}
	if len(content) == 0 {
		return false, nil
	}

	matched := false
	for i, line := range strings.Split(strings.TrimSuffix(string(content), "\n"), "\n") {
		loc, err := re.FindStringIndex(line)
		if err != nil {
			return matched, err
		}
		if loc == nil {
			continue
		}
		matched = true
		fmt.Fprintf(out, "%s:%d:%s\n", path, i+1, highlight(line, loc))
	}
	return matched, nil
}

func highlight(line string, loc []int) string {
	out := strings.Builder{}
	out.WriteString(line[:loc[0]])
	matchColor.Fprint(&out, line[loc[0]:loc[1]])
	out.WriteString(line[loc[1]:])
	return out.String()
}
