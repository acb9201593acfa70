package main

import (
	"errors"
	"log"
	"os"

	"github.com/alecthomas/kong"
)

// errNoMatch marks a clean run that found nothing. It exits 1 without a
// message, the grep convention; real failures get a message first.
var errNoMatch = errors.New("no lines matched")

var cli struct {
	Search searchCmd `cmd:"" default:"withargs" help:"Search standard input or paths for lines matching a pattern."`
	Repl   replCmd   `cmd:"" help:"Try patterns against lines interactively."`
}

func main() {
	ctx := kong.Parse(&cli,
		kong.Name("minigrep"),
		kong.Description("Searches standard input or files for lines matching a pattern."),
		kong.UsageOnError(),
	)

	err := ctx.Run()
	if errors.Is(err, errNoMatch) {
		os.Exit(1)
	}
	if err != nil {
		log.Fatalf("%v", err)
	}
}
