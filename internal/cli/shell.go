package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/idilsaglam/tada/internal/ui"
)

// doShell runs one subcommand per input line against the same store, so
// changes survive from line to line until the input ends.
// It returns the code of the last failing line, or 0.
func (r *Runner) doShell(ctx context.Context) int {
	if r.In == nil {
		ui.Fail(r.Err, "shell: no input")
		return 1
	}
	// The shell user sees every change by running ls; no echo per line.
	echo := r.Opts.EchoList
	r.Opts.EchoList = false
	defer func() { r.Opts.EchoList = echo }()

	sc := bufio.NewScanner(r.In)
	last := 0
	for {
		if err := ctx.Err(); err != nil {
			return last
		}
		if r.Prompt != "" {
			fmt.Fprint(r.Out, r.Prompt)
		}
		if !sc.Scan() {
			break
		}
		args, err := splitArgs(sc.Text())
		if err != nil {
			ui.Fail(r.Err, "shell: "+err.Error())
			last = 2
			continue
		}
		if len(args) == 0 || strings.HasPrefix(args[0], "#") {
			continue
		}
		switch args[0] {
		case "quit", "exit":
			return last
		case "shell", "tui":
			ui.Fail(r.Err, "shell: "+args[0]+" is not available inside the shell")
			last = 2
			continue
		}
		if code := r.Run(ctx, args); code != 0 {
			last = code
		}
	}
	if err := sc.Err(); err != nil {
		ui.Fail(r.Err, "shell: read input: "+err.Error())
		return 1
	}
	return last
}

// splitArgs splits a line on whitespace. Single or double quotes group
// words; a backslash escapes the next rune outside single quotes.
func splitArgs(line string) ([]string, error) {
	var (
		args    []string
		cur     strings.Builder
		inWord  bool
		quote   rune
		escaped bool
	)
	for _, c := range line {
		switch {
		case escaped:
			cur.WriteRune(c)
			escaped = false
		case c == '\\' && quote != '\'':
			escaped = true
			inWord = true
		case quote != 0:
			if c == quote {
				quote = 0
			} else {
				cur.WriteRune(c)
			}
		case c == '"' || c == '\'':
			quote = c
			inWord = true
		case c == ' ' || c == '\t':
			if inWord {
				args = append(args, cur.String())
				cur.Reset()
				inWord = false
			}
		default:
			cur.WriteRune(c)
			inWord = true
		}
	}
	if quote != 0 {
		return nil, fmt.Errorf("unterminated %c quote", quote)
	}
	if escaped {
		return nil, fmt.Errorf("trailing backslash")
	}
	if inWord {
		args = append(args, cur.String())
	}
	return args, nil
}
