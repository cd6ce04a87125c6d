package cli

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/idilsaglam/tada/internal/logging"
	"github.com/idilsaglam/tada/internal/store"
	"github.com/idilsaglam/tada/internal/tui"
	"github.com/idilsaglam/tada/internal/ui"
)

// Options tune output behavior from root flags.
type Options struct {
	Group bool // list grouped by pending/done
	// EchoList prints the list after add/done/rm. Used for one-shot runs,
	// where the process exits right after and the change would be unseen.
	EchoList bool
}

// Runner dispatches subcommands against one store.
type Runner struct {
	Store  *store.Store
	Out    io.Writer
	Err    io.Writer
	In     io.Reader
	Logger *log.Logger
	Opts   Options

	// Prompt is printed before each shell line; empty for piped input.
	Prompt string
	// TUI starts the interactive view. Defaults to tui.Run.
	TUI func(ctx context.Context, s *store.Store, opts ...tui.Option) error
	// Theme is handed to the TUI.
	Theme string
}

// NewRunner wires a runner to stdio.
func NewRunner(s *store.Store, logger *log.Logger, opt Options) *Runner {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Runner{
		Store:  s,
		Out:    os.Stdout,
		Err:    os.Stderr,
		In:     os.Stdin,
		Logger: logger,
		Opts:   opt,
		TUI:    tui.Run,
	}
}

// Run dispatches subcommands and returns an exit code (0 ok, 1 error, 2 usage).
func (r *Runner) Run(ctx context.Context, args []string) int {
	if len(args) == 0 {
		r.PrintHelp()
		return 2
	}
	cmd, a := args[0], args[1:]
	r.Logger.Debug("command", "name", cmd, "args", a)

	switch cmd {
	case "help", "-h", "--help":
		r.PrintHelp()
		return 0

	case "ls":
		return r.doList(a)

	case "stats":
		return r.doStats(a)

	case "add":
		if len(a) == 0 {
			ui.Fail(r.Err, "usage: todo add <content...>")
			return 2
		}
		return r.doAdd(strings.Join(a, " "))

	case "done":
		id, code := r.parseID("done", a)
		if code != 0 {
			return code
		}
		return r.doToggle(id)

	case "rm":
		id, code := r.parseID("rm", a)
		if code != 0 {
			return code
		}
		return r.doRemove(id)

	case "shell":
		return r.doShell(ctx)

	case "tui":
		return r.doTUI(ctx)
	}

	ui.Fail(r.Err, "unknown subcommand: "+cmd)
	fmt.Fprintln(r.Err)
	r.PrintHelp()
	return 2
}

func (r *Runner) PrintHelp() {
	fmt.Fprint(r.Out, `todo - a tiny in-memory todo list

Usage:
  todo [flags] <subcommand> [args]

Subcommands:
  ls [-json] [-group] [query...]   List todos, newest first, optionally filtered
  add <content...>                 Add a todo (content can be multiple words)
  done <id>                        Toggle done for the todo with that id
  rm <id>                          Remove the todo with that id
  stats                            Show total / done / not done counts
  shell                            Read subcommands from stdin, one per line
  tui                              Interactive view

Todos live in memory only; every run starts from the example list.

Examples:
  todo ls java
  todo add "Write tests"
  todo done 3
  printf 'add "Buy milk"\ndone 5\nls\n' | todo shell
`)
}

func (r *Runner) parseID(cmd string, a []string) (int, int) {
	if len(a) != 1 {
		ui.Fail(r.Err, fmt.Sprintf("usage: todo %s <id>", cmd))
		return 0, 2
	}
	n, err := strconv.Atoi(strings.TrimPrefix(a[0], "id_"))
	if err != nil {
		ui.Fail(r.Err, cmd+": not a number: "+a[0])
		return 0, 2
	}
	return n, 0
}

// -------------- subcommand impls ----------------

func (r *Runner) doList(a []string) int {
	fs := flag.NewFlagSet("ls", flag.ContinueOnError)
	fs.SetOutput(r.Err)
	asJSON := fs.Bool("json", false, "print todos as JSON")
	group := fs.Bool("group", r.Opts.Group, "group by pending/done")
	if err := fs.Parse(a); err != nil {
		return 2
	}
	query := strings.Join(fs.Args(), " ")
	items := r.Store.Search(query)

	if *asJSON {
		return r.writeJSON(items)
	}

	lines := ui.StatsLines(r.Store.Stats())
	lines = append(lines, "")
	if query != "" {
		lines = append(lines, ui.C(ui.Current().Muted, fmt.Sprintf("search %q: %d of %d", query, len(items), r.Store.Len())), "")
	}
	if *group {
		lines = append(lines, ui.GroupLines(items)...)
	} else {
		lines = append(lines, ui.FlatLines(items)...)
	}
	lines = append(lines, "")
	lines = append(lines, ui.C(ui.Current().Muted, "Tip: add with `todo add \"Buy milk\"`"))
	ui.Panel(r.Out, lines)
	return 0
}

func (r *Runner) doStats(a []string) int {
	fs := flag.NewFlagSet("stats", flag.ContinueOnError)
	fs.SetOutput(r.Err)
	asJSON := fs.Bool("json", false, "print stats as JSON")
	if err := fs.Parse(a); err != nil {
		return 2
	}
	st := r.Store.Stats()
	if *asJSON {
		return r.writeJSON(st)
	}
	fmt.Fprintf(r.Out, "total %d  done %d  not done %d  (%d%%)\n", st.Total, st.Done, st.NotDone, st.Percent())
	return 0
}

func (r *Runner) doAdd(content string) int {
	if !r.Store.Create(content) {
		ui.Fail(r.Err, "add: empty content")
		return 2
	}
	ui.OK(r.Out, fmt.Sprintf("added id_%d", r.Store.List()[0].ID))
	return r.echo()
}

func (r *Runner) doToggle(id int) int {
	if !r.Store.Toggle(id) {
		ui.Hint(r.Err, fmt.Sprintf("no todo with id %d (run `todo ls` to see ids)", id))
		return 0
	}
	rec, _ := r.Store.Get(id)
	state := "pending"
	if rec.IsDone {
		state = "done"
	}
	ui.OK(r.Out, fmt.Sprintf("id_%d is %s", id, state))
	return r.echo()
}

func (r *Runner) doRemove(id int) int {
	if !r.Store.Delete(id) {
		ui.Hint(r.Err, fmt.Sprintf("no todo with id %d (run `todo ls` to see ids)", id))
		return 0
	}
	ui.OK(r.Out, fmt.Sprintf("removed id_%d", id))
	return r.echo()
}

func (r *Runner) doTUI(ctx context.Context) int {
	if r.TUI == nil {
		ui.Fail(r.Err, "tui: not available")
		return 1
	}
	opts := []tui.Option{tui.WithLogger(r.Logger)}
	if r.Theme != "" {
		opts = append(opts, tui.WithTheme(r.Theme))
	}
	if err := r.TUI(ctx, r.Store, opts...); err != nil {
		ui.Fail(r.Err, "tui: "+err.Error())
		return 1
	}
	return 0
}

func (r *Runner) echo() int {
	if !r.Opts.EchoList {
		return 0
	}
	return r.doList(nil)
}

func (r *Runner) writeJSON(v any) int {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		ui.Fail(r.Err, "json marshal: "+err.Error())
		return 1
	}
	fmt.Fprintln(r.Out, string(b))
	return 0
}
