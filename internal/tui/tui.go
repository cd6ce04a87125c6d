// Package tui is the interactive Bubble Tea view over a todo store.
//
// The model never edits records itself: the editor, the checkboxes and the
// delete key all go through the store handle it was given, and the list is
// redrawn when the store reports a change.
package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/idilsaglam/tada/internal/model"
	"github.com/idilsaglam/tada/internal/store"
	"github.com/idilsaglam/tada/internal/ui"
)

const (
	emptyContentMsg = "Content cannot be empty"
	todayLayout     = "Mon Jan 02 2006"
)

// Option configures the TUI.
type Option func(*options)

type options struct {
	logger    *log.Logger
	theme     string
	now       func() time.Time
	altScreen bool
	in        io.Reader
	out       io.Writer
}

// WithLogger sets the logger for TUI events.
func WithLogger(l *log.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithTheme picks the palette: classic, neon or mono.
func WithTheme(name string) Option {
	return func(o *options) { o.theme = name }
}

// WithClock sets the time source for the date in the header.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}

// WithIO replaces the terminal with the given reader and writer and turns
// the alternate screen off.
func WithIO(in io.Reader, out io.Writer) Option {
	return func(o *options) {
		o.in, o.out = in, out
		o.altScreen = false
	}
}

// Run starts the program and blocks until the user quits or ctx ends.
func Run(ctx context.Context, s *store.Store, opts ...Option) error {
	o := options{
		logger:    log.New(io.Discard),
		theme:     "classic",
		now:       time.Now,
		altScreen: true,
	}
	for _, opt := range opts {
		opt(&o)
	}

	m := newModel(s, o)
	defer m.close()

	popts := []tea.ProgramOption{tea.WithContext(ctx)}
	if o.altScreen {
		popts = append(popts, tea.WithAltScreen())
	}
	if o.in != nil {
		popts = append(popts, tea.WithInput(o.in))
	}
	if o.out != nil {
		popts = append(popts, tea.WithOutput(o.out))
	}

	if _, err := tea.NewProgram(m, popts...).Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}

type mode int

const (
	modeList mode = iota
	modeAdd
	modeSearch
)

type keyMap struct {
	Add, Search, Toggle, Delete, Clear, Quit key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Add:    key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		Search: key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Toggle: key.NewBinding(key.WithKeys(" ", "x"), key.WithHelp("space", "toggle")),
		Delete: key.NewBinding(key.WithKeys("d", "delete"), key.WithHelp("d", "delete")),
		Clear:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear search")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// recordItem adapts a record to bubbles/list.Item.
type recordItem struct {
	rec model.Record
}

func (i recordItem) Title() string       { return i.rec.Content }
func (i recordItem) Description() string { return "" }
func (i recordItem) FilterValue() string { return i.rec.Content }

// itemDelegate renders one record per line: box, id, content, date.
type itemDelegate struct {
	st styles
}

func (d itemDelegate) Height() int                               { return 1 }
func (d itemDelegate) Spacing() int                              { return 0 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(recordItem)
	if !ok {
		return
	}
	box := d.st.muted.Render(d.st.boxUnchecked)
	text := it.rec.Content
	if it.rec.IsDone {
		box = d.st.success.Render(d.st.boxChecked)
		text = d.st.done.Render(text)
	}
	id := d.st.muted.Render(fmt.Sprintf("id_%d.", it.rec.ID))
	date := d.st.muted.Render(it.rec.Created().Format(ui.DateLayout))

	prefix := "  "
	if index == m.Index() {
		prefix = d.st.selected.Render("> ")
	}
	fmt.Fprintf(w, "%s%s %s %s  %s", prefix, box, id, text, date)
}

type tuiModel struct {
	store  *store.Store
	logger *log.Logger
	now    func() time.Time
	st     styles
	keys   keyMap

	list   list.Model
	editor textinput.Model
	search textinput.Model

	mode    mode
	query   string
	stats   model.Stats
	editErr string
	status  string

	width, height int
	unsubscribe   func()
}

func newModel(s *store.Store, o options) *tuiModel {
	st := newStyles(o.theme)
	keys := newKeyMap()

	l := list.New(nil, itemDelegate{st: st}, 80, 20)
	l.SetShowHelp(true)
	l.SetShowPagination(true)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(false)
	l.Styles.Title = st.title
	l.Styles.HelpStyle = st.help
	l.Styles.PaginationStyle = st.help
	l.SetStatusBarItemName("todo", "todos")
	l.DisableQuitKeybindings()
	extra := func() []key.Binding { return []key.Binding{keys.Add, keys.Search, keys.Toggle, keys.Delete, keys.Quit} }
	l.AdditionalShortHelpKeys = extra
	l.AdditionalFullHelpKeys = extra

	editor := textinput.New()
	editor.Prompt = "> "
	editor.Placeholder = "New todo..."
	editor.CharLimit = 0

	search := textinput.New()
	search.Prompt = "/ "
	search.Placeholder = "Search..."

	now := o.now
	if now == nil {
		now = time.Now
	}
	m := &tuiModel{
		store:  s,
		logger: o.logger,
		now:    now,
		st:     st,
		keys:   keys,
		list:   l,
		editor: editor,
		search: search,
		width:  80,
		height: 24,
	}
	m.stats = s.Stats()
	m.reload()
	m.unsubscribe = s.Subscribe(m.onChange)
	return m
}

// onChange runs synchronously inside the store command that caused it.
func (m *tuiModel) onChange(ev store.Event) {
	m.stats = m.store.Stats()
	m.status = fmt.Sprintf("%s id_%d", ev.Kind, ev.Record.ID)
	m.logger.Debug("store changed", "kind", ev.Kind, "id", ev.Record.ID)
	m.reload()
}

func (m *tuiModel) close() {
	if m.unsubscribe != nil {
		m.unsubscribe()
	}
}

// reload refreshes the visible rows from the store. It never touches stats.
func (m *tuiModel) reload() {
	recs := m.store.Search(m.query)
	items := make([]list.Item, 0, len(recs))
	for _, r := range recs {
		items = append(items, recordItem{rec: r})
	}
	idx := m.list.Index()
	m.list.SetItems(items)
	if n := len(items); n > 0 && idx >= n {
		m.list.Select(n - 1)
	}
	m.list.Title = m.header()
}

func (m *tuiModel) header() string {
	return fmt.Sprintf("%s   %s %d  %s %d  %s %d",
		m.st.title.Render("Todos"),
		m.st.success.Render("✔"), m.stats.Done,
		m.st.pending.Render("•"), m.stats.NotDone,
		m.st.accent.Render("Total"), m.stats.Total,
	)
}

func (m *tuiModel) selected() (model.Record, bool) {
	it, ok := m.list.SelectedItem().(recordItem)
	if !ok {
		return model.Record{}, false
	}
	return it.rec, true
}

func (m *tuiModel) setQuery(q string) {
	if q == m.query {
		return
	}
	m.query = q
	m.list.Select(0)
	m.reload()
}

func (m *tuiModel) Init() tea.Cmd { return nil }

func (m *tuiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resize()
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		switch m.mode {
		case modeAdd:
			return m.updateEditor(msg)
		case modeSearch:
			return m.updateSearch(msg)
		}

		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Add):
			m.mode = modeAdd
			m.editErr = ""
			m.editor.SetValue("")
			m.resize()
			return m, m.editor.Focus()
		case key.Matches(msg, m.keys.Search):
			m.mode = modeSearch
			m.search.SetValue(m.query)
			m.search.CursorEnd()
			m.resize()
			return m, m.search.Focus()
		case key.Matches(msg, m.keys.Toggle):
			if rec, ok := m.selected(); ok {
				m.store.Toggle(rec.ID)
			}
			return m, nil
		case key.Matches(msg, m.keys.Delete):
			if rec, ok := m.selected(); ok {
				m.store.Delete(rec.ID)
			}
			return m, nil
		case key.Matches(msg, m.keys.Clear):
			m.search.SetValue("")
			m.setQuery("")
			return m, nil
		}
	}

	var cmd tea.Cmd
	switch m.mode {
	case modeAdd:
		m.editor, cmd = m.editor.Update(msg)
	case modeSearch:
		m.search, cmd = m.search.Update(msg)
	default:
		m.list, cmd = m.list.Update(msg)
	}
	return m, cmd
}

// updateEditor handles keys while the add box is open. A blank submit
// keeps the box open and focused so the user can correct it.
func (m *tuiModel) updateEditor(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		if !m.store.Create(m.editor.Value()) {
			m.editErr = emptyContentMsg
			return m, m.editor.Focus()
		}
		m.editor.SetValue("")
		m.editErr = ""
		m.list.Select(0)
		return m, nil
	case tea.KeyEsc:
		m.closeInput()
		return m, nil
	}
	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	if strings.TrimSpace(m.editor.Value()) != "" {
		m.editErr = ""
	}
	return m, cmd
}

// updateSearch filters the list as the query is typed. Enter keeps the
// query, esc drops it.
func (m *tuiModel) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		m.closeInput()
		return m, nil
	case tea.KeyEsc:
		m.search.SetValue("")
		m.setQuery("")
		m.closeInput()
		return m, nil
	}
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.setQuery(m.search.Value())
	return m, cmd
}

func (m *tuiModel) closeInput() {
	m.mode = modeList
	m.editor.Blur()
	m.editor.SetValue("")
	m.editErr = ""
	m.search.Blur()
	m.resize()
}

func (m *tuiModel) resize() {
	h := m.height - 6
	if m.mode != modeList {
		h -= 4
	}
	if h < 3 {
		h = 3
	}
	w := m.width - 4
	if w < 20 {
		w = 20
	}
	m.list.SetSize(w, h)
}

func (m *tuiModel) View() string {
	var b strings.Builder
	b.WriteString(m.st.accent.Render("Today is " + m.now().Format(todayLayout)))
	b.WriteString("   ")
	b.WriteString(m.st.muted.Render(ui.ProgressBar(m.stats.Done, m.stats.Total, 28)))
	b.WriteString("\n")
	if m.query != "" && m.mode != modeSearch {
		b.WriteString(m.st.accent.Render(fmt.Sprintf("search %q", m.query)))
		b.WriteString(m.st.help.Render("  (esc to clear)"))
		b.WriteString("\n")
	}
	b.WriteString(m.list.View())

	switch m.mode {
	case modeAdd:
		title := "Add new todo"
		if m.editErr != "" {
			title += "  " + m.st.errorMsg.Render(m.editErr)
		}
		b.WriteString("\n")
		b.WriteString(m.st.border.Render(title + "\n" + m.editor.View()))
	case modeSearch:
		b.WriteString("\n")
		b.WriteString(m.st.border.Render("Search\n" + m.search.View()))
	}
	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.st.help.Render(m.status))
	}
	return m.st.border.Render(b.String())
}
