package tui

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/tada/internal/model"
	"github.com/idilsaglam/tada/internal/store"
)

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

var (
	enter = tea.KeyMsg{Type: tea.KeyEnter}
	esc   = tea.KeyMsg{Type: tea.KeyEsc}
	space = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
)

func newTestModel(t *testing.T, s *store.Store) *tuiModel {
	t.Helper()
	m := newModel(s, options{logger: log.New(io.Discard), theme: "classic"})
	t.Cleanup(m.close)
	return m
}

func send(m *tuiModel, msgs ...tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	for _, msg := range msgs {
		_, cmd = m.Update(msg)
	}
	return cmd
}

func visibleIDs(m *tuiModel) []int {
	var out []int
	for _, it := range m.list.Items() {
		out = append(out, it.(recordItem).rec.ID)
	}
	return out
}

func TestNewModelShowsStore(t *testing.T) {
	m := newTestModel(t, store.New())

	assert.Equal(t, []int{0, 1, 2, 3, 4}, visibleIDs(m))
	assert.Equal(t, model.Stats{Total: 5, Done: 1, NotDone: 4}, m.stats)
	assert.Contains(t, m.View(), "Todos")
}

func TestAddThroughEditor(t *testing.T) {
	s := store.New()
	m := newTestModel(t, s)

	send(m, runes("a"))
	require.Equal(t, modeAdd, m.mode)
	require.True(t, m.editor.Focused())

	send(m, runes("Write tests"), enter)

	assert.Equal(t, 6, s.Len())
	assert.Equal(t, "Write tests", s.List()[0].Content)
	assert.Equal(t, 5, visibleIDs(m)[0])
	assert.Equal(t, 6, m.stats.Total)
	assert.Equal(t, modeAdd, m.mode, "editor stays open for the next entry")
	assert.Empty(t, m.editor.Value())
	assert.True(t, m.editor.Focused())
}

func TestAddBlankKeepsFocus(t *testing.T) {
	s := store.New()
	m := newTestModel(t, s)

	send(m, runes("a"), runes("   "), enter)

	assert.Equal(t, 5, s.Len())
	assert.Equal(t, modeAdd, m.mode)
	assert.True(t, m.editor.Focused())
	assert.Equal(t, emptyContentMsg, m.editErr)
	assert.Contains(t, m.View(), emptyContentMsg)

	send(m, runes("x"))
	assert.Empty(t, m.editErr, "typing clears the error")

	send(m, esc)
	assert.Equal(t, modeList, m.mode)
	assert.False(t, m.editor.Focused())
	assert.Equal(t, 5, s.Len())
}

func TestEditorHasNoLengthLimit(t *testing.T) {
	s := store.New()
	m := newTestModel(t, s)
	long := strings.Repeat("ab", 150)

	send(m, runes("a"), runes(long), enter)

	require.Equal(t, 6, s.Len())
	assert.Equal(t, long, s.List()[0].Content)
	assert.Len(t, s.List()[0].Content, 300)
}

func TestHeaderShowsToday(t *testing.T) {
	tests := []struct {
		name string
		now  time.Time
		want string
	}{
		{"weekday", time.Date(2026, 10, 19, 9, 30, 0, 0, time.UTC), "Today is Mon Oct 19 2026"},
		{"new year", time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC), "Today is Fri Jan 01 2027"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := options{logger: log.New(io.Discard), theme: "mono"}
			WithClock(func() time.Time { return tt.now })(&o)
			m := newModel(store.New(), o)
			t.Cleanup(m.close)

			assert.Contains(t, m.View(), tt.want)
		})
	}
}

func TestToggleAndDeleteSelected(t *testing.T) {
	s := store.New()
	m := newTestModel(t, s)

	send(m, space)
	rec, _ := s.Get(0)
	assert.True(t, rec.IsDone)
	assert.Equal(t, 2, m.stats.Done)

	send(m, runes("x"))
	rec, _ = s.Get(0)
	assert.False(t, rec.IsDone)

	send(m, runes("d"))
	_, ok := s.Get(0)
	assert.False(t, ok)
	assert.Equal(t, []int{1, 2, 3, 4}, visibleIDs(m))
	assert.Equal(t, 4, m.stats.Total)
	assert.Equal(t, "deleted id_0", m.status)
}

func TestDeleteLastKeepsSelectionInRange(t *testing.T) {
	s := store.New()
	m := newTestModel(t, s)

	m.list.Select(4)
	send(m, runes("d"))
	assert.Equal(t, 3, m.list.Index())

	sel, ok := m.selected()
	require.True(t, ok)
	assert.Equal(t, 3, sel.ID)
}

func TestKeysOnEmptyList(t *testing.T) {
	s := store.New(store.WithSeed(nil))
	m := newTestModel(t, s)

	assert.NotPanics(t, func() { send(m, space, runes("d")) })
	assert.Zero(t, s.Len())
}

func TestSearchFiltersWithoutRecomputingStats(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})
	s := store.New(store.WithLogger(logger))
	m := newTestModel(t, s)
	recomputes := strings.Count(buf.String(), "stats recomputed")

	send(m, runes("/"), runes("JAVA"))
	assert.Equal(t, modeSearch, m.mode)
	assert.Equal(t, "JAVA", m.query)
	assert.Equal(t, []int{2, 3}, visibleIDs(m))
	assert.Equal(t, recomputes, strings.Count(buf.String(), "stats recomputed"))
	assert.Equal(t, 5, m.stats.Total, "header keeps whole-list stats")

	send(m, enter)
	assert.Equal(t, modeList, m.mode)
	assert.Equal(t, "JAVA", m.query, "enter keeps the filter")
	assert.Contains(t, m.View(), `search "JAVA"`)

	send(m, space)
	rec, _ := s.Get(2)
	assert.True(t, rec.IsDone, "toggle acts on the selected filtered row")

	send(m, esc)
	assert.Empty(t, m.query)
	assert.Len(t, visibleIDs(m), 5)
}

func TestSearchEscClears(t *testing.T) {
	m := newTestModel(t, store.New())
	send(m, runes("/"), runes("spring"))
	assert.Equal(t, []int{4}, visibleIDs(m))

	send(m, esc)
	assert.Equal(t, modeList, m.mode)
	assert.Empty(t, m.query)
	assert.Len(t, visibleIDs(m), 5)
}

func TestNewRecordHiddenByQuery(t *testing.T) {
	s := store.New()
	m := newTestModel(t, s)
	send(m, runes("/"), runes("react"), enter)

	s.Create("Buy milk")
	assert.Equal(t, []int{0}, visibleIDs(m))
	assert.Equal(t, 6, m.stats.Total)
}

func TestQuit(t *testing.T) {
	for _, msg := range []tea.KeyMsg{runes("q"), {Type: tea.KeyCtrlC}} {
		m := newTestModel(t, store.New())
		cmd := send(m, msg)
		require.NotNil(t, cmd)
		_, ok := cmd().(tea.QuitMsg)
		assert.True(t, ok, "%s", msg)
	}
}

func TestQInsideEditorIsText(t *testing.T) {
	m := newTestModel(t, store.New())
	send(m, runes("a"), runes("q"))
	assert.Equal(t, modeAdd, m.mode)
	assert.Equal(t, "q", m.editor.Value())
}

func TestCloseUnsubscribes(t *testing.T) {
	s := store.New()
	m := newModel(s, options{logger: log.New(io.Discard), theme: "mono"})
	m.close()

	s.Create("after close")
	assert.Equal(t, 5, m.stats.Total)
}

func TestWindowSize(t *testing.T) {
	m := newTestModel(t, store.New())
	send(m, tea.WindowSizeMsg{Width: 100, Height: 40})
	assert.Equal(t, 96, m.list.Width())
	assert.Equal(t, 34, m.list.Height())
}

func TestRunQuitsOnQ(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	s := store.New()
	err := Run(ctx, s, WithIO(strings.NewReader("q"), io.Discard), WithTheme("mono"))
	require.NoError(t, err)
}
