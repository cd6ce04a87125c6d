package ui

import (
	"fmt"

	"github.com/idilsaglam/tada/internal/model"
)

// DateLayout is how CreateDate is shown next to each record.
const DateLayout = "2006-01-02"

const maxContent = 80

// Header is the title line with done/pending/total counts.
func Header(st model.Stats) string {
	t := Current()
	return fmt.Sprintf("%s  %s %d  %s %d  %s %d",
		C(t.Title, "Todos"),
		C(t.Success, t.SymDone), st.Done,
		C(t.Pending, t.SymPending), st.NotDone,
		C(t.Accent, "Total"), st.Total,
	)
}

// StatsLines is the header followed by the progress bar.
func StatsLines(st model.Stats) []string {
	return []string{
		Header(st),
		C(Current().Muted, ProgressBar(st.Done, st.Total, 28)),
	}
}

// RecordLine renders one record as "☐ id_3. content  2026-10-19".
func RecordLine(r model.Record) string {
	t := Current()
	box, color := t.BoxUnchecked, t.Muted
	if r.IsDone {
		box, color = t.BoxChecked, t.Success
	}
	content := Truncate(r.Content, maxContent)
	return fmt.Sprintf("%s %s %s  %s",
		C(color, box),
		Dim(fmt.Sprintf("id_%d.", r.ID)),
		content,
		C(t.Muted, r.Created().Format(DateLayout)),
	)
}

// FlatLines renders records in the given order.
func FlatLines(items []model.Record) []string {
	if len(items) == 0 {
		return []string{C(Current().Muted, "no todos")}
	}
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, RecordLine(it))
	}
	return out
}

// GroupLines renders pending records first, then done ones, each keeping
// their relative order.
func GroupLines(items []model.Record) []string {
	var pend, done []model.Record
	for _, it := range items {
		if it.IsDone {
			done = append(done, it)
		} else {
			pend = append(pend, it)
		}
	}
	var lines []string
	lines = append(lines, C(Current().Accent, "Pending"))
	if len(pend) == 0 {
		lines = append(lines, C(Current().Muted, "(none)"))
	} else {
		lines = append(lines, FlatLines(pend)...)
	}
	lines = append(lines, "")
	lines = append(lines, C(Current().Accent, "Done"))
	if len(done) == 0 {
		lines = append(lines, C(Current().Muted, "(none)"))
	} else {
		lines = append(lines, FlatLines(done)...)
	}
	return lines
}

// Truncate shortens s to at most n runes, marking the cut with "...".
func Truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n || n < 4 {
		return s
	}
	return string(r[:n-3]) + "..."
}
