package tui

import "github.com/charmbracelet/lipgloss"

// styles is the Lip Gloss palette for one theme.
type styles struct {
	title    lipgloss.Style
	success  lipgloss.Style
	pending  lipgloss.Style
	accent   lipgloss.Style
	muted    lipgloss.Style
	errorMsg lipgloss.Style
	selected lipgloss.Style
	done     lipgloss.Style
	help     lipgloss.Style
	border   lipgloss.Style

	boxChecked   string
	boxUnchecked string
}

func newStyles(theme string) styles {
	st := styles{
		title:    lipgloss.NewStyle().Bold(true),
		success:  lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		pending:  lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		accent:   lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		muted:    lipgloss.NewStyle().Faint(true),
		errorMsg: lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		selected: lipgloss.NewStyle().Bold(true).Reverse(true),
		done:     lipgloss.NewStyle().Faint(true).Strikethrough(true),
		help:     lipgloss.NewStyle().Faint(true),
		border: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("8")).
			Padding(0, 1),

		boxChecked:   "☑",
		boxUnchecked: "☐",
	}

	switch theme {
	case "neon":
		st.title = st.title.Foreground(lipgloss.Color("13"))
		st.accent = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
		st.pending = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
		st.border = st.border.BorderForeground(lipgloss.Color("13"))
		st.boxChecked, st.boxUnchecked = "◼", "◻"
	case "mono":
		plain := lipgloss.NewStyle()
		st.success, st.pending, st.accent, st.errorMsg = plain, plain, plain, plain.Bold(true)
		st.border = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(0, 1)
		st.boxChecked, st.boxUnchecked = "[x]", "[ ]"
	}
	return st
}
