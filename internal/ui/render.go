package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/pulseboard/internal/board"
	"github.com/five82/pulseboard/internal/clock"
	loadbar "github.com/five82/pulseboard/internal/progress"
)

// renderMain renders the header, the widget grid, the message region and
// the key footer.
func (m Model) renderMain() string {
	v := m.board.Snapshot()
	theme := m.theme.WithAccent(v.Page.Accent)

	var b strings.Builder
	b.WriteString(m.renderHeader(theme, v))
	b.WriteString("\n")
	b.WriteString(m.renderGrid(theme, v))
	b.WriteString("\n")
	b.WriteString(m.safePanel("message", func() string { return m.renderMessage(theme, v) }))
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

// renderHeader renders the status bar.
func (m Model) renderHeader(theme Theme, v board.View) string {
	styles := theme.Styles()

	clockState := styles.WarningText.Render("clock paused")
	if v.ClockState == clock.Running {
		clockState = styles.SuccessText.Render("clock running")
	}

	parts := []string{
		styles.Logo.Render("pulseboard"),
		clockState,
		styles.MutedText.Render(fmt.Sprintf("tasks %d", v.LiveTasks)),
		styles.FaintText.Render(theme.Name),
	}
	return styles.Header.Width(m.width).Render(strings.Join(parts, "  "))
}

// renderGrid lays the four widgets out two by two, or stacked when narrow.
func (m Model) renderGrid(theme Theme, v board.View) string {
	compact := m.width > 0 && m.width < LayoutCompactWidth

	width := panelWidth(m.width, compact)
	counter := m.safePanel("counter", func() string { return m.renderCounter(theme, v, width) })
	clk := m.safePanel("clock", func() string { return m.renderClock(theme, v, width) })
	colors := m.safePanel("color", func() string { return m.renderPalette(theme, v, width) })
	bar := m.safePanel("progress", func() string { return m.renderProgress(theme, v, width) })

	if compact {
		return lipgloss.JoinVertical(lipgloss.Left, counter, clk, colors, bar)
	}
	top := lipgloss.JoinHorizontal(lipgloss.Top, counter, clk)
	bottom := lipgloss.JoinHorizontal(lipgloss.Top, colors, bar)
	return lipgloss.JoinVertical(lipgloss.Left, top, bottom)
}

func panelWidth(total int, compact bool) int {
	if total <= 0 {
		return minPanelWidth
	}
	w := total
	if !compact {
		w = total / 2
	}
	// Border takes two columns.
	w -= 2
	if w < minPanelWidth {
		w = minPanelWidth
	}
	return w
}

// panel frames body with a rounded border in the accent color.
func panel(theme Theme, title, body string, width int) string {
	styles := theme.Styles()
	heading := styles.AccentText.Bold(true).Render(title)
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Accent)).
		Padding(0, 1).
		Width(width).
		Render(heading + "\n" + body)
}

// buttons renders a row of key hints.
func buttons(theme Theme, pairs ...string) string {
	styles := theme.Styles()
	parts := make([]string, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		parts = append(parts, styles.Key.Render("["+pairs[i]+"]")+" "+styles.MutedText.Render(pairs[i+1]))
	}
	return strings.Join(parts, "  ")
}

func (m Model) renderCounter(theme Theme, v board.View, width int) string {
	style := lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.ToneColor(v.Tone))).
		Bold(true)
	if v.Bump {
		style = style.Underline(true)
	}
	body := style.Render(fmt.Sprintf("%d", v.Counter)) + "\n\n" +
		buttons(theme, "↑", "+1", "↓", "-1", "r", "reset", "n", "random")
	return panel(theme, "Counter", body, width)
}

func (m Model) renderClock(theme Theme, v board.View, width int) string {
	styles := theme.Styles()

	display := v.Clock
	if display == "" {
		display = "--:--:--"
	}
	status := styles.WarningText.Render("❚❚ paused")
	action := "start"
	if v.ClockState == clock.Running {
		status = styles.SuccessText.Render("● running")
		action = "pause"
	}
	body := styles.AccentText.Bold(true).Render(display) + "  " + status + "\n\n" +
		buttons(theme, "space", action)
	return panel(theme, "Clock", body, width)
}

func (m Model) renderPalette(theme Theme, v board.View, width int) string {
	styles := theme.Styles()

	var chips, marks []string
	for i, sw := range v.Swatches {
		chip := lipgloss.NewStyle().
			Background(lipgloss.Color(sw.Color)).
			Foreground(lipgloss.Color(theme.Background)).
			Render(fmt.Sprintf(" %d ", i+1))
		chips = append(chips, chip)

		mark := "   "
		switch {
		case i == v.Selected:
			mark = styles.AccentText.Render(" ▲ ")
		case i == v.Cursor:
			mark = styles.FaintText.Render(" · ")
		}
		marks = append(marks, mark)
	}

	selected := styles.MutedText.Render("Selected: none")
	if v.Selected >= 0 && v.Selected < len(v.Swatches) {
		sw := v.Swatches[v.Selected]
		selected = lipgloss.NewStyle().
			Border(lipgloss.ThickBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color(sw.Color)).
			PaddingLeft(1).
			Render(styles.Text.Render("Selected: ") +
				lipgloss.NewStyle().Foreground(lipgloss.Color(sw.Color)).Bold(true).Render(sw.Color))
	}

	body := strings.Join(chips, " ") + "\n" + strings.Join(marks, " ") + "\n" + selected
	return panel(theme, "Colors", body, width)
}

func (m Model) renderProgress(theme Theme, v board.View, width int) string {
	styles := theme.Styles()

	bar := m.bar
	bar.FullColor = theme.Accent
	bar.EmptyColor = theme.Border
	if w := width - 10; w > 0 && w < progressBarWidth {
		bar.Width = w
	}

	status := styles.MutedText.Render("idle")
	switch {
	case v.Loading:
		status = styles.InfoText.Render("loading")
	case v.Percent >= 100:
		status = styles.SuccessText.Render("complete")
	}

	body := bar.ViewAs(loadbar.Fraction(v.Progress)) + " " +
		styles.Text.Bold(true).Render(fmt.Sprintf("%3d%%", v.Percent)) + "  " + status + "\n\n" +
		buttons(theme, "s", "start", "x", "reset")
	return panel(theme, "Progress", body, width)
}

// renderMessage renders the shared message region. A pulsing message gets a
// heavier border.
func (m Model) renderMessage(theme Theme, v board.View) string {
	if !v.Page.HasMessage {
		return ""
	}

	color := lipgloss.Color(theme.KindColor(v.Page.Message.Kind))
	border := lipgloss.NormalBorder()
	if v.Page.Pulse {
		border = lipgloss.ThickBorder()
	}

	width := m.width - 2
	if width < minPanelWidth {
		width = minPanelWidth
	}
	return lipgloss.NewStyle().
		Border(border).
		BorderForeground(color).
		Foreground(color).
		Bold(v.Page.Pulse).
		Padding(0, 1).
		Width(width).
		Render(truncate(v.Page.Message.Text, width-2))
}

// safePanel renders one region. A panic inside render is contained to that
// region: it is logged and replaced with a placeholder so the rest of the
// screen and every timer keep running.
func (m Model) safePanel(name string, render func() string) (out string) {
	defer func() {
		if r := recover(); r != nil {
			m.logger.Printf("ui: %s panel render failed: %v", name, r)
			out = m.theme.Styles().DangerText.Render(fmt.Sprintf("[%s unavailable]", name))
		}
	}()
	return render()
}
