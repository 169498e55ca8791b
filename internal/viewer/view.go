package viewer

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/riyasahamed27/book-quote-shorts/internal/domain"
)

var (
	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(1, 3).
			Width(64)

	quoteStyle = lipgloss.NewStyle().
			Italic(true).
			Foreground(lipgloss.Color("255"))

	attributionStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("245")).
				MarginTop(1)

	likesStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205"))

	likedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	dotActiveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("63"))

	dotStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("238"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// View implements tea.Model.
func (m Model) View() string {
	switch m.phase {
	case phaseLoading:
		return "\n  Loading quotes...\n"

	case phaseFailed:
		return fmt.Sprintf("\n  %s\n\n  %s\n",
			errorStyle.Render("Could not load quotes: "+m.loadErr.Error()),
			helpStyle.Render("r retry • q quit"),
		)
	}

	if len(m.batch) == 0 {
		return "\n  No quotes yet. Add some through the API.\n\n  " +
			helpStyle.Render("q quit") + "\n"
	}

	quote := m.batch[m.current]

	var b strings.Builder

	card := lipgloss.JoinVertical(lipgloss.Left,
		quoteStyle.Render("“"+quote.Text+"”"),
		attributionStyle.Render(fmt.Sprintf("— %s, %s", quote.Author, quote.BookTitle)),
	)
	b.WriteString(cardStyle.Render(card))
	b.WriteString("\n\n")

	b.WriteString(m.renderLikes(&quote))
	b.WriteString("   ")
	b.WriteString(m.renderDots())

	if m.autoplay {
		b.WriteString("   ")
		b.WriteString(statusStyle.Render("▶ auto"))
	}

	b.WriteString("\n")

	if m.status != "" {
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("j/k navigate • l like • s share • space auto-play • q quit"))
	b.WriteString("\n")

	return b.String()
}

// renderLikes shows the like counter, highlighted while locally liked.
func (m Model) renderLikes(q *domain.Quote) string {
	style := likesStyle
	heart := "♡"

	if m.liked[q.ID] {
		style = likedStyle
		heart = "♥"
	}

	return style.Render(fmt.Sprintf("%s %d", heart, m.displayLikes(q)))
}

// renderDots shows deck position as a dot per quote.
func (m Model) renderDots() string {
	dots := make([]string, 0, len(m.batch))

	for i := range m.batch {
		if i == m.current {
			dots = append(dots, dotActiveStyle.Render("●"))
		} else {
			dots = append(dots, dotStyle.Render("○"))
		}
	}

	return strings.Join(dots, " ")
}
