package tui

import (
	"strings"

	"github.com/s0up4200/swfilms/movies"
)

// crawlHeight is the number of lines reserved for the opening crawl panel.
const crawlHeight = 10

// View renders the model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Star Wars Films"))
	b.WriteString("\n")
	b.WriteString(m.renderButton())
	b.WriteString("\n")
	b.WriteString(m.styles.Section.Render(m.renderContent()))
	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m Model) renderButton() string {
	if m.state.IsLoading {
		return m.styles.ButtonBusy.Render("Fetch Movies")
	}
	return m.styles.Button.Render("Fetch Movies")
}

// renderContent draws whatever movies.Select picks for the current state.
func (m Model) renderContent() string {
	switch movies.Select(m.state) {
	case movies.VariantLoading:
		return m.spinner.View() + " " + movies.LoadingText
	case movies.VariantError:
		return m.styles.Error.Render(m.state.Err)
	case movies.VariantList:
		content := m.list.View()
		if m.showCrawl {
			content += "\n" + m.renderCrawl()
		}
		return content
	default:
		return m.styles.Placeholder.Render(movies.PlaceholderText)
	}
}

func (m Model) renderCrawl() string {
	movie, ok := m.selectedMovie()
	if !ok {
		return ""
	}

	lines := movies.OpeningLines(movie.OpeningText)
	if len(lines) > crawlHeight-1 {
		lines = append(lines[:crawlHeight-2], "…")
	}
	return m.styles.Crawl.Render(strings.Join(lines, "\n"))
}
