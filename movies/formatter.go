package movies

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// FormatOptions contains options for formatting output
type FormatOptions struct {
	ShowDetails bool
}

// ConsoleFormatter renders a State as plain console text
type ConsoleFormatter struct {
	title   *color.Color
	dim     *color.Color
	errText *color.Color
}

// NewConsoleFormatter creates a new console formatter
func NewConsoleFormatter(useColor bool) *ConsoleFormatter {
	f := &ConsoleFormatter{
		title:   color.New(color.FgYellow, color.Bold),
		dim:     color.New(color.Faint),
		errText: color.New(color.FgRed),
	}

	for _, c := range []*color.Color{f.title, f.dim, f.errText} {
		if useColor {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	return f
}

// Render formats whatever Select picks for the state
func (f *ConsoleFormatter) Render(s State, options FormatOptions) string {
	switch Select(s) {
	case VariantLoading:
		return LoadingText + "\n"
	case VariantError:
		return f.errText.Sprint(s.Err) + "\n"
	case VariantList:
		return f.FormatMovieList(s.Movies, options)
	default:
		return PlaceholderText + "\n"
	}
}

// FormatMovieList formats a list of movies for console display
func (f *ConsoleFormatter) FormatMovieList(movies []Movie, options FormatOptions) string {
	if len(movies) == 0 {
		return PlaceholderText + "\n"
	}

	var sb strings.Builder

	sb.WriteString("\nMovie")
	if len(movies) != 1 {
		sb.WriteString("s")
	}
	fmt.Fprintf(&sb, " (%d):\n\n", len(movies))

	for i, movie := range movies {
		isLast := i == len(movies)-1
		f.formatMovie(&sb, movie, isLast, options)

		if !isLast {
			sb.WriteString("│\n")
		}
	}

	sb.WriteString("\n")
	return sb.String()
}

// formatMovie formats a single movie entry
func (f *ConsoleFormatter) formatMovie(sb *strings.Builder, movie Movie, isLast bool, options FormatOptions) {
	prefix := "├"
	indent := "│   "
	if isLast {
		prefix = "╰"
		indent = "    "
	}

	fmt.Fprintf(sb, "%s── %s %s\n", prefix,
		f.title.Sprintf("Episode %d: %s", movie.ID, movie.Title),
		f.dim.Sprintf("(%s)", movie.ReleaseDate))

	if !options.ShowDetails || movie.OpeningText == "" {
		return
	}

	for _, line := range OpeningLines(movie.OpeningText) {
		if line == "" {
			sb.WriteString(strings.TrimRight(indent, " ") + "\n")
			continue
		}
		fmt.Fprintf(sb, "%s%s\n", indent, line)
	}
}

// OpeningLines splits an opening crawl into lines. SWAPI uses CRLF.
func OpeningLines(text string) []string {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	return lines
}
