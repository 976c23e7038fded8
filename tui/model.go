// Package tui provides the interactive terminal view of the film list.
package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/s0up4200/swfilms/movies"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
	// lines taken by the title, button, margins and help
	chromeHeight = 9
)

// movieItem adapts a movie to the bubbles list.
type movieItem struct {
	movie movies.Movie
}

func (i movieItem) Title() string {
	return fmt.Sprintf("Episode %d: %s", i.movie.ID, i.movie.Title)
}

func (i movieItem) Description() string { return "Released " + i.movie.ReleaseDate }
func (i movieItem) FilterValue() string { return i.movie.Title }

// Model is the bubbletea model of the film list component. It owns a
// movies.State and is its only writer.
type Model struct {
	source movies.FilmLister
	logger zerolog.Logger

	state movies.State

	// autoFetch makes Init request one fetch when the program starts
	autoFetch bool
	altScreen bool
	showCrawl bool
	quitting  bool

	// fetches counts triggers, including overlapping ones
	fetches int

	list    list.Model
	spinner spinner.Model
	help    help.Model
	keys    keyMap
	styles  Styles

	width  int
	height int
}

// ModelOption configures optional model behavior.
type ModelOption func(*Model)

// WithAutoFetch fetches once on startup in addition to the fetch key.
func WithAutoFetch(enabled bool) ModelOption {
	return func(m *Model) {
		m.autoFetch = enabled
	}
}

// WithAltScreen runs the program in the terminal's alternate screen.
func WithAltScreen(enabled bool) ModelOption {
	return func(m *Model) {
		m.altScreen = enabled
	}
}

// WithStyles replaces the default styles.
func WithStyles(styles Styles) ModelOption {
	return func(m *Model) {
		m.styles = styles
	}
}

// New creates a new TUI model with an empty state.
func New(source movies.FilmLister, logger zerolog.Logger, opts ...ModelOption) Model {
	m := Model{
		source:    source,
		logger:    logger,
		state:     movies.NewState(),
		altScreen: true,
		keys:      newKeyMap(),
		help:      help.New(),
		styles:    DefaultStyles(),
		width:     defaultWidth,
		height:    defaultHeight,
	}

	for _, opt := range opts {
		opt(&m)
	}

	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.
		Foreground(colorAccent).
		BorderForeground(colorAccent)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedTitle.Bold(false)

	l := list.New(nil, delegate, defaultWidth, defaultHeight-chromeHeight)
	l.Title = "Movies"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.DisableQuitKeybindings()
	l.Styles.Title = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	m.list = l

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = m.styles.Spinner
	m.spinner = s

	return m
}

// Init requests the mount-time fetch when auto fetch is enabled. bubbletea
// calls Init exactly once per program, so re-renders never fetch again.
func (m Model) Init() tea.Cmd {
	if m.autoFetch {
		return requestFetch
	}
	return nil
}

// State returns the current fetch state.
func (m Model) State() movies.State {
	return m.state
}

// Run starts the TUI and blocks until the user quits.
func Run(source movies.FilmLister, logger zerolog.Logger, opts ...ModelOption) error {
	m := New(source, logger, opts...)

	var programOpts []tea.ProgramOption
	if m.altScreen {
		programOpts = append(programOpts, tea.WithAltScreen())
	}

	_, err := tea.NewProgram(m, programOpts...).Run()
	return err
}
