package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/s0up4200/swfilms/movies"
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case fetchRequestedMsg:
		return m.trigger()

	case MoviesLoadedMsg:
		return m.settle(msg), nil

	case spinner.TickMsg:
		if !m.state.IsLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Fetch):
		return m.trigger()

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.resize()
		return m, nil

	case key.Matches(msg, m.keys.Details):
		if movies.Select(m.state) == movies.VariantList {
			m.showCrawl = !m.showCrawl
			m.resize()
		}
		return m, nil
	}

	if movies.Select(m.state) != movies.VariantList {
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// trigger starts a fetch. A fetch already in flight is not cancelled or
// waited for; whichever settles last wins.
func (m Model) trigger() (Model, tea.Cmd) {
	m.state = m.state.Start()
	m.fetches++
	m.logger.Debug().Int("fetch", m.fetches).Msg("Fetching movies")

	return m, tea.Batch(m.spinner.Tick, FetchMovies(m.source))
}

func (m Model) settle(msg MoviesLoadedMsg) Model {
	m.state = m.state.Settle(msg.Movies, msg.Err)

	if msg.Err != nil {
		m.logger.Warn().Err(msg.Err).Msg("Failed to fetch movies")
		return m
	}

	items := make([]list.Item, 0, len(m.state.Movies))
	for _, movie := range m.state.Movies {
		items = append(items, movieItem{movie: movie})
	}
	m.list.SetItems(items)
	m.list.ResetSelected()
	m.list.Title = fmt.Sprintf("Movies (%d)", len(items))

	m.logger.Info().Int("count", len(items)).Msg("Fetched movies")
	return m
}

func (m *Model) resize() {
	height := m.height - chromeHeight
	if m.help.ShowAll {
		height -= 2
	}
	if m.showCrawl {
		height -= crawlHeight
	}
	m.list.SetSize(m.width, max(height, 4))
	m.help.Width = m.width
}

func (m Model) selectedMovie() (movies.Movie, bool) {
	item, ok := m.list.SelectedItem().(movieItem)
	if !ok {
		return movies.Movie{}, false
	}
	return item.movie, true
}
