package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/s0up4200/swfilms/movies"
)

// fetchRequestedMsg asks the model to start a fetch. Both the fetch key and
// the mount-time auto fetch go through it.
type fetchRequestedMsg struct{}

// MoviesLoadedMsg is sent when a fetch settles.
type MoviesLoadedMsg struct {
	Movies []movies.Movie
	Err    error
}

func requestFetch() tea.Msg {
	return fetchRequestedMsg{}
}

// FetchMovies runs one fetch against source. There is no cancellation: the
// request runs to completion even if the program has already quit.
func FetchMovies(source movies.FilmLister) tea.Cmd {
	return func() tea.Msg {
		films, err := source.ListFilms(context.Background())
		if err != nil {
			return MoviesLoadedMsg{Err: err}
		}
		return MoviesLoadedMsg{Movies: movies.FromFilms(films)}
	}
}
