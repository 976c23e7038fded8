// Package movies holds the normalized movie record, the fetch state machine
// and the view selection rules that decide what the user sees.
package movies

import (
	"strconv"
	"strings"

	"github.com/s0up4200/swfilms/swapi"
)

// Movie is the normalized record used everywhere outside the swapi package.
type Movie struct {
	ID          int
	Title       string
	OpeningText string
	ReleaseDate string
}

// FromFilm converts a raw SWAPI film entry.
func FromFilm(film swapi.Film) Movie {
	return Movie{
		ID:          film.EpisodeID,
		Title:       film.Title,
		OpeningText: film.OpeningCrawl,
		ReleaseDate: film.ReleaseDate,
	}
}

// FromFilms converts films keeping the API order. The result is never nil.
func FromFilms(films []swapi.Film) []Movie {
	movies := make([]Movie, 0, len(films))
	for _, film := range films {
		movies = append(movies, FromFilm(film))
	}
	return movies
}

// Year returns the year part of ReleaseDate, or 0 when it cannot be parsed.
func (m Movie) Year() int {
	head, _, _ := strings.Cut(m.ReleaseDate, "-")
	year, err := strconv.Atoi(head)
	if err != nil {
		return 0
	}
	return year
}
