// Package filter narrows a fetched movie list with expr expressions, e.g.
//
//	Year >= 1999 and includes(Title, "clone")
//
// Filtering only reads a settled list; it never touches the fetch state.
package filter

import (
	"github.com/s0up4200/swfilms/movies"
)

// Filter checks whether a movie matches
type Filter interface {
	Evaluate(movie movies.Movie) (bool, error)
}

// Apply returns the movies matching f, in their original order. The first
// evaluation error aborts the whole pass.
func Apply(list []movies.Movie, f Filter) ([]movies.Movie, error) {
	matched := make([]movies.Movie, 0, len(list))
	for _, movie := range list {
		ok, err := f.Evaluate(movie)
		if err != nil {
			return nil, err
		}
		if ok {
			matched = append(matched, movie)
		}
	}
	return matched, nil
}
