package movies

// State is the fetch state of the component. Values are treated as
// immutable: transitions return a new State and never modify Movies in place.
type State struct {
	// Movies in API order. Replaced wholesale on a successful fetch.
	Movies []Movie
	// IsLoading is true only while a fetch is in flight.
	IsLoading bool
	// Err is the message of the most recent failed fetch, empty otherwise.
	Err string
}

// NewState returns the state a component starts with.
func NewState() State {
	return State{Movies: []Movie{}}
}

// HasError reports whether the most recent fetch failed.
func (s State) HasError() bool {
	return s.Err != ""
}

// Start marks a fetch as in flight and clears the previous error.
func (s State) Start() State {
	s.IsLoading = true
	s.Err = ""
	return s
}

// Settle records the outcome of a fetch. On failure the previous movies are
// kept and only the error message changes. An error with an empty message
// leaves Err empty, so no error view is selected.
func (s State) Settle(movies []Movie, err error) State {
	if err != nil {
		s.Err = err.Error()
	} else {
		if movies == nil {
			movies = []Movie{}
		}
		s.Movies = movies
	}
	s.IsLoading = false
	return s
}
