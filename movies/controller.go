package movies

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/s0up4200/swfilms/swapi"
)

// FilmLister is the part of the SWAPI client the controller needs.
type FilmLister interface {
	ListFilms(ctx context.Context) ([]swapi.Film, error)
}

// ControllerOption configures a Controller
type ControllerOption func(*Controller)

// WithOnChange registers an observer called with a snapshot after every
// state transition. It runs on the goroutine that called Trigger.
func WithOnChange(fn func(State)) ControllerOption {
	return func(c *Controller) {
		c.onChange = fn
	}
}

// Controller owns a State and is its only writer.
//
// Trigger does not guard against overlapping calls: two triggers in flight
// race and the last one to settle wins. The mutex only keeps individual
// transitions atomic.
type Controller struct {
	source   FilmLister
	logger   zerolog.Logger
	onChange func(State)

	mu    sync.Mutex
	state State
}

// NewController creates a controller with an empty state
func NewController(source FilmLister, logger zerolog.Logger, opts ...ControllerOption) *Controller {
	c := &Controller{
		source: source,
		logger: logger,
		state:  NewState(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// State returns a snapshot of the current state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Trigger runs one fetch cycle: start, fetch, settle. Failures end up in the
// state's error message and are not returned.
func (c *Controller) Trigger(ctx context.Context) {
	c.apply(func(s State) State { return s.Start() })
	c.logger.Debug().Msg("Fetching movies")

	films, err := c.source.ListFilms(ctx)

	var movies []Movie
	if err == nil {
		movies = FromFilms(films)
		c.logger.Info().Int("count", len(movies)).Msg("Fetched movies")
	} else {
		c.logger.Warn().Err(err).Msg("Failed to fetch movies")
	}

	c.apply(func(s State) State { return s.Settle(movies, err) })
}

func (c *Controller) apply(transition func(State) State) {
	c.mu.Lock()
	c.state = transition(c.state)
	snapshot := c.state
	c.mu.Unlock()

	c.logger.Debug().
		Bool("loading", snapshot.IsLoading).
		Int("movies", len(snapshot.Movies)).
		Str("error", snapshot.Err).
		Msg("State changed")

	if c.onChange != nil {
		c.onChange(snapshot)
	}
}
