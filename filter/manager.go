package filter

import (
	"context"
	"fmt"
	"runtime"
	"slices"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/s0up4200/swfilms/movies"
)

// Manager holds named, pre-compiled filters (the config presets)
type Manager struct {
	filters     map[string]*ExprFilter
	concurrency int
	mu          sync.RWMutex
}

// ManagerOption configures a filter manager
type ManagerOption func(*Manager)

// WithConcurrency bounds how many filters EvaluateAll runs at once
func WithConcurrency(n int) ManagerOption {
	return func(m *Manager) {
		if n > 0 {
			m.concurrency = n
		}
	}
}

// NewManager creates a new filter manager
func NewManager(opts ...ManagerOption) *Manager {
	m := &Manager{
		filters:     make(map[string]*ExprFilter),
		concurrency: runtime.GOMAXPROCS(0),
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

// RegisterFilters compiles and registers all filters, or none if any fails
func (m *Manager) RegisterFilters(filters map[string]string) error {
	compiled := make(map[string]*ExprFilter, len(filters))

	for name, expression := range filters {
		f, err := Compile(expression)
		if err != nil {
			return fmt.Errorf("failed to compile filter '%s': %w", name, err)
		}
		compiled[name] = f
	}

	m.mu.Lock()
	for name, f := range compiled {
		m.filters[name] = f
	}
	m.mu.Unlock()

	return nil
}

// GetFilter returns a compiled filter by name
func (m *Manager) GetFilter(name string) (*ExprFilter, bool) {
	m.mu.RLock()
	f, exists := m.filters[name]
	m.mu.RUnlock()
	return f, exists
}

// ListFilters returns all registered filter names, sorted
func (m *Manager) ListFilters() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	names := make([]string, 0, len(m.filters))
	for name := range m.filters {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// EvaluateAll runs every registered filter against the list concurrently
func (m *Manager) EvaluateAll(ctx context.Context, list []movies.Movie) (map[string][]movies.Movie, error) {
	m.mu.RLock()
	filters := make(map[string]*ExprFilter, len(m.filters))
	for name, f := range m.filters {
		filters[name] = f
	}
	m.mu.RUnlock()

	results := make(map[string][]movies.Movie, len(filters))
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(m.concurrency)

	for name, f := range filters {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			matched, err := Apply(list, f)
			if err != nil {
				return fmt.Errorf("filter '%s': %w", name, err)
			}

			mu.Lock()
			results[name] = matched
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
