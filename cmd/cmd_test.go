package cmd

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/s0up4200/swfilms/config"
	"github.com/s0up4200/swfilms/filter"
	"github.com/s0up4200/swfilms/movies"
	"github.com/s0up4200/swfilms/swapi"
)

const filmsBody = `{"count": 3, "results": [
	{"episode_id": 4, "title": "A New Hope", "opening_crawl": "It is a period of civil war.", "release_date": "1977-05-25"},
	{"episode_id": 5, "title": "The Empire Strikes Back", "opening_crawl": "It is a dark time for the Rebellion.", "release_date": "1980-05-17"},
	{"episode_id": 1, "title": "The Phantom Menace", "opening_crawl": "Turmoil has engulfed the Galactic Republic.", "release_date": "1999-05-19"}
]}`

func newTestClient(t *testing.T, status int, body string) *swapi.Client {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)

	client, err := swapi.NewClient(server.URL, zerolog.Nop())
	require.NoError(t, err)
	return client
}

func TestListMovies(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		expr     string
		opts     movies.FormatOptions
		wantErr  error
		contains []string
		excludes []string
	}{
		{
			name:     "all films",
			status:   http.StatusOK,
			body:     filmsBody,
			contains: []string{"Movies (3):", "Episode 4: A New Hope (1977-05-25)", "Episode 1: The Phantom Menace"},
			excludes: []string{"It is a period of civil war."},
		},
		{
			name:     "with details",
			status:   http.StatusOK,
			body:     filmsBody,
			opts:     movies.FormatOptions{ShowDetails: true},
			contains: []string{"It is a period of civil war."},
		},
		{
			name:     "filtered",
			status:   http.StatusOK,
			body:     filmsBody,
			expr:     `Year < 1990`,
			contains: []string{"Movies (2):", "A New Hope", "The Empire Strikes Back"},
			excludes: []string{"Phantom"},
		},
		{
			name:     "filter matches nothing",
			status:   http.StatusOK,
			body:     filmsBody,
			expr:     `Year > 2020`,
			contains: []string{"Found no movies."},
		},
		{
			name:     "empty results",
			status:   http.StatusOK,
			body:     `{"results": []}`,
			contains: []string{"Found no movies."},
		},
		{
			name:     "server error",
			status:   http.StatusInternalServerError,
			body:     "oops",
			wantErr:  errFetchFailed,
			contains: []string{"Something went wrong!!!"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, tt.status, tt.body)

			var out bytes.Buffer
			err := listMovies(context.Background(), &out, client, zerolog.Nop(), tt.expr, tt.opts, false)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}

			for _, s := range tt.contains {
				assert.Contains(t, out.String(), s)
			}
			for _, s := range tt.excludes {
				assert.NotContains(t, out.String(), s)
			}
		})
	}
}

func TestListMovies_InvalidFilter(t *testing.T) {
	client := newTestClient(t, http.StatusOK, filmsBody)

	var out bytes.Buffer
	err := listMovies(context.Background(), &out, client, zerolog.Nop(), `Year >`, movies.FormatOptions{}, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid filter expression")
	assert.Empty(t, out.String())
}

func TestResolveFilterExpression(t *testing.T) {
	filters := config.FilterConfig{Presets: map[string]string{"prequels": "Year >= 1999"}}

	expr, err := resolveFilterExpression(filters, "ID == 4", "prequels")
	require.NoError(t, err)
	assert.Equal(t, "ID == 4", expr)

	expr, err = resolveFilterExpression(filters, "", "prequels")
	require.NoError(t, err)
	assert.Equal(t, "Year >= 1999", expr)

	expr, err = resolveFilterExpression(filters, "", "")
	require.NoError(t, err)
	assert.Empty(t, expr)

	_, err = resolveFilterExpression(filters, "", "sequels")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "preset 'sequels' not found")
}

func TestEvaluatePresets(t *testing.T) {
	client := newTestClient(t, http.StatusOK, filmsBody)

	manager := filter.NewManager()
	require.NoError(t, manager.RegisterFilters(map[string]string{
		"originals": "Year < 1990",
		"menace":    `includes(Title, "menace")`,
	}))

	var out bytes.Buffer
	require.NoError(t, evaluatePresets(context.Background(), &out, client, zerolog.Nop(), manager))

	assert.Equal(t,
		"menace (1/3): includes(Title, \"menace\")\n"+
			"  The Phantom Menace\n"+
			"originals (2/3): Year < 1990\n"+
			"  A New Hope, The Empire Strikes Back\n",
		out.String())
}

func TestEvaluatePresets_FetchError(t *testing.T) {
	client := newTestClient(t, http.StatusNotFound, "")

	var out bytes.Buffer
	err := evaluatePresets(context.Background(), &out, client, zerolog.Nop(), filter.NewManager())
	assert.ErrorIs(t, err, errFetchFailed)
	assert.Equal(t, "Something went wrong!!!\n", out.String())
}

func TestCurrentVersion(t *testing.T) {
	v, err := currentVersion("v1.2.3")
	require.NoError(t, err)
	assert.Equal(t, "1.2.3", v.String())

	_, err = currentVersion("dev")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "development build")

	_, err = currentVersion("not-a-version")
	assert.Error(t, err)
}

func TestSetupLogger(t *testing.T) {
	prev := zerolog.GlobalLevel()
	t.Cleanup(func() { zerolog.SetGlobalLevel(prev) })

	var buf bytes.Buffer
	l := setupLogger(config.LoggingConfig{Level: "warn", Format: "json"}, &buf)

	l.Info().Msg("hidden")
	l.Warn().Msg("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"message":"shown"`)
	assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())
}
