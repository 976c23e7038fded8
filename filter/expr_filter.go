package filter

import (
	"errors"
	"fmt"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/s0up4200/swfilms/movies"
)

// ErrEmptyExpression is returned when compiling a blank expression.
var ErrEmptyExpression = errors.New("empty expression")

// ExprFilter represents a compiled expr filter
type ExprFilter struct {
	program *vm.Program
	expr    string
}

// newEnv builds the evaluation environment for one movie. The same shape is
// used at compile time so expressions are type-checked.
func newEnv(movie movies.Movie) map[string]any {
	return map[string]any{
		// Movie data
		"Movie":       movie,
		"ID":          movie.ID,
		"Title":       movie.Title,
		"OpeningText": movie.OpeningText,
		"ReleaseDate": movie.ReleaseDate,
		"Year":        movie.Year(),

		// String helpers, case-insensitive. contains, startsWith and endsWith
		// are expr operators and cannot be used as function names.
		"includes": func(str, substr string) bool {
			return strings.Contains(strings.ToLower(str), strings.ToLower(substr))
		},
		"begins": func(str, prefix string) bool {
			return strings.HasPrefix(strings.ToLower(str), strings.ToLower(prefix))
		},
		"ends": func(str, suffix string) bool {
			return strings.HasSuffix(strings.ToLower(str), strings.ToLower(suffix))
		},
		"lower": strings.ToLower,
		"upper": strings.ToUpper,

		// Date helpers
		"year": func(date string) int {
			return movies.Movie{ReleaseDate: date}.Year()
		},
	}
}

// Compile compiles an expr filter expression
func Compile(expression string) (*ExprFilter, error) {
	if strings.TrimSpace(expression) == "" {
		return nil, &CompilationError{Expression: expression, Err: ErrEmptyExpression}
	}

	program, err := expr.Compile(expression,
		expr.Env(newEnv(movies.Movie{})),
		expr.AsBool(),
	)
	if err != nil {
		return nil, &CompilationError{Expression: expression, Err: err}
	}

	return &ExprFilter{
		program: program,
		expr:    expression,
	}, nil
}

// Expression returns the original filter expression
func (f *ExprFilter) Expression() string {
	return f.expr
}

// Evaluate checks if a movie matches the filter
func (f *ExprFilter) Evaluate(movie movies.Movie) (bool, error) {
	result, err := expr.Run(f.program, newEnv(movie))
	if err != nil {
		return false, &EvaluationError{Expression: f.expr, MovieTitle: movie.Title, Err: err}
	}

	match, ok := result.(bool)
	if !ok {
		return false, &EvaluationError{
			Expression: f.expr,
			MovieTitle: movie.Title,
			Err:        fmt.Errorf("expression returned %T, not bool", result),
		}
	}
	return match, nil
}
