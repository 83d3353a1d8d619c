// Package filter compiles expr-lang expressions into movie predicates.
//
// Expressions refine the structured year/genre criteria for power users of
// the list command, e.g.:
//
//	Year > 2000 and hasGenre("Drama")
//	contains(Title, "night") or Rating == "PG"
package filter

import (
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/reelgrid/reelgrid/catalog"
)

// Filter is a compiled movie filter expression
type Filter struct {
	expression string
	program    *vm.Program
}

// Compile compiles an expression into an executable filter
func Compile(expression string) (*Filter, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "empty expression",
		}
	}

	// Compile against the static helper environment for validation;
	// movie properties resolve at run time.
	program, err := expr.Compile(expression,
		expr.Env(helperFunctions()),
		expr.AllowUndefinedVariables(),
		expr.AsBool(),
	)
	if err != nil {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "failed to compile expression",
			Err:        err,
		}
	}

	return &Filter{
		expression: expression,
		program:    program,
	}, nil
}

// Matches evaluates the filter against a movie. Movies whose evaluation
// errors are skipped rather than shown.
func (f *Filter) Matches(m catalog.Movie) bool {
	result, err := expr.Run(f.program, runtimeEnvironment(m))
	if err != nil {
		return false
	}

	// AsBool() at compile time guarantees a bool result
	return result.(bool)
}

// Apply returns the movies matching the filter, preserving input order
func (f *Filter) Apply(movies []catalog.Movie) []catalog.Movie {
	out := make([]catalog.Movie, 0, len(movies))
	for _, m := range movies {
		if f.Matches(m) {
			out = append(out, m)
		}
	}
	return out
}

// Expression returns the original expression
func (f *Filter) Expression() string {
	return f.expression
}

// helperFunctions builds the static helpers available in expressions
func helperFunctions() map[string]any {
	env := make(map[string]any, 8)
	env["contains"] = func(str, substr string) bool {
		return strings.Contains(strings.ToLower(str), strings.ToLower(substr))
	}
	env["startsWith"] = func(str, prefix string) bool {
		return strings.HasPrefix(strings.ToLower(str), strings.ToLower(prefix))
	}
	env["endsWith"] = func(str, suffix string) bool {
		return strings.HasSuffix(strings.ToLower(str), strings.ToLower(suffix))
	}
	env["lower"] = strings.ToLower
	env["upper"] = strings.ToUpper
	return env
}

// runtimeEnvironment builds the evaluation environment for one movie
func runtimeEnvironment(m catalog.Movie) map[string]any {
	env := helperFunctions()

	env["Movie"] = m
	env["ID"] = m.ID
	env["Title"] = m.Title
	env["Genres"] = m.Genres
	env["Year"] = m.Year
	env["Description"] = m.Description
	env["Runtime"] = m.Runtime
	env["Rating"] = m.Rating

	// Case-insensitive genre membership
	env["hasGenre"] = func(genre string) bool {
		for _, g := range m.Genres {
			if strings.EqualFold(g, genre) {
				return true
			}
		}
		return false
	}

	return env
}
