package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/shinji-kodama/drills/internal/model"
)

// ErrUnknownExercise is returned by Lookup for a name that is not registered.
var ErrUnknownExercise = errors.New("unknown exercise")

// Exercise is one registered, invocable exercise.
type Exercise struct {
	// Name is the unique "<category>.<kebab-name>" identifier.
	Name string `json:"name"`

	// Category is derived from the name prefix.
	Category model.Category `json:"category"`

	// Summary is a one-line description for listings.
	Summary string `json:"summary"`

	// Params names the positional arguments, in order.
	Params []string `json:"params"`

	invoker Invoker
}

// Invoke decodes args and calls the exercise.
func (e *Exercise) Invoke(args []json.RawMessage) (any, error) {
	return e.invoker.Call(args)
}

// Registry maps exercise names to exercises.
type Registry struct {
	byName map[string]*Exercise
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]*Exercise)}
}

// Register adds an exercise. It panics on an invalid or duplicate name, or
// when the parameter list does not match the invoker's arity: all three are
// programming errors in the registration table, not runtime conditions.
func (r *Registry) Register(name, summary string, params []string, inv Invoker) {
	if err := model.ValidateExerciseName(name); err != nil {
		panic(fmt.Sprintf("catalog: %v", err))
	}
	if _, dup := r.byName[name]; dup {
		panic(fmt.Sprintf("catalog: exercise %q registered twice", name))
	}
	if len(params) != inv.Arity() {
		panic(fmt.Sprintf("catalog: exercise %q lists %d params but takes %d", name, len(params), inv.Arity()))
	}
	r.byName[name] = &Exercise{
		Name:     name,
		Category: model.CategoryOf(name),
		Summary:  summary,
		Params:   params,
		invoker:  inv,
	}
}

// Lookup returns the exercise registered under name.
func (r *Registry) Lookup(name string) (*Exercise, error) {
	ex, ok := r.byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownExercise, name)
	}
	return ex, nil
}

// List returns the exercises in category, sorted by name.
// An empty category lists everything.
func (r *Registry) List(category model.Category) []*Exercise {
	out := make([]*Exercise, 0, len(r.byName))
	for _, ex := range r.byName {
		if category == "" || ex.Category == category {
			out = append(out, ex)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Name < out[j].Name
	})
	return out
}

// Len returns the number of registered exercises.
func (r *Registry) Len() int {
	return len(r.byName)
}
