// Package binding maps control changes to the view builders that depend on
// them. A Registry holds groups, each declaring the control IDs it reads and
// the output IDs it writes; Dispatch re-runs every group touched by a change.
package binding

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"gapminder/internal/models"
)

// Control IDs.
const (
	ThemeToggle  = "theme-toggle"
	ContinentAll = "cont_all"
	YearAll      = "year_all"
	TopN         = "topn"
	BarOrient    = "bar-orient"
	VarMap       = "var_map"
	YearMap      = "year_map"
)

// Controls is a snapshot of every control value.
type Controls struct {
	Theme       string             `json:"theme-toggle"`
	Continent   string             `json:"cont_all"`
	Year        int                `json:"year_all"`
	TopN        int                `json:"topn"`
	Orientation models.Orientation `json:"bar-orient"`
	Variable    string             `json:"var_map"`
	MapYear     int                `json:"year_map"`
}

// ControlsFrom seeds a snapshot from the page defaults.
func ControlsFrom(d models.Defaults) Controls {
	return Controls{
		Theme:       d.Theme,
		Continent:   d.Continent,
		Year:        d.Year,
		TopN:        d.TopN,
		Orientation: d.Orientation,
		Variable:    d.Variable,
		MapYear:     d.MapYear,
	}
}

// Outputs maps output IDs ("element.property") to their new values.
type Outputs map[string]any

type Handler func(ctx context.Context, c Controls) (Outputs, error)

type Group struct {
	Name    string
	Inputs  []string
	Outputs []string
	Handler Handler
}

func (g Group) triggeredBy(changed []string) bool {
	if len(changed) == 0 {
		return true
	}
	for _, id := range changed {
		if slices.Contains(g.Inputs, id) {
			return true
		}
	}
	return false
}

// Result collects the outputs of every group that ran. Errors is keyed by
// group name; a failed group contributes no outputs.
type Result struct {
	Outputs Outputs
	Errors  map[string]error
}

type Registry struct {
	groups []Group
	owner  map[string]string
}

func NewRegistry() *Registry {
	return &Registry{owner: make(map[string]string)}
}

// Register adds g. Group names are unique and each output has one owner.
func (r *Registry) Register(g Group) error {
	if g.Name == "" || g.Handler == nil {
		return fmt.Errorf("binding: group needs a name and a handler")
	}
	if len(g.Inputs) == 0 || len(g.Outputs) == 0 {
		return fmt.Errorf("binding: group %q declares no inputs or outputs", g.Name)
	}
	for _, existing := range r.groups {
		if existing.Name == g.Name {
			return fmt.Errorf("binding: duplicate group %q", g.Name)
		}
	}
	for _, out := range g.Outputs {
		if owner, ok := r.owner[out]; ok {
			return fmt.Errorf("binding: output %q already written by group %q", out, owner)
		}
	}
	for _, out := range g.Outputs {
		r.owner[out] = g.Name
	}
	r.groups = append(r.groups, g)
	return nil
}

func (r *Registry) Groups() []Group {
	return slices.Clone(r.groups)
}

// Triggered returns the groups reading any of changed, or all groups when
// changed is empty.
func (r *Registry) Triggered(changed []string) []Group {
	var out []Group
	for _, g := range r.groups {
		if g.triggeredBy(changed) {
			out = append(out, g)
		}
	}
	return out
}

// Dispatch runs the triggered groups concurrently against one controls
// snapshot. A failing group never cancels or hides another group's result.
func (r *Registry) Dispatch(ctx context.Context, changed []string, controls Controls) *Result {
	res := &Result{Outputs: Outputs{}, Errors: map[string]error{}}
	var mu sync.Mutex

	var wg sync.WaitGroup
	for _, grp := range r.Triggered(changed) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			outs, err := run(ctx, grp, controls)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				res.Errors[grp.Name] = err
				return
			}
			for _, id := range grp.Outputs {
				if v, ok := outs[id]; ok {
					res.Outputs[id] = v
				}
			}
		}()
	}
	wg.Wait()
	return res
}

func run(ctx context.Context, g Group, c Controls) (outs Outputs, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("binding: group %q panicked: %v", g.Name, p)
		}
	}()
	return g.Handler(ctx, c)
}
