package binding

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gapminder/internal/dataset"
	"gapminder/internal/engine"
	"gapminder/internal/models"
)

func newDashboard(t *testing.T) *engine.Dashboard {
	t.Helper()
	store, err := engine.LoadReader(dataset.Open())
	require.NoError(t, err)
	d, err := engine.NewDashboard(store)
	require.NoError(t, err)
	return d
}

func defaultControls() Controls {
	return Controls{
		Theme:       "light",
		Continent:   "Asia",
		Year:        1952,
		TopN:        15,
		Orientation: models.Vertical,
		Variable:    "Life Expectancy",
		MapYear:     1952,
	}
}

func constGroup(name string, inputs, outputs []string) Group {
	return Group{
		Name:    name,
		Inputs:  inputs,
		Outputs: outputs,
		Handler: func(context.Context, Controls) (Outputs, error) {
			outs := Outputs{}
			for _, o := range outputs {
				outs[o] = name
			}
			return outs, nil
		},
	}
}

func TestRegistry_Register(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(constGroup("a", []string{"x"}, []string{"out.a"})))

	err := r.Register(constGroup("a", []string{"y"}, []string{"out.b"}))
	assert.ErrorContains(t, err, "duplicate group")

	err = r.Register(constGroup("b", []string{"y"}, []string{"out.a"}))
	assert.ErrorContains(t, err, "already written")

	err = r.Register(constGroup("c", nil, []string{"out.c"}))
	assert.Error(t, err)

	err = r.Register(Group{Name: "d", Inputs: []string{"x"}, Outputs: []string{"out.d"}})
	assert.Error(t, err)

	assert.Len(t, r.Groups(), 1)
}

func TestRegistry_Triggered(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(constGroup("a", []string{"x", "shared"}, []string{"out.a"})))
	require.NoError(t, r.Register(constGroup("b", []string{"y", "shared"}, []string{"out.b"})))

	names := func(gs []Group) []string {
		var out []string
		for _, g := range gs {
			out = append(out, g.Name)
		}
		return out
	}
	assert.Equal(t, []string{"a"}, names(r.Triggered([]string{"x"})))
	assert.Equal(t, []string{"b"}, names(r.Triggered([]string{"y"})))
	assert.Equal(t, []string{"a", "b"}, names(r.Triggered([]string{"shared"})))
	assert.Equal(t, []string{"a", "b"}, names(r.Triggered(nil)))
	assert.Empty(t, r.Triggered([]string{"z"}))
}

func TestRegistry_DispatchIsolatesFailures(t *testing.T) {
	r := NewRegistry()
	var calls atomic.Int32
	require.NoError(t, r.Register(Group{
		Name: "bad", Inputs: []string{"x"}, Outputs: []string{"out.bad"},
		Handler: func(context.Context, Controls) (Outputs, error) {
			calls.Add(1)
			return nil, errors.New("boom")
		},
	}))
	require.NoError(t, r.Register(Group{
		Name: "panicky", Inputs: []string{"x"}, Outputs: []string{"out.panic"},
		Handler: func(context.Context, Controls) (Outputs, error) {
			calls.Add(1)
			panic("kaboom")
		},
	}))
	require.NoError(t, r.Register(constGroup("good", []string{"x"}, []string{"out.good"})))

	res := r.Dispatch(context.Background(), []string{"x"}, Controls{})
	assert.Equal(t, int32(2), calls.Load())
	assert.Equal(t, Outputs{"out.good": "good"}, res.Outputs)
	require.Len(t, res.Errors, 2)
	assert.EqualError(t, res.Errors["bad"], "boom")
	assert.True(t, strings.Contains(res.Errors["panicky"].Error(), "kaboom"))
}

func TestRegistry_DispatchDropsUndeclaredOutputs(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(Group{
		Name: "g", Inputs: []string{"x"}, Outputs: []string{"out.a"},
		Handler: func(context.Context, Controls) (Outputs, error) {
			return Outputs{"out.a": 1, "out.other": 2}, nil
		},
	}))

	res := r.Dispatch(context.Background(), nil, Controls{})
	assert.Equal(t, Outputs{"out.a": 1}, res.Outputs)
}

func TestDefault_InitialLoad(t *testing.T) {
	r := Default(newDashboard(t))

	res := r.Dispatch(context.Background(), nil, defaultControls())
	require.Empty(t, res.Errors)
	assert.Len(t, res.Outputs, 12)

	pop := res.Outputs[PopulationFigure].(*models.Figure)
	assert.Len(t, pop.Data, 15)
	for _, tr := range pop.Data {
		assert.Equal(t, "v", tr.Orientation)
	}
	assert.Equal(t, models.CardStyle{BackgroundColor: "#ffffff", Color: "#111827"}, res.Outputs[CardMapStyle])
}

func TestDefault_ThemeChangeTouchesEveryGroup(t *testing.T) {
	r := Default(newDashboard(t))
	c := defaultControls()
	c.Theme = "dark"

	res := r.Dispatch(context.Background(), []string{ThemeToggle}, c)
	require.Empty(t, res.Errors)
	assert.Contains(t, res.Outputs, PageStyle)
	assert.Contains(t, res.Outputs, DatasetFigure)
	assert.Contains(t, res.Outputs, PopulationFigure)
	assert.Contains(t, res.Outputs, MapFigure)
	assert.Equal(t, "plotly_dark", res.Outputs[MapFigure].(*models.Figure).Layout.Template)
}

func TestDefault_MapChangeOnlyRunsMap(t *testing.T) {
	r := Default(newDashboard(t))
	c := defaultControls()
	c.Variable = "GDP per Capita"

	res := r.Dispatch(context.Background(), []string{VarMap}, c)
	require.Empty(t, res.Errors)
	assert.Len(t, res.Outputs, 1)
	fig := res.Outputs[MapFigure].(*models.Figure)
	assert.Equal(t, "GDP per Capita Choropleth Map [1952]", fig.Layout.Title.Text)
}

func TestDefault_InvalidBarsDoNotBlockMap(t *testing.T) {
	r := Default(newDashboard(t))
	c := defaultControls()
	c.Year = 1951

	res := r.Dispatch(context.Background(), []string{ThemeToggle}, c)

	var cfgErr *engine.ConfigurationError
	require.True(t, errors.As(res.Errors["bars"], &cfgErr))
	assert.Equal(t, "year", cfgErr.Field)
	assert.NotContains(t, res.Outputs, PopulationFigure)
	assert.Contains(t, res.Outputs, MapFigure)
	assert.Contains(t, res.Outputs, DatasetFigure)
}

func TestControlsFrom(t *testing.T) {
	c := ControlsFrom(models.Defaults{
		Continent: "Europe", Year: 2007, TopN: 10, Orientation: models.Horizontal,
		Variable: "Population", MapYear: 1952, Theme: "dark",
	})
	assert.Equal(t, "Europe", c.Continent)
	assert.Equal(t, models.Horizontal, c.Orientation)
	assert.Equal(t, 1952, c.MapYear)
	assert.Equal(t, "dark", c.Theme)
}

func TestRegistry_DispatchRunsGroupsConcurrently(t *testing.T) {
	ready := make(chan struct{})
	var started atomic.Int32
	rendezvous := func(name string) Group {
		return Group{
			Name:    name,
			Inputs:  []string{"x"},
			Outputs: []string{name + ".out"},
			Handler: func(ctx context.Context, _ Controls) (Outputs, error) {
				if started.Add(1) == 2 {
					close(ready)
				}
				select {
				case <-ready:
					return Outputs{name + ".out": name}, nil
				case <-ctx.Done():
					return nil, ctx.Err()
				}
			},
		}
	}

	r := NewRegistry()
	require.NoError(t, r.Register(rendezvous("a")))
	require.NoError(t, r.Register(rendezvous("b")))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	res := r.Dispatch(ctx, []string{"x"}, defaultControls())
	assert.Empty(t, res.Errors)
	assert.Equal(t, Outputs{"a.out": "a", "b.out": "b"}, res.Outputs)
}
