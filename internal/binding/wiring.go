package binding

import (
	"context"

	"gapminder/internal/engine"
	"gapminder/internal/models"
)

// Output IDs.
const (
	PageStyle        = "page-root.style"
	SidebarStyle     = "sidebar-inner.style"
	CardTableStyle   = "card-table.style"
	CardPopStyle     = "card-pop.style"
	CardGDPStyle     = "card-gdp.style"
	CardLifeStyle    = "card-life.style"
	CardMapStyle     = "card-map.style"
	DatasetFigure    = "dataset.figure"
	PopulationFigure = "population.figure"
	GDPFigure        = "gdp.figure"
	LifeExpFigure    = "life_expectancy.figure"
	MapFigure        = "choropleth_map.figure"
)

var cardStyles = []string{SidebarStyle, CardTableStyle, CardPopStyle, CardGDPStyle, CardLifeStyle, CardMapStyle}

// Default wires the dashboard's three reactive groups.
func Default(d *engine.Dashboard) *Registry {
	r := NewRegistry()
	for _, g := range []Group{themeGroup(d), barsGroup(d), mapGroup(d)} {
		if err := r.Register(g); err != nil {
			panic(err)
		}
	}
	return r
}

func themeGroup(d *engine.Dashboard) Group {
	return Group{
		Name:    "theme",
		Inputs:  []string{ThemeToggle},
		Outputs: append([]string{PageStyle, DatasetFigure}, cardStyles...),
		Handler: func(_ context.Context, c Controls) (Outputs, error) {
			s := d.Styles(c.Theme)
			outs := Outputs{
				PageStyle:     s.Page,
				DatasetFigure: d.Table(c.Theme),
			}
			for _, id := range cardStyles {
				outs[id] = s.Card
			}
			return outs, nil
		},
	}
}

func barsGroup(d *engine.Dashboard) Group {
	return Group{
		Name:    "bars",
		Inputs:  []string{ContinentAll, YearAll, ThemeToggle, TopN, BarOrient},
		Outputs: []string{PopulationFigure, GDPFigure, LifeExpFigure},
		Handler: func(ctx context.Context, c Controls) (Outputs, error) {
			spec := models.FilterSpec{
				Continent:   c.Continent,
				Year:        c.Year,
				TopN:        c.TopN,
				Orientation: c.Orientation,
			}
			bars, err := d.Bars(ctx, spec, c.Theme)
			if err != nil {
				return nil, err
			}
			return Outputs{
				PopulationFigure: bars.Population,
				GDPFigure:        bars.GDP,
				LifeExpFigure:    bars.LifeExp,
			}, nil
		},
	}
}

func mapGroup(d *engine.Dashboard) Group {
	return Group{
		Name:    "map",
		Inputs:  []string{VarMap, YearMap, ThemeToggle},
		Outputs: []string{MapFigure},
		Handler: func(_ context.Context, c Controls) (Outputs, error) {
			fig, err := d.Map(c.Variable, c.MapYear, c.Theme)
			if err != nil {
				return nil, err
			}
			return Outputs{MapFigure: fig}, nil
		},
	}
}
