package engine

import "gapminder/internal/models"

const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

var (
	darkTheme = models.ThemeBundle{
		PlotStyle:      "plotly_dark",
		PageBackground: "#111827",
		CardBackground: "#1f2937",
		TextColor:      "#e5e7eb",
	}
	lightTheme = models.ThemeBundle{
		PlotStyle:      "plotly_white",
		PageBackground: "#e5ecf6",
		CardBackground: "#ffffff",
		TextColor:      "#111827",
	}
)

// ResolveTheme maps a theme selector to its bundle. Anything other than
// "dark" resolves to the light bundle.
func ResolveTheme(selector string) models.ThemeBundle {
	if selector == ThemeDark {
		return darkTheme
	}
	return lightTheme
}

// StylesFor builds the page and card style objects of a theme.
func StylesFor(t models.ThemeBundle) models.Styles {
	return models.Styles{
		Page: models.PageStyle{BackgroundColor: t.PageBackground, MinHeight: "100vh"},
		Card: models.CardStyle{BackgroundColor: t.CardBackground, Color: t.TextColor},
	}
}
