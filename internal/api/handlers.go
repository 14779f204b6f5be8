package api

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"gapminder/internal/binding"
	"gapminder/internal/engine"
	"gapminder/internal/models"
)

type Handler struct {
	dash     *engine.Dashboard
	registry *binding.Registry
	defaults models.Defaults
}

func NewHandler(dash *engine.Dashboard, defaults models.Defaults) *Handler {
	return &Handler{
		dash:     dash,
		registry: binding.Default(dash),
		defaults: defaults,
	}
}

func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.GET("/", h.GetPage)
	e.GET("/healthz", h.GetHealth)

	api := e.Group("/api")
	api.GET("/options", h.GetOptions)
	api.GET("/styles", h.GetStyles)
	api.GET("/table", h.GetTable)
	api.GET("/bars", h.GetBars)
	api.GET("/map", h.GetMap)
	api.GET("/records", h.GetRecords)
	api.POST("/callback", h.PostCallback)
}

// --- HANDLERS ---
func getPaginationParams(c echo.Context, defaultLimit int) (int, int) {
	limit, err := strconv.Atoi(c.QueryParam("limit"))
	if err != nil || limit <= 0 {
		limit = defaultLimit
	}
	offset, err := strconv.Atoi(c.QueryParam("offset"))
	if err != nil || offset < 0 {
		offset = 0
	}
	return limit, offset
}

// intParam reads an integer query parameter, falling back to def when it
// is absent.
func intParam(c echo.Context, name string, def int) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &engine.ConfigurationError{Field: name, Value: raw, Reason: "not an integer"}
	}
	return n, nil
}

func stringParam(c echo.Context, name, def string) string {
	if v := c.QueryParam(name); v != "" {
		return v
	}
	return def
}

func (h *Handler) theme(c echo.Context) string {
	return stringParam(c, "theme", h.defaults.Theme)
}

func (h *Handler) GetHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"status": "ok",
		"rows":   h.dash.Store().Len(),
	})
}

func (h *Handler) GetOptions(c echo.Context) error {
	return sendJSON(c, h.dash.Index().Options(h.defaults))
}

func (h *Handler) GetStyles(c echo.Context) error {
	return sendJSON(c, h.dash.Styles(h.theme(c)))
}

// full dataset as a table figure
func (h *Handler) GetTable(c echo.Context) error {
	return sendJSON(c, h.dash.Table(h.theme(c)))
}

// population, GDP and life expectancy bars for one filter
func (h *Handler) GetBars(c echo.Context) error {
	year, err := intParam(c, "year", h.defaults.Year)
	if err != nil {
		return respondError(c, err)
	}
	topN, err := intParam(c, "topn", h.defaults.TopN)
	if err != nil {
		return respondError(c, err)
	}
	spec := models.FilterSpec{
		Continent:   stringParam(c, "continent", h.defaults.Continent),
		Year:        year,
		TopN:        topN,
		Orientation: models.Orientation(stringParam(c, "orient", string(h.defaults.Orientation))),
	}

	bars, err := h.dash.Bars(c.Request().Context(), spec, h.theme(c))
	if err != nil {
		return respondError(c, err)
	}
	return sendJSON(c, bars)
}

func (h *Handler) GetMap(c echo.Context) error {
	year, err := intParam(c, "year", h.defaults.MapYear)
	if err != nil {
		return respondError(c, err)
	}
	fig, err := h.dash.Map(stringParam(c, "variable", h.defaults.Variable), year, h.theme(c))
	if err != nil {
		return respondError(c, err)
	}
	return sendJSON(c, fig)
}

// paginated raw rows
func (h *Handler) GetRecords(c echo.Context) error {
	limit, offset := getPaginationParams(c, h.dash.Store().Len())
	return sendJSON(c, h.dash.Records(limit, offset))
}

type callbackRequest struct {
	Changed  []string         `json:"changed"`
	Controls binding.Controls `json:"controls"`
}

type callbackResponse struct {
	Outputs binding.Outputs      `json:"outputs"`
	Errors  map[string]errorBody `json:"errors,omitempty"`
}

// PostCallback re-runs the groups affected by the changed controls. Controls
// missing from the body keep their default values.
func (h *Handler) PostCallback(c echo.Context) error {
	req := callbackRequest{Controls: binding.ControlsFrom(h.defaults)}
	if err := c.Bind(&req); err != nil {
		return err
	}

	res := h.registry.Dispatch(c.Request().Context(), req.Changed, req.Controls)
	resp := callbackResponse{Outputs: res.Outputs}
	if len(res.Errors) > 0 {
		resp.Errors = make(map[string]errorBody, len(res.Errors))
		for group, err := range res.Errors {
			resp.Errors[group] = errorBodyFor(err)
		}
	}
	return c.JSON(http.StatusOK, resp)
}
