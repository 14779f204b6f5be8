package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/goccy/go-json"
	"github.com/labstack/echo/v4"
	"github.com/valyala/bytebufferpool"
	"github.com/zeebo/xxh3"

	"gapminder/internal/engine"
)

// jsonSerializer plugs goccy/go-json into echo.
type jsonSerializer struct{}

func (jsonSerializer) Serialize(c echo.Context, i interface{}, indent string) error {
	enc := json.NewEncoder(c.Response())
	if indent != "" {
		enc.SetIndent("", indent)
	}
	return enc.Encode(i)
}

func (jsonSerializer) Deserialize(c echo.Context, i interface{}) error {
	if err := json.NewDecoder(c.Request().Body).Decode(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON body: "+err.Error()).SetInternal(err)
	}
	return nil
}

type errorBody struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

func errorBodyFor(err error) errorBody {
	var cfgErr *engine.ConfigurationError
	if errors.As(err, &cfgErr) {
		return errorBody{Error: cfgErr.Error(), Field: cfgErr.Field}
	}
	return errorBody{Error: err.Error()}
}

// respondError maps ConfigurationError to 400; anything else goes to echo's
// error handler as a 500.
func respondError(c echo.Context, err error) error {
	var cfgErr *engine.ConfigurationError
	if errors.As(err, &cfgErr) {
		return c.JSON(http.StatusBadRequest, errorBodyFor(err))
	}
	return err
}

// sendJSON writes v with an ETag derived from the encoded body. The views
// are pure functions of the request, so equal bodies mean equal views.
func sendJSON(c echo.Context, v any) error {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	if err := json.NewEncoder(buf).Encode(v); err != nil {
		return err
	}
	etag := fmt.Sprintf(`"%016x"`, xxh3.Hash(buf.B))
	c.Response().Header().Set("ETag", etag)
	if etagMatch(c.Request().Header.Get("If-None-Match"), etag) {
		return c.NoContent(http.StatusNotModified)
	}
	return c.Blob(http.StatusOK, echo.MIMEApplicationJSON, buf.B)
}

// etagMatch reports whether an If-None-Match list names etag. Weak
// validators compare equal to their strong form.
func etagMatch(header, etag string) bool {
	for _, tag := range strings.Split(header, ",") {
		tag = strings.TrimPrefix(strings.TrimSpace(tag), "W/")
		if tag == "*" || tag == etag {
			return true
		}
	}
	return false
}
