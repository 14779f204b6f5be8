package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	gommonlog "github.com/labstack/gommon/log"
	"golang.org/x/crypto/acme/autocert"
	"golang.org/x/net/http2"
	"golang.org/x/time/rate"

	"gapminder/internal/config"
	"gapminder/internal/engine"
)

const shutdownTimeout = 10 * time.Second

// NewServer builds the echo instance with middleware and routes.
func NewServer(cfg *config.Config, dash *engine.Dashboard) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.JSONSerializer = jsonSerializer{}
	e.Logger.SetLevel(echoLevel(cfg.LogLevel))

	e.Use(middleware.CORS())
	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			level := slog.LevelInfo
			if v.Error != nil || v.Status >= http.StatusInternalServerError {
				level = slog.LevelError
			}
			slog.LogAttrs(c.Request().Context(), level, "request",
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
			)
			return nil
		},
	}))
	if cfg.RateLimit > 0 {
		store := middleware.NewRateLimiterMemoryStore(rate.Limit(cfg.RateLimit))
		e.Use(middleware.RateLimiter(store))
	}

	h := NewHandler(dash, cfg.Defaults)
	h.RegisterRoutes(e)
	return e
}

func echoLevel(name string) gommonlog.Lvl {
	switch name {
	case "debug":
		return gommonlog.DEBUG
	case "warn":
		return gommonlog.WARN
	case "error":
		return gommonlog.ERROR
	default:
		return gommonlog.INFO
	}
}

// Serve runs e until ctx is cancelled, then shuts it down gracefully.
func Serve(ctx context.Context, e *echo.Echo, cfg *config.Config) error {
	errCh := make(chan error, 1)
	go func() {
		switch {
		case cfg.TLS.Enabled():
			e.AutoTLSManager.HostPolicy = autocert.HostWhitelist(cfg.TLS.AutocertHosts...)
			e.AutoTLSManager.Cache = autocert.DirCache(cfg.TLS.CacheDir)
			slog.Info("serving with automatic TLS", "addr", cfg.Addr, "hosts", cfg.TLS.AutocertHosts)
			errCh <- e.StartAutoTLS(cfg.Addr)
		case cfg.H2C:
			slog.Info("serving h2c", "addr", cfg.Addr)
			errCh <- e.StartH2CServer(cfg.Addr, &http2.Server{})
		default:
			slog.Info("serving http", "addr", cfg.Addr)
			errCh <- e.Start(cfg.Addr)
		}
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		slog.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return e.Shutdown(shutdownCtx)
	}
}
