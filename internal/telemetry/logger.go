// Package telemetry wires structured logging and OpenTelemetry tracing.
package telemetry

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
)

type contextKey string

const loggerKey contextKey = "logger"

// ginLoggerKey is the gin.Context key the request logger is stored under.
const ginLoggerKey = "telemetry.logger"

// NewLogger builds the service logger. format is "json" or "text".
func NewLogger(w io.Writer, service, format, level string) *slog.Logger {
	if w == nil {
		w = os.Stdout
	}

	opts := &slog.HandlerOptions{
		Level: parseLevel(level),
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Value.Kind() == slog.KindAny {
				if r, ok := a.Value.Any().(*http.Request); ok {
					return slog.Group(a.Key,
						slog.String("method", r.Method),
						slog.String("path", r.URL.String()))
				}
			}
			return a
		},
	}

	var handler slog.Handler
	if strings.EqualFold(format, "text") {
		handler = slog.NewTextHandler(w, opts)
	} else {
		handler = slog.NewJSONHandler(w, opts)
	}

	return slog.New(handler).With(slog.String("service_name", service))
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// ContextWithLogger returns a copy of ctx carrying logger.
func ContextWithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// LoggerFromContext returns the logger stored on ctx, or slog.Default().
func LoggerFromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

// SetLogger attaches a request scoped logger to c.
func SetLogger(c *gin.Context, logger *slog.Logger) {
	c.Set(ginLoggerKey, logger)
	c.Request = c.Request.WithContext(ContextWithLogger(c.Request.Context(), logger))
}

// LoggerFrom returns the request logger set by the logging middleware.
func LoggerFrom(c *gin.Context) *slog.Logger {
	if v, ok := c.Get(ginLoggerKey); ok {
		if logger, ok := v.(*slog.Logger); ok {
			return logger
		}
	}
	return LoggerFromContext(c.Request.Context())
}
