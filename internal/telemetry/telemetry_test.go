package telemetry

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gotrs-io/lpa-frontend/internal/config"
)

func TestNewLogger(t *testing.T) {
	t.Run("json includes service and request group", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewLogger(&buf, "lpa-frontend", "json", "info")

		req := httptest.NewRequest(http.MethodGet, "/lpa/M-1234-1234-1234", nil)
		logger.Info("hello", "req", req)

		var line map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
		assert.Equal(t, "lpa-frontend", line["service_name"])
		assert.Equal(t, "hello", line["msg"])
		assert.Equal(t, map[string]any{"method": "GET", "path": "/lpa/M-1234-1234-1234"}, line["req"])
	})

	t.Run("level filters", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewLogger(&buf, "svc", "text", "warn")

		logger.Info("dropped")
		assert.Empty(t, buf.String())

		logger.Warn("kept")
		assert.Contains(t, buf.String(), "msg=kept")
	})
}

func TestLoggerFrom(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var buf bytes.Buffer
	logger := NewLogger(&buf, "svc", "json", "debug")

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	assert.NotNil(t, LoggerFrom(c))

	SetLogger(c, logger)
	assert.Same(t, logger, LoggerFrom(c))
	assert.Same(t, logger, LoggerFromContext(c.Request.Context()))
}

func TestSetupTracing(t *testing.T) {
	t.Run("noop when disabled", func(t *testing.T) {
		shutdown, err := SetupTracing(context.Background(), config.TracingConfig{Endpoint: "http://localhost:4318"})
		require.NoError(t, err)
		assert.NoError(t, shutdown(context.Background()))
	})

	t.Run("noop without endpoint", func(t *testing.T) {
		shutdown, err := SetupTracing(context.Background(), config.TracingConfig{Enabled: true})
		require.NoError(t, err)
		assert.NoError(t, shutdown(context.Background()))
	})

	t.Run("provider with endpoint", func(t *testing.T) {
		// non-routable address so nothing is exported
		shutdown, err := SetupTracing(context.Background(), config.TracingConfig{
			Enabled:     true,
			Endpoint:    "http://192.0.2.1:4318",
			ServiceName: "test-service",
		})
		require.NoError(t, err)
		assert.NoError(t, shutdown(context.Background()))
	})
}

func TestTransport(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	client := &http.Client{Transport: Transport(nil)}
	resp, err := client.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}

func TestHandler(t *testing.T) {
	h := Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	}), "lpa-frontend")

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/lpa/M-1", nil))
	assert.Equal(t, http.StatusAccepted, w.Code)
}
