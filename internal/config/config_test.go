package config

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetSingleton() {
	mu.Lock()
	cfg = nil
	once = sync.Once{}
	mu.Unlock()
}

func TestDefault(t *testing.T) {
	c := Default()

	assert.Equal(t, "lpa-frontend", c.App.Name)
	assert.Equal(t, 8080, c.Server.Port)
	assert.Equal(t, "", c.Server.Prefix)
	assert.Equal(t, "web", c.Server.WebDir)
	assert.Equal(t, "http://localhost:9001", c.Sirius.URL)
	assert.Equal(t, time.Hour, c.Cache.RefDataTTL)
	assert.Equal(t, "/metrics", c.Metrics.Path)
	assert.False(t, c.Tracing.Enabled)
	assert.False(t, c.Cache.Redis.Enabled)
}

func TestEnvironmentOverrides(t *testing.T) {
	t.Run("legacy variables", func(t *testing.T) {
		t.Setenv("PORT", "8888")
		t.Setenv("SIRIUS_URL", "http://sirius.test")
		t.Setenv("SIRIUS_PUBLIC_URL", "http://public.sirius.test")
		t.Setenv("PREFIX", "/lpa-frontend")

		c := Default()
		assert.Equal(t, 8888, c.Server.Port)
		assert.Equal(t, "http://sirius.test", c.Sirius.URL)
		assert.Equal(t, "http://public.sirius.test", c.Sirius.PublicURL)
		assert.Equal(t, "/lpa-frontend", c.Server.Prefix)
	})

	t.Run("prefixed variables win", func(t *testing.T) {
		t.Setenv("PORT", "8888")
		t.Setenv("LPA_SERVER_PORT", "9999")

		c := Default()
		assert.Equal(t, 9999, c.Server.Port)
	})

	t.Run("nested keys", func(t *testing.T) {
		t.Setenv("LPA_LOGGING_LEVEL", "debug")
		t.Setenv("LPA_CACHE_REF_DATA_TTL", "10m")

		c := Default()
		assert.Equal(t, "debug", c.Logging.Level)
		assert.Equal(t, 10*time.Minute, c.Cache.RefDataTTL)
	})
}

func TestServerConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  ServerConfig
		want string
	}{
		{"all interfaces", ServerConfig{Port: 8080}, ":8080"},
		{"localhost", ServerConfig{Host: "localhost", Port: 8888}, "localhost:8888"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cfg.GetServerAddr())
		})
	}
}

func TestAppConfig(t *testing.T) {
	assert.True(t, (&AppConfig{Env: "production"}).IsProduction())
	assert.False(t, (&AppConfig{Env: "development"}).IsProduction())
}

func TestLoadFromFile(t *testing.T) {
	t.Run("Load valid YAML config file", func(t *testing.T) {
		tmpDir := t.TempDir()
		configFile := filepath.Join(tmpDir, "test-config.yaml")

		configContent := `
app:
  name: LPA Test
  env: test
  debug: true

server:
  host: localhost
  port: 8888
  prefix: /lpa-frontend

sirius:
  url: http://localhost:8080
  timeout: 5s
`
		require.NoError(t, os.WriteFile(configFile, []byte(configContent), 0644))
		resetSingleton()

		loaded, err := LoadFromFile(configFile)
		require.NoError(t, err)

		got := Get()
		assert.Same(t, loaded, got)
		assert.Equal(t, "LPA Test", got.App.Name)
		assert.True(t, got.App.Debug)
		assert.Equal(t, 8888, got.Server.Port)
		assert.Equal(t, "/lpa-frontend", got.Server.Prefix)
		assert.Equal(t, 5*time.Second, got.Sirius.Timeout)
		// untouched sections keep their defaults
		assert.Equal(t, time.Hour, got.Cache.RefDataTTL)
	})

	t.Run("Error on non-existent file", func(t *testing.T) {
		_, err := LoadFromFile("/non/existent/config.yaml")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read config file")
	})

	t.Run("Error on invalid YAML", func(t *testing.T) {
		configFile := filepath.Join(t.TempDir(), "invalid-config.yaml")
		require.NoError(t, os.WriteFile(configFile, []byte("app:\n  name: [this is invalid\n"), 0644))

		_, err := LoadFromFile(configFile)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read config file")
	})
}

func TestLoad(t *testing.T) {
	t.Run("missing directory falls back to defaults", func(t *testing.T) {
		resetSingleton()
		t.Cleanup(resetSingleton)

		require.NoError(t, Load(t.TempDir()))
		assert.Equal(t, 8080, Get().Server.Port)
	})

	t.Run("default and config are merged", func(t *testing.T) {
		resetSingleton()
		t.Cleanup(resetSingleton)

		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "default.yaml"), []byte("server:\n  port: 7000\n  prefix: /a\n"), 0644))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("server:\n  prefix: /b\n"), 0644))

		require.NoError(t, Load(dir))
		assert.Equal(t, 7000, Get().Server.Port)
		assert.Equal(t, "/b", Get().Server.Prefix)
	})
}

func TestValidator(t *testing.T) {
	valid := func() *Config {
		c := Default()
		c.Sirius.PublicURL = "http://localhost:8080"
		return c
	}

	t.Run("defaults pass", func(t *testing.T) {
		v := NewValidator(valid())
		require.NoError(t, v.Validate())
		assert.Empty(t, v.Warnings())
	})

	t.Run("relative sirius url", func(t *testing.T) {
		c := valid()
		c.Sirius.URL = "/api"
		err := NewValidator(c).Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not an absolute URL")
	})

	t.Run("prefix shape", func(t *testing.T) {
		c := valid()
		c.Server.Prefix = "lpa/"
		err := NewValidator(c).Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "must start with /")
		assert.Contains(t, err.Error(), "must not end with /")
	})

	t.Run("redis needs an address", func(t *testing.T) {
		c := valid()
		c.Cache.Redis.Enabled = true
		c.Cache.Redis.Addr = ""
		assert.Error(t, ValidateOnStartup(c, slog.New(slog.NewTextHandler(io.Discard, nil))))
	})

	t.Run("production warnings are logged", func(t *testing.T) {
		c := valid()
		c.App.Env = "production"
		c.Sirius.PublicURL = ""

		var buf bytes.Buffer
		require.NoError(t, ValidateOnStartup(c, slog.New(slog.NewTextHandler(&buf, nil))))
		assert.Contains(t, buf.String(), "sirius.url does not use https")
		assert.Contains(t, buf.String(), "sirius.public_url is empty")
	})

	t.Run("development warnings are quiet", func(t *testing.T) {
		c := valid()
		c.Sirius.PublicURL = ""

		var buf bytes.Buffer
		require.NoError(t, ValidateOnStartup(c, slog.New(slog.NewTextHandler(&buf, nil))))
		assert.Empty(t, buf.String())
	})

	t.Run("plain http in production warns", func(t *testing.T) {
		c := valid()
		c.App.Env = "production"
		v := NewValidator(c)
		require.NoError(t, v.Validate())
		assert.Contains(t, v.Warnings(), "- sirius.url does not use https")
	})
}

func TestConcurrentConfigAccess(t *testing.T) {
	mu.Lock()
	cfg = &Config{Server: ServerConfig{Host: "localhost", Port: 8080}}
	mu.Unlock()
	t.Cleanup(resetSingleton)

	var wg sync.WaitGroup

	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				c := Get()
				_ = c.App.IsProduction()
				_ = c.Server.GetServerAddr()
			}
		}()
	}

	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for j := 0; j < 10; j++ {
				mu.Lock()
				cfg = &Config{App: AppConfig{Name: fmt.Sprintf("App %d", id)}}
				mu.Unlock()
				time.Sleep(time.Millisecond)
			}
		}(i)
	}

	wg.Wait()
	assert.NotNil(t, Get())
}

func BenchmarkGetConfig(b *testing.B) {
	mu.Lock()
	cfg = &Config{App: AppConfig{Name: "Benchmark App"}}
	mu.Unlock()

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			_ = Get()
		}
	})
}
