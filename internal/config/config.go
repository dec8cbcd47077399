package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

var (
	cfg  *Config
	once sync.Once
	mu   sync.RWMutex
)

// Config represents the application configuration
type Config struct {
	App     AppConfig     `mapstructure:"app"`
	Server  ServerConfig  `mapstructure:"server"`
	Sirius  SiriusConfig  `mapstructure:"sirius"`
	Cache   CacheConfig   `mapstructure:"cache"`
	Logging LoggingConfig `mapstructure:"logging"`
	Metrics MetricsConfig `mapstructure:"metrics"`
	Tracing TracingConfig `mapstructure:"tracing"`
	Mock    MockConfig    `mapstructure:"mock"`
}

type AppConfig struct {
	Name  string `mapstructure:"name"`
	Env   string `mapstructure:"env"`
	Debug bool   `mapstructure:"debug"`
}

type ServerConfig struct {
	Host              string        `mapstructure:"host"`
	Port              int           `mapstructure:"port"`
	Prefix            string        `mapstructure:"prefix"`
	WebDir            string        `mapstructure:"web_dir"`
	ReadHeaderTimeout time.Duration `mapstructure:"read_header_timeout"`
	ShutdownTimeout   time.Duration `mapstructure:"shutdown_timeout"`
	InsecureCookies   bool          `mapstructure:"insecure_cookies"`
}

type SiriusConfig struct {
	URL        string        `mapstructure:"url"`
	PublicURL  string        `mapstructure:"public_url"`
	Timeout    time.Duration `mapstructure:"timeout"`
	RetryCount int           `mapstructure:"retry_count"`
}

type CacheConfig struct {
	RefDataTTL time.Duration `mapstructure:"ref_data_ttl"`
	Local      struct {
		MaxSize         int           `mapstructure:"max_size"`
		CleanupInterval time.Duration `mapstructure:"cleanup_interval"`
	} `mapstructure:"local"`
	Redis struct {
		Enabled  bool   `mapstructure:"enabled"`
		Addr     string `mapstructure:"addr"`
		Password string `mapstructure:"password"`
		DB       int    `mapstructure:"db"`
		Prefix   string `mapstructure:"prefix"`
	} `mapstructure:"redis"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}

type TracingConfig struct {
	Enabled     bool   `mapstructure:"enabled"`
	Endpoint    string `mapstructure:"endpoint"`
	ServiceName string `mapstructure:"service_name"`
}

type MockConfig struct {
	Port        int    `mapstructure:"port"`
	MappingsDir string `mapstructure:"mappings_dir"`
}

// legacyEnv maps config keys onto the plain environment variables the
// deployment has always used.
var legacyEnv = map[string]string{
	"server.port":             "PORT",
	"server.prefix":           "PREFIX",
	"server.web_dir":          "WEB_DIR",
	"sirius.url":              "SIRIUS_URL",
	"sirius.public_url":       "SIRIUS_PUBLIC_URL",
	"tracing.enabled":         "TRACING_ENABLED",
	"server.insecure_cookies": "INSECURE_COOKIES",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "lpa-frontend")
	v.SetDefault("app.env", "development")
	v.SetDefault("app.debug", false)

	v.SetDefault("server.host", "")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.prefix", "")
	v.SetDefault("server.web_dir", "web")
	v.SetDefault("server.read_header_timeout", 20*time.Second)
	v.SetDefault("server.shutdown_timeout", 30*time.Second)
	v.SetDefault("server.insecure_cookies", false)

	v.SetDefault("sirius.url", "http://localhost:9001")
	v.SetDefault("sirius.public_url", "")
	v.SetDefault("sirius.timeout", 30*time.Second)
	v.SetDefault("sirius.retry_count", 0)

	v.SetDefault("cache.ref_data_ttl", time.Hour)
	v.SetDefault("cache.local.max_size", 256)
	v.SetDefault("cache.local.cleanup_interval", 5*time.Minute)
	v.SetDefault("cache.redis.enabled", false)
	v.SetDefault("cache.redis.addr", "localhost:6379")
	v.SetDefault("cache.redis.db", 0)
	v.SetDefault("cache.redis.prefix", "lpa-frontend:")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")

	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.path", "/metrics")

	v.SetDefault("tracing.enabled", false)
	v.SetDefault("tracing.endpoint", "")
	v.SetDefault("tracing.service_name", "lpa-frontend")

	v.SetDefault("mock.port", 8080)
	v.SetDefault("mock.mappings_dir", "")
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	setDefaults(v)

	// Environment variable overrides
	v.SetEnvPrefix("LPA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for key, env := range legacyEnv {
		_ = v.BindEnv(key, "LPA_"+strings.ToUpper(strings.NewReplacer(".", "_").Replace(key)), env)
	}

	return v
}

// Load initializes the configuration with hot reload support. A missing
// default.yaml is not an error; defaults and the environment still apply.
func Load(configPath string) error {
	var err error
	once.Do(func() {
		v := newViper()

		// Load default configuration
		v.SetConfigName("default")
		v.AddConfigPath(configPath)
		readErr := v.ReadInConfig()
		var notFound viper.ConfigFileNotFoundError
		if readErr != nil && !errors.As(readErr, &notFound) {
			err = fmt.Errorf("failed to read default config: %w", readErr)
			return
		}
		fileLoaded := readErr == nil

		// Load environment-specific config (optional)
		v.SetConfigName("config")
		if mergeErr := v.MergeInConfig(); mergeErr != nil {
			if !errors.As(mergeErr, &notFound) {
				err = fmt.Errorf("failed to merge config: %w", mergeErr)
				return
			}
		}

		loaded := &Config{}
		if err = v.Unmarshal(loaded); err != nil {
			err = fmt.Errorf("failed to unmarshal config: %w", err)
			return
		}

		mu.Lock()
		cfg = loaded
		mu.Unlock()

		if !fileLoaded {
			return
		}

		// Watch for config changes
		v.SetConfigName("default")
		v.WatchConfig()
		v.OnConfigChange(func(e fsnotify.Event) {
			slog.Info("config file changed", "file", e.Name)

			newCfg := &Config{}
			if err := v.Unmarshal(newCfg); err != nil {
				slog.Error("config reload failed", "file", e.Name, "error", err)
				return
			}

			mu.Lock()
			cfg = newCfg
			mu.Unlock()
			slog.Info("config reloaded", "file", e.Name)
		})
	})

	return err
}

// Get returns the current configuration (thread-safe). Before Load has been
// called it returns the defaults.
func Get() *Config {
	mu.RLock()
	current := cfg
	mu.RUnlock()

	if current == nil {
		return Default()
	}
	return current
}

// Default returns a configuration built only from defaults and environment.
func Default() *Config {
	v := newViper()
	c := &Config{}
	_ = v.Unmarshal(c)
	return c
}

// LoadFromFile loads configuration from a single file, without hot reload.
func LoadFromFile(configFile string) (*Config, error) {
	v := newViper()
	v.SetConfigFile(configFile)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	loaded := &Config{}
	if err := v.Unmarshal(loaded); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	mu.Lock()
	cfg = loaded
	mu.Unlock()

	return loaded, nil
}

// GetServerAddr returns the server listen address
func (c *ServerConfig) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// IsProduction returns true if running in production mode
func (c *AppConfig) IsProduction() bool {
	return c.Env == "production"
}
