package config

import (
	"fmt"
	"log/slog"
	"net/url"
	"strings"
)

// Validator checks a loaded configuration before the server starts.
type Validator struct {
	config   *Config
	errors   []string
	warnings []string
}

func NewValidator(cfg *Config) *Validator {
	return &Validator{
		config:   cfg,
		errors:   []string{},
		warnings: []string{},
	}
}

func (v *Validator) Validate() error {
	isProduction := v.config.App.IsProduction()

	v.validateSiriusURL(isProduction)
	v.validatePrefix()
	v.validateServer()
	v.validateCache()

	if len(v.errors) > 0 {
		return fmt.Errorf("config validation failed:\n%s", strings.Join(v.errors, "\n"))
	}

	return nil
}

// Warnings returns non-fatal findings from the last Validate call.
func (v *Validator) Warnings() []string {
	return v.warnings
}

func (v *Validator) validateSiriusURL(isProduction bool) {
	raw := v.config.Sirius.URL
	if raw == "" {
		v.errors = append(v.errors, "- sirius.url is not set")
		return
	}

	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" || u.Host == "" {
		v.errors = append(v.errors, fmt.Sprintf("- sirius.url %q is not an absolute URL", raw))
		return
	}

	if isProduction && u.Scheme != "https" {
		v.warnings = append(v.warnings, "- sirius.url does not use https")
	}

	if v.config.Sirius.PublicURL == "" {
		v.warnings = append(v.warnings, "- sirius.public_url is empty, links will use sirius.url")
	}
}

func (v *Validator) validatePrefix() {
	prefix := v.config.Server.Prefix
	if prefix == "" {
		return
	}

	if !strings.HasPrefix(prefix, "/") {
		v.errors = append(v.errors, fmt.Sprintf("- server.prefix %q must start with /", prefix))
	}
	if strings.HasSuffix(prefix, "/") {
		v.errors = append(v.errors, fmt.Sprintf("- server.prefix %q must not end with /", prefix))
	}
}

func (v *Validator) validateServer() {
	if v.config.Server.Port <= 0 || v.config.Server.Port > 65535 {
		v.errors = append(v.errors, fmt.Sprintf("- server.port %d is out of range", v.config.Server.Port))
	}
}

func (v *Validator) validateCache() {
	if v.config.Cache.RefDataTTL <= 0 {
		v.warnings = append(v.warnings, "- cache.ref_data_ttl is not positive, reference data will not be cached")
	}
	if v.config.Cache.Redis.Enabled && v.config.Cache.Redis.Addr == "" {
		v.errors = append(v.errors, "- cache.redis.addr is required when redis is enabled")
	}
}

// ValidateOnStartup validates cfg, returning every error found. Warnings are
// logged in production only.
func ValidateOnStartup(cfg *Config, logger *slog.Logger) error {
	validator := NewValidator(cfg)
	if err := validator.Validate(); err != nil {
		return err
	}

	if cfg.App.IsProduction() {
		for _, w := range validator.Warnings() {
			logger.Warn("config warning", "warning", strings.TrimPrefix(w, "- "))
		}
	}

	return nil
}
