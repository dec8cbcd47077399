// Package template renders the server-side pages with pongo2.
package template

import (
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/flosch/pongo2/v6"
	"github.com/gin-gonic/gin"
)

// Options configures a Renderer.
type Options struct {
	Dir             string
	Prefix          string
	SiriusPublicURL string
	StaticHash      string
	Debug           bool
}

// Renderer executes page templates from a directory. Templates are cached
// unless Debug is set.
type Renderer struct {
	set *pongo2.TemplateSet
}

// New creates a renderer reading templates from opts.Dir.
func New(opts Options) (*Renderer, error) {
	if opts.Dir == "" {
		return nil, fmt.Errorf("template directory is required")
	}

	if _, err := os.Stat(opts.Dir); err != nil {
		return nil, fmt.Errorf("template directory not found: %w", err)
	}

	abs, err := filepath.Abs(opts.Dir)
	if err != nil {
		return nil, err
	}

	registerFilters()

	set := pongo2.NewSet("lpa-frontend", pongo2.MustNewLocalFileSystemLoader(abs))
	set.Debug = opts.Debug
	set.Globals.Update(globals(opts))

	return &Renderer{set: set}, nil
}

func globals(opts Options) pongo2.Context {
	return pongo2.Context{
		"prefix": func(s string) string {
			return opts.Prefix + s
		},
		"prefixAsset": func(s string) string {
			if len(opts.StaticHash) >= 11 {
				return opts.Prefix + s + "?" + url.QueryEscape(opts.StaticHash[3:11])
			}
			return opts.Prefix + s
		},
		"sirius": func(s string) string {
			return opts.SiriusPublicURL + s
		},
		"today": func() string {
			return time.Now().Format("2006-01-02")
		},
		"Prefix": opts.Prefix,
	}
}

// Render executes the named template into w.
func (r *Renderer) Render(w io.Writer, name string, data pongo2.Context) error {
	tmpl, err := r.set.FromCache(name)
	if err != nil {
		return err
	}

	return tmpl.ExecuteWriter(data, w)
}

// RenderString executes an inline template, mostly for tests and partials.
func (r *Renderer) RenderString(tpl string, data pongo2.Context) (string, error) {
	return r.set.RenderTemplateString(tpl, data)
}

// HTML renders the named template as the response body.
func (r *Renderer) HTML(c *gin.Context, code int, name string, data gin.H) error {
	tmpl, err := r.set.FromCache(name)
	if err != nil {
		return err
	}

	body, err := tmpl.ExecuteBytes(pongo2.Context(data))
	if err != nil {
		return err
	}

	c.Data(code, "text/html; charset=utf-8", body)
	return nil
}
