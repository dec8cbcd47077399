// Package sirius is the client for the Sirius case-management API.
package sirius

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/gotrs-io/lpa-frontend/internal/cache"
)

// Context carries the caller's session through to Sirius.
type Context struct {
	Context   context.Context
	Cookies   []*http.Cookie
	XSRFToken string
}

// With returns a copy of ctx using c as the underlying context.
func (ctx Context) With(c context.Context) Context {
	return Context{
		Context:   c,
		Cookies:   ctx.Cookies,
		XSRFToken: ctx.XSRFToken,
	}
}

// Client represents the Sirius API client
type Client struct {
	http    *resty.Client
	baseURL string
	refData *cache.RefDataCache
}

// Config represents client configuration
type Config struct {
	BaseURL    string
	Timeout    time.Duration
	RetryCount int
	Transport  http.RoundTripper
	RefData    *cache.RefDataCache
}

// NewClient creates a new Sirius API client
func NewClient(config *Config) *Client {
	if config.Timeout == 0 {
		config.Timeout = 30 * time.Second
	}

	httpClient := &http.Client{Transport: config.Transport}

	rc := resty.NewWithClient(httpClient).
		SetBaseURL(config.BaseURL).
		SetTimeout(config.Timeout).
		SetRetryCount(config.RetryCount).
		SetHeader("OPG-Bypass-Membrane", "1").
		SetHeader("Accept", "application/json")

	return &Client{
		http:    rc,
		baseURL: config.BaseURL,
		refData: config.RefData,
	}
}

func (c *Client) newRequest(ctx Context) *resty.Request {
	reqCtx := ctx.Context
	if reqCtx == nil {
		reqCtx = context.Background()
	}

	req := c.http.R().
		SetContext(reqCtx).
		SetCookies(ctx.Cookies).
		SetHeader("X-XSRF-TOKEN", ctx.XSRFToken)

	return req
}

func (c *Client) get(ctx Context, path string, v interface{}) error {
	resp, err := c.newRequest(ctx).Get(path)
	if err != nil {
		return err
	}

	if resp.StatusCode() != http.StatusOK {
		return newStatusError(resp)
	}

	return json.Unmarshal(resp.Body(), v)
}

// send performs a write. A 400 becomes a ValidationError; any status not in
// accepted becomes a StatusError. An empty body leaves response untouched.
func (c *Client) send(ctx Context, method, path string, body, response interface{}, accepted ...int) error {
	req := c.newRequest(ctx)
	if body != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(body)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return err
	}

	if resp.StatusCode() == http.StatusBadRequest {
		var v ValidationError
		if err := json.Unmarshal(resp.Body(), &v); err != nil {
			return err
		}
		return v
	}

	ok := false
	for _, code := range accepted {
		if resp.StatusCode() == code {
			ok = true
			break
		}
	}
	if !ok {
		return newStatusError(resp)
	}

	if len(resp.Body()) == 0 || response == nil {
		return nil
	}

	return json.Unmarshal(resp.Body(), response)
}

func (c *Client) post(ctx Context, path string, body, response interface{}) error {
	return c.send(ctx, http.MethodPost, path, body, response, http.StatusOK, http.StatusCreated, http.StatusNoContent)
}

func (c *Client) put(ctx Context, path string, body, response interface{}) error {
	return c.send(ctx, http.MethodPut, path, body, response, http.StatusOK, http.StatusNoContent)
}
