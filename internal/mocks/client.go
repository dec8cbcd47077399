// Package mocks registers stub mappings with the mock server from tests.
package mocks

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// DefaultURI is used when MOCK_SERVER_URI is unset.
const DefaultURI = "http://localhost:8080"

// DefaultPriority is the priority AddMock registers with unless told
// otherwise. It beats anything loaded from the mappings directory.
const DefaultPriority = 1

var digitalLpaPath = regexp.MustCompile(`^/lpa-api/v1/digital-lpas/M(-[A-Z0-9]{4}){3}/?$`)

// Response is the stubbed reply. Body may be a string or any value that
// marshals to JSON. A zero Status is answered as 200.
type Response struct {
	Status  int               `json:"status"`
	Headers map[string]string `json:"headers,omitempty"`
	Body    any               `json:"body,omitempty"`
}

type Client struct {
	http *resty.Client
	base string
}

// New returns a client for the mock server at base.
func New(base string) *Client {
	base = strings.TrimRight(base, "/")

	return &Client{
		http: resty.New().
			SetBaseURL(base).
			SetTimeout(10*time.Second).
			SetHeader("Content-Type", "application/json"),
		base: base,
	}
}

// FromEnv builds a client from MOCK_SERVER_URI.
func FromEnv() *Client {
	base := os.Getenv("MOCK_SERVER_URI")
	if base == "" {
		base = DefaultURI
	}
	return New(base)
}

func (c *Client) BaseURL() string { return c.base }

type mapping struct {
	Request struct {
		URL    string `json:"url"`
		Method string `json:"method"`
	} `json:"request"`
	Response stubResponse `json:"response"`
	Priority int          `json:"priority"`
}

type stubResponse struct {
	Status  int               `json:"status,omitempty"`
	Headers map[string]string `json:"headers,omitempty"`
	Body    string            `json:"body,omitempty"`
}

// AddMock registers a stub for method and url. GETs of a digital LPA also
// register the ?presignImages variant at a lower priority, since detail
// pages request it.
func (c *Client) AddMock(ctx context.Context, url, method string, response Response, priority ...int) error {
	p := DefaultPriority
	if len(priority) > 0 {
		p = priority[0]
	}

	if method == http.MethodGet && digitalLpaPath.MatchString(url) {
		if err := c.AddMock(ctx, url+"?presignImages", http.MethodGet, response, 2); err != nil {
			return err
		}
	}

	body, err := bodyString(response.Body)
	if err != nil {
		return err
	}

	var m mapping
	m.Request.URL = url
	m.Request.Method = method
	m.Response = stubResponse{Status: response.Status, Headers: response.Headers, Body: body}
	m.Priority = p

	resp, err := c.http.R().SetContext(ctx).SetBody(m).Post("/__admin/mappings")
	if err != nil {
		return fmt.Errorf("registering %s %s: %w", method, url, err)
	}
	if resp.StatusCode() != http.StatusCreated {
		return fmt.Errorf("registering %s %s: mock server returned %d: %s", method, url, resp.StatusCode(), resp.String())
	}

	return nil
}

func bodyString(body any) (string, error) {
	switch v := body.(type) {
	case nil:
		return "", nil
	case string:
		return v, nil
	default:
		data, err := json.Marshal(v)
		if err != nil {
			return "", fmt.Errorf("encoding mock body: %w", err)
		}
		return string(data), nil
	}
}

// Reset drops every mapping added since the server loaded its baseline.
func (c *Client) Reset(ctx context.Context) error {
	resp, err := c.http.R().SetContext(ctx).Post("/__admin/mappings/reset")
	if err != nil {
		return err
	}
	if resp.IsError() {
		return fmt.Errorf("resetting mock server: status %d", resp.StatusCode())
	}
	return nil
}

// Mapping is one entry of the admin listing.
type Mapping struct {
	ID       string          `json:"id"`
	Name     string          `json:"name,omitempty"`
	Priority int             `json:"priority"`
	Request  json.RawMessage `json:"request"`
	Response json.RawMessage `json:"response"`
}

func (c *Client) Mappings(ctx context.Context) ([]Mapping, error) {
	var v struct {
		Mappings []Mapping `json:"mappings"`
	}

	resp, err := c.http.R().SetContext(ctx).SetResult(&v).Get("/__admin/mappings")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, fmt.Errorf("listing mappings: status %d", resp.StatusCode())
	}

	return v.Mappings, nil
}

// DumpMappings writes the registered mappings to w, one per line.
func (c *Client) DumpMappings(ctx context.Context, w io.Writer) error {
	mappings, err := c.Mappings(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "%d mappings registered\n", len(mappings))
	for _, m := range mappings {
		fmt.Fprintf(w, "[%d] %s -> %s\n", m.Priority, m.Request, m.Response)
	}
	return nil
}
