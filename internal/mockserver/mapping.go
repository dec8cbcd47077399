// Package mockserver is a WireMock-compatible stub HTTP server used to stand
// in for the Sirius API during browser tests.
package mockserver

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// DefaultPriority applies to mappings registered without a priority. Lower
// numbers win.
const DefaultPriority = 5

const AnyMethod = "ANY"

// Mapping pairs a request pattern with the response to send.
type Mapping struct {
	ID       string             `json:"id,omitempty"`
	Name     string             `json:"name,omitempty"`
	Priority int                `json:"priority,omitempty"`
	Request  RequestPattern     `json:"request"`
	Response ResponseDefinition `json:"response"`

	seq int
}

// RequestPattern matches on method and either the full url (path and query)
// or just the path.
type RequestPattern struct {
	Method  string `json:"method"`
	URL     string `json:"url,omitempty"`
	URLPath string `json:"urlPath,omitempty"`
}

type ResponseDefinition struct {
	Status                 int               `json:"status,omitempty"`
	Headers                map[string]string `json:"headers,omitempty"`
	Body                   string            `json:"body,omitempty"`
	JSONBody               json.RawMessage   `json:"jsonBody,omitempty"`
	FixedDelayMilliseconds int               `json:"fixedDelayMilliseconds,omitempty"`
}

func (p RequestPattern) matches(r *http.Request) bool {
	if p.Method != AnyMethod && !strings.EqualFold(p.Method, r.Method) {
		return false
	}

	if p.URL != "" {
		return p.URL == r.URL.RequestURI()
	}

	return p.URLPath == r.URL.Path
}

func (p RequestPattern) String() string {
	target := p.URL
	if target == "" {
		target = p.URLPath + " (path)"
	}
	return fmt.Sprintf("%s %s", p.Method, target)
}

// body returns the bytes to send and the content type implied by the body
// kind.
func (d ResponseDefinition) body() ([]byte, string) {
	if len(d.JSONBody) > 0 {
		return d.JSONBody, "application/json"
	}
	return []byte(d.Body), ""
}

func (d ResponseDefinition) status() int {
	if d.Status == 0 {
		return http.StatusOK
	}
	return d.Status
}

// mappingsFile is the on-disk and admin listing shape.
type mappingsFile struct {
	Mappings []Mapping `json:"mappings"`
	Meta     *meta     `json:"meta,omitempty"`
}

type meta struct {
	Total int `json:"total"`
}
