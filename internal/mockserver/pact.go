package mockserver

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
)

type pactFile struct {
	Interactions []pactInteraction `json:"interactions"`
}

type pactInteraction struct {
	Description string `json:"description"`
	Request     struct {
		Method string          `json:"method"`
		Path   string          `json:"path"`
		Query  json.RawMessage `json:"query"`
	} `json:"request"`
	Response struct {
		Status  int               `json:"status"`
		Headers map[string]string `json:"headers"`
		Body    json.RawMessage   `json:"body"`
	} `json:"response"`
}

// ConvertPact turns each pact interaction into a stub mapping. Response bodies
// are kept as JSON strings so the stub replays them byte for byte.
func ConvertPact(data []byte) ([]Mapping, error) {
	var pact pactFile
	if err := json.Unmarshal(data, &pact); err != nil {
		return nil, fmt.Errorf("decoding pact: %w", err)
	}

	mappings := make([]Mapping, 0, len(pact.Interactions))
	for _, in := range pact.Interactions {
		query, err := pactQuery(in.Request.Query)
		if err != nil {
			return nil, fmt.Errorf("interaction %q: %w", in.Description, err)
		}

		target := in.Request.Path
		if query != "" {
			target += "?" + query
		}

		m := Mapping{
			Name: in.Description,
			Request: RequestPattern{
				Method: strings.ToUpper(in.Request.Method),
				URL:    target,
			},
			Response: ResponseDefinition{
				Status:  in.Response.Status,
				Headers: in.Response.Headers,
			},
		}
		if len(in.Response.Body) > 0 && string(in.Response.Body) != "null" {
			m.Response.Body = string(in.Response.Body)
		}

		mappings = append(mappings, m)
	}

	return mappings, nil
}

// pactQuery accepts the v2 string form and the v3 map form.
func pactQuery(raw json.RawMessage) (string, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return "", nil
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s, nil
	}

	var values map[string][]string
	if err := json.Unmarshal(raw, &values); err != nil {
		return "", fmt.Errorf("unsupported query format: %w", err)
	}
	return url.Values(values).Encode(), nil
}
