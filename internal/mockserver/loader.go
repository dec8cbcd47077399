package mockserver

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadDir reads every mapping file in dir. JSON files hold either
// {"mappings": [...]} or a single mapping; YAML files use the same shapes.
func LoadDir(dir string) ([]Mapping, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading mappings dir: %w", err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(e.Name())) {
		case ".json", ".yaml", ".yml":
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	var mappings []Mapping
	for _, name := range names {
		ms, err := LoadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		mappings = append(mappings, ms...)
	}

	return mappings, nil
}

// LoadFile reads one mapping file.
func LoadFile(path string) ([]Mapping, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, err
	}

	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".yaml" || ext == ".yml" {
		if data, err = yamlToJSON(data); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	}

	ms, err := decodeMappings(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return ms, nil
}

func decodeMappings(data []byte) ([]Mapping, error) {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, err
	}

	raw, ok := probe["mappings"]
	if !ok {
		m, err := parseMapping(data)
		if err != nil {
			return nil, err
		}
		return []Mapping{m}, nil
	}

	var docs []json.RawMessage
	if err := json.Unmarshal(raw, &docs); err != nil {
		return nil, err
	}

	mappings := make([]Mapping, 0, len(docs))
	for i, doc := range docs {
		m, err := parseMapping(doc)
		if err != nil {
			return nil, fmt.Errorf("mapping %d: %w", i, err)
		}
		mappings = append(mappings, m)
	}
	return mappings, nil
}

// yamlToJSON re-encodes a YAML document so jsonBody values survive as raw
// JSON.
func yamlToJSON(data []byte) ([]byte, error) {
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return json.Marshal(normaliseYAML(v))
}

func normaliseYAML(v any) any {
	switch t := v.(type) {
	case map[string]any:
		for k, val := range t {
			t[k] = normaliseYAML(val)
		}
		return t
	case map[any]any:
		m := make(map[string]any, len(t))
		for k, val := range t {
			m[fmt.Sprint(k)] = normaliseYAML(val)
		}
		return m
	case []any:
		for i, val := range t {
			t[i] = normaliseYAML(val)
		}
		return t
	default:
		return v
	}
}

// WriteMappings writes ms in the {"mappings": [...]} file format LoadDir reads.
func WriteMappings(w io.Writer, ms []Mapping) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(mappingsFile{Mappings: ms})
}
