package mockserver

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

const mappingSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["request", "response"],
  "properties": {
    "id": {"type": "string"},
    "name": {"type": "string"},
    "priority": {"type": "integer", "minimum": 1},
    "request": {
      "type": "object",
      "required": ["method"],
      "properties": {
        "method": {"type": "string", "minLength": 1},
        "url": {"type": "string", "pattern": "^/"},
        "urlPath": {"type": "string", "pattern": "^/"}
      },
      "oneOf": [
        {"required": ["url"]},
        {"required": ["urlPath"]}
      ]
    },
    "response": {
      "type": "object",
      "properties": {
        "status": {"type": "integer", "minimum": 100, "maximum": 599},
        "headers": {"type": "object", "additionalProperties": {"type": "string"}},
        "body": {"type": "string"},
        "jsonBody": {},
        "fixedDelayMilliseconds": {"type": "integer", "minimum": 0}
      },
      "not": {"required": ["body", "jsonBody"]}
    }
  }
}`

var mappingSchemaLoader = gojsonschema.NewStringLoader(mappingSchema)

// InvalidMappingError lists the schema violations of a rejected mapping.
type InvalidMappingError struct {
	Errors []string
}

func (e InvalidMappingError) Error() string {
	return fmt.Sprintf("invalid mapping: %s", strings.Join(e.Errors, "; "))
}

// validateMapping checks a raw mapping document against the schema.
func validateMapping(doc []byte) error {
	result, err := gojsonschema.Validate(mappingSchemaLoader, gojsonschema.NewBytesLoader(doc))
	if err != nil {
		return InvalidMappingError{Errors: []string{err.Error()}}
	}

	if result.Valid() {
		return nil
	}

	invalid := InvalidMappingError{}
	for _, e := range result.Errors() {
		invalid.Errors = append(invalid.Errors, e.String())
	}
	return invalid
}
