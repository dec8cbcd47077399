package sirius

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// StatusError is returned when Sirius responds with an unexpected status.
type StatusError struct {
	Code          int    `json:"code"`
	URL           string `json:"url"`
	Method        string `json:"method"`
	CorrelationId string `json:"correlationId,omitempty"`
}

func newStatusError(resp *resty.Response) StatusError {
	e := StatusError{
		Code:          resp.StatusCode(),
		CorrelationId: resp.Header().Get("Correlation-Id"),
	}

	if raw := resp.Request.RawRequest; raw != nil {
		e.URL = raw.URL.String()
		e.Method = raw.Method
	} else {
		e.URL = resp.Request.URL
		e.Method = resp.Request.Method
	}

	return e
}

func (e StatusError) IsUnauthorized() bool {
	return e.Code == http.StatusUnauthorized
}

func (e StatusError) Error() string {
	return fmt.Sprintf("%s %s returned %d", e.Method, e.URL, e.Code)
}

func (StatusError) Title() string {
	return "unexpected response from Sirius"
}

func (e StatusError) Data() interface{} {
	return e
}

// FieldErrors maps a form field to its error messages keyed by reason.
type FieldErrors map[string]map[string]string

// ValidationError is returned when Sirius rejects a write with a 400.
type ValidationError struct {
	Detail string      `json:"detail"`
	Field  FieldErrors `json:"validation_errors"`
}

func (e *ValidationError) UnmarshalJSON(data []byte) error {
	var raw struct {
		Detail string                     `json:"detail"`
		Field  map[string]json.RawMessage `json:"validation_errors"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	e.Detail = raw.Detail
	e.Field = nil

	if len(raw.Field) == 0 {
		return nil
	}

	e.Field = FieldErrors{}
	for k, v := range raw.Field {
		var asSlice []string
		if err := json.Unmarshal(v, &asSlice); err == nil {
			e.Field[k] = map[string]string{"": strings.Join(asSlice, "")}
			continue
		}

		var asMap map[string]string
		if err := json.Unmarshal(v, &asMap); err == nil {
			e.Field[k] = asMap
			continue
		}

		return errors.New("could not parse field validation_errors")
	}

	return nil
}

func (e ValidationError) Any() bool {
	return len(e.Detail) > 0 || len(e.Field) > 0
}

func (e ValidationError) Error() string {
	if len(e.Detail) > 0 {
		return e.Detail
	}

	return "validation error"
}

// IsValidationError reports whether err is a ValidationError and returns it.
func IsValidationError(err error) (ValidationError, bool) {
	var ve ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return ValidationError{}, false
}
