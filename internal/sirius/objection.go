package sirius

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
)

type Objection struct {
	ID            int        `json:"id,omitempty"`
	Notes         string     `json:"notes"`
	ObjectionType string     `json:"objectionType"`
	ReceivedDate  DateString `json:"receivedDate"`
	LpaUids       []string   `json:"lpaUids"`
}

type ObjectionRequest struct {
	LpaUids       []string   `json:"lpaUids"`
	ReceivedDate  DateString `json:"receivedDate"`
	ObjectionType string     `json:"objectionType"`
	Notes         string     `json:"notes"`
}

// ObjectionsForCase lists objections recorded against a digital LPA. Sirius
// answers either with a bare list or with {"uid": ..., "objections": [...]}.
func (c *Client) ObjectionsForCase(ctx Context, uid string) ([]Objection, error) {
	var raw json.RawMessage
	if err := c.get(ctx, fmt.Sprintf("/lpa-api/v1/digital-lpas/%s/objections", uid), &raw); err != nil {
		return nil, err
	}

	raw = bytes.TrimSpace(raw)
	if len(raw) > 0 && raw[0] == '[' {
		var list []Objection
		if err := json.Unmarshal(raw, &list); err != nil {
			return nil, err
		}
		return list, nil
	}

	var v struct {
		Objections []Objection `json:"objections"`
	}
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, err
	}

	return v.Objections, nil
}

func (c *Client) AddObjection(ctx Context, objection ObjectionRequest) error {
	return c.send(ctx, http.MethodPost, "/lpa-api/v1/objections", objection, nil, http.StatusOK, http.StatusCreated, http.StatusNoContent)
}
