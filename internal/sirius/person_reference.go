package sirius

import (
	"fmt"
	"net/http"
)

type createPersonReferenceRequest struct {
	ReferencedUID string `json:"referencedUid"`
	Reason        string `json:"reason"`
}

// CreatePersonReference links personID to the person with referencedUID.
func (c *Client) CreatePersonReference(ctx Context, personID int, referencedUID, reason string) error {
	return c.send(ctx, http.MethodPost, fmt.Sprintf("/lpa-api/v1/persons/%d/references", personID), createPersonReferenceRequest{
		ReferencedUID: referencedUID,
		Reason:        reason,
	}, nil, http.StatusCreated)
}
