package sirius

import "fmt"

type AttorneyDecisions struct {
	UID                      string `json:"uid"`
	CannotMakeJointDecisions bool   `json:"cannotMakeJointDecisions"`
}

func (c *Client) ManageAttorneyDecisions(ctx Context, caseUID string, decisions []AttorneyDecisions) error {
	body := struct {
		AttorneyDecisions []AttorneyDecisions `json:"attorneyDecisions"`
	}{
		AttorneyDecisions: decisions,
	}

	return c.put(ctx, fmt.Sprintf("/lpa-api/v1/digital-lpas/%s/attorney-decisions", caseUID), body, nil)
}
