package sirius

import (
	"fmt"
	"net/http"
)

type Warning struct {
	ID          int    `json:"id"`
	DateAdded   string `json:"dateAdded"`
	WarningType string `json:"warningType"`
	WarningText string `json:"warningText"`
	CaseItems   []Case `json:"caseItems"`
}

// WarningsForCase lists warnings on a case. When newestFirst is set the
// list is sorted by date added.
func (c *Client) WarningsForCase(ctx Context, caseID int, newestFirst bool) ([]Warning, error) {
	path := fmt.Sprintf("/lpa-api/v1/cases/%d/warnings", caseID)
	if newestFirst {
		path += "?sort=dateadded%3ADESC"
	}

	var v []Warning
	err := c.get(ctx, path, &v)

	return v, err
}

func (c *Client) CreateWarning(ctx Context, personID int, warningType, warningText string, caseIDs []int) error {
	body := struct {
		PersonID    int    `json:"personId"`
		WarningType string `json:"warningType"`
		WarningText string `json:"warningText"`
		CaseIDs     []int  `json:"caseIds,omitempty"`
	}{
		PersonID:    personID,
		WarningType: warningType,
		WarningText: warningText,
		CaseIDs:     caseIDs,
	}

	return c.send(ctx, http.MethodPost, "/lpa-api/v1/warnings", body, nil, http.StatusCreated)
}
