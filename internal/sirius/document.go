package sirius

import (
	"fmt"
	"net/http"
)

const TypeDraft = "Draft"

type Document struct {
	ID                  int     `json:"id,omitempty"`
	UUID                string  `json:"uuid,omitempty"`
	CorrespondentID     int     `json:"correspondentID"`
	Correspondent       *Person `json:"correspondent,omitempty"`
	Type                string  `json:"type"`
	SystemType          string  `json:"systemType"`
	FriendlyDescription string  `json:"friendlyDescription,omitempty"`
	CreatedDate         string  `json:"createdDate,omitempty"`
	FileName            string  `json:"fileName,omitempty"`
	Content             string  `json:"content"`
}

// Summary labels a draft in the document picker.
func (d Document) Summary() string {
	name := ""
	if d.Correspondent != nil {
		name = d.Correspondent.Summary()
	}
	return fmt.Sprintf("%d: %s: %s: %s", d.ID, d.CreatedDate, name, d.SystemType)
}

type DocumentData struct {
	DocumentID int    `json:"id"`
	UUID       string `json:"uuid,omitempty"`
}

type createDocumentRequest struct {
	TemplateID      string   `json:"templateId"`
	Inserts         []string `json:"inserts"`
	CorrespondentID int      `json:"correspondentId"`
}

// CreateDocument creates a draft letter for a case from a template.
func (c *Client) CreateDocument(ctx Context, caseID, correspondentID int, templateID string, inserts []string) (DocumentData, error) {
	if inserts == nil {
		inserts = []string{}
	}

	var v DocumentData
	err := c.send(ctx, http.MethodPost, fmt.Sprintf("/lpa-api/v1/lpas/%d/documents/draft", caseID), createDocumentRequest{
		TemplateID:      templateID,
		Inserts:         inserts,
		CorrespondentID: correspondentID,
	}, &v, http.StatusCreated)

	return v, err
}

// DraftDocuments lists the unpublished letters on a case.
func (c *Client) DraftDocuments(ctx Context, caseID int) ([]Document, error) {
	var v []Document
	err := c.get(ctx, fmt.Sprintf("/lpa-api/v1/lpas/%d/documents?type[]=%s", caseID, TypeDraft), &v)

	return v, err
}

func (c *Client) Document(ctx Context, id int) (Document, error) {
	var v Document
	err := c.get(ctx, fmt.Sprintf("/lpa-api/v1/documents/%d", id), &v)

	return v, err
}

func (c *Client) EditDocument(ctx Context, id int, content string) (Document, error) {
	body := struct {
		Content string `json:"content"`
	}{
		Content: content,
	}

	var v Document
	err := c.send(ctx, http.MethodPut, fmt.Sprintf("/lpa-api/v1/documents/%d", id), body, &v, http.StatusOK)

	return v, err
}
