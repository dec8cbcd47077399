package sirius

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
)

type Insert struct {
	Key      string `json:"key"`
	InsertId string `json:"insertId"`
	Label    string `json:"label"`
	Order    int    `json:"order"`
}

type DocumentTemplateData struct {
	TemplateId string   `json:"templateId"`
	Label      string   `json:"label"`
	UsesNotify bool     `json:"govukNotify"`
	Inserts    []Insert `json:"inserts"`
}

type apiTemplate struct {
	Label      string          `json:"label"`
	UsesNotify bool            `json:"govukNotify"`
	Inserts    json.RawMessage `json:"inserts"`
}

type apiInsert struct {
	Label string `json:"label"`
	Order int    `json:"order"`
}

// DocumentTemplates lists the templates available for a case type, ordered
// by template id. Inserts are ordered by key then by their order field.
func (c *Client) DocumentTemplates(ctx Context, caseType CaseType) ([]DocumentTemplateData, error) {
	set := string(caseType)
	if caseType == CaseTypeDigitalLpa {
		set = "digitallpa"
	}

	var v map[string]apiTemplate
	if err := c.get(ctx, fmt.Sprintf("/lpa-api/v1/templates/%s", set), &v); err != nil {
		return nil, err
	}

	templates := make([]DocumentTemplateData, 0, len(v))
	for id, t := range v {
		inserts, err := parseInserts(t.Inserts)
		if err != nil {
			return nil, fmt.Errorf("template %s: %w", id, err)
		}

		templates = append(templates, DocumentTemplateData{
			TemplateId: id,
			Label:      t.Label,
			UsesNotify: t.UsesNotify,
			Inserts:    inserts,
		})
	}

	sort.Slice(templates, func(i, j int) bool {
		return templates[i].TemplateId < templates[j].TemplateId
	})

	return templates, nil
}

func parseInserts(data json.RawMessage) ([]Insert, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || data[0] == '[' || bytes.Equal(data, []byte("null")) {
		return nil, nil
	}

	var byKey map[string]map[string]apiInsert
	if err := json.Unmarshal(data, &byKey); err != nil {
		return nil, fmt.Errorf("could not format insert data: %w", err)
	}

	var inserts []Insert
	for key, group := range byKey {
		for id, in := range group {
			inserts = append(inserts, Insert{
				Key:      key,
				InsertId: id,
				Label:    in.Label,
				Order:    in.Order,
			})
		}
	}

	sort.Slice(inserts, func(i, j int) bool {
		if inserts[i].Key != inserts[j].Key {
			return inserts[i].Key < inserts[j].Key
		}
		if inserts[i].Order != inserts[j].Order {
			return inserts[i].Order < inserts[j].Order
		}
		return inserts[i].InsertId < inserts[j].InsertId
	})

	return inserts, nil
}
