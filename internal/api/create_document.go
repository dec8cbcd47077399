package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strconv"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"github.com/gotrs-io/lpa-frontend/internal/sirius"
	"github.com/gotrs-io/lpa-frontend/internal/template"
)

type CreateDocumentClient interface {
	Case(ctx sirius.Context, id int) (sirius.Case, error)
	Person(ctx sirius.Context, id int) (sirius.Person, error)
	DocumentTemplates(ctx sirius.Context, caseType sirius.CaseType) ([]sirius.DocumentTemplateData, error)
	CreateDocument(ctx sirius.Context, caseID, correspondentID int, templateID string, inserts []string) (sirius.DocumentData, error)
}

const allInsertsKey = "all"

// insertPanel is one tab of the insert selector.
type insertPanel struct {
	Key     string
	Label   string
	Inserts []sirius.Insert
}

type insertSelectorTemplate struct {
	ID      string                      `json:"id"`
	Label   string                      `json:"label"`
	Inserts map[string][]insertSelector `json:"inserts"`
}

type insertSelector struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// buildInsertPanels groups a template's inserts by key. The "all" panel comes
// first and is built from every insert when the template does not define one.
func buildInsertPanels(inserts []sirius.Insert) []insertPanel {
	grouped := map[string][]sirius.Insert{}
	for _, in := range inserts {
		grouped[in.Key] = append(grouped[in.Key], in)
	}

	if len(grouped) == 0 {
		return nil
	}

	if _, ok := grouped[allInsertsKey]; !ok {
		seen := map[string]bool{}
		for _, in := range inserts {
			if seen[in.InsertId] {
				continue
			}
			seen[in.InsertId] = true
			union := in
			union.Key = allInsertsKey
			grouped[allInsertsKey] = append(grouped[allInsertsKey], union)
		}
	}

	keys := make([]string, 0, len(grouped))
	for key := range grouped {
		if key != allInsertsKey {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	keys = append([]string{allInsertsKey}, keys...)

	panels := make([]insertPanel, len(keys))
	for i, key := range keys {
		panels[i] = insertPanel{
			Key:     key,
			Label:   template.Capitalise(key),
			Inserts: grouped[key],
		}
	}

	return panels
}

// insertSelectorData is the JSON the insert selector script reads to build
// panels when the template select changes.
func insertSelectorData(templates []sirius.DocumentTemplateData) (string, error) {
	data := make([]insertSelectorTemplate, len(templates))
	for i, t := range templates {
		data[i] = insertSelectorTemplate{
			ID:      t.TemplateId,
			Label:   t.Label,
			Inserts: map[string][]insertSelector{},
		}
		for _, in := range t.Inserts {
			data[i].Inserts[in.Key] = append(data[i].Inserts[in.Key], insertSelector{ID: in.InsertId, Label: in.Label})
		}
	}

	b, err := json.Marshal(data)
	return string(b), err
}

func CreateDocument(client CreateDocumentClient, renderer Renderer) Handler {
	return func(c *gin.Context) error {
		caseID, err := strconv.Atoi(c.Query("id"))
		if err != nil {
			return badRequestError{err: err}
		}

		caseType, err := sirius.ParseCaseType(c.Query("case"))
		if err != nil {
			return badRequestError{err: err}
		}

		ctx := getContext(c)

		var (
			lpa       sirius.Case
			templates []sirius.DocumentTemplateData
		)

		group, groupCtx := errgroup.WithContext(ctx.Context)
		group.Go(func() (err error) {
			lpa, err = client.Case(ctx.With(groupCtx), caseID)
			return err
		})
		group.Go(func() (err error) {
			templates, err = client.DocumentTemplates(ctx.With(groupCtx), caseType)
			return err
		})
		if err := group.Wait(); err != nil {
			return err
		}

		selectorData, err := insertSelectorData(templates)
		if err != nil {
			return err
		}

		templateID := c.Request.FormValue("templateId")
		selectedInserts := removeDuplicateStr(c.Request.Form["insert"])

		var selected sirius.DocumentTemplateData
		for _, t := range templates {
			if t.TemplateId == templateID {
				selected = t
				break
			}
		}

		data := gin.H{
			"XSRFToken":          ctx.XSRFToken,
			"Case":               lpa,
			"CaseType":           caseType,
			"DocumentTemplates":  templates,
			"InsertSelectorData": selectorData,
			"TemplateSelected":   selected,
			"InsertPanels":       buildInsertPanels(selected.Inserts),
			"SelectedInserts":    selectedInserts,
		}

		showRecipients := func() error {
			recipients, err := getRecipients(ctx, client, lpa)
			if err != nil {
				return err
			}
			data["HasViewedInsertPage"] = true
			data["Recipients"] = recipients
			return nil
		}

		if c.Request.Method == http.MethodPost {
			recipientIDs, err := sliceAtoi(c.PostFormArray("selectRecipients"))
			if err != nil {
				return badRequestError{err: err}
			}

			if len(recipientIDs) == 0 {
				data["Error"] = sirius.ValidationError{
					Field: sirius.FieldErrors{
						"selectRecipient": {"reason": requiredReason},
					},
				}
				if err := showRecipients(); err != nil {
					return err
				}
				return renderer.HTML(c, http.StatusBadRequest, "create-document.html", data)
			}

			if selectedInserts == nil {
				selectedInserts = []string{}
			}

			for _, recipientID := range recipientIDs {
				_, err := client.CreateDocument(ctx, caseID, recipientID, templateID, selectedInserts)
				if ve, ok := sirius.IsValidationError(err); ok {
					data["Error"] = ve
					if err := showRecipients(); err != nil {
						return err
					}
					return renderer.HTML(c, http.StatusBadRequest, "create-document.html", data)
				} else if err != nil {
					return err
				}
			}

			return RedirectError(fmt.Sprintf("/edit-document?id=%d&case=%s", caseID, caseType))
		}

		code := http.StatusOK
		if selected.TemplateId == "" && c.Query("hasSelectedSubmitTemplate") == "true" {
			code = http.StatusBadRequest
			data["Error"] = sirius.ValidationError{
				Field: sirius.FieldErrors{
					"templateId": {"reason": "Please select a document template to continue"},
				},
			}
		}

		if selected.TemplateId != "" && (c.Query("hasViewedInserts") == "true" || len(selected.Inserts) == 0) {
			if err := showRecipients(); err != nil {
				return err
			}
		}

		return renderer.HTML(c, code, "create-document.html", data)
	}
}

// getRecipients loads the donor and correspondent of a case in parallel.
func getRecipients(ctx sirius.Context, client CreateDocumentClient, lpa sirius.Case) ([]sirius.Person, error) {
	var ids []int
	if lpa.Donor != nil {
		ids = append(ids, lpa.Donor.ID)
	}
	if lpa.Correspondent != nil && lpa.Correspondent.ID != 0 {
		ids = append(ids, lpa.Correspondent.ID)
	}

	recipients := make([]sirius.Person, len(ids))
	group, groupCtx := errgroup.WithContext(ctx.Context)
	for i, id := range ids {
		group.Go(func() (err error) {
			recipients[i], err = client.Person(ctx.With(groupCtx), id)
			return err
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	return recipients, nil
}
