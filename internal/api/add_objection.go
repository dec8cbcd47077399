package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gotrs-io/lpa-frontend/internal/sirius"
)

type AddObjectionClient interface {
	CaseSummary(ctx sirius.Context, uid string, presignImages bool) (sirius.CaseSummary, error)
	AddObjection(ctx sirius.Context, objection sirius.ObjectionRequest) error
}

type objectionForm struct {
	LpaUids       []string `form:"lpaUids"`
	ReceivedDay   string   `form:"receivedDate.day"`
	ReceivedMonth string   `form:"receivedDate.month"`
	ReceivedYear  string   `form:"receivedDate.year"`
	ObjectionType string   `form:"objectionType"`
	Notes         string   `form:"notes"`
}

// Selected reports whether uid was ticked on the submitted form.
func (f objectionForm) Selected(uid string) bool {
	for _, v := range f.LpaUids {
		if v == uid {
			return true
		}
	}
	return false
}

func isValidStatusForObjection(status string) bool {
	return status == "Draft" || status == "In progress" || status == "Statutory waiting period"
}

// objectionCandidates returns the LPA and its linked LPAs that can still
// receive an objection.
func objectionCandidates(lpa sirius.DigitalLpa) []sirius.LinkedCase {
	var list []sirius.LinkedCase

	if isValidStatusForObjection(lpa.SiriusData.Status) {
		list = append(list, sirius.LinkedCase{
			UID:         lpa.SiriusData.UID,
			Subtype:     lpa.SiriusData.Subtype,
			Status:      lpa.SiriusData.Status,
			CreatedDate: lpa.SiriusData.CreatedDate,
		})
	}

	for _, linked := range lpa.SiriusData.LinkedCases {
		if isValidStatusForObjection(linked.Status) {
			list = append(list, linked)
		}
	}

	return list
}

var objectionTypes = []string{"factual", "prescribed", "thirdParty"}

func AddObjection(client AddObjectionClient, renderer Renderer) Handler {
	return func(c *gin.Context) error {
		uid := c.Query("uid")
		ctx := getContext(c)

		summary, err := client.CaseSummary(ctx, uid, false)
		if err != nil {
			return err
		}

		data := gin.H{
			"XSRFToken":      ctx.XSRFToken,
			"CaseUID":        uid,
			"CaseSummary":    summary,
			"LinkedLpas":     objectionCandidates(summary.DigitalLpa),
			"Form":           objectionForm{},
			"ObjectionTypes": objectionTypes,
		}

		if c.Request.Method != http.MethodPost {
			return renderer.HTML(c, http.StatusOK, "add-objection.html", data)
		}

		var form objectionForm
		if err := c.ShouldBind(&form); err != nil {
			return badRequestError{err: err}
		}
		data["Form"] = form

		err = client.AddObjection(ctx, sirius.ObjectionRequest{
			LpaUids:       form.LpaUids,
			ReceivedDate:  sirius.DateFromParts(form.ReceivedDay, form.ReceivedMonth, form.ReceivedYear),
			ObjectionType: form.ObjectionType,
			Notes:         form.Notes,
		})
		if ve, ok := sirius.IsValidationError(err); ok {
			data["Error"] = ve
			return renderer.HTML(c, http.StatusBadRequest, "add-objection.html", data)
		} else if err != nil {
			return err
		}

		return RedirectError(fmt.Sprintf("/lpa/%s", uid))
	}
}
