package api

import (
	"fmt"
	"net/http"
	"slices"

	"github.com/gin-gonic/gin"

	"github.com/gotrs-io/lpa-frontend/internal/sirius"
)

type ManageAttorneyDecisionsClient interface {
	CaseSummary(ctx sirius.Context, uid string, presignImages bool) (sirius.CaseSummary, error)
	ManageAttorneyDecisions(ctx sirius.Context, caseUID string, decisions []sirius.AttorneyDecisions) error
}

type attorneyDecisionsForm struct {
	DecisionAttorneyUids []string `form:"decisionAttorney"`
	SkipDecisionAttorney string   `form:"skipDecisionAttorney"`
	ConfirmDecisions     *string  `form:"confirmDecisions"`
}

type AttorneyDetails struct {
	AttorneyName    string
	AttorneyDob     string
	AppointmentType string
}

const attorneyDecisionsReason = "Select who cannot make joint decisions, or select 'Joint decisions can be made by all attorneys'"

// ManageAttorneyDecisions records which active attorneys cannot act jointly.
// The first POST shows a confirmation page; the confirmed POST saves.
func ManageAttorneyDecisions(client ManageAttorneyDecisionsClient, renderer Renderer, flash *flashStore) Handler {
	return func(c *gin.Context) error {
		uid := c.Param("uid")
		ctx := getContext(c)

		summary, err := client.CaseSummary(ctx, uid, false)
		if err != nil {
			return err
		}

		store := summary.DigitalLpa.LpaStoreData
		active := store.ActiveAttorneys()
		replacements := 0
		for _, a := range store.Attorneys {
			if a.AppointmentType == sirius.ReplacementAppointmentType && a.Status == sirius.InactiveAttorneyStatus {
				replacements++
			}
		}

		replacementDecisions := store.HowReplacementAttorneysMakeDecisions
		if len(active) > 1 && replacements > 1 && replacementDecisions == "" {
			replacementDecisions = store.HowAttorneysMakeDecisions
		}

		data := gin.H{
			"XSRFToken":                    ctx.XSRFToken,
			"CaseSummary":                  summary,
			"DecisionAttorneys":            active,
			"ActiveAttorneyCount":          len(active),
			"IsSoleAttorney":               len(active) == 1,
			"ReplacementAttorneyCount":     replacements,
			"Decisions":                    store.HowAttorneysMakeDecisions,
			"ReplacementAttorneyDecisions": replacementDecisions,
			"Form":                         attorneyDecisionsForm{},
		}

		if c.Request.Method != http.MethodPost {
			return renderer.HTML(c, http.StatusOK, "manage-attorney-decisions.html", data)
		}

		var form attorneyDecisionsForm
		if err := c.ShouldBind(&form); err != nil {
			return badRequestError{err: err}
		}
		data["Form"] = form

		skip := form.SkipDecisionAttorney == "yes"
		if (len(form.DecisionAttorneyUids) == 0) != skip {
			data["Error"] = sirius.ValidationError{
				Field: sirius.FieldErrors{
					"decisionAttorney": {"reason": attorneyDecisionsReason},
				},
			}
			return renderer.HTML(c, http.StatusBadRequest, "manage-attorney-decisions.html", data)
		}

		if form.ConfirmDecisions == nil {
			var details []AttorneyDetails
			for _, a := range active {
				if slices.Contains(form.DecisionAttorneyUids, a.Uid) {
					details = append(details, AttorneyDetails{
						AttorneyName:    a.FullName(),
						AttorneyDob:     a.DateOfBirth,
						AppointmentType: a.AppointmentType,
					})
				}
			}
			data["DecisionAttorneysDetails"] = details

			return renderer.HTML(c, http.StatusOK, "manage-attorney-decisions-confirm.html", data)
		}

		decisions := make([]sirius.AttorneyDecisions, len(active))
		for i, a := range active {
			decisions[i] = sirius.AttorneyDecisions{
				UID:                      a.Uid,
				CannotMakeJointDecisions: !skip && slices.Contains(form.DecisionAttorneyUids, a.Uid),
			}
		}

		err = client.ManageAttorneyDecisions(ctx, uid, decisions)
		if ve, ok := sirius.IsValidationError(err); ok {
			data["Error"] = ve
			return renderer.HTML(c, http.StatusBadRequest, "manage-attorney-decisions.html", data)
		} else if err != nil {
			return err
		}

		flash.Set(c, FlashNotification{Title: "Update saved"})
		return RedirectError(fmt.Sprintf("/lpa/%s", uid))
	}
}
