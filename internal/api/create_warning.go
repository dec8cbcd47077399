package api

import (
	"fmt"
	"net/http"
	"slices"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/gotrs-io/lpa-frontend/internal/sirius"
)

type CreateWarningClient interface {
	RefDataByCategory(ctx sirius.Context, category string) ([]sirius.RefDataItem, error)
	CreateWarning(ctx sirius.Context, personID int, warningType, warningText string, caseIDs []int) error
	CasesByDonor(ctx sirius.Context, personID int) ([]sirius.Case, error)
}

// CreateWarning adds a warning to a donor and, optionally, some of their
// cases. A donor with a single case always has it selected.
func CreateWarning(client CreateWarningClient, renderer Renderer, flash *flashStore) Handler {
	return func(c *gin.Context) error {
		personID, err := strconv.Atoi(c.Query("id"))
		if err != nil {
			return badRequestError{err: err}
		}

		ctx := getContext(c)

		warningTypes, err := client.RefDataByCategory(ctx, sirius.WarningTypeCategory)
		if err != nil {
			return err
		}

		cases, err := client.CasesByDonor(ctx, personID)
		if err != nil {
			return err
		}

		data := gin.H{
			"XSRFToken":    ctx.XSRFToken,
			"WarningTypes": warningTypes,
			"Cases":        cases,
		}
		code := http.StatusOK

		if c.Request.Method == http.MethodPost {
			warningType := postFormString(c, "warningType")
			warningText := postFormString(c, "warningText")

			caseIDs, err := sliceAtoi(c.PostFormArray("case-id"))
			if err != nil {
				return badRequestError{err: err}
			}
			if len(cases) == 1 {
				caseIDs = []int{cases[0].ID}
			}

			err = client.CreateWarning(ctx, personID, warningType, warningText, caseIDs)
			if ve, ok := sirius.IsValidationError(err); ok {
				code = http.StatusBadRequest
				data["Error"] = ve
				data["WarningType"] = warningType
				data["WarningText"] = warningText
				data["SelectedCases"] = caseIDs
			} else if err != nil {
				return err
			} else {
				flash.Set(c, FlashNotification{Title: "Warning created"})

				for _, lpa := range cases {
					if lpa.IsDigitalLpa() && slices.Contains(caseIDs, lpa.ID) {
						return RedirectError(fmt.Sprintf("/lpa/%s", lpa.UID))
					}
				}

				data["Success"] = true
			}
		}

		return renderer.HTML(c, code, "create-warning.html", data)
	}
}
