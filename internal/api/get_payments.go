package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/gotrs-io/lpa-frontend/internal/sirius"
)

type GetPaymentsClient interface {
	Payments(ctx sirius.Context, caseID int) ([]sirius.Payment, error)
	Case(ctx sirius.Context, id int) (sirius.Case, error)
	CaseSummary(ctx sirius.Context, uid string, presignImages bool) (sirius.CaseSummary, error)
	RefDataByCategory(ctx sirius.Context, category string) ([]sirius.RefDataItem, error)
}

// GetPayments lists payments for a case identified by its numeric id.
func GetPayments(client GetPaymentsClient, renderer Renderer, flash *flashStore) Handler {
	return func(c *gin.Context) error {
		caseID, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return badRequestError{err: err}
		}

		ctx := getContext(c)

		lpa, err := client.Case(ctx, caseID)
		if err != nil {
			return err
		}

		return renderPayments(c, client, renderer, flash, lpa, nil)
	}
}

// GetLpaPayments lists payments for a digital LPA alongside its summary.
func GetLpaPayments(client GetPaymentsClient, renderer Renderer, flash *flashStore) Handler {
	return func(c *gin.Context) error {
		summary, err := client.CaseSummary(getContext(c), c.Param("uid"), false)
		if err != nil {
			return err
		}

		lpa := sirius.Case{
			ID:       summary.DigitalLpa.SiriusData.ID,
			UID:      summary.DigitalLpa.UID,
			CaseType: string(sirius.CaseTypeDigitalLpa),
		}

		return renderPayments(c, client, renderer, flash, lpa, &summary)
	}
}

func renderPayments(c *gin.Context, client GetPaymentsClient, renderer Renderer, flash *flashStore, lpa sirius.Case, summary *sirius.CaseSummary) error {
	ctx := getContext(c)

	payments, err := client.Payments(ctx, lpa.ID)
	if err != nil {
		return err
	}

	totalPence := 0
	for _, p := range payments {
		pence, err := p.Amount.ToPence()
		if err != nil {
			return err
		}
		n, err := strconv.Atoi(pence)
		if err != nil {
			return err
		}
		totalPence += n
	}

	sources, err := client.RefDataByCategory(ctx, sirius.PaymentSourceCategory)
	if err != nil {
		return err
	}

	notification, err := flash.Get(c)
	if err != nil {
		return err
	}

	return renderer.HTML(c, http.StatusOK, "payments.html", gin.H{
		"XSRFToken":      ctx.XSRFToken,
		"Case":           lpa,
		"CaseSummary":    summary,
		"Payments":       payments,
		"PaymentSources": sources,
		"TotalPaid":      totalPence,
		"FlashMessage":   notification,
	})
}
