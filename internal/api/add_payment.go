package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"github.com/gotrs-io/lpa-frontend/internal/sirius"
)

type AddPaymentClient interface {
	RefDataByCategory(ctx sirius.Context, category string) ([]sirius.RefDataItem, error)
	AddPayment(ctx sirius.Context, caseID int, amount int, source string, paymentDate sirius.DateString) error
	Case(ctx sirius.Context, id int) (sirius.Case, error)
}

const requiredReason = "Value is required and can't be empty"

func AddPayment(client AddPaymentClient, renderer Renderer, flash *flashStore) Handler {
	return func(c *gin.Context) error {
		caseID, err := strconv.Atoi(c.Query("id"))
		if err != nil {
			return badRequestError{err: err}
		}

		ctx := getContext(c)

		var (
			lpa     sirius.Case
			sources []sirius.RefDataItem
		)

		group, groupCtx := errgroup.WithContext(ctx.Context)
		group.Go(func() (err error) {
			lpa, err = client.Case(ctx.With(groupCtx), caseID)
			return err
		})
		group.Go(func() (err error) {
			sources, err = client.RefDataByCategory(ctx.With(groupCtx), sirius.PaymentSourceCategory)
			return err
		})
		if err := group.Wait(); err != nil {
			return err
		}

		returnURL := fmt.Sprintf("/payments/%d", caseID)
		if lpa.IsDigitalLpa() {
			returnURL = fmt.Sprintf("/lpa/%s/payments", lpa.UID)
		}

		amount := postFormString(c, "amount")
		source := postFormString(c, "source")
		paymentDate := postFormDateString(c, "paymentDate")

		data := gin.H{
			"XSRFToken":      ctx.XSRFToken,
			"Case":           lpa,
			"PaymentSources": sources,
			"Amount":         amount,
			"Source":         source,
			"PaymentDate":    paymentDate,
			"ReturnUrl":      returnURL,
		}

		if c.Request.Method != http.MethodPost {
			return renderer.HTML(c, http.StatusOK, "add-payment.html", data)
		}

		if !sirius.IsAmountValid(amount) {
			ve := sirius.ValidationError{
				Field: sirius.FieldErrors{
					"amount": {"reason": "Please enter the amount to 2 decimal places"},
				},
			}
			if source == "" {
				ve.Field["source"] = map[string]string{"reason": requiredReason}
			}
			if paymentDate == "" {
				ve.Field["paymentDate"] = map[string]string{"reason": requiredReason}
			}

			data["Error"] = ve
			return renderer.HTML(c, http.StatusBadRequest, "add-payment.html", data)
		}

		pounds, err := strconv.ParseFloat(amount, 64)
		if err != nil {
			return badRequestError{err: err}
		}

		err = client.AddPayment(ctx, caseID, sirius.PoundsToPence(pounds), source, paymentDate)
		if ve, ok := sirius.IsValidationError(err); ok {
			data["Error"] = ve
			return renderer.HTML(c, http.StatusBadRequest, "add-payment.html", data)
		} else if err != nil {
			return err
		}

		flash.Set(c, FlashNotification{Title: "Payment added"})
		return RedirectError(returnURL)
	}
}
