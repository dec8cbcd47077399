package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"github.com/gotrs-io/lpa-frontend/internal/sirius"
)

type LpaClient interface {
	CaseSummary(ctx sirius.Context, uid string, presignImages bool) (sirius.CaseSummary, error)
	ProgressIndicatorsForDigitalLpa(ctx sirius.Context, uid string) ([]sirius.ProgressIndicator, error)
	ObjectionsForCase(ctx sirius.Context, uid string) ([]sirius.Objection, error)
}

// IndicatorView pairs a progress indicator with the LPA it belongs to so the
// template can link to the relevant section.
type IndicatorView struct {
	UID string
	sirius.ProgressIndicator
}

func GetApplicationProgress(client LpaClient, renderer Renderer, flash *flashStore) Handler {
	return func(c *gin.Context) error {
		uid := c.Param("uid")
		ctx := getContext(c)

		var (
			summary    sirius.CaseSummary
			indicators []IndicatorView
		)

		group, groupCtx := errgroup.WithContext(ctx.Context)
		group.Go(func() (err error) {
			summary, err = client.CaseSummary(ctx.With(groupCtx), uid, false)
			return err
		})
		group.Go(func() error {
			list, err := client.ProgressIndicatorsForDigitalLpa(ctx.With(groupCtx), uid)
			if err != nil {
				return err
			}
			for _, v := range list {
				indicators = append(indicators, IndicatorView{UID: uid, ProgressIndicator: v})
			}
			return nil
		})
		if err := group.Wait(); err != nil {
			return err
		}

		notification, err := flash.Get(c)
		if err != nil {
			return err
		}

		return renderer.HTML(c, http.StatusOK, "lpa.html", gin.H{
			"CaseSummary":        summary,
			"DigitalLpa":         summary.DigitalLpa,
			"Donor":              summary.DigitalLpa.LpaStoreData.Donor,
			"ProgressIndicators": indicators,
			"FlashMessage":       notification,
		})
	}
}

func GetLpaDetails(client LpaClient, renderer Renderer) Handler {
	return func(c *gin.Context) error {
		uid := c.Param("uid")
		ctx := getContext(c)

		var (
			summary    sirius.CaseSummary
			objections []sirius.Objection
		)

		group, groupCtx := errgroup.WithContext(ctx.Context)
		group.Go(func() (err error) {
			summary, err = client.CaseSummary(ctx.With(groupCtx), uid, true)
			return err
		})
		group.Go(func() (err error) {
			objections, err = client.ObjectionsForCase(ctx.With(groupCtx), uid)
			return err
		})
		if err := group.Wait(); err != nil {
			return err
		}

		lpa := summary.DigitalLpa

		return renderer.HTML(c, http.StatusOK, "lpa-details.html", gin.H{
			"CaseSummary":          summary,
			"DigitalLpa":           lpa,
			"ActiveAttorneys":      lpa.LpaStoreData.ActiveAttorneys(),
			"ReplacementAttorneys": replacementAttorneys(lpa.LpaStoreData.Attorneys),
			"IsSoleAttorney":       len(lpa.LpaStoreData.ActiveAttorneys()) == 1,
			"Objections":           objections,
		})
	}
}

func replacementAttorneys(attorneys []sirius.LpaStoreAttorney) []sirius.LpaStoreAttorney {
	var list []sirius.LpaStoreAttorney
	for _, a := range attorneys {
		if a.AppointmentType == sirius.ReplacementAppointmentType && a.Status != sirius.ActiveAttorneyStatus {
			list = append(list, a)
		}
	}
	return list
}
