package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/gotrs-io/lpa-frontend/internal/sirius"
	"github.com/gotrs-io/lpa-frontend/internal/telemetry"
)

// Handler is a gin handler that reports failure by returning an error.
type Handler func(c *gin.Context) error

// RedirectError sends the browser to a path under the router prefix.
type RedirectError string

func (e RedirectError) Error() string {
	return "redirect to " + string(e)
}

func (e RedirectError) To() string {
	return string(e)
}

// ProblemError is the RFC 7807 body sent to JSON clients.
type ProblemError struct {
	Title            string             `json:"title"`
	Detail           string             `json:"detail"`
	ValidationErrors sirius.FieldErrors `json:"validationErrors"`
}

type unauthorizedError interface {
	IsUnauthorized() bool
}

type notFoundError struct {
	path string
}

func (e notFoundError) Error() string {
	return "page not found: " + e.path
}

type badRequestError struct {
	err error
}

func (e badRequestError) Error() string {
	return e.err.Error()
}

func (e badRequestError) Unwrap() error {
	return e.err
}

type errorHandler struct {
	renderer        Renderer
	prefix          string
	siriusPublicURL string
}

func (h *errorHandler) wrap(next Handler) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := next(c); err != nil {
			h.handle(c, err)
		}
	}
}

func (h *errorHandler) handle(c *gin.Context, err error) {
	if errors.Is(err, context.Canceled) {
		c.Status(499)
		return
	}

	var unauthorized unauthorizedError
	if errors.As(err, &unauthorized) && unauthorized.IsUnauthorized() {
		redirect := url.QueryEscape(c.Request.URL.Path)
		c.Redirect(http.StatusFound, fmt.Sprintf("%s/auth?redirect=%s", h.siriusPublicURL, redirect))
		return
	}

	var redirect RedirectError
	if errors.As(err, &redirect) {
		c.Redirect(http.StatusFound, h.prefix+redirect.To())
		return
	}

	code := http.StatusInternalServerError
	correlationId := ""
	logger := telemetry.LoggerFrom(c)

	var statusErr sirius.StatusError
	var notFound notFoundError
	var badRequest badRequestError
	switch {
	case errors.As(err, &statusErr):
		code = statusErr.Code
		correlationId = statusErr.CorrelationId
	case errors.As(err, &notFound):
		code = http.StatusNotFound
	case errors.As(err, &badRequest):
		code = http.StatusBadRequest
	}

	if strings.Contains(c.GetHeader("Accept"), "application/json") {
		problem := ProblemError{Title: err.Error()}

		if ve, ok := sirius.IsValidationError(err); ok {
			code = http.StatusBadRequest
			problem.Detail = ve.Detail
			problem.ValidationErrors = ve.Field
		}

		if code == http.StatusInternalServerError {
			logger.Error("request failed", "error", err)
		}

		c.Header("Content-Type", "application/problem+json")
		c.JSON(code, problem)
		return
	}

	if code == http.StatusInternalServerError {
		logger.Error("request failed", "error", err)
	}

	renderErr := h.renderer.HTML(c, code, "error.html", gin.H{
		"SiriusURL":     h.siriusPublicURL,
		"Code":          code,
		"Error":         err.Error(),
		"CorrelationId": correlationId,
	})
	if renderErr != nil {
		logger.Error("could not render error page", "error", renderErr)
		c.String(http.StatusInternalServerError, "Could not generate error template")
	}
}
