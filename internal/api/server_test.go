package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gotrs-io/lpa-frontend/internal/sirius"
)

func newTestRouter(client Client, renderer Renderer) *gin.Engine {
	return NewRouter(client, renderer, Options{
		Prefix:          "/lpa-frontend",
		SiriusPublicURL: "http://sirius",
		Logger:          slog.New(slog.NewTextHandler(io.Discard, nil)),
		Registry:        prometheus.NewRegistry(),
	})
}

func TestRouterHealthCheck(t *testing.T) {
	router := newTestRouter(&mockClient{}, &fakeRenderer{})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/lpa-frontend/health-check", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestRouterNotFound(t *testing.T) {
	renderer := &fakeRenderer{}
	router := newTestRouter(&mockClient{}, renderer)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/lpa-frontend/nowhere", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "error.html", renderer.name)
	assert.Equal(t, http.StatusNotFound, renderer.data["Code"])
}

func TestRouterMetrics(t *testing.T) {
	router := newTestRouter(&mockClient{}, &fakeRenderer{})

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/lpa-frontend/health-check", nil))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "lpa_frontend_http_requests_total")
}

func TestRouterRedirectsUnauthorised(t *testing.T) {
	client := &mockClient{}
	client.On("SearchUsers", anyCtx, "sys").Return([]sirius.User(nil), sirius.StatusError{Code: http.StatusUnauthorized})

	router := newTestRouter(client, &fakeRenderer{})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/lpa-frontend/search-users?q=sys", nil))

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "http://sirius/auth?redirect=%2Flpa-frontend%2Fsearch-users", w.Header().Get("Location"))
}

func TestRouterRedirectError(t *testing.T) {
	client := &mockClient{}
	client.On("Case", anyCtx, 4).Return(sirius.Case{ID: 4, CaseType: "LPA"}, nil)
	client.On("RefDataByCategory", anyCtx, sirius.PaymentSourceCategory).Return(paymentSources, nil)
	client.On("AddPayment", anyCtx, 4, 4100, "PHONE", sirius.DateString("2022-04-25")).Return(nil)

	router := newTestRouter(client, &fakeRenderer{})

	req := httptest.NewRequest(http.MethodPost, "/lpa-frontend/add-payment?id=4", stringsReader("amount=41.00&source=PHONE&paymentDate=2022-04-25"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/lpa-frontend/payments/4", w.Header().Get("Location"))
}

func TestErrorHandlerProblemJSON(t *testing.T) {
	ve := sirius.ValidationError{Detail: "Bad", Field: sirius.FieldErrors{"term": {"reason": "too short"}}}

	client := &mockClient{}
	client.On("SearchPersons", anyCtx, "a").Return([]sirius.Person(nil), ve)

	router := newTestRouter(client, &fakeRenderer{})

	req := httptest.NewRequest(http.MethodGet, "/lpa-frontend/search-persons?q=a", nil)
	req.Header.Set("Accept", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "application/problem+json", w.Header().Get("Content-Type"))

	var problem ProblemError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &problem))
	assert.Equal(t, "Bad", problem.Detail)
	assert.Equal(t, "too short", problem.ValidationErrors["term"]["reason"])
}

func TestErrorHandlerStatusError(t *testing.T) {
	renderer := &fakeRenderer{}
	h := &errorHandler{renderer: renderer, siriusPublicURL: "http://sirius"}

	w, _, _ := serve(func(c *gin.Context) error {
		h.handle(c, sirius.StatusError{Code: http.StatusForbidden, CorrelationId: "abc"})
		return nil
	}, testRequest{target: "/x"})

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "abc", renderer.data["CorrelationId"])
	assert.Equal(t, "http://sirius", renderer.data["SiriusURL"])
}

func TestErrorHandlerCancelled(t *testing.T) {
	renderer := &fakeRenderer{}
	h := &errorHandler{renderer: renderer}

	_, c, _ := serve(func(c *gin.Context) error {
		h.handle(c, context.Canceled)
		return nil
	}, testRequest{target: "/x"})

	assert.Equal(t, 499, c.Writer.Status())
	assert.Zero(t, renderer.calls)
}

func TestErrorHandlerRenderFailure(t *testing.T) {
	renderer := &fakeRenderer{err: errors.New("template broken")}
	h := &errorHandler{renderer: renderer}

	w, _, _ := serve(func(c *gin.Context) error {
		h.handle(c, errors.New("boom"))
		return nil
	}, testRequest{target: "/x"})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Could not generate error template", w.Body.String())
}
