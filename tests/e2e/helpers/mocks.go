package helpers

import (
	"context"
	"strings"
	"testing"

	"github.com/gotrs-io/lpa-frontend/internal/mocks"
	"github.com/gotrs-io/lpa-frontend/tests/e2e/config"
)

// MockHelper gives a test a clean stub server: mappings are reset before the
// test and dumped to the log if it fails.
type MockHelper struct {
	*mocks.Client
	t *testing.T
}

// NewMockHelper resets the stub server at MOCK_SERVER_URI. The test is
// skipped when the stub server or the frontend is not running.
func NewMockHelper(t *testing.T) *MockHelper {
	t.Helper()

	cfg := config.GetConfig()
	if !config.Reachable(cfg.MockServerURI + "/__admin/mappings") {
		t.Skipf("mock server not reachable at %s", cfg.MockServerURI)
	}
	if !config.Reachable(cfg.BaseURL + "/health-check") {
		t.Skipf("frontend not reachable at %s", cfg.BaseURL)
	}

	h := &MockHelper{Client: mocks.New(cfg.MockServerURI), t: t}
	if err := h.Reset(context.Background()); err != nil {
		t.Fatalf("resetting mock server: %v", err)
	}

	t.Cleanup(func() {
		if !t.Failed() {
			return
		}

		var b strings.Builder
		if err := h.DumpMappings(context.Background(), &b); err != nil {
			t.Logf("could not dump mappings: %v", err)
			return
		}
		t.Log(b.String())
	})

	return h
}

// Must fails the test when registering a stub failed.
func (h *MockHelper) Must(err error) {
	h.t.Helper()
	if err != nil {
		h.t.Fatalf("registering stub: %v", err)
	}
}
