// Package e2e drives the frontend in a real browser against the stub
// Sirius server. Both must be running; see tests/e2e/config for the
// environment variables that point at them.
package e2e

import (
	"context"
	"testing"
	"time"

	"github.com/playwright-community/playwright-go"
	"github.com/stretchr/testify/require"

	"github.com/gotrs-io/lpa-frontend/tests/e2e/helpers"
)

var expect = playwright.NewPlaywrightAssertions()

// newSession returns a reset stub server and an open page.
func newSession(t *testing.T) (*helpers.MockHelper, *helpers.BrowserHelper, context.Context) {
	t.Helper()

	mocks := helpers.NewMockHelper(t)
	browser := helpers.NewBrowserHelper(t)
	browser.Setup()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	t.Cleanup(cancel)

	return mocks, browser, ctx
}

func visible(t *testing.T, loc playwright.Locator) {
	t.Helper()
	require.NoError(t, expect.Locator(loc).ToBeVisible())
}

func hiddenLocator(t *testing.T, loc playwright.Locator) {
	t.Helper()
	require.NoError(t, expect.Locator(loc).ToBeHidden())
}
