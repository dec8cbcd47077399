package e2e

import (
	"testing"

	"github.com/playwright-community/playwright-go"
	"github.com/stretchr/testify/require"
)

func TestAddressFinder(t *testing.T) {
	_, browser, _ := newSession(t)
	page := browser.Page

	browser.NavigateTo("/create-donor")

	finder := page.Locator(".app-address-finder")
	visible(t, finder)
	hiddenLocator(t, page.Locator("#f-addressLine1"))

	require.NoError(t, finder.Locator("input").Fill("SW1A 1AA"))
	require.NoError(t, finder.Locator("button", playwright.LocatorLocatorOptions{HasText: "Find address"}).Click())

	visible(t, finder.Locator("select"))
	require.NoError(t, expect.Locator(page.Locator("#f-addressLine1")).ToHaveValue("Buckingham Palace"))
	require.NoError(t, expect.Locator(page.Locator("#f-town")).ToHaveValue("London"))
	require.NoError(t, expect.Locator(page.Locator("#f-postcode")).ToHaveValue("SW1A 1AA"))
}

func TestAddressFinderNoResults(t *testing.T) {
	_, browser, _ := newSession(t)
	page := browser.Page

	browser.NavigateTo("/create-donor")

	finder := page.Locator(".app-address-finder")
	require.NoError(t, finder.Locator("input").Fill("ZZ1 1ZZ"))
	require.NoError(t, finder.Locator("button", playwright.LocatorLocatorOptions{HasText: "Find address"}).Click())

	errorMessage := finder.Locator(".govuk-error-message")
	visible(t, errorMessage)
	require.NoError(t, expect.Locator(errorMessage).ToContainText("No matching address found"))
	hiddenLocator(t, finder.Locator(".app-address-finder__results"))
}

func TestAddressFinderManualEntry(t *testing.T) {
	_, browser, _ := newSession(t)
	page := browser.Page

	browser.NavigateTo("/create-donor")

	hiddenLocator(t, page.Locator("#f-addressLine1"))
	require.NoError(t, page.Locator("a", playwright.PageLocatorOptions{HasText: "Enter address manually"}).Click())
	visible(t, page.Locator("#f-addressLine1"))
}
