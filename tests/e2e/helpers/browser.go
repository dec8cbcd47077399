package helpers

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/playwright-community/playwright-go"

	"github.com/gotrs-io/lpa-frontend/tests/e2e/config"
)

// BrowserHelper provides browser setup and teardown for tests
type BrowserHelper struct {
	Playwright *playwright.Playwright
	Browser    playwright.Browser
	Context    playwright.BrowserContext
	Page       playwright.Page
	Config     *config.TestConfig
	t          *testing.T
}

// NewBrowserHelper creates a new browser helper instance
func NewBrowserHelper(t *testing.T) *BrowserHelper {
	return &BrowserHelper{
		Config: config.GetConfig(),
		t:      t,
	}
}

// Setup starts Playwright and opens a page. Tests are skipped rather than
// failed when no browser can be started.
func (b *BrowserHelper) Setup() {
	b.t.Helper()

	if os.Getenv("PLAYWRIGHT_PREINSTALLED") != "1" {
		_ = playwright.Install(&playwright.RunOptions{Browsers: []string{"chromium"}})
	}

	pw, err := playwright.Run()
	if err != nil {
		b.t.Skipf("could not start playwright: %v", err)
	}
	b.Playwright = pw

	browser, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(b.Config.Headless),
		SlowMo:   playwright.Float(float64(b.Config.SlowMo)),
	})
	if err != nil {
		b.TearDown()
		b.t.Skipf("could not launch browser: %v", err)
	}
	b.Browser = browser

	opts := playwright.BrowserNewContextOptions{
		Viewport: &playwright.Size{Width: 1280, Height: 720},
		BaseURL:  playwright.String(b.Config.BaseURL),
	}
	if b.Config.Videos {
		opts.RecordVideo = &playwright.RecordVideo{Dir: "./test-results/videos"}
	}

	ctx, err := browser.NewContext(opts)
	if err != nil {
		b.t.Fatalf("could not create context: %v", err)
	}
	b.Context = ctx

	page, err := ctx.NewPage()
	if err != nil {
		b.t.Fatalf("could not create page: %v", err)
	}
	page.SetDefaultTimeout(float64(b.Config.Timeout.Milliseconds()))
	b.Page = page

	b.t.Cleanup(b.TearDown)
}

// TearDown closes the browser and cleans up resources
func (b *BrowserHelper) TearDown() {
	if b.t.Failed() && b.Config.Screenshots && b.Page != nil {
		name := strings.NewReplacer("/", "_", " ", "_").Replace(b.t.Name())
		path := filepath.Join("test-results", "screenshots", fmt.Sprintf("%s_%d.png", name, time.Now().Unix()))
		if _, err := b.Page.Screenshot(playwright.PageScreenshotOptions{Path: playwright.String(path)}); err == nil {
			b.t.Logf("screenshot saved to %s", path)
		}
	}

	if b.Page != nil {
		_ = b.Page.Close()
		b.Page = nil
	}
	if b.Context != nil {
		_ = b.Context.Close()
		b.Context = nil
	}
	if b.Browser != nil {
		_ = b.Browser.Close()
		b.Browser = nil
	}
	if b.Playwright != nil {
		_ = b.Playwright.Stop()
		b.Playwright = nil
	}
}

// NavigateTo navigates to a path relative to the base URL
func (b *BrowserHelper) NavigateTo(path string) {
	b.t.Helper()

	if _, err := b.Page.Goto(b.Config.BaseURL + path); err != nil {
		b.t.Fatalf("navigating to %s: %v", path, err)
	}
}
