// Package config resolves where the browser tests find the frontend and the
// stub Sirius server.
package config

import (
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	DefaultBaseURL       = "http://localhost:8888"
	DefaultMockServerURI = "http://localhost:8080"
)

// TestConfig holds all configuration for E2E tests
type TestConfig struct {
	BaseURL       string
	MockServerURI string
	Timeout       time.Duration
	Headless      bool
	SlowMo        int
	Screenshots   bool
	Videos        bool
}

// GetConfig returns the test configuration from environment variables
func GetConfig() *TestConfig {
	baseURL := strings.TrimSuffix(os.Getenv("BASE_URL"), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	mockURI := strings.TrimSuffix(os.Getenv("MOCK_SERVER_URI"), "/")
	if mockURI == "" {
		mockURI = DefaultMockServerURI
	}

	timeout := 10 * time.Second
	if v, err := time.ParseDuration(os.Getenv("E2E_TIMEOUT")); err == nil && v > 0 {
		timeout = v
	}

	slowMo, _ := strconv.Atoi(os.Getenv("SLOW_MO"))

	return &TestConfig{
		BaseURL:       baseURL,
		MockServerURI: mockURI,
		Timeout:       timeout,
		Headless:      os.Getenv("HEADLESS") != "false",
		SlowMo:        slowMo,
		Screenshots:   os.Getenv("SCREENSHOTS") != "false",
		Videos:        os.Getenv("VIDEOS") == "true",
	}
}

// Reachable reports whether url answers an HTTP GET within a second.
func Reachable(url string) bool {
	client := &http.Client{Timeout: time.Second}
	resp, err := client.Get(url)
	if err != nil {
		return false
	}
	_ = resp.Body.Close()
	return true
}
