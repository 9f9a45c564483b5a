package client

import (
	"errors"
	"strings"
	"time"

	"github.com/focalhq/cli/pkg/config"
	"github.com/focalhq/cli/pkg/credentials"
	"github.com/focalhq/cli/pkg/logger"
	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
)

// ErrSessionExpired is returned when the server rejects the stored token.
// The stored session is torn down before this is surfaced, so the caller
// must not retry with the old credentials.
var ErrSessionExpired = errors.New("session expired: run 'focal auth login' to sign in again")

var httpClient *resty.Client
var authToken string
var onUnauthorized func()

// Init initializes the HTTP client
func Init() {
	httpClient = resty.New()

	baseURL := config.GetString("api.base_url")
	timeout := time.Duration(config.GetInt("api.timeout")) * time.Second

	httpClient.SetBaseURL(baseURL)
	httpClient.SetTimeout(timeout)
	httpClient.SetHeader("User-Agent", "Focal-CLI/0.1.0")

	httpClient.OnBeforeRequest(func(c *resty.Client, req *resty.Request) error {
		// Request ID lets the server correlate CLI traffic in its logs
		req.Header.Set("X-Request-ID", uuid.NewString())
		logger.Debug("HTTP Request", "method", req.Method, "url", req.URL)
		return nil
	})

	httpClient.OnAfterResponse(func(c *resty.Client, resp *resty.Response) error {
		logger.Debug("HTTP Response", "status", resp.StatusCode())

		// A 401 on an authenticated call invalidates every subsequent
		// authenticated operation, not just this one: tear the session
		// down globally and fail the in-flight call.
		if resp.StatusCode() == 401 && authToken != "" && !isAuthEntrypoint(resp.Request.URL) {
			logger.Warn("Session rejected by server, clearing stored credentials")
			teardownSession()
			return ErrSessionExpired
		}

		return nil
	})
}

// isAuthEntrypoint reports whether the URL is a login/signup call, which may
// legitimately return 401 without invalidating a session.
func isAuthEntrypoint(url string) bool {
	return strings.Contains(url, "/auth/login") || strings.Contains(url, "/auth/signup")
}

func teardownSession() {
	if err := credentials.Delete(); err != nil {
		logger.Error("Failed to delete credentials", "error", err)
	}
	ClearAuthToken()
	if onUnauthorized != nil {
		onUnauthorized()
	}
}

// OnUnauthorized registers a callback invoked after a 401-triggered session
// teardown, so in-memory session state can be cleared alongside the disk
// store.
func OnUnauthorized(fn func()) {
	onUnauthorized = fn
}

// GetClient returns the HTTP client
func GetClient() *resty.Client {
	if httpClient == nil {
		Init()
	}
	return httpClient
}

// SetAuthToken sets the authorization token
func SetAuthToken(token string) {
	if httpClient == nil {
		Init()
	}
	authToken = token
	httpClient.SetHeader("Authorization", "Bearer "+token)
}

// ClearAuthToken clears the authorization token
func ClearAuthToken() {
	authToken = ""
	if httpClient == nil {
		Init()
		return
	}
	httpClient.Header.Del("Authorization")
}

// HasAuthToken reports whether a bearer token is currently armed
func HasAuthToken() bool {
	return authToken != ""
}
