package client

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/focalhq/cli/pkg/config"
	"github.com/focalhq/cli/pkg/credentials"
	"github.com/spf13/viper"
)

func setupTestServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := config.Init(path); err != nil {
		t.Fatalf("config.Init failed: %v", err)
	}

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	viper.Set("api.base_url", server.URL)

	// Force re-init against the test server
	httpClient = nil
	authToken = ""
	onUnauthorized = nil

	return server
}

// TestGetClientInitialization validates client initialization
func TestGetClientInitialization(t *testing.T) {
	setupTestServer(t, func(w http.ResponseWriter, r *http.Request) {})

	client := GetClient()
	if client == nil {
		t.Fatal("GetClient should not return nil")
	}
}

// TestGetClientSingleton validates that GetClient returns same instance
func TestGetClientSingleton(t *testing.T) {
	setupTestServer(t, func(w http.ResponseWriter, r *http.Request) {})

	client1 := GetClient()
	client2 := GetClient()

	if client1 != client2 {
		t.Error("GetClient should return same instance")
	}
}

// TestBearerHeaderInjection validates the Authorization header is attached
func TestBearerHeaderInjection(t *testing.T) {
	var gotAuth string
	setupTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusOK)
	})

	SetAuthToken("tok_12345")

	_, err := GetClient().R().Get("/api/v1/photos/feed")
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}

	if gotAuth != "Bearer tok_12345" {
		t.Errorf("Expected Bearer token header, got %q", gotAuth)
	}
}

// TestNoBearerHeaderWhenLoggedOut validates no Authorization header without a token
func TestNoBearerHeaderWhenLoggedOut(t *testing.T) {
	var gotAuth string
	setupTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusOK)
	})

	_, err := GetClient().R().Get("/api/v1/photos/feed")
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}

	if gotAuth != "" {
		t.Errorf("Expected no Authorization header, got %q", gotAuth)
	}
}

// TestRequestIDHeader validates each request carries a request ID
func TestRequestIDHeader(t *testing.T) {
	seen := make(map[string]bool)
	setupTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		seen[r.Header.Get("X-Request-ID")] = true
		w.WriteHeader(http.StatusOK)
	})

	for i := 0; i < 3; i++ {
		if _, err := GetClient().R().Get("/ping"); err != nil {
			t.Fatalf("Request failed: %v", err)
		}
	}

	if seen[""] {
		t.Error("Requests should always carry X-Request-ID")
	}
	if len(seen) != 3 {
		t.Errorf("Expected 3 distinct request IDs, got %d", len(seen))
	}
}

// TestUnauthorizedTeardown validates 401 clears the session and fails the call
func TestUnauthorizedTeardown(t *testing.T) {
	setupTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	if err := credentials.Save(&credentials.Credentials{Token: "stale"}); err != nil {
		t.Fatalf("Failed to seed credentials: %v", err)
	}

	callbackFired := false
	OnUnauthorized(func() { callbackFired = true })
	SetAuthToken("stale")

	_, err := GetClient().R().Get("/api/v1/photos/feed")
	if err == nil {
		t.Fatal("401 should fail the in-flight call")
	}
	if !errors.Is(err, ErrSessionExpired) {
		t.Errorf("Expected ErrSessionExpired, got %v", err)
	}

	if HasAuthToken() {
		t.Error("Auth token should be cleared after 401")
	}

	if !callbackFired {
		t.Error("OnUnauthorized callback should fire on teardown")
	}

	creds, loadErr := credentials.Load()
	if loadErr != nil {
		t.Fatalf("Load after teardown failed: %v", loadErr)
	}
	if creds != nil {
		t.Error("Stored credentials should be deleted after 401")
	}
}

// TestLoginEndpointExemptFrom401Policy validates failed logins don't tear down
func TestLoginEndpointExemptFrom401Policy(t *testing.T) {
	setupTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	SetAuthToken("current")

	resp, err := GetClient().R().Post("/api/v1/auth/login")
	if err != nil {
		t.Fatalf("Login 401 should not become a transport error: %v", err)
	}

	if resp.StatusCode() != http.StatusUnauthorized {
		t.Errorf("Expected 401 passthrough, got %d", resp.StatusCode())
	}

	if !HasAuthToken() {
		t.Error("Existing token should survive a failed login attempt")
	}
}

// TestUnauthenticated401NoTeardown validates 401 without a token is a plain error
func TestUnauthenticated401NoTeardown(t *testing.T) {
	setupTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	resp, err := GetClient().R().Get("/api/v1/photos/feed")
	if err != nil {
		t.Fatalf("401 without armed token should not fail transport: %v", err)
	}

	if resp.StatusCode() != http.StatusUnauthorized {
		t.Errorf("Expected 401 passthrough, got %d", resp.StatusCode())
	}
}

// TestClearAuthToken validates auth token clearing
func TestClearAuthToken(t *testing.T) {
	var gotAuth string
	setupTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusOK)
	})

	SetAuthToken("tok")
	ClearAuthToken()

	if HasAuthToken() {
		t.Error("HasAuthToken should be false after clear")
	}

	if _, err := GetClient().R().Get("/ping"); err != nil {
		t.Fatalf("Request failed: %v", err)
	}

	if gotAuth != "" {
		t.Errorf("Authorization header should be gone after clear, got %q", gotAuth)
	}
}

// TestClearAuthTokenMultipleTimes validates repeated clearing
func TestClearAuthTokenMultipleTimes(t *testing.T) {
	setupTestServer(t, func(w http.ResponseWriter, r *http.Request) {})

	SetAuthToken("token1")
	ClearAuthToken()
	ClearAuthToken()
	ClearAuthToken()

	if GetClient() == nil {
		t.Error("Client should still be usable after multiple clears")
	}
}

// TestUserAgentHeader validates the User-Agent string
func TestUserAgentHeader(t *testing.T) {
	var gotAgent string
	setupTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotAgent = r.Header.Get("User-Agent")
		w.WriteHeader(http.StatusOK)
	})

	if _, err := GetClient().R().Get("/ping"); err != nil {
		t.Fatalf("Request failed: %v", err)
	}

	if gotAgent != "Focal-CLI/0.1.0" {
		t.Errorf("Expected Focal-CLI/0.1.0 user agent, got %q", gotAgent)
	}
}
