package api

import (
	"net/http"
	"strings"
	"testing"
)

// TestParseErrorMessagePayload validates message-field error parsing
func TestParseErrorMessagePayload(t *testing.T) {
	setupAPIServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusBadRequest, `{"message": "caption too long", "code": "validation_failed"}`)
	}))

	_, err := GetFeed(1, 20)
	if err == nil {
		t.Fatal("Expected error for 400 response")
	}

	apiErr, ok := err.(*APIError)
	if !ok {
		t.Fatalf("Expected *APIError, got %T", err)
	}

	if apiErr.Message != "caption too long" {
		t.Errorf("Unexpected message: %s", apiErr.Message)
	}
	if apiErr.Code != "validation_failed" {
		t.Errorf("Unexpected code: %s", apiErr.Code)
	}
	if !strings.Contains(apiErr.Error(), "caption too long") {
		t.Errorf("Error string should carry the message: %s", apiErr.Error())
	}
}

// TestParseErrorNonJSONBody validates fallback for unstructured errors
func TestParseErrorNonJSONBody(t *testing.T) {
	setupAPIServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("<html>bad gateway</html>"))
	}))

	_, err := GetFeed(1, 20)
	if err == nil {
		t.Fatal("Expected error for 502 response")
	}

	apiErr, ok := err.(*APIError)
	if !ok {
		t.Fatalf("Expected *APIError, got %T", err)
	}

	if apiErr.Code != "unknown_error" {
		t.Errorf("Expected unknown_error code, got %s", apiErr.Code)
	}
	if apiErr.StatusCode != 502 {
		t.Errorf("Expected status 502, got %d", apiErr.StatusCode)
	}
	if !IsServerError(err) {
		t.Error("502 should count as a server error")
	}
}

// TestErrorClassifiers validates status classification helpers
func TestErrorClassifiers(t *testing.T) {
	testCases := []struct {
		status       int
		unauthorized bool
		forbidden    bool
		notFound     bool
		serverError  bool
		name         string
	}{
		{401, true, false, false, false, "unauthorized"},
		{403, false, true, false, false, "forbidden"},
		{404, false, false, true, false, "not found"},
		{500, false, false, false, true, "internal error"},
		{503, false, false, false, true, "unavailable"},
		{400, false, false, false, false, "bad request"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := &APIError{StatusCode: tc.status, Message: "x"}

			if IsUnauthorized(err) != tc.unauthorized {
				t.Errorf("IsUnauthorized mismatch for %d", tc.status)
			}
			if IsForbidden(err) != tc.forbidden {
				t.Errorf("IsForbidden mismatch for %d", tc.status)
			}
			if IsNotFound(err) != tc.notFound {
				t.Errorf("IsNotFound mismatch for %d", tc.status)
			}
			if IsServerError(err) != tc.serverError {
				t.Errorf("IsServerError mismatch for %d", tc.status)
			}
		})
	}
}

// TestClassifiersRejectPlainErrors validates non-APIError inputs
func TestClassifiersRejectPlainErrors(t *testing.T) {
	err := http.ErrBodyNotAllowed

	if IsUnauthorized(err) || IsForbidden(err) || IsNotFound(err) || IsServerError(err) {
		t.Error("Plain errors should not match any status classifier")
	}
}
