package credentials

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/focalhq/cli/pkg/config"
)

func initTestConfig(t *testing.T) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := config.Init(path); err != nil {
		t.Fatalf("config.Init failed: %v", err)
	}
}

// TestLoadMissingFile validates load with no credentials file
func TestLoadMissingFile(t *testing.T) {
	initTestConfig(t)

	creds, err := Load()
	if err != nil {
		t.Fatalf("Load should not fail on missing file: %v", err)
	}

	if creds != nil {
		t.Error("Load should return nil credentials when file is absent")
	}
}

// TestSaveAndLoad validates round-trip persistence
func TestSaveAndLoad(t *testing.T) {
	initTestConfig(t)

	in := &Credentials{
		Token:       "tok_abc123",
		UserID:      "u42",
		Username:    "alice",
		DisplayName: "Alice A.",
		Role:        "user",
		Email:       "alice@example.com",
	}

	if err := Save(in); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	out, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if out == nil {
		t.Fatal("Load returned nil after Save")
	}

	if out.Token != in.Token {
		t.Errorf("Token mismatch: %s != %s", out.Token, in.Token)
	}
	if out.UserID != in.UserID {
		t.Errorf("UserID mismatch: %s != %s", out.UserID, in.UserID)
	}
	if out.DisplayName != in.DisplayName {
		t.Errorf("DisplayName mismatch: %s != %s", out.DisplayName, in.DisplayName)
	}
	if out.Role != in.Role {
		t.Errorf("Role mismatch: %s != %s", out.Role, in.Role)
	}
}

// TestSavePermissions validates the credentials file is owner-only
func TestSavePermissions(t *testing.T) {
	initTestConfig(t)

	if err := Save(&Credentials{Token: "tok"}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	info, err := os.Stat(config.GetCredentialsPath())
	if err != nil {
		t.Fatalf("Credentials file should exist: %v", err)
	}

	if perm := info.Mode().Perm(); perm != 0600 {
		t.Errorf("Expected permissions 0600, got %o", perm)
	}
}

// TestDelete validates credentials removal
func TestDelete(t *testing.T) {
	initTestConfig(t)

	if err := Save(&Credentials{Token: "tok"}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	if err := Delete(); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	creds, err := Load()
	if err != nil {
		t.Fatalf("Load after Delete failed: %v", err)
	}
	if creds != nil {
		t.Error("Credentials should be gone after Delete")
	}
}

// TestDeleteIdempotent validates repeated deletion is safe
func TestDeleteIdempotent(t *testing.T) {
	initTestConfig(t)

	if err := Delete(); err != nil {
		t.Errorf("Delete with no file should not fail: %v", err)
	}

	if err := Delete(); err != nil {
		t.Errorf("Second Delete should not fail: %v", err)
	}
}

// TestIsValid validates token presence check
func TestIsValid(t *testing.T) {
	testCases := []struct {
		creds  *Credentials
		expect bool
		name   string
	}{
		{&Credentials{Token: "tok"}, true, "token present"},
		{&Credentials{}, false, "empty token"},
		{nil, false, "nil credentials"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.creds.IsValid(); got != tc.expect {
				t.Errorf("Expected IsValid=%v, got %v", tc.expect, got)
			}
		})
	}
}

// TestIsAdmin validates role check
func TestIsAdmin(t *testing.T) {
	testCases := []struct {
		creds  *Credentials
		expect bool
		name   string
	}{
		{&Credentials{Role: "admin"}, true, "admin role"},
		{&Credentials{Role: "user"}, false, "user role"},
		{&Credentials{}, false, "empty role"},
		{nil, false, "nil credentials"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.creds.IsAdmin(); got != tc.expect {
				t.Errorf("Expected IsAdmin=%v, got %v", tc.expect, got)
			}
		})
	}
}
