package config

import (
	"os"
	"path/filepath"
	"testing"
)

// TestInitWithExplicitPath validates init with a user-supplied config path
func TestInitWithExplicitPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	if err := Init(path); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	if GetConfigDir() != dir {
		t.Errorf("Expected config dir %s, got %s", dir, GetConfigDir())
	}

	if GetCredentialsPath() != filepath.Join(dir, "credentials") {
		t.Errorf("Unexpected credentials path: %s", GetCredentialsPath())
	}
}

// TestInitCreatesConfigDir validates directory creation
func TestInitCreatesConfigDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "cli")
	path := filepath.Join(dir, "config.toml")

	if err := Init(path); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	info, err := os.Stat(dir)
	if err != nil {
		t.Fatalf("Config dir should exist: %v", err)
	}
	if !info.IsDir() {
		t.Error("Config dir path should be a directory")
	}
}

// TestDefaults validates development defaults
func TestDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := Init(path); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	if GetString("api.base_url") == "" {
		t.Error("api.base_url should have a default")
	}

	if GetInt("api.timeout") <= 0 {
		t.Error("api.timeout should default to a positive value")
	}

	if GetString("geocoder.base_url") == "" {
		t.Error("geocoder.base_url should have a default")
	}

	if GetInt("geocoder.timeout") <= 0 {
		t.Error("geocoder.timeout should default to a positive value")
	}

	if GetString("output.format") != "text" {
		t.Errorf("output.format should default to text, got %s", GetString("output.format"))
	}
}

// TestConfigFileOverridesDefaults validates user config wins over defaults
func TestConfigFileOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	content := "[api]\nbase_url = \"https://api.example.com\"\ntimeout = 5\n"
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	if err := Init(path); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	if GetString("api.base_url") != "https://api.example.com" {
		t.Errorf("Expected config file value, got %s", GetString("api.base_url"))
	}

	if GetInt("api.timeout") != 5 {
		t.Errorf("Expected timeout 5, got %d", GetInt("api.timeout"))
	}
}

// TestExpandPath validates tilde expansion
func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("No home directory available")
	}

	testCases := []struct {
		input  string
		expect string
		name   string
	}{
		{"~/logs/focal.log", filepath.Join(home, "logs", "focal.log"), "tilde prefix"},
		{"/var/log/focal.log", "/var/log/focal.log", "absolute path"},
		{"relative/path.log", "relative/path.log", "relative path"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result := expandPath(tc.input)
			if result != tc.expect {
				t.Errorf("Expected %s, got %s", tc.expect, result)
			}
		})
	}
}
