package api

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/focalhq/cli/pkg/client"
	"github.com/focalhq/cli/pkg/config"
	"github.com/spf13/viper"
)

// setupAPIServer points the shared HTTP client at a test server.
func setupAPIServer(t *testing.T, handler http.Handler) *httptest.Server {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := config.Init(path); err != nil {
		t.Fatalf("config.Init failed: %v", err)
	}

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	viper.Set("api.base_url", server.URL)
	client.Init()

	return server
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write([]byte(body))
}
