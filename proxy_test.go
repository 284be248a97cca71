package main

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestAPIProxyStripsPrefix(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/inbox/customers" {
			t.Errorf("Expected /inbox/customers at the backend, got %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("bucket"); got != "open" {
			t.Errorf("Expected bucket=open to be forwarded, got %q", got)
		}
		io.WriteString(w, "[]")
	}))
	defer backend.Close()

	proxy, err := apiProxy(backend.URL)
	if err != nil {
		t.Fatalf("apiProxy failed: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/inbox/customers?bucket=open", nil)
	rec := httptest.NewRecorder()
	proxy.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("Expected 200, got %d", rec.Code)
	}
	if rec.Body.String() != "[]" {
		t.Errorf("Expected backend body to pass through, got %q", rec.Body.String())
	}
}

func TestAPIProxyRejectsBadURL(t *testing.T) {
	if _, err := apiProxy("http://bad url with spaces"); err == nil {
		t.Error("Expected an error for an unparseable URL")
	}
}
