package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

// A real server is deliberate here: a ResponseRecorder still shows headers
// added after the body is written, which hides ordering mistakes.
func TestSecurityHeadersReachTheWire(t *testing.T) {
	srv := httptest.NewServer(Security(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("hello"))
	})))
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	defer resp.Body.Close()

	want := map[string]string{
		"X-Frame-Options":        "DENY",
		"X-Content-Type-Options": "nosniff",
		"Referrer-Policy":        "strict-origin-when-cross-origin",
		"Permissions-Policy":     "geolocation=(), microphone=(), camera=()",
	}
	for name, val := range want {
		if got := resp.Header.Get(name); got != val {
			t.Errorf("%s = %q on the wire, want %q", name, got, val)
		}
	}
	if resp.Header.Get("Content-Security-Policy") == "" {
		t.Error("Content-Security-Policy missing on the wire")
	}
}

func TestSecurityKeepsHandlerOverride(t *testing.T) {
	srv := httptest.NewServer(Security(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("X-Frame-Options", "SAMEORIGIN")
		_, _ = w.Write([]byte("framed"))
	})))
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	defer resp.Body.Close()

	if got := resp.Header.Get("X-Frame-Options"); got != "SAMEORIGIN" {
		t.Errorf("X-Frame-Options = %q, handler override should win", got)
	}
}
