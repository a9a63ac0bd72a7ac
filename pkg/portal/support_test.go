package portal

import (
	"net/http/httptest"
	"testing"
)

func TestParseClientIP(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	req.RemoteAddr = "10.0.0.1:1234"

	if got := ParseClientIP(req); got != "10.0.0.1" {
		t.Fatalf("expected remote host, got %s", got)
	}

	req.Header.Set("X-Forwarded-For", "1.1.1.1, 2.2.2.2")

	if got := ParseClientIP(req); got != "1.1.1.1" {
		t.Fatalf("expected forwarded ip, got %s", got)
	}
}

func TestRemoteHostIgnoresForwardedFor(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	req.RemoteAddr = "10.0.0.1:1234"
	req.Header.Set("X-Forwarded-For", "1.1.1.1")

	if got := RemoteHost(req); got != "10.0.0.1" {
		t.Fatalf("expected peer address, got %s", got)
	}

	req.RemoteAddr = "pipe"

	if got := RemoteHost(req); got != "pipe" {
		t.Fatalf("expected raw remote addr, got %s", got)
	}
}

func TestStringableToLower(t *testing.T) {
	s := NewStringable(" FooBar ")

	if got := s.ToLower(); got != "foobar" {
		t.Fatalf("expected foobar got %s", got)
	}

	if !NewStringable("   ").IsEmpty() {
		t.Fatalf("expected empty stringable")
	}
}

func TestGetEndpointHost(t *testing.T) {
	if got := getEndpointHost("http://localhost:4318"); got != "localhost:4318" {
		t.Fatalf("unexpected host %s", got)
	}
}
