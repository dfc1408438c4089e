package utils

import (
	"testing"
	"time"
)

func TestNewHTTPClient_NotNil(t *testing.T) {
	client := NewHTTPClient("http://localhost:5000", 0)

	if client == nil || client.Client == nil {
		t.Fatal("expected non-nil *HTTPClient with embedded *resty.Client")
	}
}

func TestNewHTTPClient_BaseURL(t *testing.T) {
	client := NewHTTPClient("http://backend:5000", 0)

	if client.BaseURL != "http://backend:5000" {
		t.Errorf("expected base url 'http://backend:5000', got %q", client.BaseURL)
	}
}

func TestNewHTTPClient_Timeout(t *testing.T) {
	client := NewHTTPClient("http://backend:5000", 3*time.Second)

	if got := client.GetClient().Timeout; got != 3*time.Second {
		t.Errorf("expected timeout 3s, got %v", got)
	}
}

func TestNewHTTPClient_NoTimeoutByDefault(t *testing.T) {
	client := NewHTTPClient("http://backend:5000", 0)

	if got := client.GetClient().Timeout; got != 0 {
		t.Errorf("expected no timeout, got %v", got)
	}
}

func TestNewHTTPClient_DefaultHeaders(t *testing.T) {
	client := NewHTTPClient("http://backend:5000", 0)

	if got := client.Header.Get("User-Agent"); got != userAgent {
		t.Errorf("expected user agent %q, got %q", userAgent, got)
	}
	if got := client.Header.Get("Accept"); got != "application/json" {
		t.Errorf("expected accept application/json, got %q", got)
	}
}

func TestNewHTTPClient_Independence(t *testing.T) {
	client1 := NewHTTPClient("http://a", 0)
	client2 := NewHTTPClient("http://b", 0)

	if client1.Client == client2.Client {
		t.Fatal("expected distinct *resty.Client instances")
	}
}
