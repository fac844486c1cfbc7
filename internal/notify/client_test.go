package notify

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shotput/gyazo-go/internal/output"
)

func TestNewClientDefaults(t *testing.T) {
	config := &Config{
		URL:       "https://example.com/webhook",
		AuthType:  "bearer",
		AuthToken: "test-token",
	}

	client := NewClient(config)

	if client.config.Method != "POST" {
		t.Errorf("Expected default method to be POST, got %s", client.config.Method)
	}
	if client.config.Timeout != 30*time.Second {
		t.Errorf("Expected default timeout to be 30s, got %v", client.config.Timeout)
	}
}

func TestClientSend_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "POST" {
			t.Errorf("Expected POST method, got %s", r.Method)
		}
		if r.Header.Get("Content-Type") != "application/json" {
			t.Errorf("Expected Content-Type application/json, got %s", r.Header.Get("Content-Type"))
		}

		body, err := io.ReadAll(r.Body)
		if err != nil {
			t.Errorf("Failed to read request body: %v", err)
		}

		var payload output.Result
		if err := json.Unmarshal(body, &payload); err != nil {
			t.Errorf("Failed to unmarshal payload: %v", err)
		}
		if payload.ImageID != "abc123" {
			t.Errorf("Expected image_id abc123, got %s", payload.ImageID)
		}

		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewClient(&Config{
		URL:     server.URL,
		Method:  "POST",
		Timeout: 5 * time.Second,
	})

	payload := &output.Result{
		Source:  "capture.png",
		ImageID: "abc123",
	}

	if err := client.Send(context.Background(), payload); err != nil {
		t.Fatalf("Send failed: %v", err)
	}
}

func TestClientSend_AuthHeaders(t *testing.T) {
	tests := []struct {
		name       string
		authType   string
		wantHeader string
		wantValue  string
	}{
		{
			name:       "bearer",
			authType:   "bearer",
			wantHeader: "Authorization",
			wantValue:  "Bearer secret",
		},
		{
			name:       "api key",
			authType:   "api-key",
			wantHeader: "X-API-Key",
			wantValue:  "secret",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if got := r.Header.Get(tt.wantHeader); got != tt.wantValue {
					t.Errorf("Expected %s header %q, got %q", tt.wantHeader, tt.wantValue, got)
				}
				w.WriteHeader(http.StatusOK)
			}))
			defer server.Close()

			client := NewClient(&Config{
				URL:       server.URL,
				AuthType:  tt.authType,
				AuthToken: "secret",
			})

			if err := client.Send(context.Background(), map[string]string{"ok": "yes"}); err != nil {
				t.Fatalf("Send failed: %v", err)
			}
		})
	}
}

func TestClientSend_FailureStatus(t *testing.T) {
	var attempts atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(&Config{URL: server.URL})

	err := client.Send(context.Background(), map[string]string{})
	if err == nil {
		t.Fatal("Expected error for 500 response, got nil")
	}
	if !strings.Contains(err.Error(), "500") {
		t.Errorf("Expected status in error, got %v", err)
	}
	// The notifier never retries.
	if n := attempts.Load(); n != 1 {
		t.Errorf("Expected exactly 1 attempt, got %d", n)
	}
}

func TestClientSend_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(2 * time.Second)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewClient(&Config{
		URL:     server.URL,
		Timeout: 50 * time.Millisecond,
	})

	if err := client.Send(context.Background(), map[string]string{}); err == nil {
		t.Fatal("Expected timeout error, got nil")
	}
}
