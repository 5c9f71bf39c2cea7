package service

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestGeminiClientGenerateContent(t *testing.T) {
	var gotPath, gotKey, gotContentType string
	var gotBody map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.URL.Query().Get("key")
		gotContentType = r.Header.Get("Content-Type")
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("failed to decode request body: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"Based on the symptoms, consider PE."}]}}]}`))
	}))
	defer srv.Close()

	client := NewGeminiClient(srv.URL+"/", "gemini-test", 5*time.Second)
	resp, err := client.GenerateContent(context.Background(), "secret key", newSummaryContentRequest("dyspnea"))
	if err != nil {
		t.Fatalf("GenerateContent returned error: %v", err)
	}

	if gotPath != "/models/gemini-test:generateContent" {
		t.Errorf("unexpected path %q", gotPath)
	}
	if gotKey != "secret key" {
		t.Errorf("expected key query parameter, got %q", gotKey)
	}
	if gotContentType != "application/json" {
		t.Errorf("expected JSON content type, got %q", gotContentType)
	}

	contents, _ := gotBody["contents"].([]any)
	if len(contents) != 1 {
		t.Fatalf("expected one content entry, got %v", gotBody["contents"])
	}
	content := contents[0].(map[string]any)
	if content["role"] != "user" {
		t.Errorf("expected user role, got %v", content["role"])
	}
	parts := content["parts"].([]any)
	if parts[0].(map[string]any)["text"] != BuildSummaryPrompt("dyspnea") {
		t.Errorf("unexpected prompt text %v", parts[0])
	}
	genCfg := gotBody["generationConfig"].(map[string]any)
	if genCfg["temperature"] != 0.2 || genCfg["topK"] != float64(40) || genCfg["topP"] != 0.9 {
		t.Errorf("unexpected generation config %v", genCfg)
	}

	if extractSummary(resp) != "Based on the symptoms, consider PE." {
		t.Errorf("unexpected response %+v", resp)
	}
}

func TestGeminiClientAPIError(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		message string
	}{
		{name: "error message", status: http.StatusTooManyRequests, body: `{"error":{"code":429,"message":"rate limited","status":"RESOURCE_EXHAUSTED"}}`, message: "rate limited"},
		{name: "unparseable body", status: http.StatusBadGateway, body: `<html>bad gateway</html>`, message: ""},
		{name: "empty body", status: http.StatusInternalServerError, body: ``, message: ""},
		{name: "no message", status: http.StatusForbidden, body: `{"error":{"status":"PERMISSION_DENIED"}}`, message: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			client := NewGeminiClient(srv.URL, "", 5*time.Second)
			_, err := client.GenerateContent(context.Background(), "k", newSummaryContentRequest("x"))

			var apiErr *GeminiAPIError
			if !errors.As(err, &apiErr) {
				t.Fatalf("expected *GeminiAPIError, got %T: %v", err, err)
			}
			if apiErr.StatusCode != tt.status {
				t.Errorf("expected status %d, got %d", tt.status, apiErr.StatusCode)
			}
			if apiErr.Message != tt.message {
				t.Errorf("expected message %q, got %q", tt.message, apiErr.Message)
			}
		})
	}
}

func TestGeminiClientMalformedSuccessBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"candidates": "nope"`))
	}))
	defer srv.Close()

	client := NewGeminiClient(srv.URL, "", 5*time.Second)
	_, err := client.GenerateContent(context.Background(), "k", newSummaryContentRequest("x"))
	if err == nil {
		t.Fatal("expected error for malformed body")
	}
	var apiErr *GeminiAPIError
	if errors.As(err, &apiErr) {
		t.Fatal("a malformed success body is not an API error")
	}
}

func TestGeminiClientTimeoutRedactsKey(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	client := NewGeminiClient(srv.URL, "", 50*time.Millisecond)
	_, err := client.GenerateContent(context.Background(), "super-secret", newSummaryContentRequest("x"))
	if err == nil {
		t.Fatal("expected timeout error")
	}
	if !isTimeout(err) {
		t.Errorf("expected a timeout error, got %v", err)
	}
	if strings.Contains(err.Error(), "super-secret") {
		t.Errorf("error leaks the API key: %v", err)
	}
}

func TestNewGeminiClientBoundsTimeout(t *testing.T) {
	for _, timeout := range []time.Duration{0, -time.Second} {
		c := NewGeminiClient("", "", timeout).(*geminiClient)
		if c.client.Timeout != 10*time.Second {
			t.Errorf("timeout %s: expected 10s fallback, got %s", timeout, c.client.Timeout)
		}
	}
	if c := NewGeminiClient("", "", 3*time.Second).(*geminiClient); c.client.Timeout != 3*time.Second {
		t.Errorf("expected explicit timeout to be kept, got %s", c.client.Timeout)
	}
}
