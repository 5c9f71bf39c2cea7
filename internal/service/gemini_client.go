package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	geminiBaseURL        = "https://generativelanguage.googleapis.com/v1beta"
	geminiDefaultModel   = "gemini-2.0-flash"
	geminiDefaultTimeout = 10 * time.Second
)

// GenerateContentRequest is the body of a Gemini generateContent call
type GenerateContentRequest struct {
	Contents         []GeminiContent         `json:"contents"`
	GenerationConfig *GeminiGenerationConfig `json:"generationConfig,omitempty"`
}

type GeminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []GeminiPart `json:"parts"`
}

type GeminiPart struct {
	Text string `json:"text,omitempty"`
}

type GeminiGenerationConfig struct {
	Temperature float64 `json:"temperature"`
	TopK        int     `json:"topK"`
	TopP        float64 `json:"topP"`
}

// GenerateContentResponse is the subset of the Gemini response we read
type GenerateContentResponse struct {
	Candidates []GeminiCandidate `json:"candidates"`
}

type GeminiCandidate struct {
	Content *GeminiContent `json:"content"`
}

type geminiErrorResponse struct {
	Error *struct {
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

// GeminiAPIError is returned when Gemini answers with a non-2xx status.
// Message is empty when the error body carried no usable message.
type GeminiAPIError struct {
	StatusCode int
	Message    string
}

func (e *GeminiAPIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("gemini API error: HTTP %d", e.StatusCode)
	}
	return fmt.Sprintf("gemini API error: HTTP %d: %s", e.StatusCode, e.Message)
}

// GeminiClient calls the Gemini generateContent endpoint
type GeminiClient interface {
	GenerateContent(ctx context.Context, apiKey string, req *GenerateContentRequest) (*GenerateContentResponse, error)
}

type geminiClient struct {
	client  *http.Client
	baseURL string
	model   string
}

// NewGeminiClient creates a GeminiClient for the given model. Empty values fall
// back to the public endpoint and gemini-2.0-flash. A non-positive timeout
// falls back to 10s; the client never waits unbounded.
func NewGeminiClient(baseURL, model string, timeout time.Duration) GeminiClient {
	if timeout <= 0 {
		timeout = geminiDefaultTimeout
	}
	if baseURL == "" {
		baseURL = geminiBaseURL
	}
	if model == "" {
		model = geminiDefaultModel
	}
	return &geminiClient{
		client: &http.Client{
			Timeout: timeout,
		},
		baseURL: strings.TrimRight(baseURL, "/"),
		model:   model,
	}
}

func (c *geminiClient) endpoint(apiKey string) string {
	return fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.baseURL, c.model, url.QueryEscape(apiKey))
}

// GenerateContent sends a single generateContent request. The API key travels
// as the key query parameter.
func (c *geminiClient) GenerateContent(ctx context.Context, apiKey string, req *GenerateContentRequest) (*GenerateContentResponse, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal generate content request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(apiKey), bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create generate content request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(httpReq)
	if err != nil {
		// url.Error embeds the request URL, which carries the key.
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			urlErr.URL = c.endpoint("REDACTED")
		}
		return nil, fmt.Errorf("failed to call Gemini: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read Gemini response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &GeminiAPIError{StatusCode: resp.StatusCode}
		var errorResp geminiErrorResponse
		if err := json.Unmarshal(body, &errorResp); err == nil && errorResp.Error != nil {
			apiErr.Message = strings.TrimSpace(errorResp.Error.Message)
		}
		return nil, apiErr
	}

	var out GenerateContentResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("invalid response format from Gemini: %w", err)
	}
	return &out, nil
}
