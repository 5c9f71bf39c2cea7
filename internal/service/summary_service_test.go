package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

type fakeGeminiClient struct {
	calls  int
	apiKey string
	req    *GenerateContentRequest
	resp   *GenerateContentResponse
	err    error
}

func (f *fakeGeminiClient) GenerateContent(ctx context.Context, apiKey string, req *GenerateContentRequest) (*GenerateContentResponse, error) {
	f.calls++
	f.apiKey = apiKey
	f.req = req
	return f.resp, f.err
}

func newTestSummaryService(gemini GeminiClient, apiKey string) SummaryService {
	return NewSummaryService(gemini, apiKey, validator.New(validator.WithRequiredStructEnabled()), zerolog.Nop())
}

func textResponse(texts ...string) *GenerateContentResponse {
	parts := make([]GeminiPart, len(texts))
	for i, text := range texts {
		parts[i] = GeminiPart{Text: text}
	}
	return &GenerateContentResponse{
		Candidates: []GeminiCandidate{{Content: &GeminiContent{Parts: parts}}},
	}
}

func requireSummaryError(t *testing.T, err error, status int, message string) *SummaryError {
	t.Helper()
	var summaryErr *SummaryError
	if !errors.As(err, &summaryErr) {
		t.Fatalf("expected *SummaryError, got %T: %v", err, err)
	}
	if summaryErr.Status != status {
		t.Errorf("expected status %d, got %d", status, summaryErr.Status)
	}
	if summaryErr.Message != message {
		t.Errorf("expected message %q, got %q", message, summaryErr.Message)
	}
	return summaryErr
}

func TestGenerateSummaryRejectsBlankPrompt(t *testing.T) {
	for _, prompt := range []string{"", "   ", "\n\t "} {
		t.Run(fmt.Sprintf("%q", prompt), func(t *testing.T) {
			gemini := &fakeGeminiClient{resp: textResponse("unused")}
			svc := newTestSummaryService(gemini, "test-key")

			_, err := svc.GenerateSummary(context.Background(), prompt)

			requireSummaryError(t, err, http.StatusBadRequest, "Prompt is required.")
			if !errors.Is(err, ErrPromptRequired) {
				t.Errorf("expected ErrPromptRequired, got %v", err)
			}
			if gemini.calls != 0 {
				t.Errorf("expected no upstream calls, got %d", gemini.calls)
			}
		})
	}
}

func TestGenerateSummaryRequiresAPIKey(t *testing.T) {
	for _, prompt := range []string{"chest pain", "  dyspnea after long flight  "} {
		gemini := &fakeGeminiClient{resp: textResponse("unused")}
		svc := newTestSummaryService(gemini, "")

		_, err := svc.GenerateSummary(context.Background(), prompt)

		requireSummaryError(t, err, http.StatusInternalServerError, "Gemini API key is not configured.")
		if !errors.Is(err, ErrAPIKeyNotConfigured) {
			t.Errorf("expected ErrAPIKeyNotConfigured, got %v", err)
		}
		if gemini.calls != 0 {
			t.Errorf("expected no upstream calls, got %d", gemini.calls)
		}
	}
}

func TestGenerateSummarySuccess(t *testing.T) {
	gemini := &fakeGeminiClient{resp: textResponse("  Based on the symptoms, consider X.  ")}
	svc := newTestSummaryService(gemini, "test-key")

	summary, err := svc.GenerateSummary(context.Background(), "  45 y/o with atypical chest pain  ")
	if err != nil {
		t.Fatalf("GenerateSummary returned error: %v", err)
	}
	if summary.Summary != "Based on the symptoms, consider X." {
		t.Fatalf("unexpected summary %q", summary.Summary)
	}

	if gemini.calls != 1 {
		t.Fatalf("expected exactly one upstream call, got %d", gemini.calls)
	}
	if gemini.apiKey != "test-key" {
		t.Errorf("expected configured key to be sent, got %q", gemini.apiKey)
	}
	if len(gemini.req.Contents) != 1 || gemini.req.Contents[0].Role != "user" {
		t.Fatalf("expected a single user content, got %+v", gemini.req.Contents)
	}
	parts := gemini.req.Contents[0].Parts
	if len(parts) != 1 || parts[0].Text != BuildSummaryPrompt("45 y/o with atypical chest pain") {
		t.Errorf("expected the trimmed prompt wrapped in the template, got %+v", parts)
	}
	cfg := gemini.req.GenerationConfig
	if cfg == nil || cfg.Temperature != 0.2 || cfg.TopK != 40 || cfg.TopP != 0.9 {
		t.Errorf("unexpected generation config %+v", cfg)
	}
}

func TestGenerateSummaryJoinsCandidateParts(t *testing.T) {
	gemini := &fakeGeminiClient{resp: &GenerateContentResponse{
		Candidates: []GeminiCandidate{
			{Content: &GeminiContent{Parts: []GeminiPart{{Text: " Based on the symptoms, PE is likely. "}, {Text: "   "}}}},
			{Content: nil},
			{Content: &GeminiContent{Parts: []GeminiPart{{Text: "Order a CTPA.\n"}}}},
		},
	}}
	svc := newTestSummaryService(gemini, "test-key")

	summary, err := svc.GenerateSummary(context.Background(), "dyspnea")
	if err != nil {
		t.Fatalf("GenerateSummary returned error: %v", err)
	}
	want := "Based on the symptoms, PE is likely.\nOrder a CTPA."
	if summary.Summary != want {
		t.Fatalf("expected %q, got %q", want, summary.Summary)
	}
}

func TestGenerateSummaryEmptyUpstreamText(t *testing.T) {
	responses := map[string]*GenerateContentResponse{
		"whitespace parts": textResponse("", "   ", "\n"),
		"no candidates":    {},
		"no content":       {Candidates: []GeminiCandidate{{}}},
	}
	for name, resp := range responses {
		t.Run(name, func(t *testing.T) {
			svc := newTestSummaryService(&fakeGeminiClient{resp: resp}, "test-key")

			_, err := svc.GenerateSummary(context.Background(), "syncope")

			requireSummaryError(t, err, http.StatusBadGateway, "Gemini returned an empty response.")
			if !errors.Is(err, ErrEmptySummary) {
				t.Errorf("expected ErrEmptySummary, got %v", err)
			}
		})
	}
}

func TestGenerateSummaryPassesUpstreamStatusThrough(t *testing.T) {
	gemini := &fakeGeminiClient{err: &GeminiAPIError{StatusCode: http.StatusTooManyRequests, Message: "rate limited"}}
	svc := newTestSummaryService(gemini, "test-key")

	_, err := svc.GenerateSummary(context.Background(), "palpitations")

	requireSummaryError(t, err, http.StatusTooManyRequests, "rate limited")
	if !errors.Is(err, ErrUpstreamFailed) {
		t.Errorf("expected ErrUpstreamFailed, got %v", err)
	}
}

func TestGenerateSummaryUpstreamFallbackMessage(t *testing.T) {
	gemini := &fakeGeminiClient{err: &GeminiAPIError{StatusCode: http.StatusServiceUnavailable}}
	svc := newTestSummaryService(gemini, "test-key")

	_, err := svc.GenerateSummary(context.Background(), "palpitations")

	requireSummaryError(t, err, http.StatusServiceUnavailable, "Failed to generate summary.")
}

func TestGenerateSummaryTimeout(t *testing.T) {
	gemini := &fakeGeminiClient{err: fmt.Errorf("failed to call Gemini: %w", context.DeadlineExceeded)}
	svc := newTestSummaryService(gemini, "test-key")

	_, err := svc.GenerateSummary(context.Background(), "palpitations")

	requireSummaryError(t, err, http.StatusGatewayTimeout, "Gemini request timed out.")
	if gemini.calls != 1 {
		t.Errorf("expected a single attempt without retries, got %d", gemini.calls)
	}
}

func TestGenerateSummaryUnexpectedError(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	svc := newTestSummaryService(&fakeGeminiClient{err: cause}, "test-key")

	_, err := svc.GenerateSummary(context.Background(), "palpitations")
	if err == nil {
		t.Fatal("expected error")
	}
	var summaryErr *SummaryError
	if errors.As(err, &summaryErr) {
		t.Fatalf("unexpected errors must not be typed, got %+v", summaryErr)
	}
	if !errors.Is(err, cause) {
		t.Errorf("expected cause to be wrapped, got %v", err)
	}
}

func TestBuildSummaryPromptIsStable(t *testing.T) {
	input := "45 y/o with atypical chest pain, non-diagnostic ECG"

	first := BuildSummaryPrompt(input)
	second := BuildSummaryPrompt(input)
	if first != second {
		t.Fatal("expected identical prompts for identical input")
	}
	if !strings.Contains(first, `beginning with "Based on the symptoms,"`) {
		t.Error("prompt must require the fixed opening phrase")
	}
	if !strings.Contains(first, "cardiopulmonary") {
		t.Error("prompt must state the cardiopulmonary domain")
	}
	if !strings.HasSuffix(first, "Clinician input:\n"+input+"\n") {
		t.Errorf("prompt must end with the clinician input, got %q", first)
	}
}

func TestSummaryErrorMessage(t *testing.T) {
	err := &SummaryError{Status: http.StatusBadGateway, Message: "Gemini returned an empty response.", Err: ErrEmptySummary}
	if got := err.Error(); got != "Gemini returned an empty response. (status 502)" {
		t.Fatalf("unexpected error string %q", got)
	}
}
