package service

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"

	"github.com/Charugundlavipul/medilink/internal/model"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

var (
	ErrPromptRequired      = errors.New("prompt is required")
	ErrAPIKeyNotConfigured = errors.New("gemini API key is not configured")
	ErrUpstreamFailed      = errors.New("gemini request failed")
	ErrEmptySummary        = errors.New("gemini returned an empty response")
)

const (
	msgPromptRequired   = "Prompt is required."
	msgKeyNotConfigured = "Gemini API key is not configured."
	msgUpstreamFallback = "Failed to generate summary."
	msgUpstreamTimeout  = "Gemini request timed out."
	msgEmptySummary     = "Gemini returned an empty response."
)

// Generation parameters are fixed to keep answers short and close to deterministic.
var summaryGenerationConfig = GeminiGenerationConfig{
	Temperature: 0.2,
	TopK:        40,
	TopP:        0.9,
}

const summaryPromptPreamble = `
You are Medilink AI, a medical decision support assistant for cardiopulmonary cases.
Write one concise paragraph (1-2 sentences) summarizing the clinician's input.
Respond in plain text only, beginning with "Based on the symptoms," and cover key differential diagnoses, recommended next diagnostics, and any urgent flags.
Do not add headings, bullet points, or extra commentary beyond that single paragraph.

Clinician input:
`

// SummaryError is a summary failure that carries the HTTP status to report.
// Message is safe to show to the caller. Err is one of the Err* sentinels,
// possibly wrapping the underlying cause.
type SummaryError struct {
	Status  int
	Message string
	Err     error
}

func (e *SummaryError) Error() string {
	return fmt.Sprintf("%s (status %d)", e.Message, e.Status)
}

func (e *SummaryError) Unwrap() error {
	return e.Err
}

// SummaryService turns a clinician prompt into a one-paragraph summary.
// Failures with a known HTTP status are *SummaryError; anything else is
// unexpected and must not be shown to the caller verbatim.
type SummaryService interface {
	GenerateSummary(ctx context.Context, prompt string) (*model.ChatSummary, error)
}

type summaryService struct {
	gemini   GeminiClient
	apiKey   string
	validate *validator.Validate
	logger   zerolog.Logger
}

// NewSummaryService creates a SummaryService. apiKey may be empty, in which
// case every request fails with a configuration error.
func NewSummaryService(gemini GeminiClient, apiKey string, validate *validator.Validate, logger zerolog.Logger) SummaryService {
	return &summaryService{
		gemini:   gemini,
		apiKey:   apiKey,
		validate: validate,
		logger:   logger,
	}
}

func (s *summaryService) GenerateSummary(ctx context.Context, prompt string) (*model.ChatSummary, error) {
	req := model.SummaryRequest{Prompt: strings.TrimSpace(prompt)}
	if err := s.validate.Struct(&req); err != nil {
		return nil, &SummaryError{Status: http.StatusBadRequest, Message: msgPromptRequired, Err: ErrPromptRequired}
	}

	apiKey := s.apiKey
	if apiKey == "" {
		return nil, &SummaryError{Status: http.StatusInternalServerError, Message: msgKeyNotConfigured, Err: ErrAPIKeyNotConfigured}
	}

	resp, err := s.gemini.GenerateContent(ctx, apiKey, newSummaryContentRequest(req.Prompt))
	if err != nil {
		var apiErr *GeminiAPIError
		switch {
		case errors.As(err, &apiErr):
			message := apiErr.Message
			if message == "" {
				message = msgUpstreamFallback
			}
			return nil, &SummaryError{Status: apiErr.StatusCode, Message: message, Err: fmt.Errorf("%w: %w", ErrUpstreamFailed, err)}
		case isTimeout(err):
			return nil, &SummaryError{Status: http.StatusGatewayTimeout, Message: msgUpstreamTimeout, Err: fmt.Errorf("%w: %w", ErrUpstreamFailed, err)}
		default:
			return nil, fmt.Errorf("failed to generate summary: %w", err)
		}
	}

	summary := extractSummary(resp)
	if summary == "" {
		s.logger.Warn().Int("candidates", len(resp.Candidates)).Msg("Gemini returned no usable text")
		return nil, &SummaryError{Status: http.StatusBadGateway, Message: msgEmptySummary, Err: ErrEmptySummary}
	}

	return &model.ChatSummary{Summary: summary}, nil
}

// BuildSummaryPrompt wraps the trimmed clinician input in the fixed
// instruction template. Same input, same bytes.
func BuildSummaryPrompt(prompt string) string {
	return summaryPromptPreamble + prompt + "\n"
}

func newSummaryContentRequest(prompt string) *GenerateContentRequest {
	cfg := summaryGenerationConfig
	return &GenerateContentRequest{
		Contents: []GeminiContent{
			{
				Role:  "user",
				Parts: []GeminiPart{{Text: BuildSummaryPrompt(prompt)}},
			},
		},
		GenerationConfig: &cfg,
	}
}

// extractSummary joins the trimmed, non-empty text of every candidate part.
func extractSummary(resp *GenerateContentResponse) string {
	if resp == nil {
		return ""
	}
	var texts []string
	for _, candidate := range resp.Candidates {
		if candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if text := strings.TrimSpace(part.Text); text != "" {
				texts = append(texts, text)
			}
		}
	}
	return strings.TrimSpace(strings.Join(texts, "\n"))
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
