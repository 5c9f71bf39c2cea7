package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/Charugundlavipul/medilink/internal/api/v1/dto"
	"github.com/Charugundlavipul/medilink/internal/service"

	"github.com/rs/zerolog"
)

const msgUnexpectedSummaryError = "Unexpected error generating summary."

type ChatSummaryHandler struct {
	summaryService service.SummaryService
	maxBodyBytes   int64
	logger         zerolog.Logger
}

// NewChatSummaryHandler creates a ChatSummaryHandler. maxBodyBytes <= 0
// disables the request body limit.
func NewChatSummaryHandler(summaryService service.SummaryService, maxBodyBytes int64, logger zerolog.Logger) *ChatSummaryHandler {
	return &ChatSummaryHandler{
		summaryService: summaryService,
		maxBodyBytes:   maxBodyBytes,
		logger:         logger,
	}
}

func (h *ChatSummaryHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/chat/summary", h.ChatSummary)
}

// ChatSummary godoc
// @Summary Summarize a clinical prompt
// @Description Sends the clinician's free-text prompt to Gemini and returns a one-paragraph differential-diagnosis summary. The body may also be a JSON string holding the object.
// @Tags chat
// @Accept json
// @Produce json
// @Param request body dto.ChatSummaryRequestDTO true "Clinician prompt"
// @Success 200 {object} dto.ChatSummaryResponseDTO
// @Failure 400 {object} dto.ErrorResponseDTO "Prompt is required."
// @Failure 405 {object} dto.ErrorResponseDTO "Method Not Allowed"
// @Failure 500 {object} dto.ErrorResponseDTO "Gemini API key is not configured or unexpected error"
// @Failure 502 {object} dto.ErrorResponseDTO "Gemini returned an empty response."
// @Failure 504 {object} dto.ErrorResponseDTO "Gemini request timed out."
// @Router /chat/summary [post]
func (h *ChatSummaryHandler) ChatSummary(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, http.MethodPost, h.logger)
		return
	}

	body := h.readBody(w, r)
	req := parseChatSummaryRequest(body)

	summary, err := h.summaryService.GenerateSummary(r.Context(), req.Prompt)
	if err != nil {
		h.writeSummaryError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ChatSummaryResponseDTO{Summary: summary.Summary}, h.logger)
}

// readBody returns nil when the body cannot be read, which the summary
// service then rejects as a missing prompt.
func (h *ChatSummaryHandler) readBody(w http.ResponseWriter, r *http.Request) []byte {
	reader := io.Reader(r.Body)
	if h.maxBodyBytes > 0 {
		reader = http.MaxBytesReader(w, r.Body, h.maxBodyBytes)
	}
	body, err := io.ReadAll(reader)
	if err != nil {
		h.logger.Warn().Err(err).Msg("Failed to read chat summary request body")
		return nil
	}
	return body
}

func (h *ChatSummaryHandler) writeSummaryError(w http.ResponseWriter, err error) {
	var summaryErr *service.SummaryError
	if errors.As(err, &summaryErr) {
		event := h.logger.Info()
		if summaryErr.Status >= http.StatusInternalServerError {
			event = h.logger.Error()
		}
		event.Err(err).Int("status", summaryErr.Status).Msg("Chat summary failed")
		writeError(w, summaryErr.Status, summaryErr.Message, h.logger)
		return
	}

	h.logger.Error().Err(err).Msg("Gemini summary error")
	writeError(w, http.StatusInternalServerError, msgUnexpectedSummaryError, h.logger)
}

// parseChatSummaryRequest accepts a JSON object or a JSON string holding one.
// Anything else, including malformed JSON and non-string prompts, yields an
// empty prompt.
func parseChatSummaryRequest(body []byte) dto.ChatSummaryRequestDTO {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		var encoded string
		if json.Unmarshal(body, &encoded) != nil || json.Unmarshal([]byte(encoded), &fields) != nil {
			return dto.ChatSummaryRequestDTO{}
		}
	}

	var req dto.ChatSummaryRequestDTO
	if raw, ok := fields["prompt"]; ok {
		var prompt string
		if err := json.Unmarshal(raw, &prompt); err == nil {
			req.Prompt = prompt
		}
	}
	return req
}
