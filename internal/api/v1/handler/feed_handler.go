package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/Charugundlavipul/medilink/internal/api/v1/dto"
	"github.com/Charugundlavipul/medilink/internal/model"
	"github.com/Charugundlavipul/medilink/internal/service"

	"github.com/rs/zerolog"
)

// FeedHandler serves the community feed of shared cases
type FeedHandler struct {
	feedService service.FeedService
	logger      zerolog.Logger
}

func NewFeedHandler(feedService service.FeedService, logger zerolog.Logger) *FeedHandler {
	return &FeedHandler{feedService: feedService, logger: logger}
}

func (h *FeedHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/feed", h.listFeedCases)
	mux.HandleFunc("/feed/", h.getFeedCase)
}

// listFeedCases godoc
// @Summary List feed cases
// @Description Lists the cases shared to the community feed, newest seed first.
// @Tags feed
// @Produce json
// @Param specialty query string false "Only cases posted under this specialty (case-insensitive)"
// @Success 200 {array} dto.FeedCaseSummaryResponseDTO
// @Failure 500 {object} dto.ErrorResponseDTO "Failed to list feed cases"
// @Router /feed [get]
func (h *FeedHandler) listFeedCases(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, http.MethodGet, h.logger)
		return
	}

	filter := model.FeedCaseFilter{Specialty: strings.TrimSpace(r.URL.Query().Get("specialty"))}
	cases, err := h.feedService.ListFeedCases(r.Context(), filter)
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to list feed cases")
		writeError(w, http.StatusInternalServerError, "Failed to list feed cases", h.logger)
		return
	}

	resp := make([]dto.FeedCaseSummaryResponseDTO, len(cases))
	for i, c := range cases {
		resp[i] = dto.FeedCaseSummaryResponseDTO{
			ID:           c.ID,
			Doctor:       c.Doctor,
			Specialty:    c.Specialty,
			Initials:     c.Initials,
			PostedDate:   c.PostedDate,
			Title:        c.Title,
			KeyChallenge: c.KeyChallenge,
			Stats:        toFeedStats(c.Stats),
			CommentCount: len(c.Comments),
		}
	}
	writeJSON(w, http.StatusOK, resp, h.logger)
}

// getFeedCase godoc
// @Summary Get a feed case
// @Description Retrieves a shared case with its discussion thread.
// @Tags feed
// @Produce json
// @Param caseId path string true "Feed case ID"
// @Success 200 {object} dto.FeedCaseResponseDTO
// @Failure 404 {object} dto.ErrorResponseDTO "Case not found"
// @Failure 500 {object} dto.ErrorResponseDTO "Failed to retrieve case"
// @Router /feed/{caseId} [get]
func (h *FeedHandler) getFeedCase(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, http.MethodGet, h.logger)
		return
	}

	caseID := strings.TrimPrefix(r.URL.Path, "/feed/")
	if caseID == "" || strings.Contains(caseID, "/") {
		writeError(w, http.StatusNotFound, "Case not found", h.logger)
		return
	}

	c, err := h.feedService.GetFeedCase(r.Context(), caseID)
	if err != nil {
		if errors.Is(err, service.ErrFeedCaseNotFound) {
			writeError(w, http.StatusNotFound, "Case not found", h.logger)
			return
		}
		h.logger.Error().Err(err).Str("case_id", caseID).Msg("Failed to retrieve feed case")
		writeError(w, http.StatusInternalServerError, "Failed to retrieve case", h.logger)
		return
	}

	attachments := make([]dto.CaseAttachmentDTO, len(c.Attachments))
	for i, a := range c.Attachments {
		attachments[i] = dto.CaseAttachmentDTO{Name: a.Name, Type: a.Type, Size: a.Size}
	}
	comments := make([]dto.CaseCommentDTO, len(c.Comments))
	for i, cm := range c.Comments {
		comments[i] = dto.CaseCommentDTO{
			ID:        cm.ID,
			Author:    cm.Author,
			Specialty: cm.Specialty,
			Initials:  cm.Initials,
			Timestamp: cm.Timestamp,
			Text:      cm.Text,
			IsReply:   cm.IsReply,
		}
	}
	writeJSON(w, http.StatusOK, dto.FeedCaseResponseDTO{
		ID:           c.ID,
		Doctor:       c.Doctor,
		Specialty:    c.Specialty,
		Initials:     c.Initials,
		PostedDate:   c.PostedDate,
		Title:        c.Title,
		Summary:      c.Summary,
		KeyChallenge: c.KeyChallenge,
		Demographics: c.Demographics,
		Symptoms:     append([]string{}, c.Symptoms...),
		Conditions:   c.Conditions,
		Treatments:   append([]string{}, c.Treatments...),
		Attachments:  attachments,
		Stats:        toFeedStats(c.Stats),
		Comments:     comments,
	}, h.logger)
}

func toFeedStats(s model.FeedCaseStats) dto.FeedCaseStatsDTO {
	return dto.FeedCaseStatsDTO{Likes: s.Likes, Insights: s.Insights, Support: s.Support}
}
