package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/Charugundlavipul/medilink/internal/api/v1/dto"
	"github.com/Charugundlavipul/medilink/internal/model"
	"github.com/Charugundlavipul/medilink/internal/service"

	"github.com/rs/zerolog"
)

// CaseStudyHandler serves the read-only case study catalog
type CaseStudyHandler struct {
	caseStudyService service.CaseStudyService
	logger           zerolog.Logger
}

func NewCaseStudyHandler(caseStudyService service.CaseStudyService, logger zerolog.Logger) *CaseStudyHandler {
	return &CaseStudyHandler{caseStudyService: caseStudyService, logger: logger}
}

func (h *CaseStudyHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/cases", h.listCaseStudies)
	mux.HandleFunc("/cases/", h.getCaseStudy)
}

// listCaseStudies godoc
// @Summary List case studies
// @Description Lists case study summaries in catalog order. When ids is given the result follows that order and unknown ids are skipped.
// @Tags cases
// @Produce json
// @Param ids query string false "Comma-separated case study IDs"
// @Param featured query bool false "Only featured case studies"
// @Success 200 {array} dto.CaseSummaryResponseDTO
// @Failure 400 {object} dto.ErrorResponseDTO "Invalid featured filter"
// @Failure 500 {object} dto.ErrorResponseDTO "Failed to list case studies"
// @Router /cases [get]
func (h *CaseStudyHandler) listCaseStudies(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, http.MethodGet, h.logger)
		return
	}

	var filter model.CaseStudyFilter
	query := r.URL.Query()
	if raw := query.Get("ids"); raw != "" {
		for _, id := range strings.Split(raw, ",") {
			if id = strings.TrimSpace(id); id != "" {
				filter.IDs = append(filter.IDs, id)
			}
		}
	}
	if raw := query.Get("featured"); raw != "" {
		featured, err := strconv.ParseBool(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid featured filter", h.logger)
			return
		}
		filter.FeaturedOnly = featured
	}

	summaries, err := h.caseStudyService.ListCaseSummaries(r.Context(), filter)
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to list case studies")
		writeError(w, http.StatusInternalServerError, "Failed to list case studies", h.logger)
		return
	}

	resp := make([]dto.CaseSummaryResponseDTO, len(summaries))
	for i, s := range summaries {
		resp[i] = dto.CaseSummaryResponseDTO{
			ID:               s.ID,
			Title:            s.Title,
			ShortDescription: s.ShortDescription,
		}
	}
	writeJSON(w, http.StatusOK, resp, h.logger)
}

// getCaseStudy godoc
// @Summary Get a case study
// @Description Retrieves the full case study by its ID.
// @Tags cases
// @Produce json
// @Param caseId path string true "Case study ID"
// @Success 200 {object} dto.CaseStudyResponseDTO
// @Failure 404 {object} dto.ErrorResponseDTO "Case study not found"
// @Failure 500 {object} dto.ErrorResponseDTO "Failed to retrieve case study"
// @Router /cases/{caseId} [get]
func (h *CaseStudyHandler) getCaseStudy(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, http.MethodGet, h.logger)
		return
	}

	caseID := strings.TrimPrefix(r.URL.Path, "/cases/")
	if caseID == "" || strings.Contains(caseID, "/") {
		writeError(w, http.StatusNotFound, "Case study not found", h.logger)
		return
	}

	study, err := h.caseStudyService.GetCaseStudy(r.Context(), caseID)
	if err != nil {
		if errors.Is(err, service.ErrCaseStudyNotFound) {
			writeError(w, http.StatusNotFound, "Case study not found", h.logger)
			return
		}
		h.logger.Error().Err(err).Str("case_id", caseID).Msg("Failed to retrieve case study")
		writeError(w, http.StatusInternalServerError, "Failed to retrieve case study", h.logger)
		return
	}

	attachments := make([]dto.CaseAttachmentDTO, len(study.Attachments))
	for i, a := range study.Attachments {
		attachments[i] = dto.CaseAttachmentDTO{Name: a.Name, Type: a.Type, Size: a.Size}
	}
	writeJSON(w, http.StatusOK, dto.CaseStudyResponseDTO{
		ID:                    study.ID,
		Title:                 study.Title,
		Author:                study.Author,
		ShortDescription:      study.ShortDescription,
		AbstractSummary:       study.AbstractSummary,
		InitialPresentation:   study.InitialPresentation,
		KeyChallenge:          study.KeyChallenge,
		CollaborativeInsights: study.CollaborativeInsights,
		FinalDiagnosis:        study.FinalDiagnosis,
		PatientOutcome:        study.PatientOutcome,
		Attachments:           attachments,
	}, h.logger)
}
