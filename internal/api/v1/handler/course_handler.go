package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/Charugundlavipul/medilink/internal/api/v1/dto"
	"github.com/Charugundlavipul/medilink/internal/model"
	"github.com/Charugundlavipul/medilink/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

// CourseHandler handles course-related endpoints
type CourseHandler struct {
	courseService service.CourseService
	validate      *validator.Validate
	logger        zerolog.Logger
}

// NewCourseHandler creates a new CourseHandler
func NewCourseHandler(courseService service.CourseService, validate *validator.Validate, logger zerolog.Logger) *CourseHandler {
	return &CourseHandler{courseService: courseService, validate: validate, logger: logger}
}

// RegisterRoutes mounts course routes
func (h *CourseHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/courses", h.listCourses)
	mux.HandleFunc("/courses/", h.getCourse)
}

// listCourses godoc
// @Summary List courses
// @Description Lists the learning catalog, optionally filtered by difficulty and certification.
// @Tags courses
// @Produce json
// @Param difficulty query string false "Beginner, Intermediate, Advanced or Expert"
// @Param certification query bool false "Only courses that do (true) or do not (false) offer certification"
// @Success 200 {array} dto.CourseResponseDTO
// @Failure 400 {object} dto.ErrorResponseDTO "Validation failed"
// @Failure 500 {object} dto.ErrorResponseDTO "Failed to list courses"
// @Router /courses [get]
func (h *CourseHandler) listCourses(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, http.MethodGet, h.logger)
		return
	}

	query := r.URL.Query()
	req := dto.CourseFilterDTO{Difficulty: query.Get("difficulty")}
	if raw := query.Get("certification"); raw != "" {
		certification, err := strconv.ParseBool(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Validation failed: certification must be true or false", h.logger)
			return
		}
		req.Certification = &certification
	}
	if err := h.validate.Struct(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Validation failed: difficulty must be one of Beginner, Intermediate, Advanced, Expert", h.logger)
		return
	}

	courses, err := h.courseService.ListCourses(r.Context(), model.CourseFilter{
		Difficulty:    req.Difficulty,
		Certification: req.Certification,
	})
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to list courses")
		writeError(w, http.StatusInternalServerError, "Failed to list courses", h.logger)
		return
	}

	resp := make([]dto.CourseResponseDTO, len(courses))
	for i, c := range courses {
		resp[i] = toCourseResponse(c)
	}
	writeJSON(w, http.StatusOK, resp, h.logger)
}

// getCourse godoc
// @Summary Get a course
// @Description Retrieves a course by its ID.
// @Tags courses
// @Produce json
// @Param courseId path string true "Course ID"
// @Success 200 {object} dto.CourseResponseDTO
// @Failure 404 {object} dto.ErrorResponseDTO "Course not found"
// @Failure 500 {object} dto.ErrorResponseDTO "Failed to retrieve course"
// @Router /courses/{courseId} [get]
func (h *CourseHandler) getCourse(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, http.MethodGet, h.logger)
		return
	}

	courseID := strings.TrimPrefix(r.URL.Path, "/courses/")
	if courseID == "" || strings.Contains(courseID, "/") {
		writeError(w, http.StatusNotFound, "Course not found", h.logger)
		return
	}

	course, err := h.courseService.GetCourseByID(r.Context(), courseID)
	if err != nil {
		if errors.Is(err, service.ErrCourseNotFound) {
			writeError(w, http.StatusNotFound, "Course not found", h.logger)
			return
		}
		h.logger.Error().Err(err).Str("course_id", courseID).Msg("Failed to retrieve course")
		writeError(w, http.StatusInternalServerError, "Failed to retrieve course", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, toCourseResponse(*course), h.logger)
}

func toCourseResponse(c model.Course) dto.CourseResponseDTO {
	return dto.CourseResponseDTO{
		ID:            c.ID,
		Title:         c.Title,
		Instructor:    c.Instructor,
		Org:           c.Org,
		Duration:      c.Duration,
		Difficulty:    c.Difficulty,
		Certification: c.Certification,
		Summary:       c.Summary,
	}
}
