package router

import (
	"fmt"
	"net/http"
	"strings"

	_ "github.com/Charugundlavipul/medilink/docs"
	"github.com/Charugundlavipul/medilink/internal/api/v1/handler"
	"github.com/Charugundlavipul/medilink/internal/config"
	"github.com/Charugundlavipul/medilink/internal/middleware"
	"github.com/Charugundlavipul/medilink/internal/repository"
	"github.com/Charugundlavipul/medilink/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
	"github.com/swaggo/swag"
)

// New wires repositories, services and handlers into the HTTP handler tree.
// cfg.GeminiAPIKey must already hold the resolved key.
func New(cfg *config.Config, logger zerolog.Logger) (http.Handler, error) {
	gemini := service.NewGeminiClient(cfg.GeminiBaseURL, cfg.GeminiModel, cfg.GeminiTimeout())
	return newWithGemini(cfg, gemini, logger)
}

func newWithGemini(cfg *config.Config, gemini service.GeminiClient, logger zerolog.Logger) (http.Handler, error) {
	logger.Info().Str("environment", cfg.Environment).Str("gemini_model", cfg.GeminiModel).Msg("Router initialized")

	// 1. Initialize validator
	validate := validator.New(validator.WithRequiredStructEnabled())

	// 2. Initialize repositories & services & handlers
	caseStudyRepo, err := repository.NewCaseStudyRepo()
	if err != nil {
		return nil, fmt.Errorf("failed to load case studies: %w", err)
	}
	courseRepo, err := repository.NewCourseRepo()
	if err != nil {
		return nil, fmt.Errorf("failed to load courses: %w", err)
	}
	feedCaseRepo, err := repository.NewFeedCaseRepo()
	if err != nil {
		return nil, fmt.Errorf("failed to load feed cases: %w", err)
	}

	summarySvc := service.NewSummaryService(gemini, cfg.GeminiAPIKey, validate, logger)
	caseStudySvc := service.NewCaseStudyService(caseStudyRepo)
	courseSvc := service.NewCourseService(courseRepo)
	feedSvc := service.NewFeedService(feedCaseRepo)

	chatSummaryHandler := handler.NewChatSummaryHandler(summarySvc, cfg.MaxBodyBytes, logger)
	caseStudyHandler := handler.NewCaseStudyHandler(caseStudySvc, logger)
	courseHandler := handler.NewCourseHandler(courseSvc, validate, logger)
	feedHandler := handler.NewFeedHandler(feedSvc, logger)

	// 3. Create ServeMux router
	mux := http.NewServeMux()

	apiV1Mux := http.NewServeMux()
	chatSummaryHandler.RegisterRoutes(apiV1Mux)
	caseStudyHandler.RegisterRoutes(apiV1Mux)
	courseHandler.RegisterRoutes(apiV1Mux)
	feedHandler.RegisterRoutes(apiV1Mux)

	// Mount the API v1 routes under /v1
	mux.Handle("/v1/", http.StripPrefix("/v1", apiV1Mux))

	// The web client posts here; a redirect would turn the POST into a GET
	mux.Handle("/api/chat/summary", http.StripPrefix("/api", apiV1Mux))

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	mux.HandleFunc("/swagger/doc.json", func(w http.ResponseWriter, r *http.Request) {
		doc, err := swag.ReadDoc()
		if err != nil {
			logger.Error().Err(err).Msg("Failed to read swagger doc")
			http.Error(w, "swagger doc unavailable", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(doc))
	})

	// Redirect /api/* to /v1/* for backward compatibility
	mux.HandleFunc("/api/", func(w http.ResponseWriter, r *http.Request) {
		rest := strings.TrimPrefix(r.URL.Path, "/api/")
		http.Redirect(w, r, "/v1/"+rest, http.StatusMovedPermanently)
	})

	// Redirect all other root-level requests to /v1/{path}
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/" || strings.HasPrefix(r.URL.Path, "/v1/") || strings.HasPrefix(r.URL.Path, "/swagger/") || strings.HasPrefix(r.URL.Path, "/api/") {
			http.NotFound(w, r)
			return
		}
		http.Redirect(w, r, "/v1"+r.URL.Path, http.StatusMovedPermanently)
	})

	// 4. Apply CORS middleware
	c := cors.New(cors.Options{
		AllowedOrigins: cfg.CORSAllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"*"},
	})

	return middleware.LoggerMiddleware(logger)(c.Handler(mux)), nil
}
