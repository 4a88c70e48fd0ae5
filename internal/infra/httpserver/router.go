package httpserver

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	appbrand "github.com/brandguard-app/brandguard/internal/application/brand"
	domain "github.com/brandguard-app/brandguard/internal/domain/brand"
	"github.com/brandguard-app/brandguard/internal/middleware"
)

type Router struct {
	svc *appbrand.Service
	dev bool
	log *zap.Logger
}

func NewRouter(svc *appbrand.Service, dev bool, logger *zap.Logger) http.Handler {
	r := &Router{svc: svc, dev: dev, log: logger}
	mux := chi.NewRouter()

	mux.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
		// Preflights fall through to the explicit OPTIONS route so every
		// OPTIONS response carries the same header set.
		OptionsPassthrough: true,
	}))

	mux.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})
	mux.Get("/metrics", middleware.MetricsHandler)

	mux.Post("/v1/brand/analyze", r.wrap(r.handleAnalyze))
	mux.Options("/v1/brand/analyze", r.handlePreflight)

	return mux
}

type handlerFunc func(http.ResponseWriter, *http.Request) error

// wrap maps handler errors to the response envelope: validation failures are
// the caller's fault (400), everything else is a 500 whose detail is exposed
// only in development mode. A panic anywhere in the pipeline still yields a
// well-formed envelope.
func (r *Router) wrap(h handlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				r.log.Error("panic while handling request",
					zap.String("request_id", middleware.GetRequestID(req.Context())),
					zap.Any("panic", rec))
				r.writeServerError(w, fmt.Errorf("%v", rec))
			}
		}()

		err := h(w, req)
		if err == nil {
			return
		}

		switch {
		case errors.Is(err, domain.ErrMissingField),
			errors.Is(err, domain.ErrTextTooLong),
			errors.Is(err, domain.ErrMalformedBody):
			middleware.IncrementAnalysesFailed()
			writeJSON(w, http.StatusBadRequest, errorResponse{
				Success: false,
				Error:   clientMessage(err),
			})
		default:
			middleware.IncrementAnalysesFailed()
			r.log.Error("request failed",
				zap.String("request_id", middleware.GetRequestID(req.Context())),
				zap.Error(err))
			r.writeServerError(w, err)
		}
	}
}

func (r *Router) writeServerError(w http.ResponseWriter, err error) {
	resp := errorResponse{
		Success: false,
		Error:   "Internal server error",
	}
	if r.dev {
		resp.Details = err.Error()
	}
	writeJSON(w, http.StatusInternalServerError, resp)
}

func clientMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrMissingField):
		return "Missing 'textToAnalyze' field in request body"
	case errors.Is(err, domain.ErrTextTooLong):
		return "Text exceeds maximum length of 5000 characters"
	default:
		return "Invalid JSON in request body"
	}
}

// POST /v1/brand/analyze
// Body: {"textToAnalyze": "<text>"}
func (r *Router) handleAnalyze(w http.ResponseWriter, req *http.Request) error {
	var body domain.AnalysisRequest
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrMalformedBody, err)
	}

	analysis, err := r.svc.Analyze(req.Context(), body.TextToAnalyze)
	if err != nil {
		return err
	}

	middleware.IncrementAnalyses()
	return writeJSON(w, http.StatusOK, successResponse{
		Success:      true,
		Score:        analysis.Score,
		Suggestion:   analysis.Suggestion,
		OriginalText: analysis.OriginalText,
	})
}

// OPTIONS /v1/brand/analyze
// Explicit preflight route: 200 with no body and the full header set. The
// CORS middleware passes OPTIONS through, so both browser preflights and
// bare probes end up here; Set overrides whatever the middleware echoed.
func (r *Router) handlePreflight(w http.ResponseWriter, req *http.Request) {
	setHeaders(w)
	w.WriteHeader(http.StatusOK)
}
