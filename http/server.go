// Package http exposes the calculator, preferences and form validation to
// the site over JSON and WebSocket.
package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"market-master/config"
	"market-master/repository"
	"market-master/service"
)

// Services are the dependencies the HTTP layer needs.
type Services struct {
	Sessions *service.SessionService
	FontSize *service.FontSizeService
	Forms    *service.FormService
}

type Server struct {
	router  chi.Router
	cfg     *config.Config
	limiter *RateLimiter

	mortgage *MortgageHandler
	sessions *SessionHandler
	prefs    *PreferenceHandler
	forms    *FormHandler
	page     *PageHandler
	sockets  *WebSocketHandler
}

func NewServer(cfg *config.Config, svc Services, limiter *RateLimiter) *Server {
	s := &Server{
		cfg:      cfg,
		limiter:  limiter,
		mortgage: NewMortgageHandler(svc.Sessions),
		sessions: NewSessionHandler(svc.Sessions),
		prefs:    NewPreferenceHandler(svc.FontSize),
		forms:    NewFormHandler(svc.Forms),
		page:     NewPageHandler(),
		sockets:  NewWebSocketHandler(svc.Sessions, cfg.Carousel.Interval),
	}
	s.router = s.buildRouter()
	return s
}

// Router returns the chi router, for tests and for mounting.
func (s *Server) Router() chi.Router {
	return s.router
}

func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	origins := []string{"*"}
	if len(s.cfg.API.CORSOrigins) > 0 {
		origins = s.cfg.API.CORSOrigins
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Client-ID", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID", "Retry-After"},
		MaxAge:         300,
	}))

	r.Get("/health", s.handleHealth)

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Timeout(15 * time.Second))
		if s.limiter != nil {
			r.Use(RateLimitMiddleware(s.limiter))
		}

		r.Post("/mortgage/calculate", s.mortgage.Calculate)
		r.Get("/mortgage/terms", s.mortgage.Terms)

		r.Post("/sessions", s.sessions.Create)
		r.Get("/sessions/{id}", s.sessions.Get)
		r.Delete("/sessions/{id}", s.sessions.End)
		r.Post("/sessions/{id}/events", s.sessions.Event)
		r.Get("/sessions/{id}/report.pdf", s.sessions.Report)

		r.Get("/preferences/font-size", s.prefs.FontSize)
		r.Post("/preferences/font-size/toggle", s.prefs.ToggleFontSize)

		r.Post("/forms/{form}/validate", s.forms.Validate)

		r.Get("/page/scroll", s.page.Scroll)
		r.Get("/page/reveal", s.page.Reveal)
		r.Get("/page/scroll-target", s.page.ScrollTarget)
		r.Post("/page/menu", s.page.Menu)
	})

	r.Get("/ws/sessions/{id}", s.sockets.Session)
	r.Get("/ws/carousel", s.sockets.Carousel)
	r.Get("/ws/counter", s.sockets.Counter)

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data:    map[string]string{"status": "ok"},
	})
}

// APIResponse is the standard JSON envelope.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// writeJSON encodes into a buffer first so a failed encode never leaves a
// half-written 200 behind.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		log.Printf("Error encoding response: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		log.Printf("Error writing response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, APIResponse{Success: false, Error: msg})
}

// statusFor maps service errors onto HTTP statuses.
func statusFor(err error) int {
	switch {
	case errors.Is(err, repository.ErrSessionNotFound), errors.Is(err, service.ErrFormNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrUnknownTrigger), errors.Is(err, service.ErrInvalidTerm):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeServiceError(w http.ResponseWriter, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		log.Printf("Error handling request: %v", err)
		writeError(w, status, "internal server error")
		return
	}
	writeError(w, status, err.Error())
}
