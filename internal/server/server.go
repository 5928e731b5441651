// Package server exposes the webhook-mode HTTP surface: the Telegram update
// receiver and the scheduled dispatch trigger.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/drpriyams/neetpg-mcq-bot/internal/domain/entities"
	"github.com/drpriyams/neetpg-mcq-bot/internal/repository"
	"github.com/drpriyams/neetpg-mcq-bot/internal/service"
)

type UpdateHandler interface {
	HandleUpdate(ctx context.Context, update tgbotapi.Update)
}

type Dispatcher interface {
	Dispatch(ctx context.Context) (*entities.Question, error)
}

// Server hosts the two HTTP entry points of the bot.
type Server struct {
	logger     *zap.Logger
	handler    UpdateHandler
	dispatcher Dispatcher
	cronSecret string
	addr       string
	router     chi.Router
}

func New(
	logger *zap.Logger,
	handler UpdateHandler,
	dispatcher Dispatcher,
	cronSecret string,
	addr string,
) *Server {
	s := &Server{
		logger:     logger,
		handler:    handler,
		dispatcher: dispatcher,
		cronSecret: cronSecret,
		addr:       addr,
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Post("/api/webhook", s.handleWebhook)
	// POST is for the platform cron and requires the shared secret; GET stays
	// open for manual testing, as the original deployment allowed.
	r.With(s.requireCronSecret).Post("/api/send-mcq", s.handleSendMCQ)
	r.Get("/api/send-mcq", s.handleSendMCQ)

	s.router = r
	return s
}

// Router returns the HTTP handler, mainly for tests.
func (s *Server) Router() http.Handler { return s.router }

// Run serves until the context is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.addr,
		Handler: s.router,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("http server listening", zap.String("addr", s.addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

func (s *Server) handleWebhook(w http.ResponseWriter, r *http.Request) {
	var update tgbotapi.Update
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		s.logger.Warn("malformed webhook payload", zap.Error(err))
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "malformed update payload"})
		return
	}

	// Handler converts every failure to a user-facing message itself.
	s.handler.HandleUpdate(r.Context(), update)

	writeJSON(w, http.StatusOK, map[string]string{"status": "success"})
}

func (s *Server) handleSendMCQ(w http.ResponseWriter, r *http.Request) {
	q, err := s.dispatcher.Dispatch(r.Context())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyStore):
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "No MCQ data available"})
		case errors.Is(err, repository.ErrStoreUnavailable):
			s.logger.Error("question store unavailable", zap.Error(err))
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "question store unavailable"})
		default:
			s.logger.Error("dispatch failed", zap.Error(err))
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"status":          "success",
		"question_number": q.Number,
		"subject":         q.Subject,
		"topic":           q.Topic,
		"timestamp":       time.Now().Format(time.RFC3339),
	})
}

func (s *Server) requireCronSecret(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth := r.Header.Get("Authorization")
		token, ok := strings.CutPrefix(auth, "Bearer ")
		if !ok || token != s.cronSecret {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
			return
		}
		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
