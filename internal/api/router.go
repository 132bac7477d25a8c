package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/wordsland/internal/api/apierr"
	"github.com/mcoot/wordsland/internal/api/handler"
	"github.com/mcoot/wordsland/internal/middleware"
	"github.com/mcoot/wordsland/internal/services/dictionary"
	"github.com/mcoot/wordsland/internal/services/session"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger            *slog.Logger
	SessionManager    *session.Manager
	DictionaryService *dictionary.Service
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	sessionHandler := handler.NewSessionHandler(cfg.SessionManager)
	healthHandler := handler.NewHealthHandler(cfg.DictionaryService, cfg.SessionManager)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.RequestID())
	api.Use(middleware.Recovery(cfg.Logger, apiPanicHandler))
	api.Use(middleware.Logging(cfg.Logger))

	api.HandleFunc("/sessions", sessionHandler.Create).Methods(http.MethodPost)

	sessions := api.PathPrefix("/sessions/{id}").Subrouter()
	sessions.HandleFunc("", sessionHandler.Get).Methods(http.MethodGet)
	sessions.HandleFunc("", sessionHandler.End).Methods(http.MethodDelete)
	sessions.HandleFunc("/history", sessionHandler.History).Methods(http.MethodGet)

	// Board commands
	sessions.HandleFunc("/place", sessionHandler.Place).Methods(http.MethodPost)
	sessions.HandleFunc("/move", sessionHandler.Move).Methods(http.MethodPost)
	sessions.HandleFunc("/recall", sessionHandler.Recall).Methods(http.MethodPost)
	sessions.HandleFunc("/recall-all", sessionHandler.RecallAll).Methods(http.MethodPost)
	sessions.HandleFunc("/commit", sessionHandler.Commit).Methods(http.MethodPost)

	// Swap commands
	sessions.HandleFunc("/swap/enter", sessionHandler.EnterSwap).Methods(http.MethodPost)
	sessions.HandleFunc("/swap/toggle", sessionHandler.ToggleSwap).Methods(http.MethodPost)
	sessions.HandleFunc("/swap/confirm", sessionHandler.ConfirmSwap).Methods(http.MethodPost)
	sessions.HandleFunc("/swap/cancel", sessionHandler.CancelSwap).Methods(http.MethodPost)

	sessions.HandleFunc("/round/next", sessionHandler.NextRound).Methods(http.MethodPost)

	api.HandleFunc("/health", healthHandler.Get).Methods(http.MethodGet)

	return r
}

// apiPanicHandler answers a recovered panic with a JSON 500
func apiPanicHandler(w http.ResponseWriter, _ *http.Request, _ any) {
	apierr.WriteError(w, apierr.NewInternalError())
}
