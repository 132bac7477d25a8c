package handler

import (
	"net/http"

	"github.com/mcoot/wordsland/internal/api/response"
	"github.com/mcoot/wordsland/internal/services/dictionary"
	"github.com/mcoot/wordsland/internal/services/session"
)

// HealthHandler reports readiness
type HealthHandler struct {
	dictionary *dictionary.Service
	manager    *session.Manager
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(dictionary *dictionary.Service, manager *session.Manager) *HealthHandler {
	return &HealthHandler{
		dictionary: dictionary,
		manager:    manager,
	}
}

// Get handles GET /api/v1/health.
// The server is up while the dictionary loads; status is "loading" until then.
func (h *HealthHandler) Get(w http.ResponseWriter, r *http.Request) {
	status := "ok"
	if !h.dictionary.IsLoaded() {
		status = "loading"
	}
	response.OK(w, response.HealthResponse{
		Status:           status,
		DictionaryLoaded: h.dictionary.IsLoaded(),
		DictionaryWords:  h.dictionary.WordCount(),
		Sessions:         h.manager.Count(),
	})
}
