package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/wordsland/internal/api/request"
	"github.com/mcoot/wordsland/internal/api/response"
	"github.com/mcoot/wordsland/internal/model"
	"github.com/mcoot/wordsland/internal/services/session"
)

// SessionHandler handles game session endpoints
type SessionHandler struct {
	manager *session.Manager
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(manager *session.Manager) *SessionHandler {
	return &SessionHandler{
		manager: manager,
	}
}

func sessionID(r *http.Request) model.SessionID {
	return model.SessionID(mux.Vars(r)["id"])
}

// writeSnapshot writes the session state or the error
func writeSnapshot(w http.ResponseWriter, snap model.Snapshot, err error) {
	if err != nil {
		WriteError(w, err)
		return
	}
	response.OK(w, response.SessionFromSnapshot(snap))
}

// Create handles POST /api/v1/sessions
func (h *SessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	snap, err := h.manager.Create(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, response.SessionFromSnapshot(snap))
}

// Get handles GET /api/v1/sessions/{id}
func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	snap, err := h.manager.Get(r.Context(), sessionID(r))
	writeSnapshot(w, snap, err)
}

// End handles DELETE /api/v1/sessions/{id}
func (h *SessionHandler) End(w http.ResponseWriter, r *http.Request) {
	if err := h.manager.End(r.Context(), sessionID(r)); err != nil {
		WriteError(w, err)
		return
	}
	response.NoContent(w)
}

// Place handles POST /api/v1/sessions/{id}/place
func (h *SessionHandler) Place(w http.ResponseWriter, r *http.Request) {
	var req request.PlaceRequest
	if err := decode(r, &req); err != nil {
		WriteError(w, err)
		return
	}
	pos := model.Position{Row: req.Row, Col: req.Col}
	snap, err := h.manager.Place(r.Context(), sessionID(r), req.HandIndex, pos)
	writeSnapshot(w, snap, err)
}

// Move handles POST /api/v1/sessions/{id}/move
func (h *SessionHandler) Move(w http.ResponseWriter, r *http.Request) {
	var req request.MoveRequest
	if err := decode(r, &req); err != nil {
		WriteError(w, err)
		return
	}
	from := model.Position{Row: req.From.Row, Col: req.From.Col}
	to := model.Position{Row: req.To.Row, Col: req.To.Col}
	snap, err := h.manager.Move(r.Context(), sessionID(r), from, to)
	writeSnapshot(w, snap, err)
}

// Recall handles POST /api/v1/sessions/{id}/recall
func (h *SessionHandler) Recall(w http.ResponseWriter, r *http.Request) {
	var req request.RecallRequest
	if err := decode(r, &req); err != nil {
		WriteError(w, err)
		return
	}
	snap, err := h.manager.Recall(r.Context(), sessionID(r), model.Position{Row: req.Row, Col: req.Col})
	writeSnapshot(w, snap, err)
}

// RecallAll handles POST /api/v1/sessions/{id}/recall-all
func (h *SessionHandler) RecallAll(w http.ResponseWriter, r *http.Request) {
	snap, err := h.manager.RecallAll(r.Context(), sessionID(r))
	writeSnapshot(w, snap, err)
}

// Commit handles POST /api/v1/sessions/{id}/commit
func (h *SessionHandler) Commit(w http.ResponseWriter, r *http.Request) {
	result, snap, err := h.manager.Commit(r.Context(), sessionID(r))
	if err != nil {
		WriteError(w, err)
		return
	}
	response.OK(w, response.CommitResponseFromModel(result, snap))
}

// EnterSwap handles POST /api/v1/sessions/{id}/swap/enter
func (h *SessionHandler) EnterSwap(w http.ResponseWriter, r *http.Request) {
	snap, err := h.manager.EnterSwap(r.Context(), sessionID(r))
	writeSnapshot(w, snap, err)
}

// ToggleSwap handles POST /api/v1/sessions/{id}/swap/toggle
func (h *SessionHandler) ToggleSwap(w http.ResponseWriter, r *http.Request) {
	var req request.ToggleSwapRequest
	if err := decode(r, &req); err != nil {
		WriteError(w, err)
		return
	}
	snap, err := h.manager.ToggleSwap(r.Context(), sessionID(r), req.Index)
	writeSnapshot(w, snap, err)
}

// ConfirmSwap handles POST /api/v1/sessions/{id}/swap/confirm
func (h *SessionHandler) ConfirmSwap(w http.ResponseWriter, r *http.Request) {
	snap, err := h.manager.ConfirmSwap(r.Context(), sessionID(r))
	writeSnapshot(w, snap, err)
}

// CancelSwap handles POST /api/v1/sessions/{id}/swap/cancel
func (h *SessionHandler) CancelSwap(w http.ResponseWriter, r *http.Request) {
	snap, err := h.manager.CancelSwap(r.Context(), sessionID(r))
	writeSnapshot(w, snap, err)
}

// NextRound handles POST /api/v1/sessions/{id}/round/next
func (h *SessionHandler) NextRound(w http.ResponseWriter, r *http.Request) {
	snap, err := h.manager.NextRound(r.Context(), sessionID(r))
	writeSnapshot(w, snap, err)
}

// History handles GET /api/v1/sessions/{id}/history
func (h *SessionHandler) History(w http.ResponseWriter, r *http.Request) {
	id := sessionID(r)
	summaries, err := h.manager.History(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}
	response.OK(w, response.HistoryFromModel(id, summaries))
}
