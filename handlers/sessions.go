// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/lucky-ticket/board"
	"github.com/danielhkuo/lucky-ticket/middleware"
	"github.com/danielhkuo/lucky-ticket/models"
)

type SessionHandler struct {
	deps Deps
}

func NewSessionHandler(deps Deps) *SessionHandler {
	return &SessionHandler{deps: deps}
}

// CreateSession handles POST /sessions
func (h *SessionHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	id := h.deps.Boards.Create()

	slog.Info("session created", "session_id", id, "remote", middleware.GetClientIP(r))

	middleware.JSONResponse(w, http.StatusCreated, models.CreateSessionResponse{
		SessionID: id,
	})
}

// DeleteSession handles DELETE /sessions/{id}
func (h *SessionHandler) DeleteSession(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if err := h.deps.Boards.Delete(id); err != nil {
		if errors.Is(err, board.ErrSessionNotFound) {
			middleware.ErrorResponse(w, http.StatusNotFound, "Session not found")
			return
		}
		slog.Error("failed to delete session", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to delete session")
		return
	}

	slog.Info("session deleted", "session_id", id)
	w.WriteHeader(http.StatusNoContent)
}
