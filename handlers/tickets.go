// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/danielhkuo/lucky-ticket/board"
	"github.com/danielhkuo/lucky-ticket/db"
	"github.com/danielhkuo/lucky-ticket/lottery"
	"github.com/danielhkuo/lucky-ticket/metrics"
	"github.com/danielhkuo/lucky-ticket/middleware"
	"github.com/danielhkuo/lucky-ticket/models"
	"github.com/danielhkuo/lucky-ticket/render"
)

type TicketHandler struct {
	deps  Deps
	stats *db.StatsRepository
}

func NewTicketHandler(deps Deps) *TicketHandler {
	return &TicketHandler{deps: deps, stats: db.NewStatsRepository(deps.DB)}
}

// ListVariants handles GET /variants
func (h *TicketHandler) ListVariants(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, models.ListVariantsResponse{
		Variants: h.deps.Catalog.Variants(),
	})
}

// GenerateTickets handles POST /sessions/{id}/tickets/{variant}
// Generates ?count tickets (default 1) and prepends them to the session board
func (h *TicketHandler) GenerateTickets(w http.ResponseWriter, r *http.Request) {
	b, ok := h.lookupBoard(w, r)
	if !ok {
		return
	}

	variant, ok := h.lookupVariant(w, r)
	if !ok {
		return
	}

	count, err := parseCount(r)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	entries, ok := h.generate(w, r, variant, count)
	if !ok {
		return
	}
	for _, e := range entries {
		b.Prepend(e)
	}

	slog.Info("tickets generated",
		"session_id", r.PathValue("id"),
		"variant", variant.Key,
		"count", count,
	)

	middleware.JSONResponse(w, http.StatusCreated, models.GenerateTicketsResponse{
		Tickets: h.toEntries(entries),
	})
}

// Draw handles POST /draw/{variant}
// Returns tickets without storing them on any board
func (h *TicketHandler) Draw(w http.ResponseWriter, r *http.Request) {
	variant, ok := h.lookupVariant(w, r)
	if !ok {
		return
	}

	count, err := parseCount(r)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	entries, ok := h.generate(w, r, variant, count)
	if !ok {
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.GenerateTicketsResponse{
		Tickets: h.toEntries(entries),
	})
}

// ListTickets handles GET /sessions/{id}/tickets
// Newest first; ?format=text renders the board as plain text
func (h *TicketHandler) ListTickets(w http.ResponseWriter, r *http.Request) {
	b, ok := h.lookupBoard(w, r)
	if !ok {
		return
	}
	entries := b.Entries()

	if r.URL.Query().Get("format") == "text" {
		var buf bytes.Buffer
		if err := render.NewWriter(&buf, h.deps.Catalog).WriteEntries(entries); err != nil {
			slog.Error("failed to render tickets", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to render tickets")
			return
		}
		middleware.TextResponse(w, http.StatusOK, buf.String())
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ListTicketsResponse{
		SessionID: r.PathValue("id"),
		Capacity:  b.Capacity(),
		Tickets:   h.toEntries(entries),
	})
}

// ClearTickets handles DELETE /sessions/{id}/tickets
func (h *TicketHandler) ClearTickets(w http.ResponseWriter, r *http.Request) {
	b, ok := h.lookupBoard(w, r)
	if !ok {
		return
	}
	b.Clear()

	slog.Info("board cleared", "session_id", r.PathValue("id"))
	w.WriteHeader(http.StatusNoContent)
}

// generate draws count tickets and records them in metrics and stats.
// Stats are best effort; a failed write is logged and the tickets are kept.
func (h *TicketHandler) generate(w http.ResponseWriter, r *http.Request, v lottery.Variant, count int) ([]board.Entry, bool) {
	now := h.deps.now()
	entries := make([]board.Entry, 0, count)
	for i := 0; i < count; i++ {
		t, err := h.deps.Generator.Generate(v)
		if err != nil {
			metrics.TicketGenerationFailed.WithLabelValues(v.Key).Inc()
			slog.Error("failed to generate ticket", "variant", v.Key, "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to generate ticket")
			return nil, false
		}
		entries = append(entries, board.Entry{Ticket: t, GeneratedAt: now})
	}

	metrics.TicketsGenerated.WithLabelValues(v.Key).Add(float64(count))
	if err := h.stats.Record(r.Context(), v.Key, count, now); err != nil {
		slog.Error("failed to record stats", "variant", v.Key, "error", err)
	}

	return entries, true
}

func (h *TicketHandler) lookupBoard(w http.ResponseWriter, r *http.Request) (*board.Board, bool) {
	b, err := h.deps.Boards.Get(r.PathValue("id"))
	if errors.Is(err, board.ErrSessionNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Session not found")
		return nil, false
	}
	if err != nil {
		slog.Error("failed to load board", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to load session")
		return nil, false
	}
	return b, true
}

func (h *TicketHandler) lookupVariant(w http.ResponseWriter, r *http.Request) (lottery.Variant, bool) {
	v, err := h.deps.Catalog.Lookup(r.PathValue("variant"))
	if err != nil {
		middleware.ErrorResponse(w, http.StatusNotFound, "Unknown variant: "+r.PathValue("variant"))
		return lottery.Variant{}, false
	}
	return v, true
}

func (h *TicketHandler) toEntries(entries []board.Entry) []models.TicketEntry {
	out := make([]models.TicketEntry, 0, len(entries))
	for _, e := range entries {
		v, _ := h.deps.Catalog.Lookup(e.Ticket.Variant)
		out = append(out, models.TicketEntry{
			Variant:         e.Ticket.Variant,
			Numbers:         e.Ticket.Numbers,
			SpecialNumber:   e.Ticket.SpecialNumber,
			SpecialLabel:    v.SpecialLabel,
			Multiplier:      e.Ticket.Multiplier,
			MultiplierLabel: v.MultiplierLabel,
			GeneratedAt:     e.GeneratedAt,
		})
	}
	return out
}

var errInvalidCount = fmt.Errorf("count must be between 1 and %d", models.MaxTicketsPerRequest)

func parseCount(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("count")
	if raw == "" {
		return 1, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 || n > models.MaxTicketsPerRequest {
		return 0, errInvalidCount
	}
	return n, nil
}
