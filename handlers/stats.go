// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/lucky-ticket/db"
	"github.com/danielhkuo/lucky-ticket/middleware"
	"github.com/danielhkuo/lucky-ticket/models"
)

type StatsHandler struct {
	deps  Deps
	stats *db.StatsRepository
}

func NewStatsHandler(deps Deps) *StatsHandler {
	return &StatsHandler{deps: deps, stats: db.NewStatsRepository(deps.DB)}
}

// GetStats handles GET /stats
func (h *StatsHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.stats.List(r.Context())
	if err != nil {
		slog.Error("failed to list stats", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	resp := models.StatsResponse{
		Variants:       make([]models.VariantStat, 0, len(stats)),
		ActiveSessions: h.deps.Boards.Len(),
	}
	for _, s := range stats {
		vs := models.VariantStat{
			Variant:        s.Variant,
			Tickets:        s.Tickets,
			TicketsDisplay: humanize.Comma(s.Tickets),
		}
		if !s.LastGeneratedAt.IsZero() {
			last := s.LastGeneratedAt
			vs.LastGeneratedAt = &last
		}
		resp.Variants = append(resp.Variants, vs)
		resp.Total += s.Tickets
	}
	resp.TotalDisplay = humanize.Comma(resp.Total)

	middleware.JSONResponse(w, http.StatusOK, resp)
}

// ResetStats handles DELETE /stats
func (h *StatsHandler) ResetStats(w http.ResponseWriter, r *http.Request) {
	if err := h.stats.Reset(r.Context()); err != nil {
		slog.Error("failed to reset stats", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	slog.Info("stats reset")
	w.WriteHeader(http.StatusNoContent)
}
