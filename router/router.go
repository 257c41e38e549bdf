// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/lucky-ticket/handlers"
	"github.com/danielhkuo/lucky-ticket/metrics"
	"github.com/danielhkuo/lucky-ticket/middleware"
)

func NewRouter(deps handlers.Deps) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	sessionHandler := handlers.NewSessionHandler(deps)
	ticketHandler := handlers.NewTicketHandler(deps)
	statsHandler := handlers.NewStatsHandler(deps)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Prometheus scrape endpoint
	mux.Handle("GET /metrics", metrics.Handler())

	// Variants and stateless draws
	mux.HandleFunc("GET /variants", middleware.WithLogging(ticketHandler.ListVariants))
	mux.HandleFunc("POST /draw/{variant}", middleware.WithLogging(ticketHandler.Draw))

	// Sessions and their display lists
	mux.HandleFunc("POST /sessions", middleware.WithLogging(sessionHandler.CreateSession))
	mux.HandleFunc("DELETE /sessions/{id}", middleware.WithLogging(sessionHandler.DeleteSession))
	mux.HandleFunc("GET /sessions/{id}/tickets", middleware.WithLogging(ticketHandler.ListTickets))
	mux.HandleFunc("POST /sessions/{id}/tickets/{variant}", middleware.WithLogging(ticketHandler.GenerateTickets))
	mux.HandleFunc("DELETE /sessions/{id}/tickets", middleware.WithLogging(ticketHandler.ClearTickets))

	// Generation statistics
	mux.HandleFunc("GET /stats", middleware.WithLogging(statsHandler.GetStats))
	mux.HandleFunc("DELETE /stats", middleware.WithLogging(statsHandler.ResetStats))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("lucky-ticket API v1"))
	})

	return mux
}
