// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Lucky Ticket API.

# Handler Types

Each handler is a struct built from a shared Deps value:

  - SessionHandler: session (display list) lifecycle
  - TicketHandler: ticket generation, listing and clearing
  - StatsHandler: generation counters

	deps := handlers.Deps{DB: conn, Generator: gen, Catalog: catalog, Boards: store}
	ticketHandler := handlers.NewTicketHandler(deps)

# Sessions

A session owns one board of tickets, newest first, capped at the configured
board size:

	POST   /sessions                           → CreateSession (returns session_id)
	DELETE /sessions/{id}                      → DeleteSession
	POST   /sessions/{id}/tickets/{variant}    → GenerateTickets (?count=1..50)
	GET    /sessions/{id}/tickets              → ListTickets (?format=text)
	DELETE /sessions/{id}/tickets              → ClearTickets

Boards live in memory only.

# Stateless Draws

	GET  /variants        → ListVariants
	POST /draw/{variant}  → Draw (?count=1..50)

# Statistics

Every generated ticket increments the variant's counter in the database and
the tickets_generated_total Prometheus counter:

	GET    /stats → GetStats
	DELETE /stats → ResetStats
*/
package handlers
