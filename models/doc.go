// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request and response types for the API.

# Response Types

  - CreateSessionResponse: session_id
  - TicketEntry: one ticket with its labels and generation time
  - GenerateTicketsResponse: tickets
  - ListTicketsResponse: session_id, capacity, tickets (newest first)
  - ListVariantsResponse: variants
  - StatsResponse: per-variant counters and totals
  - ErrorResponse: error, message

# Constants

	MaxTicketsPerRequest = 50
*/
package models
