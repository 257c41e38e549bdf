// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the Lucky Ticket API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(deps)

# Endpoints

Health and monitoring:

	GET /health
	GET /metrics

Variants and stateless draws:

	GET  /variants
	POST /draw/{variant}

Sessions:

	POST   /sessions                         - Open a display list
	DELETE /sessions/{id}                    - Drop it
	GET    /sessions/{id}/tickets            - List tickets, newest first
	POST   /sessions/{id}/tickets/{variant}  - Generate and prepend
	DELETE /sessions/{id}/tickets            - Clear the list

Statistics:

	GET    /stats
	DELETE /stats

# Middleware

All API routes except /health and /metrics are wrapped with
middleware.WithLogging. Wrap the whole mux with middleware.CORS for browser
clients.
*/
package router
