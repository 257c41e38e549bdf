// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Lucky Ticket API server.

Lucky Ticket generates Powerball and Mega Millions style tickets: five unique
main numbers in ascending order, an independent special ball and a multiplier
option. Tickets are shown on a per-session display list, newest first.

# Starting the Server

With no configuration the server listens on 3318 and keeps its generation
counters in a local SQLite file:

	go run .

Or against PostgreSQL:

	go run . -p 3318 -t postgres -d "postgres://..."

# Drawing From the Command Line

	go run . -draw powerball -n 5

prints five tickets and exits without opening a database.

# Configuration

Flags fall back to environment variables, which may come from a .env file
(-env, default ".env"):

  - PORT (-p): Server port (default: 3318)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - DATABASE_URL (-d): connection string (default: file:lucky.db)
  - VARIANTS_FILE (-variants): YAML file with extra lottery variants
  - BOARD_SIZE (-board-size): tickets kept per session (default: 20)
  - SEED (-seed): fixed random seed for reproducible draws

# Architecture

  - lottery: sampling, unique sets, ticket assembly, variant catalog
  - board: in-memory per-session display lists
  - render: plain text ticket formatting
  - handlers: HTTP request handlers (sessions, tickets, stats)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - metrics: Prometheus counters
  - models: Request/response types
  - db: Schema creation and generation counters
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
