// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database connections, schema creation and generation
statistics.

# Connecting

Open supports PostgreSQL (lib/pq) and SQLite (modernc.org/sqlite):

	conn, err := db.Open("sqlite", "file:lucky.db")
	conn, err := db.Open("postgres", "postgres://...")

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS.

# Tables

  - generation_stat: ticket count and last generation time per variant

Generated tickets are never written to the database.

# Statistics

	stats := db.NewStatsRepository(conn)
	err := stats.Record(ctx, "powerball", 1, time.Now())
	all, err := stats.List(ctx)
*/
package db
