// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// Stat is the generation counter for one variant.
type Stat struct {
	Variant         string
	Tickets         int64
	LastGeneratedAt time.Time
}

// StatsRepository stores how many tickets were generated per variant.
// Ticket contents are never stored.
type StatsRepository struct {
	db *sql.DB
}

func NewStatsRepository(db *sql.DB) *StatsRepository {
	return &StatsRepository{db: db}
}

// Record adds n tickets to the variant's counter.
func (r *StatsRepository) Record(ctx context.Context, variant string, n int, at time.Time) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO generation_stat (variant, tickets, last_generated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (variant) DO UPDATE
		SET tickets = generation_stat.tickets + excluded.tickets,
		    last_generated_at = excluded.last_generated_at
	`, variant, n, at.UTC())
	if err != nil {
		return fmt.Errorf("failed to record generation for %s: %w", variant, err)
	}
	return nil
}

// List returns all counters ordered by variant.
func (r *StatsRepository) List(ctx context.Context) ([]Stat, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT variant, tickets, last_generated_at
		FROM generation_stat
		ORDER BY variant
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query stats: %w", err)
	}
	defer rows.Close()

	stats := []Stat{}
	for rows.Next() {
		var s Stat
		var last sql.NullTime
		if err := rows.Scan(&s.Variant, &s.Tickets, &last); err != nil {
			return nil, fmt.Errorf("failed to scan stat: %w", err)
		}
		s.LastGeneratedAt = last.Time
		stats = append(stats, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read stats: %w", err)
	}
	return stats, nil
}

// Reset deletes all counters.
func (r *StatsRepository) Reset(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM generation_stat`); err != nil {
		return fmt.Errorf("failed to reset stats: %w", err)
	}
	return nil
}
