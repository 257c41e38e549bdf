package models

import (
	"time"

	"github.com/danielhkuo/lucky-ticket/lottery"
)

// Request limits
const (
	MaxTicketsPerRequest = 50
)

// Response types

type CreateSessionResponse struct {
	SessionID string `json:"session_id"`
}

type TicketEntry struct {
	Variant         string    `json:"variant"`
	Numbers         []int     `json:"numbers"`
	SpecialNumber   int       `json:"special_number"`
	SpecialLabel    string    `json:"special_label"`
	Multiplier      int       `json:"multiplier"`
	MultiplierLabel string    `json:"multiplier_label"`
	GeneratedAt     time.Time `json:"generated_at"`
}

type GenerateTicketsResponse struct {
	Tickets []TicketEntry `json:"tickets"`
}

type ListTicketsResponse struct {
	SessionID string        `json:"session_id"`
	Capacity  int           `json:"capacity"`
	Tickets   []TicketEntry `json:"tickets"`
}

type ListVariantsResponse struct {
	Variants []lottery.Variant `json:"variants"`
}

type VariantStat struct {
	Variant         string     `json:"variant"`
	Tickets         int64      `json:"tickets"`
	TicketsDisplay  string     `json:"tickets_display"`
	LastGeneratedAt *time.Time `json:"last_generated_at,omitempty"`
}

type StatsResponse struct {
	Variants       []VariantStat `json:"variants"`
	Total          int64         `json:"total"`
	TotalDisplay   string        `json:"total_display"`
	ActiveSessions int           `json:"active_sessions"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
