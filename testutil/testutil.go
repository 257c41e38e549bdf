// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/danielhkuo/lucky-ticket/board"
	"github.com/danielhkuo/lucky-ticket/cliparse"
	"github.com/danielhkuo/lucky-ticket/db"
	"github.com/danielhkuo/lucky-ticket/handlers"
	"github.com/danielhkuo/lucky-ticket/lottery"
)

// TestDBURL is the connection string for the test database
const TestDBURL = ":memory:"

// FixedTime is the clock used by test dependencies
var FixedTime = time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)

// SetupTestDB creates a fresh in-memory database with the full schema
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := db.Open("sqlite", TestDBURL)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	if err := db.CreateSchema(conn); err != nil {
		conn.Close()
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         3318,
		DatabaseURL:  TestDBURL,
		DatabaseType: "sqlite",
		BoardSize:    5,
		Seed:         42,
	}
}

// NewTestDeps wires handlers against conn with a seeded sampler, or with s
// when one is given
func NewTestDeps(t *testing.T, conn *sql.DB, s lottery.Sampler) handlers.Deps {
	t.Helper()

	cfg := GetTestConfig()
	if s == nil {
		s = lottery.NewSeededSampler(cfg.Seed)
	}

	return handlers.Deps{
		DB:        conn,
		Generator: lottery.NewGenerator(s),
		Catalog:   lottery.DefaultCatalog(),
		Boards:    board.NewStore(cfg.BoardSize),
		Now:       func() time.Time { return FixedTime },
	}
}

// MakeRequest creates an HTTP test request with no body
func MakeRequest(method, path string) *http.Request {
	return httptest.NewRequest(method, path, nil)
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
