// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/danielhkuo/lucky-ticket/db"
	"github.com/danielhkuo/lucky-ticket/handlers"
	"github.com/danielhkuo/lucky-ticket/lottery"
	"github.com/danielhkuo/lucky-ticket/metrics"
	"github.com/danielhkuo/lucky-ticket/models"
	tu "github.com/danielhkuo/lucky-ticket/testutil"
)

// serve routes a single request through a mux so that PathValue works
func serve(pattern string, h http.HandlerFunc, req *http.Request) *httptest.ResponseRecorder {
	mux := http.NewServeMux()
	mux.HandleFunc(pattern, h)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	return w
}

func TestGenerateTickets(t *testing.T) {
	conn := tu.SetupTestDB(t)
	defer conn.Close()

	deps := tu.NewTestDeps(t, conn, nil)
	handler := handlers.NewTicketHandler(deps)
	sessionID := deps.Boards.Create()

	tests := []struct {
		name           string
		variant        string
		query          string
		expectedStatus int
		expectedCount  int
		check          func(t *testing.T, v lottery.Variant, e models.TicketEntry)
	}{
		{
			name:           "powerball",
			variant:        "powerball",
			expectedStatus: http.StatusCreated,
			expectedCount:  1,
			check: func(t *testing.T, v lottery.Variant, e models.TicketEntry) {
				if e.SpecialLabel != "Powerball" || e.MultiplierLabel != "Power Play" {
					t.Errorf("unexpected labels %q / %q", e.SpecialLabel, e.MultiplierLabel)
				}
			},
		},
		{
			name:           "mega millions batch",
			variant:        "mega-millions",
			query:          "?count=3",
			expectedStatus: http.StatusCreated,
			expectedCount:  3,
			check: func(t *testing.T, v lottery.Variant, e models.TicketEntry) {
				if e.SpecialLabel != "Mega Ball" || e.MultiplierLabel != "Megaplier" {
					t.Errorf("unexpected labels %q / %q", e.SpecialLabel, e.MultiplierLabel)
				}
			},
		},
		{
			name:           "variant is case insensitive",
			variant:        "PowerBall",
			expectedStatus: http.StatusCreated,
			expectedCount:  1,
		},
		{
			name:           "unknown variant",
			variant:        "keno",
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "count too large",
			variant:        "powerball",
			query:          "?count=51",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "count not a number",
			variant:        "powerball",
			query:          "?count=lots",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "count zero",
			variant:        "powerball",
			query:          "?count=0",
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := tu.MakeRequest("POST", "/sessions/"+sessionID+"/tickets/"+tt.variant+tt.query)
			w := serve("POST /sessions/{id}/tickets/{variant}", handler.GenerateTickets, req)

			tu.AssertStatus(t, w, tt.expectedStatus)
			if tt.expectedStatus != http.StatusCreated {
				return
			}

			var resp models.GenerateTicketsResponse
			tu.AssertJSON(t, w, &resp)
			if len(resp.Tickets) != tt.expectedCount {
				t.Fatalf("Expected %d tickets, got %d", tt.expectedCount, len(resp.Tickets))
			}

			v, err := deps.Catalog.Lookup(tt.variant)
			if err != nil {
				t.Fatal(err)
			}
			for _, e := range resp.Tickets {
				tk := lottery.Ticket{Variant: e.Variant, Numbers: e.Numbers, SpecialNumber: e.SpecialNumber, Multiplier: e.Multiplier}
				if err := v.Validate(tk); err != nil {
					t.Errorf("invalid ticket %+v: %v", tk, err)
				}
				if !e.GeneratedAt.Equal(tu.FixedTime) {
					t.Errorf("Expected generated_at %v, got %v", tu.FixedTime, e.GeneratedAt)
				}
				if tt.check != nil {
					tt.check(t, v, e)
				}
			}
		})
	}
}

func TestGenerateTickets_ExactSequence(t *testing.T) {
	conn := tu.SetupTestDB(t)
	defer conn.Close()

	deps := tu.NewTestDeps(t, conn, lottery.NewSequenceSampler(5, 12, 23, 45, 67, 15, 3))
	handler := handlers.NewTicketHandler(deps)
	sessionID := deps.Boards.Create()

	req := tu.MakeRequest("POST", "/sessions/"+sessionID+"/tickets/powerball")
	w := serve("POST /sessions/{id}/tickets/{variant}", handler.GenerateTickets, req)
	tu.AssertStatus(t, w, http.StatusCreated)

	var resp models.GenerateTicketsResponse
	tu.AssertJSON(t, w, &resp)

	got := resp.Tickets[0]
	want := []int{5, 12, 23, 45, 67}
	for i := range want {
		if got.Numbers[i] != want[i] {
			t.Fatalf("Expected numbers %v, got %v", want, got.Numbers)
		}
	}
	if got.SpecialNumber != 15 {
		t.Errorf("Expected special 15, got %d", got.SpecialNumber)
	}
	if got.Multiplier != 5 {
		t.Errorf("Expected multiplier 5, got %d", got.Multiplier)
	}
}

func TestGenerateTickets_UnknownSession(t *testing.T) {
	conn := tu.SetupTestDB(t)
	defer conn.Close()

	handler := handlers.NewTicketHandler(tu.NewTestDeps(t, conn, nil))

	for _, id := range []string{"not-a-uuid", "3f1f3c9e-8d8f-4b0b-9a53-2a1f0f6a9d11"} {
		req := tu.MakeRequest("POST", "/sessions/"+id+"/tickets/powerball")
		w := serve("POST /sessions/{id}/tickets/{variant}", handler.GenerateTickets, req)
		tu.AssertStatus(t, w, http.StatusNotFound)
	}
}

func TestGenerateTickets_RecordsStatsAndMetrics(t *testing.T) {
	conn := tu.SetupTestDB(t)
	defer conn.Close()

	deps := tu.NewTestDeps(t, conn, nil)
	handler := handlers.NewTicketHandler(deps)
	sessionID := deps.Boards.Create()

	before := testutil.ToFloat64(metrics.TicketsGenerated.WithLabelValues("mega-millions"))

	req := tu.MakeRequest("POST", "/sessions/"+sessionID+"/tickets/mega-millions?count=4")
	w := serve("POST /sessions/{id}/tickets/{variant}", handler.GenerateTickets, req)
	tu.AssertStatus(t, w, http.StatusCreated)

	if got := testutil.ToFloat64(metrics.TicketsGenerated.WithLabelValues("mega-millions")) - before; got != 4 {
		t.Errorf("Expected metric to grow by 4, grew by %v", got)
	}

	stats, err := db.NewStatsRepository(conn).List(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(stats) != 1 || stats[0].Variant != "mega-millions" || stats[0].Tickets != 4 {
		t.Errorf("unexpected stats %+v", stats)
	}
}

func TestGenerateTickets_StatsFailureKeepsTickets(t *testing.T) {
	conn := tu.SetupTestDB(t)
	deps := tu.NewTestDeps(t, conn, nil)
	handler := handlers.NewTicketHandler(deps)
	sessionID := deps.Boards.Create()

	// closed database: recording fails, generation must not
	conn.Close()

	req := tu.MakeRequest("POST", "/sessions/"+sessionID+"/tickets/powerball")
	w := serve("POST /sessions/{id}/tickets/{variant}", handler.GenerateTickets, req)
	tu.AssertStatus(t, w, http.StatusCreated)

	b, _ := deps.Boards.Get(sessionID)
	if b.Len() != 1 {
		t.Errorf("Expected ticket on board, got %d", b.Len())
	}
}

func TestGenerateTickets_BadVariantFromCatalog(t *testing.T) {
	conn := tu.SetupTestDB(t)
	defer conn.Close()

	deps := tu.NewTestDeps(t, conn, nil)
	// bypass Catalog.Add validation to simulate a broken definition
	deps.Catalog["broken"] = lottery.Variant{Key: "broken", Pick: 6, Pool: lottery.Range{Min: 1, Max: 3}, Multipliers: []int{1}}
	handler := handlers.NewTicketHandler(deps)

	before := testutil.ToFloat64(metrics.TicketGenerationFailed.WithLabelValues("broken"))

	req := tu.MakeRequest("POST", "/draw/broken")
	w := serve("POST /draw/{variant}", handler.Draw, req)
	tu.AssertStatus(t, w, http.StatusInternalServerError)

	if got := testutil.ToFloat64(metrics.TicketGenerationFailed.WithLabelValues("broken")) - before; got != 1 {
		t.Errorf("Expected failure metric to grow by 1, grew by %v", got)
	}
}

func TestListTickets_NewestFirstAndCapped(t *testing.T) {
	conn := tu.SetupTestDB(t)
	defer conn.Close()

	deps := tu.NewTestDeps(t, conn, nil)
	handler := handlers.NewTicketHandler(deps)
	sessionID := deps.Boards.Create()

	// board size is 5 in the test config
	var last models.TicketEntry
	for i := 0; i < 7; i++ {
		variant := "powerball"
		if i%2 == 1 {
			variant = "mega-millions"
		}
		req := tu.MakeRequest("POST", "/sessions/"+sessionID+"/tickets/"+variant)
		w := serve("POST /sessions/{id}/tickets/{variant}", handler.GenerateTickets, req)
		tu.AssertStatus(t, w, http.StatusCreated)

		var resp models.GenerateTicketsResponse
		tu.AssertJSON(t, w, &resp)
		last = resp.Tickets[0]
	}

	req := tu.MakeRequest("GET", "/sessions/"+sessionID+"/tickets")
	w := serve("GET /sessions/{id}/tickets", handler.ListTickets, req)
	tu.AssertStatus(t, w, http.StatusOK)

	var resp models.ListTicketsResponse
	tu.AssertJSON(t, w, &resp)

	if resp.SessionID != sessionID {
		t.Errorf("Expected session %s, got %s", sessionID, resp.SessionID)
	}
	if resp.Capacity != 5 || len(resp.Tickets) != 5 {
		t.Fatalf("Expected 5 of 5 tickets, got %d of %d", len(resp.Tickets), resp.Capacity)
	}
	first := resp.Tickets[0]
	if first.Variant != last.Variant || first.SpecialNumber != last.SpecialNumber || first.Multiplier != last.Multiplier {
		t.Errorf("Expected newest ticket first, got %+v want %+v", first, last)
	}
}

func TestListTickets_Text(t *testing.T) {
	conn := tu.SetupTestDB(t)
	defer conn.Close()

	deps := tu.NewTestDeps(t, conn, lottery.NewSequenceSampler(5, 12, 23, 45, 67, 15, 3))
	handler := handlers.NewTicketHandler(deps)
	sessionID := deps.Boards.Create()

	req := tu.MakeRequest("GET", "/sessions/"+sessionID+"/tickets?format=text")
	w := serve("GET /sessions/{id}/tickets", handler.ListTickets, req)
	tu.AssertStatus(t, w, http.StatusOK)
	if w.Body.String() != "No tickets yet.\n" {
		t.Errorf("unexpected empty board text %q", w.Body.String())
	}

	req = tu.MakeRequest("POST", "/sessions/"+sessionID+"/tickets/powerball")
	w = serve("POST /sessions/{id}/tickets/{variant}", handler.GenerateTickets, req)
	tu.AssertStatus(t, w, http.StatusCreated)

	req = tu.MakeRequest("GET", "/sessions/"+sessionID+"/tickets?format=text")
	w = serve("GET /sessions/{id}/tickets", handler.ListTickets, req)
	tu.AssertStatus(t, w, http.StatusOK)

	if !strings.HasPrefix(w.Body.String(), "Powerball  05 12 23 45 67  Powerball 15  Power Play 5x") {
		t.Errorf("unexpected board text %q", w.Body.String())
	}
}

func TestClearTickets(t *testing.T) {
	conn := tu.SetupTestDB(t)
	defer conn.Close()

	deps := tu.NewTestDeps(t, conn, nil)
	handler := handlers.NewTicketHandler(deps)
	sessionID := deps.Boards.Create()

	req := tu.MakeRequest("POST", "/sessions/"+sessionID+"/tickets/powerball?count=3")
	w := serve("POST /sessions/{id}/tickets/{variant}", handler.GenerateTickets, req)
	tu.AssertStatus(t, w, http.StatusCreated)

	req = tu.MakeRequest("DELETE", "/sessions/"+sessionID+"/tickets")
	w = serve("DELETE /sessions/{id}/tickets", handler.ClearTickets, req)
	tu.AssertStatus(t, w, http.StatusNoContent)

	b, err := deps.Boards.Get(sessionID)
	if err != nil {
		t.Fatal(err)
	}
	if b.Len() != 0 {
		t.Errorf("Expected empty board, got %d tickets", b.Len())
	}

	// stats survive a clear
	stats, err := db.NewStatsRepository(conn).List(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(stats) != 1 || stats[0].Tickets != 3 {
		t.Errorf("unexpected stats %+v", stats)
	}
}

func TestDraw(t *testing.T) {
	conn := tu.SetupTestDB(t)
	defer conn.Close()

	deps := tu.NewTestDeps(t, conn, nil)
	handler := handlers.NewTicketHandler(deps)

	req := tu.MakeRequest("POST", "/draw/mega-millions?count=2")
	w := serve("POST /draw/{variant}", handler.Draw, req)
	tu.AssertStatus(t, w, http.StatusOK)

	var resp models.GenerateTicketsResponse
	tu.AssertJSON(t, w, &resp)
	if len(resp.Tickets) != 2 {
		t.Fatalf("Expected 2 tickets, got %d", len(resp.Tickets))
	}
	if deps.Boards.Len() != 0 {
		t.Error("Draw must not open a session")
	}

	req = tu.MakeRequest("POST", "/draw/keno")
	w = serve("POST /draw/{variant}", handler.Draw, req)
	tu.AssertStatus(t, w, http.StatusNotFound)
}

func TestListVariants(t *testing.T) {
	conn := tu.SetupTestDB(t)
	defer conn.Close()

	handler := handlers.NewTicketHandler(tu.NewTestDeps(t, conn, nil))

	req := tu.MakeRequest("GET", "/variants")
	w := serve("GET /variants", handler.ListVariants, req)
	tu.AssertStatus(t, w, http.StatusOK)

	var resp models.ListVariantsResponse
	tu.AssertJSON(t, w, &resp)
	if len(resp.Variants) != 2 {
		t.Fatalf("Expected 2 variants, got %d", len(resp.Variants))
	}
	if resp.Variants[1].Key != "powerball" || resp.Variants[1].Pool.Max != 69 {
		t.Errorf("unexpected powerball variant %+v", resp.Variants[1])
	}
}
