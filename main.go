package main

import (
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/danielhkuo/lucky-ticket/board"
	"github.com/danielhkuo/lucky-ticket/cliparse"
	"github.com/danielhkuo/lucky-ticket/db"
	"github.com/danielhkuo/lucky-ticket/handlers"
	"github.com/danielhkuo/lucky-ticket/lottery"
	"github.com/danielhkuo/lucky-ticket/middleware"
	"github.com/danielhkuo/lucky-ticket/render"
	"github.com/danielhkuo/lucky-ticket/router"
)

func main() {
	var err error

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	catalog, err := lottery.LoadCatalog(cfg.VariantsFile)
	if err != nil {
		slog.Error("variant catalog failed", "error", err)
		os.Exit(1)
	}

	var sampler lottery.Sampler = lottery.NewSampler()
	if cfg.Seed != 0 {
		sampler = lottery.NewSeededSampler(cfg.Seed)
	}
	gen := lottery.NewGenerator(sampler)

	// One-shot draw: print and exit without touching the database
	if cfg.Draw != "" {
		if err := draw(os.Stdout, catalog, gen, cfg.Draw, cfg.DrawCount); err != nil {
			slog.Error("draw failed", "error", err)
			os.Exit(1)
		}
		return
	}

	// Connect to the stats database
	dbConn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer dbConn.Close()

	// Create schema (tables)
	if err := db.CreateSchema(dbConn); err != nil {
		slog.Error("schema creation failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Database schema ready", "type", cfg.DatabaseType)

	// Create router
	mux := router.NewRouter(handlers.Deps{
		DB:        dbConn,
		Generator: gen,
		Catalog:   catalog,
		Boards:    board.NewStore(cfg.BoardSize),
	})

	// Create server
	server := http.Server{
		Handler: middleware.CORS(mux),
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port, "variants", len(catalog), "board_size", cfg.BoardSize)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}

// draw prints count tickets of the named variant to w
func draw(w io.Writer, catalog lottery.Catalog, gen *lottery.Generator, variant string, count int) error {
	v, err := catalog.Lookup(variant)
	if err != nil {
		return err
	}

	out := render.NewWriter(w, catalog)
	for i := 0; i < count; i++ {
		t, err := gen.Generate(v)
		if err != nil {
			return err
		}
		if err := out.WriteTicket(t); err != nil {
			return err
		}
	}
	return nil
}
