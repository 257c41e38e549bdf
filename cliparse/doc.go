// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3318)
  - DatabaseType: sqlite or postgres (default: sqlite)
  - DatabaseURL: connection string (default for sqlite: file:lucky.db)
  - VariantsFile: YAML file with extra lottery variants
  - BoardSize: tickets kept per session (default: 20)
  - Seed: fixed random seed, 0 picks a random one
  - Draw, DrawCount: one-shot CLI mode

# CLI Flags

	-p           Server port
	-d           Database URL
	-t           Database type
	-variants    Variants YAML file
	-board-size  Tickets kept per session
	-seed        Random seed
	-draw        Print tickets for a variant and exit
	-n           Number of tickets for -draw (1-50)
	-env         Dotenv file (default: .env, ignored if missing)

# Environment Variables

Flags fall back to environment variables:

	PORT          → -p
	DATABASE_URL  → -d
	DATABASE_TYPE → -t
	VARIANTS_FILE → -variants
	BOARD_SIZE    → -board-size
	SEED          → -seed

CLI flags take precedence over environment variables, and variables already
set in the environment take precedence over the dotenv file.

# Example

	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	conn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)
	// ...
	mux := router.NewRouter(deps, cfg)
*/
package cliparse
