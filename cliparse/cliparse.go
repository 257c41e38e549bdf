package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port         int
	DatabaseURL  string
	DatabaseType string
	VariantsFile string
	BoardSize    int
	Seed         uint64

	// One-shot CLI mode: print DrawCount tickets of variant Draw and exit
	Draw      string
	DrawCount int
}

// ParseFlags validates flags and fills the rest from the environment
func ParseFlags(args []string) (Config, error) {
	var cfg Config
	var envFile string

	fs := flag.NewFlagSet("lucky-ticket", flag.ContinueOnError)

	// Network and storage config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")

	// Generation
	fs.StringVar(&cfg.VariantsFile, "variants", "", "YAML file with extra lottery variants")
	fs.IntVar(&cfg.BoardSize, "board-size", 0, "Tickets kept per session")
	fs.Uint64Var(&cfg.Seed, "seed", 0, "Fixed random seed (0 = random)")

	// CLI mode
	fs.StringVar(&cfg.Draw, "draw", "", "Print tickets for this variant and exit")
	fs.IntVar(&cfg.DrawCount, "n", 1, "Number of tickets to print with -draw")

	fs.StringVar(&envFile, "env", ".env", "Optional dotenv file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if err := loadEnvFile(envFile); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 3318 // default
		}
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = "sqlite"
		}
	}
	if cfg.DatabaseType != "sqlite" && cfg.DatabaseType != "postgres" {
		return Config{}, fmt.Errorf("unsupported database type %q", cfg.DatabaseType)
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		if cfg.DatabaseType == "postgres" {
			return Config{}, errors.New("database URL required for postgres (use -d or DATABASE_URL env)")
		}
		cfg.DatabaseURL = "file:lucky.db"
	}

	if cfg.VariantsFile == "" {
		cfg.VariantsFile = os.Getenv("VARIANTS_FILE")
	}

	if cfg.BoardSize == 0 {
		if sizeStr := os.Getenv("BOARD_SIZE"); sizeStr != "" {
			size, err := strconv.Atoi(sizeStr)
			if err != nil {
				return Config{}, errors.New("invalid BOARD_SIZE env variable")
			}
			cfg.BoardSize = size
		} else {
			cfg.BoardSize = 20
		}
	}
	if cfg.BoardSize < 1 {
		return Config{}, errors.New("board size must be positive")
	}

	if cfg.Seed == 0 {
		if seedStr := os.Getenv("SEED"); seedStr != "" {
			seed, err := strconv.ParseUint(seedStr, 10, 64)
			if err != nil {
				return Config{}, errors.New("invalid SEED env variable")
			}
			cfg.Seed = seed
		}
	}

	if cfg.Draw != "" && (cfg.DrawCount < 1 || cfg.DrawCount > 50) {
		return Config{}, errors.New("-n must be between 1 and 50")
	}

	return cfg, nil
}

// loadEnvFile reads a dotenv file without overriding variables that are
// already set. A missing file is not an error.
func loadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	err := godotenv.Load(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to load env file %s: %w", path, err)
	}
	return nil
}
