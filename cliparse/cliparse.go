package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Run modes
const (
	ModeServe = "serve"
	ModeKiosk = "kiosk"
)

type Config struct {
	Mode          string
	Port          int
	QuestionsPath string
	LogLevel      string
	LogFile       string
}

// LoadDotEnv loads variables from a .env file into the environment.
// Variables that are already set win. A missing file is not an error.
func LoadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

// ParseFlags validates flags and fills the rest from the environment
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("balance-game", flag.ContinueOnError)

	fs.StringVar(&cfg.Mode, "mode", "", "Run mode (serve or kiosk)")
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.QuestionsPath, "q", "", "Path to a YAML question table")
	fs.StringVar(&cfg.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&cfg.LogFile, "log-file", "", "Write logs to this file instead of stderr")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Mode == "" {
		cfg.Mode = os.Getenv("MODE")
	}
	if cfg.Mode == "" {
		cfg.Mode = ModeServe
	}
	if cfg.Mode != ModeServe && cfg.Mode != ModeKiosk {
		return Config{}, fmt.Errorf("unknown mode %q (use serve or kiosk)", cfg.Mode)
	}

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
	if cfg.Port < 1 || cfg.Port > 65535 {
		return Config{}, fmt.Errorf("port %d out of range", cfg.Port)
	}

	if cfg.QuestionsPath == "" {
		cfg.QuestionsPath = os.Getenv("QUESTIONS_PATH")
	}

	if cfg.LogLevel == "" {
		cfg.LogLevel = os.Getenv("LOG_LEVEL")
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return Config{}, fmt.Errorf("unknown log level %q", cfg.LogLevel)
	}

	if cfg.LogFile == "" {
		cfg.LogFile = os.Getenv("LOG_FILE")
	}

	return cfg, nil
}
