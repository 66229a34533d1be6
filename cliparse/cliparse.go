package cliparse

import (
	"errors"
	"flag"
	"os"
	"strconv"
)

type Config struct {
	Port         int
	DatabasePath string
	AdminToken   string
	EmailHost    string
	EmailPort    int
	EmailUser    string
	EmailPass    string
	AdminEmail   string
}

// ParseFlags validates flags and fills in environment fallbacks
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("quantum-backend", flag.ContinueOnError)

	// Network and storage config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabasePath, "d", "", "SQLite database file path")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.AdminToken, "admin-token", "", "Admin bearer token (prefer env)")

	if err := fs.Parse(args); err != nil {
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
			cfg.Port = 3001 // default
		}
	}
	if cfg.DatabasePath == "" {
		cfg.DatabasePath = os.Getenv("DATABASE_PATH")
	}
	if cfg.DatabasePath == "" {
		cfg.DatabasePath = "quantum.db"
	}

	// Secret - MUST be provided
	if cfg.AdminToken == "" {
		cfg.AdminToken = os.Getenv("ADMIN_TOKEN")
	}
	if cfg.AdminToken == "" {
		return Config{}, errors.New("ADMIN_TOKEN required")
	}

	// SMTP relay; notifications are disabled when EmailHost is empty
	cfg.EmailHost = os.Getenv("EMAIL_HOST")
	if portStr := os.Getenv("EMAIL_PORT"); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return Config{}, errors.New("invalid EMAIL_PORT env variable")
		}
		cfg.EmailPort = port
	} else {
		cfg.EmailPort = 587
	}
	cfg.EmailUser = os.Getenv("EMAIL_USER")
	cfg.EmailPass = os.Getenv("EMAIL_PASS")

	cfg.AdminEmail = os.Getenv("ADMIN_EMAIL")
	if cfg.AdminEmail == "" {
		cfg.AdminEmail = cfg.EmailUser
	}

	return cfg, nil
}
