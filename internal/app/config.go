package app

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Supported stats sources
const (
	SourceGraphQL = "graphql"
	SourceSheets  = "sheets"
)

// Config holds application configuration
type Config struct {
	Source             string
	GraphQLURL         string
	SpreadsheetID      string
	CredentialsFile    string
	SheetRange         string
	CacheTTL           time.Duration
	FetchTimeout       time.Duration
	ListenAddr         string
	DisplayLocation    *time.Location
	CORSAllowedOrigins []string
}

// SetupEnvironment loads .env file and configures zerolog output and log level.
func SetupEnvironment() {
	SetupEnvironmentWithOutput(nil)
}

// SetupEnvironmentWithOutput is SetupEnvironment with an explicit log destination.
// The terminal UI passes a file here so log lines do not land on the alternate screen.
func SetupEnvironmentWithOutput(out io.Writer) {
	// Load .env file if it exists
	err := godotenv.Load()

	// Configure logging
	if out == nil {
		out = os.Stderr
	}
	if os.Getenv("ENV") == "production" {
		zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
		log.Logger = log.Output(out)
	} else {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339, NoColor: out != os.Stderr})
	}

	levelStr := strings.ToLower(os.Getenv("LOGLEVEL"))
	switch levelStr {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "info":
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	case "warn", "warning":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	case "fatal":
		zerolog.SetGlobalLevel(zerolog.FatalLevel)
	case "panic":
		zerolog.SetGlobalLevel(zerolog.PanicLevel)
	case "disabled":
		zerolog.SetGlobalLevel(zerolog.Disabled)
	case "":
		// Default based on environment
		if os.Getenv("ENV") == "production" {
			zerolog.SetGlobalLevel(zerolog.WarnLevel)
		} else {
			zerolog.SetGlobalLevel(zerolog.InfoLevel)
		}
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
		log.Warn().Msgf("Unknown LOGLEVEL '%s', defaulting to info.", levelStr)
	}

	// wait until now to report on the .env file so we have the chance to set up logging first
	if err == nil {
		log.Debug().Msg("Loaded environment variables from .env file.")
	} else {
		log.Debug().Msg("No .env file found or error loading .env file; proceeding with existing environment variables.")
	}
}

// SetupEnvironmentWithLogFile is SetupEnvironment for full-screen modes. Log
// lines go to LOG_FILE (default wrestler-elo.log); the caller closes the file.
func SetupEnvironmentWithLogFile() (*os.File, error) {
	// LOG_FILE may come from .env; loading it twice is harmless
	_ = godotenv.Load()

	path := getEnvDefault("LOG_FILE", "wrestler-elo.log")
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file %s: %w", path, err)
	}

	SetupEnvironmentWithOutput(file)
	return file, nil
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	source := strings.ToLower(os.Getenv("ELO_SOURCE"))
	if source == "" {
		source = SourceGraphQL
	}

	config := &Config{
		Source:          source,
		GraphQLURL:      getEnvDefault("ELO_GRAPHQL_URL", "http://localhost:4000/graphql"),
		SpreadsheetID:   os.Getenv("SPREADSHEET_ID"),
		CredentialsFile: getEnvDefault("GOOGLE_CREDENTIALS_FILE", "credentials.json"),
		SheetRange:      getEnvDefault("SHEET_RANGE", "Wrestlers!A2:H"),
		ListenAddr:      getEnvDefault("LISTEN_ADDR", ":8080"),
	}

	switch source {
	case SourceGraphQL:
	case SourceSheets:
		if config.SpreadsheetID == "" {
			return nil, fmt.Errorf("SPREADSHEET_ID environment variable is required when ELO_SOURCE=sheets")
		}
	default:
		return nil, fmt.Errorf("unknown ELO_SOURCE %q (expected %q or %q)", source, SourceGraphQL, SourceSheets)
	}

	cacheTTL, err := getEnvDuration("CACHE_TTL", 2*time.Minute)
	if err != nil {
		return nil, err
	}
	config.CacheTTL = cacheTTL

	fetchTimeout, err := getEnvDuration("FETCH_TIMEOUT", 30*time.Second)
	if err != nil {
		return nil, err
	}
	config.FetchTimeout = fetchTimeout

	loc, err := time.LoadLocation(getEnvDefault("DISPLAY_TIMEZONE", "Local"))
	if err != nil {
		return nil, fmt.Errorf("invalid DISPLAY_TIMEZONE: %w", err)
	}
	config.DisplayLocation = loc

	for _, origin := range strings.Split(getEnvDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			config.CORSAllowedOrigins = append(config.CORSAllowedOrigins, origin)
		}
	}

	return config, nil
}

// GetRequiredEnv gets an environment variable or exits if not found
func GetRequiredEnv(key string) string {
	value := os.Getenv(key)
	if value == "" {
		log.Fatal().Str("key", key).Msg("Required environment variable not set")
	}
	return value
}

func getEnvDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, value, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("invalid %s %q: must not be negative", key, value)
	}
	return d, nil
}
