// Package config holds the server settings and the command-line flags that populate them.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
)

const (
	// DefaultPort is the default HTTP server port.
	DefaultPort = "5000"

	// DefaultMongoURI points at a local MongoDB instance.
	DefaultMongoURI = "mongodb://localhost:27017/goodwill-calculator"

	// DefaultDatabaseName is used when the URI does not name a database.
	DefaultDatabaseName = "goodwill-calculator"

	// DefaultEnvFile is loaded before flags are parsed, if it exists.
	// ENV_FILE overrides the path.
	DefaultEnvFile = ".env"

	// DefaultConnectTimeout bounds the initial database connection attempt.
	DefaultConnectTimeout = 10 * time.Second

	// MaxBodyBytes is the largest request body the JSON parser accepts.
	MaxBodyBytes = 100 << 10

	// ShutdownTimeout bounds graceful HTTP shutdown.
	ShutdownTimeout = 10 * time.Second

	// DefaultRateBurst is the request burst allowed when rate limiting is enabled.
	DefaultRateBurst = 20
)

// Config is read once at startup and never modified afterwards.
// Values are not validated; a bad URI or port fails when it is used.
type Config struct {
	Port           string
	MongoURI       string
	ConnectTimeout time.Duration
	LogLevel       string
	LogFormat      string
	RateLimit      float64
	RateBurst      int
}

// Addr returns the listen address for the configured port.
func (c Config) Addr() string {
	return ":" + c.Port
}

// GlobalFlags returns the flags shared by every command.
func GlobalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "log-level",
			Aliases: []string{"l"},
			Value:   "info",
			Usage:   "Log level (debug, info, warn, error)",
			EnvVars: []string{"LOG_LEVEL"},
		},
		&cli.StringFlag{
			Name:    "log-format",
			Value:   "json",
			Usage:   "Log format (json, text)",
			EnvVars: []string{"LOG_FORMAT"},
		},
		&cli.StringFlag{
			Name:    "mongodb-uri",
			Aliases: []string{"d"},
			Value:   DefaultMongoURI,
			Usage:   "MongoDB connection URI",
			EnvVars: []string{"MONGODB_URI"},
		},
		&cli.DurationFlag{
			Name:    "db-connect-timeout",
			Value:   DefaultConnectTimeout,
			Usage:   "Timeout for the initial database connection attempt",
			EnvVars: []string{"DB_CONNECT_TIMEOUT"},
		},
	}
}

// ServeFlags returns the flags of the serve command.
func ServeFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "port",
			Aliases: []string{"p"},
			Value:   DefaultPort,
			Usage:   "HTTP server port",
			EnvVars: []string{"PORT"},
		},
		&cli.Float64Flag{
			Name:    "rate-limit",
			Usage:   "Requests per second accepted across all clients (0 disables limiting)",
			EnvVars: []string{"RATE_LIMIT"},
		},
		&cli.IntFlag{
			Name:    "rate-burst",
			Value:   DefaultRateBurst,
			Usage:   "Request burst allowed above the rate limit",
			EnvVars: []string{"RATE_LIMIT_BURST"},
		},
	}
}

// FromCLI builds a Config from parsed flags. An empty port falls back to DefaultPort.
func FromCLI(c *cli.Context) Config {
	cfg := Config{
		Port:           c.String("port"),
		MongoURI:       c.String("mongodb-uri"),
		ConnectTimeout: c.Duration("db-connect-timeout"),
		LogLevel:       c.String("log-level"),
		LogFormat:      c.String("log-format"),
		RateLimit:      c.Float64("rate-limit"),
		RateBurst:      c.Int("rate-burst"),
	}
	if cfg.Port == "" {
		cfg.Port = DefaultPort
	}
	if cfg.MongoURI == "" {
		cfg.MongoURI = DefaultMongoURI
	}
	if cfg.ConnectTimeout <= 0 {
		cfg.ConnectTimeout = DefaultConnectTimeout
	}
	return cfg
}

// EnvFilePath returns the env file to load: $ENV_FILE, or DefaultEnvFile.
func EnvFilePath() string {
	if path, ok := os.LookupEnv("ENV_FILE"); ok {
		return path
	}
	return DefaultEnvFile
}

// LoadEnvFile loads variables from path into the process environment without
// overriding variables that are already set. A missing file is not an error.
func LoadEnvFile(path string) error {
	if path == "" {
		return nil
	}

	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			slog.Debug("no env file found, using process environment", "path", path)
			return nil
		}
		return fmt.Errorf("load env file %s: %w", path, err)
	}

	slog.Debug("env file loaded", "path", path)
	return nil
}
