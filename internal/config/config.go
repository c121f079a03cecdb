// Package config reads the configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

// Configuration keys. They are read from environment variables of the same name.
const (
	KeyAPIURL    = "API_URL"
	KeyPort      = "PORT"
	KeyDBPath    = "DB_PATH"
	KeyLogFormat = "LOG_FORMAT"
	KeyLogLevel  = "LOG_LEVEL"
	KeyGinMode   = "GIN_MODE"
)

// Log formats
const (
	FormatHuman = "human"
	FormatJSON  = "json"
)

var (
	ErrAPIURL    = errors.New("API_URL must be an absolute URL, e.g. https://example.com/api")
	ErrPort      = errors.New("PORT must be a number between 0 and 65535")
	ErrLogFormat = errors.New("LOG_FORMAT must be one of human, json")
	ErrLogLevel  = errors.New("LOG_LEVEL must be one of trace, debug, info, warn, error, fatal, panic, disabled")
	ErrGinMode   = errors.New("GIN_MODE must be one of debug, release, test")
)

type Config struct {
	APIURL    *url.URL
	Port      int
	DBPath    string
	LogFormat string
	LogLevel  zerolog.Level
	GinMode   string
}

// New returns a viper instance with the defaults that reads from the environment.
func New() *viper.Viper {
	v := viper.New()

	v.SetDefault(KeyAPIURL, "http://localhost:8080")
	v.SetDefault(KeyPort, 8080)
	v.SetDefault(KeyDBPath, "data/gastos.db")

	// gin uses debug as the default mode, we use release for
	// security reasons
	v.SetDefault(KeyGinMode, gin.ReleaseMode)

	v.AutomaticEnv()
	return v
}

// LoadEnvFile reads environment variables from a dotenv file. Variables
// that are already set are not overwritten. A missing file is not an error.
func LoadEnvFile(path string) error {
	err := godotenv.Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	if err != nil {
		return fmt.Errorf("could not read %s: %w", path, err)
	}

	return nil
}

// Load reads and validates the configuration.
//
// If not set, the log format defaults to human readable for gin's debug mode
// and JSON otherwise. The log level defaults to debug for gin's debug mode
// and info otherwise.
func Load(v *viper.Viper) (Config, error) {
	var c Config

	c.GinMode = v.GetString(KeyGinMode)
	if c.GinMode != gin.DebugMode && c.GinMode != gin.ReleaseMode && c.GinMode != gin.TestMode {
		return Config{}, fmt.Errorf("%w, got %q", ErrGinMode, c.GinMode)
	}

	u, err := url.Parse(v.GetString(KeyAPIURL))
	if err != nil || !u.IsAbs() || u.Host == "" {
		return Config{}, fmt.Errorf("%w, got %q", ErrAPIURL, v.GetString(KeyAPIURL))
	}
	c.APIURL = u

	c.Port = v.GetInt(KeyPort)
	if c.Port < 0 || c.Port > 65535 || (c.Port == 0 && v.GetString(KeyPort) != "0") {
		return Config{}, fmt.Errorf("%w, got %q", ErrPort, v.GetString(KeyPort))
	}

	c.DBPath = v.GetString(KeyDBPath)

	c.LogFormat = strings.ToLower(v.GetString(KeyLogFormat))
	switch c.LogFormat {
	case "":
		c.LogFormat = FormatJSON
		if c.GinMode == gin.DebugMode {
			c.LogFormat = FormatHuman
		}
	case FormatHuman, FormatJSON:
	default:
		return Config{}, fmt.Errorf("%w, got %q", ErrLogFormat, c.LogFormat)
	}

	c.LogLevel = zerolog.InfoLevel
	if c.GinMode == gin.DebugMode {
		c.LogLevel = zerolog.DebugLevel
	}

	if level := v.GetString(KeyLogLevel); level != "" {
		c.LogLevel, err = zerolog.ParseLevel(strings.ToLower(level))
		if err != nil || c.LogLevel == zerolog.NoLevel {
			return Config{}, fmt.Errorf("%w, got %q", ErrLogLevel, level)
		}
	}

	return c, nil
}

// Addr is the address the server listens on.
func (c Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// SetupLogging configures the global logger to write to out.
func (c Config) SetupLogging(out io.Writer) {
	if c.LogFormat == FormatHuman {
		out = zerolog.ConsoleWriter{Out: out}
	}

	zerolog.SetGlobalLevel(c.LogLevel)
	log.Logger = log.Output(out).With().Timestamp().Logger()
}
