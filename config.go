package helix

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

type Config struct {
	LogLevel      string
	LogPretty     bool
	StatsdAddress string
	StatsdTags    []string
}

func GetConfig() Config {
	return Config{
		LogLevel:      getEnv("HELIX_LOG_LEVEL", "info"),
		LogPretty:     getEnv("HELIX_LOG_PRETTY", "false") == "true",
		StatsdAddress: getEnv("HELIX_STATSD_ADDRESS", ""),
		StatsdTags:    splitTags(getEnv("HELIX_STATSD_TAGS", "")),
	}
}

// Logger builds the service logger described by the config. An unparseable
// level falls back to info.
func (c Config) Logger() zerolog.Logger {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	var out io.Writer = os.Stderr
	if c.LogPretty {
		out = zerolog.ConsoleWriter{Out: os.Stderr}
	}
	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func splitTags(raw string) []string {
	if raw == "" {
		return nil
	}
	var tags []string
	for _, tag := range strings.Split(raw, ",") {
		if tag = strings.TrimSpace(tag); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}
