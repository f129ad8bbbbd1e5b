package mcpserver

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
)

// serverConfig holds all configurable MCP server defaults.
// Loaded once at startup from environment variables via loadConfig().
type serverConfig struct {
	// MaxInlineSize caps inline definition content, in bytes.
	MaxInlineSize int64
	// DefaultMode is the synthesis mode used when a tool call omits one.
	DefaultMode string
	// DefaultFormat is the serialization format used when omitted.
	DefaultFormat string
}

// cfg is the active server configuration, initialized at package load time.
var cfg = loadConfig()

// loadConfig reads configuration from ZODOPENAPI_* environment variables.
// Invalid values log a warning and fall back to the hardcoded default.
func loadConfig() *serverConfig {
	return &serverConfig{
		MaxInlineSize: envInt64("ZODOPENAPI_MAX_INLINE_SIZE", 2<<20),
		DefaultMode:   envChoice("ZODOPENAPI_DEFAULT_MODE", "output", "input", "output"),
		DefaultFormat: envChoice("ZODOPENAPI_DEFAULT_FORMAT", "json", "json", "yaml"),
	}
}

func envInt64(key string, fallback int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil || n <= 0 {
		slog.Warn("invalid int env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return n
}

func envChoice(key, fallback string, allowed ...string) string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	for _, a := range allowed {
		if strings.EqualFold(v, a) {
			return a
		}
	}
	slog.Warn("invalid env var value, using default", "key", key, "value", v, "default", fallback)
	return fallback
}
