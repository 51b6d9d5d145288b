package shared

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

// apiSuffix is the versioned path every reservation API route hangs off.
const apiSuffix = "/api/v1"

type Config struct {
	AppEnv      string
	HTTPAddr    string
	MetricsAddr string
	APIBase     string // always ends in /api/v1
	MediaBase   string // API origin without the /api/v1 suffix
	StateDir    string
	RedisAddr   string
	RedisDB     int
	RedisPass   string
	Workers     int
	CacheTTL    time.Duration
	HTTPTimeout time.Duration
}

func Load() Config {
	atoi := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
		}
		return def
	}
	base := NormalizeBase(env("API_BASE_URL", "http://localhost:8000"))
	c := Config{
		AppEnv:      env("APP_ENV", "prod"),
		HTTPAddr:    env("HTTP_ADDR", ":3000"),
		MetricsAddr: env("METRICS_ADDR", ""),
		APIBase:     base,
		MediaBase:   MediaBase(base),
		StateDir:    env("STATE_DIR", defaultStateDir()),
		RedisAddr:   env("REDIS_ADDR", "localhost:6379"),
		RedisPass:   env("REDIS_PASSWORD", ""),
		RedisDB:     atoi("REDIS_DB", 0),
		Workers:     atoi("WARM_WORKERS", 8),
		CacheTTL:    time.Duration(atoi("CACHE_TTL_SECONDS", 300)) * time.Second,
		HTTPTimeout: time.Duration(atoi("HTTP_TIMEOUT_SECONDS", 10)) * time.Second,
	}
	if os.Getenv("API_BASE_URL") == "" {
		log.Warn().Str("base", c.APIBase).Msg("API_BASE_URL is empty, using default")
	}
	return c
}

// NormalizeBase strips a trailing slash and guarantees the /api/v1 suffix.
func NormalizeBase(raw string) string {
	b := strings.TrimSuffix(raw, "/")
	if strings.HasSuffix(b, apiSuffix) {
		return b
	}
	return b + apiSuffix
}

// MediaBase returns the API origin without the versioned suffix. Uploaded
// image paths are served relative to it.
func MediaBase(base string) string {
	return strings.TrimSuffix(strings.TrimSuffix(base, apiSuffix), "/")
}

// MediaURL resolves a stored image path against the media base. Absolute
// URLs pass through untouched.
func MediaURL(mediaBase, path string) string {
	if strings.HasPrefix(path, "http") {
		return path
	}
	return mediaBase + path
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func defaultStateDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".stayfront"
	}
	return home + "/.stayfront"
}
