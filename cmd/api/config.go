package main

import (
	"strconv"
	"strings"
	"time"
)

const (
	defaultPort    = 3000
	defaultVersion = "v1.0"
	defaultEnv     = "development"
)

type config struct {
	port            int
	version         string
	env             string
	shutdownTimeout time.Duration
	limiter         struct {
		rps     float64
		burst   int
		enabled bool
	}
	cors struct {
		trustedOrigins []string
	}
}

// lookupFunc matches os.LookupEnv so tests can supply their own environment.
type lookupFunc func(key string) (string, bool)

func loadConfig(lookup lookupFunc) config {
	e := envReader{lookup: lookup}

	var cfg config
	cfg.port = e.getInt("PORT", defaultPort)
	cfg.version = e.get("VERSION", defaultVersion)
	cfg.env = e.get("APP_ENV", e.get("NODE_ENV", defaultEnv))
	cfg.shutdownTimeout = e.getDuration("SHUTDOWN_TIMEOUT", 20*time.Second)

	cfg.limiter.enabled = e.getBool("LIMITER_ENABLED", false)
	cfg.limiter.rps = e.getFloat("LIMITER_RPS", 2)
	cfg.limiter.burst = e.getInt("LIMITER_BURST", 4)

	cfg.cors.trustedOrigins = strings.Fields(e.get("CORS_TRUSTED_ORIGINS", ""))

	return cfg
}

type envReader struct {
	lookup lookupFunc
}

// get treats an empty value the same as an unset one.
func (e envReader) get(key, defaultValue string) string {
	if value, ok := e.lookup(key); ok && value != "" {
		return value
	}
	return defaultValue
}

func (e envReader) getInt(key string, defaultValue int) int {
	if value := e.get(key, ""); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func (e envReader) getFloat(key string, defaultValue float64) float64 {
	if value := e.get(key, ""); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func (e envReader) getBool(key string, defaultValue bool) bool {
	if value := e.get(key, ""); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func (e envReader) getDuration(key string, defaultValue time.Duration) time.Duration {
	if value := e.get(key, ""); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
