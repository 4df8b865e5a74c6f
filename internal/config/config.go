// Package config provides runtime configuration values for the service.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds configuration knobs for the HTTP server.
type Config struct {
	HTTPAddr        string
	ShutdownTimeout time.Duration
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func atoienv(key string, def int) int {
	v := getenv(key, "")
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func durenvs(key string, defSec int) time.Duration {
	sec := atoienv(key, defSec)
	return time.Duration(sec) * time.Second
}

// Load collects configuration from environment with defaults. PORT is
// honored as a shorthand for HTTP_ADDR when the latter is unset.
func Load() Config {
	addr := getenv("HTTP_ADDR", "")
	if addr == "" {
		if p := os.Getenv("PORT"); p != "" {
			addr = fmt.Sprintf(":%s", p)
		} else {
			addr = ":8080"
		}
	}
	return Config{
		HTTPAddr:        addr,
		ShutdownTimeout: durenvs("SHUTDOWN_TIMEOUT", 15),
	}
}
