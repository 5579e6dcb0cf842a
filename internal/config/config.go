package config

import (
	"log"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port       string
	Env        string
	LogLevel   string
	GitBinary  string
	RepoDir    string
	QueueType  string
	RedisAddr  string
	DebounceMS int
	GitRPS     int
	GitBurst   int

	// Styling handed to the renderer; the projector never sees these.
	AddedLineBorder    string
	ModifiedLineBorder string
	InsertedTextColor  string
	DeletedTextColor   string
	GhostLineColor     string
}

func Load() *Config {
	return &Config{
		Port:       getEnv("PORT", "7420"),
		Env:        getEnv("ENV", "local"),
		LogLevel:   getEnv("LOG_LEVEL", "info"),
		GitBinary:  getEnv("GIT_BINARY", "git"),
		RepoDir:    getEnv("REPO_DIR", "."),
		QueueType:  getEnv("QUEUE_TYPE", "memory"), // memory | redis
		RedisAddr:  getEnv("REDIS_ADDR", "localhost:6379"),
		DebounceMS: getEnvInt("DEBOUNCE_MS", 300),
		GitRPS:     getEnvInt("GIT_RPS", 5),
		GitBurst:   getEnvInt("GIT_BURST", 10),

		AddedLineBorder:    getEnv("STYLE_ADDED_LINE_BORDER", "green"),
		ModifiedLineBorder: getEnv("STYLE_MODIFIED_LINE_BORDER", "yellow"),
		InsertedTextColor:  getEnv("STYLE_INSERTED_TEXT_COLOR", "green"),
		DeletedTextColor:   getEnv("STYLE_DELETED_TEXT_COLOR", "red"),
		GhostLineColor:     getEnv("STYLE_GHOST_LINE_COLOR", "red"),
	}
}

func (c *Config) Debounce() time.Duration {
	return time.Duration(c.DebounceMS) * time.Millisecond
}

func getEnv(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		log.Fatalf("invalid env %s: %v", key, err)
	}
	return i
}
