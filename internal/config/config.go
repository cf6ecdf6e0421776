package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr                string
	DBPath              string
	LogLevel            string
	GenerationWorkers   int
	GenerationQueueSize int
	MaxFlashcards       int
	MaxMCQs             int
	QuizLength          int
	AccuracyWindowDays  int
	CORSOrigins         string
}

// Load reads configuration from a .env file (if present) and environment
// variables, applying sensible defaults when values are missing or invalid.
func Load() Config {
	// Ignore error so the app still starts when .env is absent in production.
	_ = godotenv.Load()

	return Config{
		Addr:                envOr("ADDR", ":8080"),
		DBPath:              envOr("DB_PATH", "file:flashj.db"),
		LogLevel:            envOr("LOG_LEVEL", "INFO"),
		GenerationWorkers:   envIntOr("GENERATION_WORKER_COUNT", 2),
		GenerationQueueSize: envIntOr("GENERATION_QUEUE_SIZE", 32),
		MaxFlashcards:       envIntOr("MAX_FLASHCARDS_PER_RUN", 10),
		MaxMCQs:             envIntOr("MAX_MCQS_PER_RUN", 15),
		QuizLength:          envIntOr("QUIZ_LENGTH", 5),
		AccuracyWindowDays:  envIntOr("ACCURACY_WINDOW_DAYS", 7),
		CORSOrigins:         envOr("CORS_ORIGINS", "*"),
	}
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envIntOr(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
		log.Printf("invalid value for %s=%q, using default %d", key, v, def)
	}
	return def
}
