package environment

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds every process-wide setting. It is built once in main and
// handed to constructors; nothing else reads the environment.
type Config struct {
	Port                      string
	JWTSecret                 string
	JWTTTL                    time.Duration
	FirebaseProjectID         string
	FirebaseCredentialsBase64 string
}

// Load reads .env if present, then the environment. Fatal on missing
// secrets since the server cannot run without them.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &Config{
		Port:                      os.Getenv("PORT"),
		JWTSecret:                 os.Getenv("JWT_SECRET"),
		JWTTTL:                    100 * time.Hour,
		FirebaseProjectID:         os.Getenv("FIREBASE_PROJECT_ID"),
		FirebaseCredentialsBase64: os.Getenv("FIREBASE_CREDENTIALS_BASE64"),
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET environment variable is missing")
	}
	if hours := os.Getenv("JWT_TTL_HOURS"); hours != "" {
		h, err := strconv.Atoi(hours)
		if err != nil {
			log.Fatalf("Invalid JWT_TTL_HOURS value: %v", err)
		}
		cfg.JWTTTL = time.Duration(h) * time.Hour
	}

	return cfg
}
