package confs

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// LoadConfig loads environment variables from a .env file if present
// and validates essential settings when needed.
func LoadConfig() error {
	// Load .env if it exists; ignore error if file not found
	if err := godotenv.Load(); err != nil {
		// Only log when the file truly doesn't exist; not an error for runtime
		if !os.IsNotExist(err) {
			log.Printf("warning: could not load .env: %v", err)
		}
	}
	return nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// ListenAddr is the address the HTTP server binds to.
func ListenAddr() string {
	return getenv("LISTEN_ADDR", "0.0.0.0:3536")
}

// DBPath is the sqlite database file.
func DBPath() string {
	return getenv("DB_PATH", "agroyield.db")
}

// OpenWeatherAPIKey authenticates outbound weather requests. Empty means
// weather lookups fail with a service-unavailable error rather than at start.
func OpenWeatherAPIKey() string {
	return os.Getenv("OPENWEATHER_API_KEY")
}

// JWTSecret signs session tokens.
func JWTSecret() []byte {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Println("warning: JWT_SECRET not set, using insecure default")
		secret = "agroyield-dev-secret"
	}
	return []byte(secret)
}

// YieldTablePath is the historical yield reference CSV.
func YieldTablePath() string {
	return getenv("CROP_YIELD_FILE", "data/crop_yield.csv")
}

// PesticideTablePath is the pesticide reference CSV.
func PesticideTablePath() string {
	return getenv("PESTICIDE_FILE", "data/pesticides.csv")
}
