package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port       string
	AppEnv     string
	LogLevel   string
	APIBaseURL string
	APITimeout time.Duration

	RequestTimeout time.Duration

	StoreDriver string
	MongoURI    string
	MongoDB     string
	RedisAddr   string

	VisitorSecret string
	VisitorTTL    time.Duration
	LoginPassword string

	FeedFanoutLimit int
	ProfanityWords  []string

	OTLPEndpoint    string
	OTELServiceName string
}

func (c Config) Production() bool {
	return c.AppEnv == "production"
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(getEnv(key, ""))
	if err != nil {
		return fallback
	}
	return d
}

func getInt(key string, fallback int) int {
	n, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return fallback
	}
	return n
}

func getList(key string) []string {
	raw := strings.TrimSpace(getEnv(key, ""))
	if raw == "" {
		return nil
	}
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

func LoadConfig() Config {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using system environment variables")
	}
	return FromEnv()
}

// FromEnv reads the configuration without touching .env.
func FromEnv() Config {
	return Config{
		Port:       getEnv("PORT", "3000"),
		AppEnv:     getEnv("APP_ENV", "development"),
		LogLevel:   getEnv("LOG_LEVEL", "info"),
		APIBaseURL: strings.TrimRight(getEnv("API_BASE_URL", "http://localhost:3001"), "/"),
		APITimeout: getDuration("API_TIMEOUT", 10*time.Second),

		RequestTimeout: getDuration("REQUEST_TIMEOUT", 30*time.Second),

		StoreDriver: getEnv("STORE_DRIVER", "memory"),
		MongoURI:    getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:     getEnv("MONGO_DB", "antisocial"),
		RedisAddr:   getEnv("REDIS_ADDR", "localhost:6379"),

		VisitorSecret: getEnv("VISITOR_SECRET", "dev-visitor-secret"),
		VisitorTTL:    getDuration("VISITOR_TTL", 720*time.Hour),
		LoginPassword: getEnv("LOGIN_PASSWORD", "123456"),

		FeedFanoutLimit: getInt("FEED_FANOUT_LIMIT", 0),
		ProfanityWords:  getList("PROFANITY_WORDS"),

		OTLPEndpoint:    getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
		OTELServiceName: getEnv("OTEL_SERVICE_NAME", "antisocial-web"),
	}
}
