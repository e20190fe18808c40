package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Store drivers.
const (
	StoreMySQL = "mysql"
	StoreMongo = "mongo"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort      string
	Environment     string
	TokenSecret     string
	CORSOrigins     []string
	ShutdownTimeout time.Duration
	SwaggerHost     string
	LogLevel        string
	SeedFile        string

	StoreDriver string
	MySQLDSN    string
	MongoURI    string
	MongoDB     string

	RedisAddr string
	RedisDB   int
	RedisPass string

	StripeSecretKey string
	PaymentCurrency string

	Notifiers       []string
	MailerSendKey   string
	MailerFromEmail string
	MailerFromName  string
	NATSURL         string
}

// Load builds Config from environment with sensible defaults.
// A .env file in the working directory is applied first when present.
func Load() *Config {
	_ = godotenv.Load()

	env := getEnv("NODE_ENV", "")
	if env == "" {
		env = getEnv("APP_ENV", "development")
	}

	return &Config{
		ServerPort:      getEnv("PORT", "5000"),
		Environment:     env,
		TokenSecret:     getEnv("ACCESS_TOKEN_SECRET", "change-me"),
		CORSOrigins:     getEnvList("CORS_ORIGINS", []string{"http://localhost:5173", "https://cloudstay-frontend.vercel.app"}),
		ShutdownTimeout: getEnvDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
		SwaggerHost:     os.Getenv("SWAGGER_HOST"),
		LogLevel:        strings.ToLower(getEnv("LOG_LEVEL", "info")),
		SeedFile:        getEnv("SEED_FILE", "seed.json"),

		StoreDriver: strings.ToLower(getEnv("STORE_DRIVER", StoreMySQL)),
		MySQLDSN:    getEnv("MYSQL_DSN", "user:password@tcp(localhost:3306)/cloudstay?charset=utf8mb4&parseTime=True&loc=Local"),
		MongoURI:    getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:     getEnv("MONGO_DB", "cloudstay"),

		RedisAddr: os.Getenv("REDIS_ADDR"),
		RedisDB:   getEnvInt("REDIS_DB", 0),
		RedisPass: os.Getenv("REDIS_PASSWORD"),

		StripeSecretKey: os.Getenv("STRIPE_SECRET_KEY"),
		PaymentCurrency: getEnv("PAYMENT_CURRENCY", "usd"),

		Notifiers:       getEnvList("NOTIFIERS", nil),
		MailerSendKey:   os.Getenv("MAILERSEND_API_KEY"),
		MailerFromEmail: os.Getenv("MAILER_FROM_EMAIL"),
		MailerFromName:  getEnv("MAILER_FROM_NAME", "CloudStay"),
		NATSURL:         getEnv("NATS_URL", "nats://localhost:4222"),
	}
}

// Debug reports whether verbose logging is enabled.
func (c *Config) Debug() bool {
	return c.LogLevel == "debug"
}

// IsProduction reports whether cookies must be issued for cross-site HTTPS use.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func getEnvList(key string, def []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
