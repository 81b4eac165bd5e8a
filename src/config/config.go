package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cast"
)

const (
	DriverMongo  = "mongo"
	DriverMemory = "memory"
)

type Config struct {
	AppURI           string
	AllowedOrigins   string
	StoreDriver      string
	MongoURI         string
	MongoDB          string
	RedisURI         string
	TemplateCacheTTL time.Duration
	RequestTimeout   time.Duration
	SeedSamples      bool
	SMTP             SMTPConfig
}

type SMTPConfig struct {
	Host string
	Port int
	User string
	Pass string
	From string
}

// Load reads .env (if any) and then the process environment.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ Warning: No .env file found")
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from a lookup function so tests need not touch the environment.
func FromEnv(getenv func(string) string) *Config {
	get := func(key, fallback string) string {
		if v := getenv(key); v != "" {
			return v
		}
		return fallback
	}
	duration := func(key string, fallback time.Duration) time.Duration {
		v := getenv(key)
		if v == "" {
			return fallback
		}
		d, err := cast.ToDurationE(v)
		if err != nil || d <= 0 {
			log.Printf("⚠️ invalid %s=%q, using %s", key, v, fallback)
			return fallback
		}
		return d
	}

	cfg := &Config{
		AppURI:           get("APP_URI", "5050"),
		AllowedOrigins:   get("ALLOWED_ORIGINS", "*"),
		MongoURI:         getenv("MONGO_URI"),
		MongoDB:          get("MONGO_DB", "FormBuilderDB"),
		RedisURI:         getenv("REDIS_URI"),
		TemplateCacheTTL: duration("TEMPLATE_CACHE_TTL", 5*time.Minute),
		RequestTimeout:   duration("REQUEST_TIMEOUT", 5*time.Second),
		SeedSamples:      cast.ToBool(getenv("SEED_SAMPLES")),
		SMTP: SMTPConfig{
			Host: getenv("SMTP_HOST"),
			Port: cast.ToInt(getenv("SMTP_PORT")),
			User: getenv("SMTP_USER"),
			Pass: getenv("SMTP_PASS"),
			From: getenv("SMTP_FROM"),
		},
	}

	cfg.StoreDriver = getenv("STORE_DRIVER")
	if cfg.StoreDriver == "" {
		cfg.StoreDriver = DriverMemory
		if cfg.MongoURI != "" {
			cfg.StoreDriver = DriverMongo
		}
	}
	return cfg
}
