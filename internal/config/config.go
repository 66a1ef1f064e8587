package config

import (
	"fmt"
	"os"
	"strconv"

	_ "github.com/joho/godotenv/autoload"
)

type Config struct {
	Port int

	DBHost     string
	DBPort     string
	DBUsername string
	DBPassword string
	DBDatabase string

	// Optional; empty disables the permit-requirement cache.
	RedisAddr string

	EmailProvider string // 'sendgrid', 'postmark' or 'resend'
	EmailAPIKey   string
	EmailFrom     string

	AllowedOrigins []string
}

func Load() *Config {
	port, _ := strconv.Atoi(os.Getenv("PORT"))
	if port == 0 {
		port = 8080
	}

	cfg := &Config{
		Port:          port,
		DBHost:        os.Getenv("DB_HOST"),
		DBPort:        os.Getenv("DB_PORT"),
		DBUsername:    os.Getenv("DB_USERNAME"),
		DBPassword:    os.Getenv("DB_PASSWORD"),
		DBDatabase:    os.Getenv("DB_DATABASE"),
		RedisAddr:     os.Getenv("REDIS_ADDR"),
		EmailProvider: os.Getenv("EMAIL_PROVIDER"),
		EmailAPIKey:   os.Getenv("EMAIL_API_KEY"),
		EmailFrom:     os.Getenv("EMAIL_FROM"),
	}

	if cfg.EmailProvider == "" {
		cfg.EmailProvider = "sendgrid"
	}
	if cfg.EmailFrom == "" {
		cfg.EmailFrom = "noreply@townkit.com"
	}

	if origins := os.Getenv("ALLOWED_ORIGINS"); origins != "" {
		cfg.AllowedOrigins = []string{origins}
	} else {
		cfg.AllowedOrigins = []string{"http://localhost:3000"}
	}

	return cfg
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
