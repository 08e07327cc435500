package config

import (
	"errors"
	"os"
	"time"
)

type Config struct {
	Port     string
	MongoURI string
	MongoDB  string

	JWTSecret      string
	AccessTokenTTL time.Duration

	VerificationTokenTTL time.Duration
	RequireVerifiedLogin bool

	EmailProvider string
	EmailAPIKey   string
	EmailSender   string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	NatsURL string

	RateLimitWindow      time.Duration
	RateLimitMaxRequests int
}

// Load reads the process configuration from the environment. The JWT secret
// has no default: a process without one must not start.
func Load() (*Config, error) {
	secret := os.Getenv("JWT_ACCESS_SECRET")
	if secret == "" {
		return nil, errors.New("JWT_ACCESS_SECRET is not set")
	}

	return &Config{
		Port:     GetEnvAsString("PORT", "8080"),
		MongoURI: GetEnvAsString("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:  GetEnvAsString("MONGO_DB", "citationsDB"),

		JWTSecret:      secret,
		AccessTokenTTL: GetEnvAsDuration("ACCESS_TOKEN_TTL", time.Hour),

		VerificationTokenTTL: GetEnvAsDuration("VERIFICATION_TOKEN_TTL", 24*time.Hour),
		RequireVerifiedLogin: GetEnvAsBool("REQUIRE_VERIFIED_LOGIN", true),

		EmailProvider: GetEnvAsString("EMAIL_PROVIDER", "log"),
		EmailAPIKey:   os.Getenv("EMAIL_API_KEY"),
		EmailSender:   GetEnvAsString("EMAIL_SENDER", "no-reply@example.com"),

		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       GetEnvAsInt("REDIS_DB", 0),

		NatsURL: os.Getenv("NATS_URL"),

		RateLimitWindow:      GetEnvAsDuration("RATE_LIMIT_WINDOW", time.Minute),
		RateLimitMaxRequests: GetEnvAsInt("RATE_LIMIT_MAX_REQUESTS", 10),
	}, nil
}
