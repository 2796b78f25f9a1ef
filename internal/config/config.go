package config

import (
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Config holds everything the API and the consumer binary need.
// Values come from the environment (a local .env file is honored too).
type Config struct {
	HTTPAddr   string `env:"HTTP_ADDR" env-default:":8080"`
	CORSOrigin string `env:"CORS_ORIGIN" env-default:"http://localhost:5173"`

	// MySQL
	DatabaseDSN string `env:"DB_DSN" env-default:"root:root@tcp(127.0.0.1:3306)/smokequit?parseTime=true"`

	// JWT
	JWTSecret        string `env:"JWT_SECRET" env-default:"A_VERY_SECURE_SECRET_KEY_REPLACE_LATER"`
	JWTIssuer        string `env:"JWT_ISSUER" env-default:"smokequit-api"`
	JWTAudience      string `env:"JWT_AUDIENCE" env-default:"smokequit-clients"`
	JWTExpiryMinutes int    `env:"JWT_EXPIRY_MINUTES" env-default:"4320"`

	// Message bus (Redis pub/sub)
	RedisAddr     string `env:"REDIS_ADDR" env-default:"127.0.0.1:6379"`
	RedisPassword string `env:"REDIS_PASSWORD" env-default:""`
	ChatChannel   string `env:"CHAT_CHANNEL" env-default:"chatQueue"`
}

// Load reads the .env file (if present) and then the environment.
func Load() (*Config, error) {
	// Missing .env is fine; system environment variables still apply.
	_ = godotenv.Load()

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
