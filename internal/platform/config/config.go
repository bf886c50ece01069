package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL  string
	Port         string
	IsProduction bool

	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	// External currency rate provider
	RateAPIBaseURL string
	RateAPIKey     string
	RateAPITimeout time.Duration

	// Requests per minute per client IP; 0 disables rate limiting
	RateLimitPerMinute int

	// Startup bootstrap for the staff user and bank-owner reservoir account
	SeedAdminEmail     string
	SeedAdminPassword  string
	SeedReserveBalance string
}

// LoadConfig loads configuration from environment variables and a .env file
// if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_EXPIRY_DURATION", "1h")
	viper.SetDefault("JWT_ISSUER", "bank-backend")
	viper.SetDefault("RATE_API_URL", "https://api.freecurrencyapi.com/v1")
	viper.SetDefault("RATE_API_KEY", "")
	viper.SetDefault("RATE_API_TIMEOUT", "5s")
	viper.SetDefault("RATE_LIMIT_PER_MINUTE", 120)
	viper.SetDefault("SEED_ADMIN_EMAIL", "admin@bank.local")
	viper.SetDefault("SEED_ADMIN_PASSWORD", "")
	viper.SetDefault("SEED_RESERVE_BALANCE", "100000.00")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET not set. Using default insecure key.")
	}
	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")

	jwtExpiryStr := viper.GetString("JWT_EXPIRY_DURATION")
	jwtExpiry, err := time.ParseDuration(jwtExpiryStr)
	if err != nil {
		jwtExpiry = time.Hour
		log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", jwtExpiryStr, jwtExpiry)
	}
	cfg.JWTExpiryDuration = jwtExpiry

	cfg.RateAPIBaseURL = viper.GetString("RATE_API_URL")
	cfg.RateAPIKey = viper.GetString("RATE_API_KEY")

	rateTimeoutStr := viper.GetString("RATE_API_TIMEOUT")
	rateTimeout, err := time.ParseDuration(rateTimeoutStr)
	if err != nil {
		rateTimeout = 5 * time.Second
		log.Printf("Warning: Invalid value for RATE_API_TIMEOUT ('%s'). Defaulting to %s.\n", rateTimeoutStr, rateTimeout)
	}
	cfg.RateAPITimeout = rateTimeout

	cfg.RateLimitPerMinute = viper.GetInt("RATE_LIMIT_PER_MINUTE")

	cfg.SeedAdminEmail = viper.GetString("SEED_ADMIN_EMAIL")
	cfg.SeedAdminPassword = viper.GetString("SEED_ADMIN_PASSWORD")
	cfg.SeedReserveBalance = viper.GetString("SEED_RESERVE_BALANCE")

	return cfg, nil
}
