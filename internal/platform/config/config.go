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

	// BaseCurrency is the deployment's default reporting base. Every engine
	// call still takes the base as an explicit parameter; this only chooses
	// what the API serves when the caller does not override it.
	BaseCurrency string

	// ECB importer settings
	ECBRatesURL        string
	ECBImportSchedule  string
	ECBImportSince     time.Time
	ECBImportOnStartup bool

	// RateLimit is a ulule/limiter formatted rate, e.g. "100-M".
	RateLimit string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("BASE_CURRENCY", "GBP")
	viper.SetDefault("ECB_RATES_URL", "https://www.ecb.europa.eu/stats/eurofxref/eurofxref-hist.zip")
	viper.SetDefault("ECB_IMPORT_SCHEDULE", "0 30 16 * * MON-FRI")
	viper.SetDefault("ECB_IMPORT_START_DATE", "2024-08-01")
	viper.SetDefault("ECB_IMPORT_ON_STARTUP", false)
	viper.SetDefault("RATE_LIMIT", "100-M")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	cfg.BaseCurrency = viper.GetString("BASE_CURRENCY")
	if len(cfg.BaseCurrency) != 3 {
		log.Printf("Warning: Invalid BASE_CURRENCY (%q). Defaulting to GBP.\n", cfg.BaseCurrency)
		cfg.BaseCurrency = "GBP"
	}

	cfg.ECBRatesURL = viper.GetString("ECB_RATES_URL")
	cfg.ECBImportSchedule = viper.GetString("ECB_IMPORT_SCHEDULE")
	cfg.ECBImportOnStartup = viper.GetBool("ECB_IMPORT_ON_STARTUP")

	sinceStr := viper.GetString("ECB_IMPORT_START_DATE")
	since, err := time.ParseInLocation("2006-01-02", sinceStr, time.UTC)
	if err != nil {
		since = time.Date(2024, time.August, 1, 0, 0, 0, 0, time.UTC)
		log.Printf("Warning: Invalid value for ECB_IMPORT_START_DATE ('%s'). Defaulting to %s.\n", sinceStr, since.Format("2006-01-02"))
	}
	cfg.ECBImportSince = since

	cfg.RateLimit = viper.GetString("RATE_LIMIT")

	return cfg, nil
}
