package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration (session cache).
	RedisAddr      string `mapstructure:"REDIS_ADDR"`
	RedisPassword  string `mapstructure:"REDIS_PASSWORD"`
	RedisSessionDB int    `mapstructure:"REDIS_SESSION_DB"`

	// Reservation session lifetime in minutes.
	SessionTTLMinutes int `mapstructure:"SESSION_TTL_MINUTES"`

	// Upstream APIs.
	CatalogAPIURL     string `mapstructure:"CATALOG_API_URL"`
	ReservationAPIURL string `mapstructure:"RESERVATION_API_URL"`
	UpstreamTimeout   int    `mapstructure:"UPSTREAM_TIMEOUT_SECONDS"`

	// Payment gateway. Provider is "agency" (the agency's own initialize
	// endpoint) or "stripe" (hosted Checkout page).
	PaymentProvider   string `mapstructure:"PAYMENT_PROVIDER"`
	PaymentGatewayURL string `mapstructure:"PAYMENT_GATEWAY_URL"`
	StripeKey         string `mapstructure:"STRIPE_KEY"`
	PaymentSuccessURL string `mapstructure:"PAYMENT_SUCCESS_URL"`
	PaymentCancelURL  string `mapstructure:"PAYMENT_CANCEL_URL"`
	PaymentCurrency   string `mapstructure:"PAYMENT_CURRENCY"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_SESSION_DB", 0)
	viper.SetDefault("SESSION_TTL_MINUTES", 30)
	viper.SetDefault("CATALOG_API_URL", "http://localhost:9000")
	viper.SetDefault("RESERVATION_API_URL", "http://localhost:9001")
	viper.SetDefault("UPSTREAM_TIMEOUT_SECONDS", 20)
	viper.SetDefault("PAYMENT_PROVIDER", "agency")
	viper.SetDefault("PAYMENT_GATEWAY_URL", "http://localhost:9002")
	viper.SetDefault("STRIPE_KEY", "")
	viper.SetDefault("PAYMENT_SUCCESS_URL", "http://localhost:3000/payment/success")
	viper.SetDefault("PAYMENT_CANCEL_URL", "http://localhost:3000/payment/cancelled")
	viper.SetDefault("PAYMENT_CURRENCY", "usd")

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
