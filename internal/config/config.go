package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server ServerConfig
	Market MarketConfig
	CORS   CORSConfig
}

type ServerConfig struct {
	Port string
	Env  string
}

type MarketConfig struct {
	// ShippingFlatRate is charged on any non-empty cart.
	ShippingFlatRate float64
	// SyncDelay is how long the stub platform client takes to ack an
	// inventory sync.
	SyncDelay time.Duration
	// DefaultCustomerID is the seeded shopper used when no customer
	// header is supplied.
	DefaultCustomerID string
}

type CORSConfig struct {
	AllowedOrigins []string
}

func Load() *Config {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	// Set defaults
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("SERVER_ENV", "development")
	viper.SetDefault("SHIPPING_FLAT_RATE", 5.00)
	viper.SetDefault("SYNC_DELAY_MS", 1500)
	viper.SetDefault("DEFAULT_CUSTOMER_ID", "c1")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", []string{"http://localhost:3000"})

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: Could not read config file: %v", err)
	}

	return &Config{
		Server: ServerConfig{
			Port: viper.GetString("SERVER_PORT"),
			Env:  viper.GetString("SERVER_ENV"),
		},
		Market: MarketConfig{
			ShippingFlatRate:  viper.GetFloat64("SHIPPING_FLAT_RATE"),
			SyncDelay:         time.Duration(viper.GetInt("SYNC_DELAY_MS")) * time.Millisecond,
			DefaultCustomerID: viper.GetString("DEFAULT_CUSTOMER_ID"),
		},
		CORS: CORSConfig{
			AllowedOrigins: viper.GetStringSlice("CORS_ALLOWED_ORIGINS"),
		},
	}
}
