package utils

import (
	"errors"
	"os"

	"github.com/spf13/viper"
)

type Config struct {
	App     AppConfig
	Store   StoreConfig
	Booking BookingConfig
}

type AppConfig struct {
	Name    string
	Debug   bool
	LogPath string
}

type StoreConfig struct {
	Path string
}

type BookingConfig struct {
	// IgnoreCancelledConflicts frees a slot once its booking is cancelled.
	// Off by default: a cancelled booking keeps blocking its (date, slot) pair.
	IgnoreCancelledConflicts bool
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("APP_NAME", "slot-booking")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("STORE_PATH", "data/bookings.json")
	viper.SetDefault("IGNORE_CANCELLED_CONFLICTS", false)

	// Jalan tanpa file .env juga bisa, pakai env vars dan defaults
	if err := viper.ReadInConfig(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    viper.GetString("APP_NAME"),
			Debug:   viper.GetBool("DEBUG"),
			LogPath: viper.GetString("LOG_PATH"),
		},
		Store: StoreConfig{
			Path: viper.GetString("STORE_PATH"),
		},
		Booking: BookingConfig{
			IgnoreCancelledConflicts: viper.GetBool("IGNORE_CANCELLED_CONFLICTS"),
		},
	}

	return config, nil
}
