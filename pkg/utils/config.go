package utils

import (
	"github.com/spf13/viper"
)

type Config struct {
	App     AppConfig
	Redis   RedisConfig
	Session SessionConfig
	Booking BookingConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string
}

// RedisConfig is optional; an empty Addr selects the in-process store.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type SessionConfig struct {
	UserKey  string
	TTLHours int
}

type BookingConfig struct {
	ConfirmDelayMS int
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("APP_NAME", "car-rental")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("REDIS_ADDR", "")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("SESSION_USER_KEY", "rental:user")
	viper.SetDefault("SESSION_TTL_HOURS", 24)
	viper.SetDefault("BOOKING_CONFIRM_DELAY_MS", 500)

	// .env is optional; defaults plus environment cover everything
	_ = viper.ReadInConfig()

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    viper.GetString("APP_NAME"),
			Port:    viper.GetString("PORT"),
			Debug:   viper.GetBool("DEBUG"),
			LogPath: viper.GetString("LOG_PATH"),
		},
		Redis: RedisConfig{
			Addr:     viper.GetString("REDIS_ADDR"),
			Password: viper.GetString("REDIS_PASS"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		Session: SessionConfig{
			UserKey:  viper.GetString("SESSION_USER_KEY"),
			TTLHours: viper.GetInt("SESSION_TTL_HOURS"),
		},
		Booking: BookingConfig{
			ConfirmDelayMS: viper.GetInt("BOOKING_CONFIRM_DELAY_MS"),
		},
	}

	return config, nil
}
