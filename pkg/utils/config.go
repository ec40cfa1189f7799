package utils

import (
	"os"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App    AppConfig
	Data   DataConfig
	Auth   AuthConfig
	Search SearchConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string
}

type DataConfig struct {
	Dir             string // key/value store directory
	CatalogPath     string
	LocalesDir      string
	DefaultLanguage string
}

type AuthConfig struct {
	DemoOTP       string
	SimDelay      time.Duration
	SessionTTL    time.Duration
	PendingExpiry time.Duration
}

type SearchConfig struct {
	Debounce time.Duration
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("APP_NAME", "salon-booking")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("DATA_DIR", "data/store/")
	viper.SetDefault("CATALOG_PATH", "data/salons.json")
	viper.SetDefault("LOCALES_DIR", "locales/")
	viper.SetDefault("DEFAULT_LANG", "en")
	viper.SetDefault("DEMO_OTP", "1234")
	viper.SetDefault("SIM_DELAY_MS", 900)
	viper.SetDefault("SESSION_TTL_HOURS", 24)
	viper.SetDefault("OTP_EXPIRY_MINUTES", 10)
	viper.SetDefault("SEARCH_DEBOUNCE_MS", 400)

	// .env is optional; env vars and defaults cover everything
	if _, err := os.Stat(".env"); err == nil {
		if err := viper.ReadInConfig(); err != nil {
			return nil, err
		}
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    viper.GetString("APP_NAME"),
			Port:    viper.GetString("PORT"),
			Debug:   viper.GetBool("DEBUG"),
			LogPath: viper.GetString("LOG_PATH"),
		},
		Data: DataConfig{
			Dir:             viper.GetString("DATA_DIR"),
			CatalogPath:     viper.GetString("CATALOG_PATH"),
			LocalesDir:      viper.GetString("LOCALES_DIR"),
			DefaultLanguage: viper.GetString("DEFAULT_LANG"),
		},
		Auth: AuthConfig{
			DemoOTP:       viper.GetString("DEMO_OTP"),
			SimDelay:      time.Duration(viper.GetInt("SIM_DELAY_MS")) * time.Millisecond,
			SessionTTL:    time.Duration(viper.GetInt("SESSION_TTL_HOURS")) * time.Hour,
			PendingExpiry: time.Duration(viper.GetInt("OTP_EXPIRY_MINUTES")) * time.Minute,
		},
		Search: SearchConfig{
			Debounce: time.Duration(viper.GetInt("SEARCH_DEBOUNCE_MS")) * time.Millisecond,
		},
	}

	return config, nil
}
