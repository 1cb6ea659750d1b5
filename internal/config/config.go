package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server        ServerConfig
	Log           LogConfig
	PredictionAPI PredictionAPIConfig
	CORS          CORSConfig
}

type ServerConfig struct {
	Host string
	Port int
	Env  string
}

type LogConfig struct {
	Level string
}

// PredictionAPIConfig - параметры удалённого сервиса предсказания цены
type PredictionAPIConfig struct {
	BaseURL      string
	PredictRoute string
	Username     string
	Password     string
	Timeout      time.Duration
}

type CORSConfig struct {
	AllowOrigins string
}

// Endpoint - полный URL эндпоинта предсказания (base URL + route)
func (c PredictionAPIConfig) Endpoint() string {
	return strings.TrimRight(c.BaseURL, "/") + c.PredictRoute
}

func Load() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	// .env необязателен: переменных окружения достаточно
	if _, err := os.Stat(".env"); err == nil {
		v.SetConfigFile(".env")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	return loadFrom(v)
}

func loadFrom(v *viper.Viper) (*Config, error) {
	v.SetDefault("API_HOST", "0.0.0.0")
	v.SetDefault("API_PORT", 8000)
	v.SetDefault("API_ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("PREDICTION_API_PREDICT_ROUTE", "/predict")
	v.SetDefault("PREDICTION_API_TIMEOUT_MS", 10000)
	v.SetDefault("CORS_ALLOW_ORIGINS", "http://localhost:3000,http://localhost:5173")

	cfg := &Config{
		Server: ServerConfig{
			Host: v.GetString("API_HOST"),
			Port: v.GetInt("API_PORT"),
			Env:  v.GetString("API_ENV"),
		},
		Log: LogConfig{
			Level: v.GetString("LOG_LEVEL"),
		},
		PredictionAPI: PredictionAPIConfig{
			BaseURL:      v.GetString("PREDICTION_API_BASE_URL"),
			PredictRoute: v.GetString("PREDICTION_API_PREDICT_ROUTE"),
			Username:     v.GetString("PREDICTION_API_USERNAME"),
			Password:     v.GetString("PREDICTION_API_PASSWORD"),
			Timeout:      time.Duration(v.GetInt("PREDICTION_API_TIMEOUT_MS")) * time.Millisecond,
		},
		CORS: CORSConfig{
			AllowOrigins: v.GetString("CORS_ALLOW_ORIGINS"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate проверяет обязательные параметры
func (c *Config) Validate() error {
	var errs []error
	if c.PredictionAPI.BaseURL == "" {
		errs = append(errs, errors.New("PREDICTION_API_BASE_URL is required"))
	}
	if c.PredictionAPI.Username == "" {
		errs = append(errs, errors.New("PREDICTION_API_USERNAME is required"))
	}
	if c.PredictionAPI.Password == "" {
		errs = append(errs, errors.New("PREDICTION_API_PASSWORD is required"))
	}
	if c.PredictionAPI.Timeout <= 0 {
		errs = append(errs, errors.New("PREDICTION_API_TIMEOUT_MS must be positive"))
	}
	if c.Server.Port <= 0 {
		errs = append(errs, errors.New("API_PORT must be positive"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}
