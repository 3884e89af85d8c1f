package config

import (
	"fmt"
	"os"
	"strconv"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Auth     AuthConfig
	Engine   EngineConfig
}

type ServerConfig struct {
	Port int
	Env  string
	// RateLimitRPS is the per-IP request budget for the clinical API
	RateLimitRPS   int
	RateLimitBurst int
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
	SSLMode  string
}

func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.Database, d.SSLMode,
	)
}

type AuthConfig struct {
	JWTSecret string
}

// EngineConfig holds tunables for the scoring engine.
type EngineConfig struct {
	// Ensemble blend weights for the readmission predictor. Must sum to 1.
	// LACE and HOSPITAL are externally validated indices and carry the
	// majority; the locally calibrated logistic model takes the remainder.
	EnsembleLACEWeight     float64
	EnsembleHOSPITALWeight float64
	EnsembleLogisticWeight float64
	// LearningRate for online weight updates from confirmed outcomes
	LearningRate float64
}

func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:           getEnvInt("SERVER_PORT", 8080),
			Env:            getEnv("ENV", "development"),
			RateLimitRPS:   getEnvInt("RATE_LIMIT_RPS", 50),
			RateLimitBurst: getEnvInt("RATE_LIMIT_BURST", 100),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvInt("DB_PORT", 5432),
			User:     getEnv("DB_USER", "recovery"),
			Password: getEnv("DB_PASSWORD", "recovery"),
			Database: getEnv("DB_NAME", "recovery"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Auth: AuthConfig{
			JWTSecret: getEnv("JWT_SECRET", "dev-secret-change-in-prod"),
		},
		Engine: EngineConfig{
			EnsembleLACEWeight:     getEnvFloat("ENSEMBLE_LACE_WEIGHT", 0.35),
			EnsembleHOSPITALWeight: getEnvFloat("ENSEMBLE_HOSPITAL_WEIGHT", 0.35),
			EnsembleLogisticWeight: getEnvFloat("ENSEMBLE_LOGISTIC_WEIGHT", 0.30),
			LearningRate:           getEnvFloat("LEARNING_RATE", 0.05),
		},
	}

	sum := cfg.Engine.EnsembleLACEWeight + cfg.Engine.EnsembleHOSPITALWeight + cfg.Engine.EnsembleLogisticWeight
	if sum < 0.999 || sum > 1.001 {
		return nil, fmt.Errorf("ensemble blend weights must sum to 1, got %.3f", sum)
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}
