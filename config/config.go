package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"
)

type Config struct {
	Port         string `envconfig:"PORT"          default:":3000"`
	DatabasePath string `envconfig:"DATABASE_PATH" default:"database.db"`
	UploadDir    string `envconfig:"UPLOAD_DIR"    default:"uploads"`
	LogLevel     string `envconfig:"LOG_LEVEL"     default:"info"`
}

// Load reads configuration from the environment, with an optional
// .env file layered underneath.
func Load(logger *logrus.Logger) (*Config, error) {
	err := godotenv.Load()
	if err != nil && !os.IsNotExist(err) {
		logger.Warnf("Error loading .env file (but continuing): %v", err)
	} else if err == nil {
		logger.Info("Loaded configuration from .env file")
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
