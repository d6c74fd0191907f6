package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	ServiceHost string
	ServicePort int
	DatabaseURL string
}

func NewConfig() (*Config, error) {
	configName := "config"
	if os.Getenv("CONFIG_NAME") != "" {
		configName = os.Getenv("CONFIG_NAME")
	}

	viper.SetConfigName(configName)
	viper.SetConfigType("toml")
	viper.AddConfigPath("config")
	viper.AddConfigPath(".")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
		logrus.Warn("no config file found, relying on defaults and environment")
	}

	if err := godotenv.Load(); err != nil {
		logrus.Warn("error loading .env file, using environment as-is")
	}

	viper.SetDefault("ServiceHost", "0.0.0.0")
	viper.SetDefault("ServicePort", 8080)
	viper.SetDefault("DatabaseURL", "fleet.db")

	viper.BindEnv("DatabaseURL", "DATABASE_URL")
	viper.BindEnv("ServicePort", "SERVICE_PORT")

	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, err
	}

	logrus.Info("config parsed")
	return cfg, nil
}
