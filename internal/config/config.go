package config

import (
	"fmt"

	"github.com/Behyna/sms-services/dispatcher/pkg/mq"
	"github.com/Behyna/sms-services/dispatcher/pkg/mysql"
	"github.com/Behyna/sms-services/dispatcher/pkg/smsgateway"
	"github.com/spf13/viper"
)

type Config struct {
	API      API               `mapstructure:"api"`
	Database mysql.Config      `mapstructure:"database"`
	RabbitMQ mq.Config         `mapstructure:"rabbitmq"`
	Gateway  smsgateway.Config `mapstructure:"gateway"`
	Sending  Sending           `mapstructure:"sending"`
}

type API struct {
	Port string `mapstructure:"port"`
}

// Sending carries the global dispatch switches. Enabled is read once at
// startup and injected into the dispatch service, not consulted as ambient
// state.
type Sending struct {
	Enabled         bool   `mapstructure:"enabled"`
	DefaultLanguage string `mapstructure:"default_language"`
}

func Load() (cfg *Config, err error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yml")
	viper.AddConfigPath("./config")

	err = viper.ReadInConfig()
	if err != nil {
		return cfg, fmt.Errorf("failed to load config: %w", err)
	}

	err = viper.Unmarshal(&cfg)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}
