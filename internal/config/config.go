package config

import (
	"fmt"

	"github.com/Behyna/sms-services/clickatell/pkg/clickatell"
	"github.com/spf13/viper"
)

type Config struct {
	Sandbox Sandbox           `mapstructure:"sandbox"`
	Gateway clickatell.Config `mapstructure:"gateway"`
	Smoke   Smoke             `mapstructure:"smoke"`
}

// Smoke configures the smoke command's conversation.
type Smoke struct {
	Destinations []string `mapstructure:"destinations"`
}

// Sandbox configures the local gateway emulator, including the one account it
// accepts credentials for.
type Sandbox struct {
	Port     string  `mapstructure:"port"`
	APIID    string  `mapstructure:"api_id"`
	Username string  `mapstructure:"username"`
	Password string  `mapstructure:"password"`
	APIKey   string  `mapstructure:"api_key"`
	Balance  float64 `mapstructure:"balance"`
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
