package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds runtime settings. Values come from
// ~/.ganttline/config.yaml when present, overridable via GANTTLINE_*
// environment variables.
type Config struct {
	Model   string // "provider:model", e.g. openai:gpt-4o-mini
	APIKey  string // falls back to OPENAI_API_KEY inside the llm factory
	BaseURL string
	DBPath  string // empty means the default under ~/.ganttline
	User    string // persistence key for saved documents
}

// Load reads the config file and environment
func Load() (*Config, error) {
	viper.SetDefault("model", "openai:gpt-4o-mini")
	viper.SetDefault("user", "default")

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.SetEnvPrefix("GANTTLINE")
	viper.AutomaticEnv()

	if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(filepath.Join(home, ".ganttline"))
	}
	viper.AddConfigPath("./")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	return &Config{
		Model:   viper.GetString("model"),
		APIKey:  viper.GetString("api_key"),
		BaseURL: viper.GetString("base_url"),
		DBPath:  viper.GetString("db_path"),
		User:    viper.GetString("user"),
	}, nil
}
