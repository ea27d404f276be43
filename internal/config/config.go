// Package config loads application settings from an optional config.yaml and
// the environment.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type OpenAIConfig struct {
	APIKey      string  `mapstructure:"api_key"`
	Model       string  `mapstructure:"model"`
	Temperature float64 `mapstructure:"temperature"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

type SessionConfig struct {
	TimeoutMinutes int `mapstructure:"timeout_minutes"`
	MaxHistory     int `mapstructure:"max_history"`
}

type KnowledgeConfig struct {
	Path string `mapstructure:"path"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

type Settings struct {
	OpenAI    OpenAIConfig    `mapstructure:"openai"`
	Server    ServerConfig    `mapstructure:"server"`
	Session   SessionConfig   `mapstructure:"session"`
	Knowledge KnowledgeConfig `mapstructure:"knowledge"`
	Log       LogConfig       `mapstructure:"log"`
}

// SessionTimeout returns the configured expiry threshold as a duration.
func (s *Settings) SessionTimeout() time.Duration {
	return time.Duration(s.Session.TimeoutMinutes) * time.Minute
}

// Load reads settings from config.yaml under configPath (optional) and the
// environment. Environment variables override file values.
func Load(configPath string) (*Settings, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if configPath != "" {
		v.AddConfigPath(configPath)
	}
	v.AddConfigPath(".")

	setDefaults(v)
	bindEnv(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: read config file: %w", err)
		}
	}

	var settings Settings
	if err := v.Unmarshal(&settings); err != nil {
		return nil, fmt.Errorf("config: unmarshal settings: %w", err)
	}
	return &settings, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("openai.model", "gpt-3.5-turbo")
	v.SetDefault("openai.temperature", 0.3)
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8000)
	v.SetDefault("session.timeout_minutes", 30)
	v.SetDefault("session.max_history", 50)
	v.SetDefault("knowledge.path", "knowledge/insurance_data.json")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "logs/app.log")
}

func bindEnv(v *viper.Viper) {
	_ = v.BindEnv("openai.api_key", "OPENAI_API_KEY")
	_ = v.BindEnv("openai.model", "OPENAI_MODEL")
	_ = v.BindEnv("openai.temperature", "OPENAI_TEMPERATURE")
	_ = v.BindEnv("server.host", "APP_HOST")
	_ = v.BindEnv("server.port", "APP_PORT")
	_ = v.BindEnv("session.timeout_minutes", "SESSION_TIMEOUT_MINUTES")
	_ = v.BindEnv("session.max_history", "MAX_SESSION_HISTORY")
	_ = v.BindEnv("knowledge.path", "KNOWLEDGE_PATH")
	_ = v.BindEnv("log.level", "LOG_LEVEL")
	_ = v.BindEnv("log.file", "LOG_FILE")
}
