package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/josefdc/Algoritmos-Despacho/internal/assistant"
	"github.com/spf13/viper"
)

type SchedulerConfig struct {
	Port            int
	DefaultPriority int
	RequirePriority bool
	StoreURL        string
	Tracing         TracingConfig
	Assistant       assistant.Config
}

type TracingConfig struct {
	Enabled bool
	Output  string
}

// Validate returns an error describing the first invalid setting.
func (c *SchedulerConfig) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("port must be in 1..65535, got %d", c.Port)
	}
	if c.Assistant.MaxTokens <= 0 {
		return fmt.Errorf("assistant.max_tokens must be > 0")
	}
	if c.Assistant.Temperature < 0 || c.Assistant.Temperature > 2 {
		return fmt.Errorf("assistant.temperature must be in 0..2")
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	defaults := assistant.DefaultConfig()
	v.SetDefault("port", 9095)
	v.SetDefault("scheduler.default_priority", 0)
	v.SetDefault("scheduler.require_priority", false)
	v.SetDefault("store.url", "")
	v.SetDefault("tracing.enabled", false)
	v.SetDefault("tracing.output", "")
	v.SetDefault("assistant.base_url", defaults.BaseURL)
	v.SetDefault("assistant.model", defaults.Model)
	v.SetDefault("assistant.max_tokens", defaults.MaxTokens)
	v.SetDefault("assistant.temperature", defaults.Temperature)
	v.SetDefault("assistant.timeout", defaults.Timeout)
}

// Load reads the configuration from path, or from config.yaml in the working
// directory when path is empty. A missing default file is not an error.
// Environment variables prefixed with DESPACHO_ override file values and
// OPENAI_API_KEY supplies the assistant key.
func Load(path string) (*SchedulerConfig, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix("despacho")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("assistant.api_key", "DESPACHO_ASSISTANT_API_KEY", "OPENAI_API_KEY"); err != nil {
		return nil, err
	}

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	config := &SchedulerConfig{
		Port:            v.GetInt("port"),
		DefaultPriority: v.GetInt("scheduler.default_priority"),
		RequirePriority: v.GetBool("scheduler.require_priority"),
		StoreURL:        v.GetString("store.url"),
		Tracing: TracingConfig{
			Enabled: v.GetBool("tracing.enabled"),
			Output:  v.GetString("tracing.output"),
		},
		Assistant: assistant.Config{
			APIKey:      v.GetString("assistant.api_key"),
			BaseURL:     v.GetString("assistant.base_url"),
			Model:       v.GetString("assistant.model"),
			MaxTokens:   v.GetInt("assistant.max_tokens"),
			Temperature: v.GetFloat64("assistant.temperature"),
			Timeout:     v.GetDuration("assistant.timeout"),
		},
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}
