package nethttp

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// LoadConfig reads a Config from the file at path (YAML, JSON, or TOML
// by extension). When envFile is non-empty it is loaded into the
// process environment first, and HTTPFLOW_-prefixed environment
// variables override file values (HTTPFLOW_TIMEOUT, HTTPFLOW_PROXY_URL,
// ...). Defaults are applied and the result validated.
func LoadConfig(path, envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return Config{}, fmt.Errorf("nethttp: load env file: %w", err)
		}
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetEnvPrefix("HTTPFLOW")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("nethttp: read config: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("nethttp: unmarshal config: %w", err)
	}

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
