// Package config merges command-line flags, an optional config file, and
// MACID_* environment variables into the CLI configuration.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes the environment variables read by [Load],
// e.g. MACID_EXCLUDE_WIRELESS.
const EnvPrefix = "MACID"

// DefaultTimeout bounds a whole adapter collection.
const DefaultTimeout = 10 * time.Second

// keys lists the configuration keys; flags with these names are bound.
var keys = []string{
	"exclude-non-physical",
	"exclude-wireless",
	"json",
	"diagnostics",
	"debug",
	"log-file",
	"timeout",
}

// Config holds the CLI configuration.
type Config struct {
	LogFile            string        `mapstructure:"log-file"`
	Timeout            time.Duration `mapstructure:"timeout"`
	ExcludeNonPhysical bool          `mapstructure:"exclude-non-physical"`
	ExcludeWireless    bool          `mapstructure:"exclude-wireless"`
	JSON               bool          `mapstructure:"json"`
	Diagnostics        bool          `mapstructure:"diagnostics"`
	Debug              bool          `mapstructure:"debug"`
}

// Load reads configuration from flags, environment variables, configFile
// (when not empty), and defaults, in that order of precedence.
func Load(flags *pflag.FlagSet, configFile string) (*Config, error) {
	v := viper.New()

	v.SetDefault("timeout", DefaultTimeout)

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file %q: %w", configFile, err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for _, key := range keys {
			flag := flags.Lookup(key)
			if flag == nil {
				continue
			}
			if err := v.BindPFlag(key, flag); err != nil {
				return nil, fmt.Errorf("binding flag %q: %w", key, err)
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}

	if cfg.Timeout <= 0 {
		return nil, fmt.Errorf("timeout must be positive, got %s", cfg.Timeout)
	}

	return cfg, nil
}
