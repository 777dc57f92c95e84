package config

import (
	"fmt"
	"os"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	"zonetree/internal/gateway"
)

// Config is the resolved process configuration. Precedence, highest first:
// process environment (CLOUDFLARE_API_TOKEN wins over ZONETREE_API_TOKEN),
// a .zonetree.yaml config file, built-in defaults. Command-line flags
// override all of these at the CLI layer.
type Config struct {
	Token    string
	Endpoint string
	DataDir  string
}

// AuthError is the one fatal error class: a missing credential detected at
// startup, before any component is constructed.
type AuthError struct {
	Reason string
}

func (e *AuthError) Error() string { return e.Reason }

// Load resolves configuration from the file and environment layers. It does
// not require a token; call RequireToken before constructing the gateway.
func Load() (Config, error) {
	v := viper.New()
	v.SetDefault("api_endpoint", gateway.DefaultEndpoint)
	v.SetDefault("data_dir", "~/.zonetree")
	v.SetConfigName(".zonetree") // .yaml is implicit
	v.SetEnvPrefix("ZONETREE")
	v.AutomaticEnv()

	if override := os.Getenv("ZONETREE_CONFIG_PATH"); override != "" {
		v.AddConfigPath(override)
	}
	if home, err := homedir.Dir(); err == nil {
		v.AddConfigPath(home)
	}
	v.AddConfigPath("./")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	cfg := Config{
		Token:    v.GetString("api_token"),
		Endpoint: v.GetString("api_endpoint"),
		DataDir:  v.GetString("data_dir"),
	}

	// The Cloudflare-conventional variable outranks everything else.
	if t := os.Getenv("CLOUDFLARE_API_TOKEN"); t != "" {
		cfg.Token = t
	}

	dir, err := homedir.Expand(cfg.DataDir)
	if err != nil {
		return Config{}, fmt.Errorf("expand data dir: %w", err)
	}
	cfg.DataDir = dir

	return cfg, nil
}

// RequireToken enforces the startup credential contract: no token, no
// process.
func (c Config) RequireToken() error {
	if c.Token == "" {
		return &AuthError{Reason: "missing API token: set CLOUDFLARE_API_TOKEN (or ZONETREE_API_TOKEN, or api_token in .zonetree.yaml)"}
	}
	return nil
}
