package config

import (
	"errors"
	"os"
	"time"

	"agurk-server/internal/util"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config provides configuration for the agurk server
type Config struct {
	loaded bool
	Server struct {
		RequestTimeoutInMillis  int `yaml:"requestTimeoutInMillis" envconfig:"request_timeout"`
		RequestRetriesAllowed   int `yaml:"requestRetriesAllowed" envconfig:"request_retries"`
		DelayAfterCycleInMillis int `yaml:"delayAfterCycleInMillis" envconfig:"delay_after_cycle"`
		DelayAfterRoundInMillis int `yaml:"delayAfterRoundInMillis" envconfig:"delay_after_round"`
	} `yaml:"server"`
	Security struct {
		JWTSignSecret     string `yaml:"jwtSignSecret" envconfig:"jwt_sign_secret"`
		AccessToken       string `yaml:"accessToken" envconfig:"access_token"`
		TokenTTLInSeconds int    `yaml:"tokenTTLInSeconds" envconfig:"token_ttl"`
	} `yaml:"security"`
	Log struct {
		Level             string `yaml:"level" envconfig:"level"`
		DisableAccessLogs bool   `yaml:"disableAccessLogs" envconfig:"disable_access_logs"`
	} `yaml:"log"`
}

// ErrMissingSecret is returned by Validate if a secret is not configured
var ErrMissingSecret = errors.New("security.jwtSignSecret and security.accessToken must be set")

var config Config

// DefaultConfig returns the configuration used when nothing is overridden
func DefaultConfig() Config {
	var c Config
	c.Server.RequestTimeoutInMillis = 30000
	c.Server.RequestRetriesAllowed = 2
	c.Server.DelayAfterCycleInMillis = 3000
	c.Server.DelayAfterRoundInMillis = 3000
	c.Security.TokenTTLInSeconds = 300
	c.Log.Level = "info"

	return c
}

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration
// The config file is optional, environment variables take precedence over it.
func Load() error {
	c := DefaultConfig()

	configFile := util.Getenv("AGURK_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	if err != nil && !os.IsNotExist(err) {
		return err
	}

	if file != nil {
		defer file.Close()
		if err := yaml.NewDecoder(file).Decode(&c); err != nil {
			return err
		}
	}

	if err := envconfig.Process("agurk", &c); err != nil {
		return err
	}

	c.loaded = true
	config = c
	return nil
}

// Validate returns an error if the server cannot run with the configuration
func (c Config) Validate() error {
	if c.Security.JWTSignSecret == "" || c.Security.AccessToken == "" {
		return ErrMissingSecret
	}

	return nil
}

// RequestTimeout returns the time a player has to play cards
func (c Config) RequestTimeout() time.Duration {
	return time.Duration(c.Server.RequestTimeoutInMillis) * time.Millisecond
}

// DelayAfterCycle returns the pause between two cycles
func (c Config) DelayAfterCycle() time.Duration {
	return time.Duration(c.Server.DelayAfterCycleInMillis) * time.Millisecond
}

// DelayAfterRound returns the pause between two rounds
func (c Config) DelayAfterRound() time.Duration {
	return time.Duration(c.Server.DelayAfterRoundInMillis) * time.Millisecond
}

// TokenTTL returns how long a signed token is valid
func (c Config) TokenTTL() time.Duration {
	return time.Duration(c.Security.TokenTTLInSeconds) * time.Second
}
