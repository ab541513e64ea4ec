package rai

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/raihq/rai-go/pkg/constants"
	"github.com/raihq/rai-go/pkg/errors"
)

// Credential is the immutable API credential triple. It is never mutated
// field by field; rotation replaces the whole value through
// [Client.Reconfigure].
type Credential struct {
	KeyID     string `mapstructure:"key_id"`
	PublicKey string `mapstructure:"public_key"`
	Secret    string `mapstructure:"secret"`
}

// Validate checks the exact field lengths the API requires. It runs at client
// construction, before any network use of the credential.
func (c Credential) Validate() error {
	if len(c.KeyID) != constants.KeyIDLength {
		return errors.NewSDKError(fmt.Sprintf("keyId must be exactly %d characters, got %d", constants.KeyIDLength, len(c.KeyID)), nil)
	}
	if len(c.PublicKey) != constants.PublicKeyLength {
		return errors.NewSDKError(fmt.Sprintf("publicKey must be exactly %d characters, got %d", constants.PublicKeyLength, len(c.PublicKey)), nil)
	}
	if len(c.Secret) != constants.SecretLength {
		return errors.NewSDKError(fmt.Sprintf("secret must be exactly %d characters, got %d", constants.SecretLength, len(c.Secret)), nil)
	}
	return nil
}

// Config holds the client configuration.
type Config struct {
	// BaseURL is the API endpoint. Empty means constants.DefaultBaseURL.
	BaseURL string `mapstructure:"base_url"`

	// Credential is the API credential triple.
	Credential Credential `mapstructure:"credential"`

	// Log configures the SDK logger created by cmd/rai; library users
	// inject their own logger via WithLogger instead.
	Log LogConfig `mapstructure:"log"`
}

// LogConfig configures SDK logging.
type LogConfig struct {
	Level string `mapstructure:"level"`
}

func (c *Config) withDefaults() {
	if c.BaseURL == "" {
		c.BaseURL = constants.DefaultBaseURL
	}
	if c.Log.Level == "" {
		c.Log.Level = string(constants.LogLevelInfo)
	}
}

// Validate checks for essential configuration values.
func (c *Config) Validate() error {
	return c.Credential.Validate()
}

// LoadConfig loads the configuration from a yaml config file named "rai" in
// the current directory (if present) and from RAI_-prefixed environment
// variables, such as RAI_CREDENTIAL_KEY_ID.
func LoadConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigName("rai")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	return loadWith(v, true)
}

// LoadConfigFile loads the configuration from an explicit file path plus
// RAI_-prefixed environment variables.
func LoadConfigFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	return loadWith(v, false)
}

func loadWith(v *viper.Viper, fileOptional bool) (*Config, error) {
	v.SetDefault("base_url", constants.DefaultBaseURL)
	v.SetDefault("log.level", string(constants.LogLevelInfo))

	// Empty defaults so AutomaticEnv can bind env-only credentials.
	v.SetDefault("credential.key_id", "")
	v.SetDefault("credential.public_key", "")
	v.SetDefault("credential.secret", "")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || !fileOptional {
			return nil, err
		}
	}

	v.SetEnvPrefix("RAI")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.NewSDKError("failed to unmarshal config", err)
	}
	cfg.withDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}
