package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	utilsconfig "github.com/quantumauth-io/quantum-go-utils/config"

	"github.com/wasmdash/wasmdash-client/internal/backend"
	"github.com/wasmdash/wasmdash-client/internal/constants"
)

//go:embed config.yaml
var EmbeddedConfigYAML []byte

type ClientSettings struct {
	LocalHost      string
	Port           string
	SignerURL      string
	UserAddress    string
	AllowedOrigins []string

	PromptForAddress   bool
	PromptForSignerKey bool

	SignerDialTimeoutSeconds int

	// Only ever read from the environment or a prompt.
	SignerKey string `mapstructure:"-"`
}

type Config struct {
	ClientSettings *ClientSettings

	// Resolved from the environment; see ApplyEnv.
	BackendID string `mapstructure:"-"`
}

func Load() (*Config, error) {
	home, _ := os.UserHomeDir()
	paths := []string{
		filepath.Join(home, ".config", constants.AppName),
		filepath.Join(home, "config"),
		".",
	}

	cfg, err := utilsconfig.ParseConfigWithEmbedded[Config](paths, EmbeddedConfigYAML)
	if err != nil {
		return nil, err
	}

	cfg.ApplyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyEnv resolves the backend id and lets the environment override the
// signer and identity settings.
func (c *Config) ApplyEnv() {
	if c.ClientSettings == nil {
		c.ClientSettings = &ClientSettings{}
	}

	c.BackendID = backend.IDFromEnv()

	if v := strings.TrimSpace(os.Getenv(constants.SignerURLEnv)); v != "" {
		c.ClientSettings.SignerURL = v
	}
	if v := strings.TrimSpace(os.Getenv(constants.SignerKeyEnv)); v != "" {
		c.ClientSettings.SignerKey = v
	}
	if v := strings.TrimSpace(os.Getenv(constants.UserAddressEnv)); v != "" {
		c.ClientSettings.UserAddress = v
	}
}

func (c *Config) Validate() error {
	cs := c.ClientSettings
	if cs == nil {
		return fmt.Errorf("ClientSettings is missing")
	}

	cs.LocalHost = strings.TrimSpace(cs.LocalHost)
	cs.Port = strings.TrimSpace(cs.Port)
	cs.SignerURL = strings.TrimSpace(cs.SignerURL)

	if cs.LocalHost == "" {
		return fmt.Errorf("ClientSettings.LocalHost is empty")
	}
	if cs.Port == "" {
		return fmt.Errorf("ClientSettings.Port is empty")
	}
	if cs.SignerDialTimeoutSeconds <= 0 {
		cs.SignerDialTimeoutSeconds = constants.SignerDialTimeoutSeconds
	}

	origins := make([]string, 0, len(cs.AllowedOrigins))
	for _, o := range cs.AllowedOrigins {
		o = strings.TrimRight(strings.TrimSpace(o), "/")
		if o == "" {
			continue
		}
		origins = append(origins, o)
	}
	cs.AllowedOrigins = origins

	return nil
}

func (c *Config) SignerDialTimeout() time.Duration {
	return time.Duration(c.ClientSettings.SignerDialTimeoutSeconds) * time.Second
}
