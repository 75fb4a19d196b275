package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

const (
	DefaultDebounce       = time.Second
	DefaultMinQueryLength = 3
	DefaultSuggestions    = 5
	DefaultProxyAddr      = "127.0.0.1:8787"
)

type Config struct {
	Provider string `yaml:"provider"`
	APIKey   string `yaml:"api_key,omitempty"`
	Model    string `yaml:"model"`
	BaseURL  string `yaml:"base_url,omitempty"`

	// Debounce is a Go duration string, e.g. "1s" or "750ms".
	Debounce        string `yaml:"debounce,omitempty"`
	MinQueryLength  int    `yaml:"min_query_length,omitempty"`
	SuggestionCount int    `yaml:"suggestion_count,omitempty"`

	Environment string      `yaml:"environment,omitempty"`
	Log         LogConfig   `yaml:"log,omitempty"`
	Proxy       ProxyConfig `yaml:"proxy,omitempty"`

	// envKey holds QUERYLENS_API_KEY. It is never written by Save.
	envKey string
}

type LogConfig struct {
	Level string `yaml:"level,omitempty"`
	File  string `yaml:"file,omitempty"`
}

type ProxyConfig struct {
	Addr string `yaml:"addr,omitempty"`
}

// envOverrides is the environment layer applied on top of the file.
type envOverrides struct {
	Provider    string `envconfig:"QUERYLENS_PROVIDER"`
	APIKey      string `envconfig:"QUERYLENS_API_KEY"`
	Model       string `envconfig:"QUERYLENS_MODEL"`
	BaseURL     string `envconfig:"QUERYLENS_BASE_URL"`
	Environment string `envconfig:"QUERYLENS_ENV"`
	LogLevel    string `envconfig:"QUERYLENS_LOG_LEVEL"`
	ProxyAddr   string `envconfig:"QUERYLENS_PROXY_ADDR"`
}

func DefaultConfig() *Config {
	return &Config{
		Provider:        "openai",
		Model:           "gpt-4o-mini",
		Debounce:        DefaultDebounce.String(),
		MinQueryLength:  DefaultMinQueryLength,
		SuggestionCount: DefaultSuggestions,
		Environment:     Development.String(),
		Log:             LogConfig{Level: "info"},
		Proxy:           ProxyConfig{Addr: DefaultProxyAddr},
	}
}

var dirOverride string

// SetDir pins the config directory, taking precedence over the environment.
func SetDir(dir string) {
	dirOverride = dir
}

// ConfigDir resolves the config directory.
// Resolution order: SetDir > $QUERYLENS_CONFIG_DIR > $XDG_CONFIG_HOME/querylens > ~/.config/querylens
func ConfigDir() (string, error) {
	if dirOverride != "" {
		return dirOverride, nil
	}
	if dir := os.Getenv("QUERYLENS_CONFIG_DIR"); dir != "" {
		return dir, nil
	}
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "querylens"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "querylens"), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// LogPath is where the TUI writes its log when log.file is unset.
func (c *Config) LogPath() (string, error) {
	if c.Log.File != "" {
		return c.Log.File, nil
	}
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "querylens.log"), nil
}

func Exists() bool {
	path, err := ConfigPath()
	if err != nil {
		return false
	}
	_, err = os.Stat(path)
	return err == nil
}

// Load reads the config file. A missing file yields (nil, nil).
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return cfg, nil
}

func (c *Config) Save() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	path, err := ConfigPath()
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0600)
}

// ApplyEnv overlays QUERYLENS_* variables. Keys from the environment are
// kept apart from APIKey; see Key.
func (c *Config) ApplyEnv() error {
	var env envOverrides
	if err := envconfig.Process("", &env); err != nil {
		return fmt.Errorf("read environment: %w", err)
	}

	if env.Provider != "" {
		c.Provider = env.Provider
	}
	c.envKey = env.APIKey
	if env.Model != "" {
		c.Model = env.Model
	}
	if env.BaseURL != "" {
		c.BaseURL = env.BaseURL
	}
	if env.Environment != "" {
		c.Environment = env.Environment
	}
	if env.LogLevel != "" {
		c.Log.Level = env.LogLevel
	}
	if env.ProxyAddr != "" {
		c.Proxy.Addr = env.ProxyAddr
	}
	return nil
}

// Key is the credential to use: QUERYLENS_API_KEY, then api_key from the
// file, then the selected provider's own variable. Only api_key is saved.
func (c *Config) Key() string {
	if c.envKey != "" {
		return c.envKey
	}
	if c.APIKey != "" {
		return c.APIKey
	}
	if p := GetProvider(c.Provider); p != nil && p.KeyEnv != "" {
		return os.Getenv(p.KeyEnv)
	}
	return ""
}

// DebounceInterval parses Debounce, falling back to DefaultDebounce.
func (c *Config) DebounceInterval() time.Duration {
	d, err := time.ParseDuration(c.Debounce)
	if err != nil || d <= 0 {
		return DefaultDebounce
	}
	return d
}

func (c *Config) MinLength() int {
	if c.MinQueryLength <= 0 {
		return DefaultMinQueryLength
	}
	return c.MinQueryLength
}

func (c *Config) Suggestions() int {
	if c.SuggestionCount <= 0 {
		return DefaultSuggestions
	}
	return c.SuggestionCount
}

func (c *Config) Env() Environment {
	return ParseEnvironment(c.Environment)
}

func (c *Config) ProxyAddr() string {
	if c.Proxy.Addr == "" {
		return DefaultProxyAddr
	}
	return c.Proxy.Addr
}
