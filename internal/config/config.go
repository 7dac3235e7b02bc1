package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/Paintersrp/noted/internal/constants"
)

// BuildAPIURL is the endpoint baked in at build time:
//
//	go build -ldflags "-X github.com/Paintersrp/noted/internal/config.BuildAPIURL=https://notes.example.com"
var BuildAPIURL = ""

const defaultRequestTimeout = 10 * time.Second

type ExportConfig struct {
	Bucket          string `yaml:"bucket"            json:"bucket"`
	Prefix          string `yaml:"prefix"            json:"prefix"`
	Region          string `yaml:"region"            json:"region"`
	Endpoint        string `yaml:"endpoint"          json:"endpoint"`
	AccessKeyID     string `yaml:"access_key_id"     json:"access_key_id"`
	SecretAccessKey string `yaml:"secret_access_key" json:"secret_access_key"`
}

type Config struct {
	APIURL         string       `yaml:"api_url,omitempty"         json:"api_url"`
	RequestTimeout string       `yaml:"request_timeout,omitempty" json:"request_timeout"`
	PreviewLength  int          `yaml:"preview_length,omitempty"  json:"preview_length"`
	LogFile        string       `yaml:"log_file,omitempty"        json:"log_file"`
	Export         ExportConfig `yaml:"export,omitempty"          json:"export"`

	path string `yaml:"-"`
}

// Load reads the config file at path. A missing or empty file yields the
// defaults; the file is only created on Save.
func Load(path string) (*Config, error) {
	cfg := &Config{path: path}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if len(strings.TrimSpace(string(data))) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, &ConfigError{Key: "file", Err: err}
		}
	}
	cfg.path = path

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (cfg *Config) Validate() error {
	if strings.TrimSpace(cfg.APIURL) != "" {
		if _, err := NormalizeURL(cfg.APIURL); err != nil {
			return &ConfigError{Key: "api_url", Err: err}
		}
	}
	if strings.TrimSpace(cfg.RequestTimeout) != "" {
		d, err := time.ParseDuration(strings.TrimSpace(cfg.RequestTimeout))
		if err != nil {
			return &ConfigError{Key: "request_timeout", Err: err}
		}
		if d <= 0 {
			return &ConfigError{Key: "request_timeout", Err: fmt.Errorf("must be positive, got %s", d)}
		}
	}
	if cfg.PreviewLength < 0 {
		return &ConfigError{Key: "preview_length", Err: fmt.Errorf("must not be negative, got %d", cfg.PreviewLength)}
	}
	return nil
}

// Timeout returns the per-request timeout, falling back to the default.
func (cfg *Config) Timeout() time.Duration {
	if d, err := time.ParseDuration(strings.TrimSpace(cfg.RequestTimeout)); err == nil && d > 0 {
		return d
	}
	return defaultRequestTimeout
}

func (cfg *Config) Preview() int {
	if cfg.PreviewLength > 0 {
		return cfg.PreviewLength
	}
	return constants.PreviewLength
}

func (cfg *Config) Path() string {
	return cfg.path
}

// SetAPIURL validates and stores the endpoint, then persists the file.
func (cfg *Config) SetAPIURL(raw string) error {
	normalized, err := NormalizeURL(raw)
	if err != nil {
		return &ConfigError{Key: "api_url", Err: err}
	}
	cfg.APIURL = normalized
	return cfg.Save()
}

func (cfg *Config) Save() error {
	if cfg.path == "" {
		return &ConfigError{Key: "file", Err: fmt.Errorf("config path is not set")}
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	cfg.syncViper()

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(cfg.path), 0o755); err != nil {
		return err
	}

	return os.WriteFile(cfg.path, data, 0o644)
}

func (cfg *Config) syncViper() {
	viper.Set("api_url", cfg.APIURL)
}

// ResolveAPIURL applies the endpoint precedence: the runtime value (flag,
// environment or config file), then the build-time value, then the default.
func ResolveAPIURL(runtime, build string) (string, error) {
	for _, candidate := range []string{runtime, build} {
		if strings.TrimSpace(candidate) == "" {
			continue
		}
		normalized, err := NormalizeURL(candidate)
		if err != nil {
			return "", &ConfigError{Key: "api_url", Err: err}
		}
		return normalized, nil
	}
	return constants.DefaultAPIURL, nil
}

// NormalizeURL trims whitespace and trailing slashes and requires an
// absolute http(s) URL.
func NormalizeURL(raw string) (string, error) {
	trimmed := strings.TrimRight(strings.TrimSpace(raw), "/")
	if trimmed == "" {
		return "", fmt.Errorf("url is empty")
	}

	u, err := url.Parse(trimmed)
	if err != nil {
		return "", err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("unsupported scheme %q in %q", u.Scheme, raw)
	}
	if u.Host == "" {
		return "", fmt.Errorf("missing host in %q", raw)
	}

	return trimmed, nil
}
