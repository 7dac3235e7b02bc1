package state

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/Paintersrp/noted/internal/api"
	"github.com/Paintersrp/noted/internal/config"
	"github.com/Paintersrp/noted/internal/constants"
	"github.com/Paintersrp/noted/internal/logging"
)

type State struct {
	Config *config.Config
	API    *api.Client
	Logger *slog.Logger
	Home   string
	APIURL string

	logCloser io.Closer
}

type Options struct {
	// ConfigPath overrides ~/.noted/cfg.yaml.
	ConfigPath string
	Debug      bool
}

func NewState(opts Options) (*State, error) {
	home, err := GetHomeDir()
	if err != nil {
		return nil, err
	}

	path := opts.ConfigPath
	if path == "" {
		path = config.GetConfigPath(home)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		return nil, err
	}

	logger, closer, err := logging.New(logging.Options{
		Path:        cfg.LogFile,
		DefaultPath: config.GetLogPath(home),
		Debug:       opts.Debug,
	})
	if err != nil {
		return nil, err
	}

	apiURL, err := config.ResolveAPIURL(viper.GetString("api_url"), config.BuildAPIURL)
	if err != nil {
		_ = closer.Close()
		return nil, err
	}

	client := api.New(
		apiURL,
		api.WithTimeout(cfg.Timeout()),
		api.WithLogger(logger.With("component", "api")),
	)

	logger.Debug("state initialized", "api_url", apiURL, "config", path)

	return &State{
		Config:    cfg,
		API:       client,
		Logger:    logger,
		Home:      home,
		APIURL:    apiURL,
		logCloser: closer,
	}, nil
}

func GetHomeDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory. err: %s", err)
	}

	return home, nil
}

// LoadConfig layers viper over the config file so that the runtime endpoint
// resolves as flag, then NOTED_API_URL, then the file's api_url.
func LoadConfig(path string) (*config.Config, error) {
	viper.SetConfigFile(path)
	viper.SetConfigType(constants.ConfigFileType)
	viper.SetEnvPrefix(constants.EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	if err := viper.BindEnv("api_url"); err != nil {
		return nil, err
	}
	if err := viper.ReadInConfig(); err != nil && !configMissing(err) {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	return config.Load(path)
}

// configMissing reports whether err only means there is no config file yet,
// in which case the defaults apply.
func configMissing(err error) bool {
	var notFound viper.ConfigFileNotFoundError
	return errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist)
}

func (s *State) Close() error {
	if s == nil || s.logCloser == nil {
		return nil
	}
	err := s.logCloser.Close()
	s.logCloser = nil
	return err
}
