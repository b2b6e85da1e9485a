package cli

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/mesh-intelligence/memok/internal/logging"
	"github.com/mesh-intelligence/memok/internal/paths"
	"github.com/mesh-intelligence/memok/pkg/memok"
	"github.com/mesh-intelligence/memok/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	envPrefix      = "MEMOK"

	cfgKeyBackend        = "backend"
	cfgKeyDataDir        = "data_dir"
	cfgKeyLogLevel       = "log_level"
	cfgKeyLogFormat      = "log_format"
	cfgKeyBirthdayWindow = "birthday_window"

	defaultBackend = types.BackendJSONL
)

// settings is the resolved configuration of one invocation.
type settings struct {
	configDir      string
	backend        string
	dataDir        string // as written in config.yaml; resolved later
	logging        logging.Config
	birthdayWindow int
}

// loadSettings reads config.yaml from configDir with Viper. A missing file
// is not an error. Environment variables MEMOK_BACKEND, MEMOK_LOG_LEVEL,
// MEMOK_LOG_FORMAT and MEMOK_BIRTHDAY_WINDOW override the file; the data
// directory follows the paths precedence instead.
func loadSettings(configDir string) (settings, error) {
	v := viper.New()
	v.SetDefault(cfgKeyBackend, defaultBackend)
	v.SetDefault(cfgKeyLogLevel, logging.DefaultLevel)
	v.SetDefault(cfgKeyLogFormat, logging.DefaultFormat)
	v.SetDefault(cfgKeyBirthdayWindow, memok.DefaultBirthdayWindow)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	v.SetEnvPrefix(envPrefix)
	for _, key := range []string{cfgKeyBackend, cfgKeyLogLevel, cfgKeyLogFormat, cfgKeyBirthdayWindow} {
		if err := v.BindEnv(key); err != nil {
			return settings{}, fmt.Errorf("bind env %s: %w", key, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return settings{}, fmt.Errorf("read config: %w", err)
		}
	}

	s := settings{
		configDir: configDir,
		backend:   v.GetString(cfgKeyBackend),
		dataDir:   v.GetString(cfgKeyDataDir),
		logging: logging.Config{
			Level:  v.GetString(cfgKeyLogLevel),
			Format: v.GetString(cfgKeyLogFormat),
		},
		birthdayWindow: v.GetInt(cfgKeyBirthdayWindow),
	}
	if s.birthdayWindow <= 0 {
		s.birthdayWindow = memok.DefaultBirthdayWindow
	}
	return s, nil
}

// resolveSettings applies the global flags on top of config.yaml.
func (a *app) resolveSettings() (settings, error) {
	configDir, err := paths.ResolveConfigDir(a.flags.configDir)
	if err != nil {
		return settings{}, sysErr("resolve config dir: %w", err)
	}
	s, err := loadSettings(configDir)
	if err != nil {
		return settings{}, &systemError{err: err}
	}
	if a.flags.backend != "" {
		s.backend = a.flags.backend
	}
	dataDir, err := paths.ResolveDataDir(a.flags.dataDir, s.dataDir)
	if err != nil {
		return settings{}, sysErr("resolve data dir: %w", err)
	}
	s.dataDir = dataDir
	return s, nil
}

// storeConfig returns the types.Config for the resolved settings.
func (s settings) storeConfig() types.Config {
	return types.Config{Backend: s.backend, DataDir: s.dataDir}
}

// configPath returns the config.yaml location.
func (s settings) configPath() string {
	return paths.ConfigFile(s.configDir)
}
