// Package paths resolves where memok keeps its configuration and its data.
// Both follow the platform conventions (XDG on Linux) unless a flag, the
// config file or an environment variable points elsewhere.
package paths

import (
	"os"
	"path/filepath"
	"runtime"
)

// AppName names the per-user directories.
const AppName = "memok"

// ConfigFileName is the configuration file inside the config directory.
const ConfigFileName = "config.yaml"

// Environment variable names for directory overrides.
const (
	EnvConfigDir = "MEMOK_CONFIG_DIR"
	EnvDataDir   = "MEMOK_DATA_DIR"
)

// platformDir holds platform-detection functions that can be overridden in tests.
var platformDir = struct {
	homeDir       func() (string, error)
	userConfigDir func() (string, error)
}{
	homeDir:       os.UserHomeDir,
	userConfigDir: os.UserConfigDir,
}

// DefaultConfigDir returns the platform-specific default configuration directory.
//
// Linux:   $XDG_CONFIG_HOME/memok (fallback ~/.config/memok)
// macOS:   ~/Library/Application Support/memok
// Windows: %APPDATA%/memok
func DefaultConfigDir() (string, error) {
	return platformPath("XDG_CONFIG_HOME", ".config")
}

// DefaultDataDir returns the platform-specific default data directory.
//
// Linux:   $XDG_DATA_HOME/memok (fallback ~/.local/share/memok)
// macOS:   ~/Library/Application Support/memok
// Windows: %APPDATA%/memok
func DefaultDataDir() (string, error) {
	return platformPath("XDG_DATA_HOME", filepath.Join(".local", "share"))
}

func platformPath(xdgVar, homeRel string) (string, error) {
	if runtime.GOOS == "linux" {
		if xdg := os.Getenv(xdgVar); xdg != "" {
			return filepath.Join(xdg, AppName), nil
		}
		home, err := platformDir.homeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, homeRel, AppName), nil
	}
	// macOS and Windows keep config and data side by side.
	dir, err := platformDir.userConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, AppName), nil
}

// ResolveConfigDir returns the configuration directory following the precedence
// chain: flag > MEMOK_CONFIG_DIR env > DefaultConfigDir().
func ResolveConfigDir(flag string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if env := os.Getenv(EnvConfigDir); env != "" {
		return filepath.Abs(env)
	}
	return DefaultConfigDir()
}

// ResolveDataDir returns the data directory following the precedence chain:
// flag > configValue > MEMOK_DATA_DIR env > DefaultDataDir().
func ResolveDataDir(flag, configValue string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if configValue != "" {
		return filepath.Abs(configValue)
	}
	if env := os.Getenv(EnvDataDir); env != "" {
		return filepath.Abs(env)
	}
	return DefaultDataDir()
}

// ConfigFile returns the path of config.yaml inside configDir.
func ConfigFile(configDir string) string {
	return filepath.Join(configDir, ConfigFileName)
}
