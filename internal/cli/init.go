package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/memok/pkg/store"
)

// configFile holds the structure written to config.yaml.
type configFile struct {
	Backend        string `yaml:"backend"`
	DataDir        string `yaml:"data_dir,omitempty"`
	LogLevel       string `yaml:"log_level"`
	LogFormat      string `yaml:"log_format"`
	BirthdayWindow int    `yaml:"birthday_window"`
}

func (a *app) newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize memok configuration and storage",
		Long:  "Create the configuration and data directories, write a default config.yaml, then initialize the storage backend.",
		Args:  cobra.NoArgs,
		RunE:  a.runInit,
	}
}

func (a *app) runInit(cmd *cobra.Command, args []string) error {
	s, err := a.resolveSettings()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(s.configDir, 0o755); err != nil {
		return sysErr("create config directory: %w", err)
	}
	if err := writeConfigIfMissing(s.configPath(), s); err != nil {
		return sysErr("write config: %w", err)
	}

	st, err := store.Open(s.storeConfig(), zap.NewNop())
	if err != nil {
		return sysErr("initialize storage: %w", err)
	}
	if err := st.Detach(); err != nil {
		return sysErr("finalize storage: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "memok initialized successfully")
	fmt.Fprintf(out, "config: %s\ndata:   %s (%s)\n", s.configPath(), s.dataDir, s.backend)
	return nil
}

// writeConfigIfMissing creates config.yaml from the resolved settings if
// the file does not exist. An existing file is left untouched.
func writeConfigIfMissing(path string, s settings) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	}

	cfg := configFile{
		Backend:        s.backend,
		DataDir:        s.dataDir,
		LogLevel:       s.logging.Level,
		LogFormat:      s.logging.Format,
		BirthdayWindow: s.birthdayWindow,
	}
	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
