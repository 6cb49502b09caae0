package main

import (
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/log"
	"github.com/saylorsolutions/passgen/cmd/internal"
	"github.com/saylorsolutions/passgen/cmd/passgen/internal/config"
	"github.com/saylorsolutions/passgen/pkg/keystream"
	"github.com/spf13/cobra"
)

var version = "dev"

type app struct {
	configPath string
	cfg        *config.Config
	log        *log.Logger
	copyText   func(string) error
}

func newApp() *app {
	return &app{
		copyText: clipboard.WriteAll,
	}
}

func (a *app) generator() (*keystream.Generator, error) {
	opts := []keystream.Option{keystream.WithLogger(a.log)}
	if a.cfg.RequirePersist {
		opts = append(opts, keystream.RequirePersist())
	}
	return keystream.New(keystream.NewFileStore(a.cfg.StateFile), opts...)
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:     "passgen",
		Short:   "Generates passwords from configurable character classes",
		Version: version,
		Long: `passgen generates passwords from up to four character classes (lower case, upper case, numbers, and special characters).
Each class has its own alphabet and a minimum number of characters that must appear in the password.
Settings can be saved as named presets.

Random bytes come from an AES-256 keystream whose state is kept next to the config file, so output never repeats across runs.
Anyone that can read the state file can predict future passwords, so keep it private.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.configPath, cmd.Flags())
			if err != nil {
				return err
			}
			logger, err := internal.NewLogger(cmd.ErrOrStderr(), cfg.LogLevel)
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.log = logger
			a.log.Debug("Loaded config", "path", cfg.Path(), "state", cfg.StateFile)
			return nil
		},
	}
	flags := root.PersistentFlags()
	flags.StringVarP(&a.configPath, "config", "c", "", "Config file to use instead of the default in the user config directory.")
	flags.String("state-file", "", "Generator state file to use instead of the configured one.")
	flags.String("log-level", "", "Log level: debug, info, warn, or error.")
	flags.Bool("require-persist", false, "Fail instead of continuing when the generator state can't be saved.")

	root.AddCommand(
		newGenerateCmd(a),
		newPresetCmd(a),
		newDefaultsCmd(a),
	)
	return root
}

func main() {
	if err := newRootCmd(newApp()).Execute(); err != nil {
		internal.Fatal("Error: %v", err)
	}
}
