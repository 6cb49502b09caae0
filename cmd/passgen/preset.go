package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/saylorsolutions/passgen/cmd/passgen/internal/config"
	"github.com/saylorsolutions/passgen/pkg/passgen"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newPresetCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preset",
		Short: "Manages named sets of password options",
	}
	cmd.AddCommand(
		newPresetListCmd(a),
		newPresetShowCmd(a),
		newPresetSaveCmd(a),
		newPresetDeleteCmd(a),
	)
	return cmd
}

func newPresetListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "Lists saved presets",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			names := a.cfg.Presets.Names()
			if len(names) == 0 {
				a.log.Info("No presets saved", "config", a.cfg.Path())
				return nil
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, name := range names {
				opts := a.cfg.Presets[name]
				_, _ = fmt.Fprintf(w, "%s\t%d\t%s\n", name, opts.EffectiveLength(), describeClasses(opts))
			}
			return w.Flush()
		},
	}
}

// describeClasses summarizes the enabled classes as name:min pairs.
func describeClasses(opts passgen.OptionSet) string {
	var parts []string
	for _, class := range opts.Classes() {
		if class.Option.Enabled {
			parts = append(parts, fmt.Sprintf("%s:%d", class.Name, class.Option.Min))
		}
	}
	if len(parts) == 0 {
		return "-"
	}
	return strings.Join(parts, " ")
}

func newPresetShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show NAME",
		Short: "Prints a preset's options as YAML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := a.cfg.Presets.Get(config.PresetName(args[0]))
			if err != nil {
				return err
			}
			return printOptions(cmd, opts)
		},
	}
}

func printOptions(cmd *cobra.Command, opts passgen.OptionSet) error {
	enc := yaml.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent(2)
	if err := enc.Encode(opts); err != nil {
		return err
	}
	return enc.Close()
}

func newPresetSaveCmd(a *app) *cobra.Command {
	var from string
	cmd := &cobra.Command{
		Use:   "save NAME",
		Short: "Saves a preset",
		Long: `Saves a preset, replacing any existing preset with the same name.
The preset starts from the default options, or another preset with --from, and option flags are applied on top.
Preset names are case-insensitive.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := config.PresetName(args[0])
			opts := a.cfg.Options
			if len(from) > 0 {
				var err error
				opts, err = a.cfg.Presets.Get(config.PresetName(from))
				if err != nil {
					return err
				}
			}
			if err := applyOptionFlags(cmd.Flags(), &opts); err != nil {
				return err
			}
			if err := a.cfg.Presets.Save(name, opts); err != nil {
				return err
			}
			if err := config.Write(a.cfg); err != nil {
				return err
			}
			a.log.Info("Saved preset", "preset", name, "config", a.cfg.Path())
			return nil
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "Existing preset to start from.")
	addOptionFlags(cmd.Flags())
	return cmd
}

func newPresetDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "delete NAME",
		Aliases: []string{"rm"},
		Short:   "Deletes a preset",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := config.PresetName(args[0])
			if err := a.cfg.Presets.Delete(name); err != nil {
				return err
			}
			if err := config.Write(a.cfg); err != nil {
				return err
			}
			a.log.Info("Deleted preset", "preset", name)
			return nil
		},
	}
}

func newDefaultsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "defaults",
		Short: "Shows or changes the default password options",
		Long: `Without option flags, prints the default options as YAML.
With option flags, applies them to the defaults and saves the config file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := a.cfg.Options
			if !optionFlagsChanged(cmd.Flags()) {
				return printOptions(cmd, opts)
			}
			if err := applyOptionFlags(cmd.Flags(), &opts); err != nil {
				return err
			}
			if err := opts.Validate(); err != nil {
				return err
			}
			a.cfg.Options = opts
			if err := config.Write(a.cfg); err != nil {
				return err
			}
			a.log.Info("Saved default options", "config", a.cfg.Path())
			return nil
		},
	}
	addOptionFlags(cmd.Flags())
	return cmd
}
