package main

import (
	"errors"
	"fmt"

	"github.com/saylorsolutions/passgen/cmd/passgen/internal/config"
	"github.com/saylorsolutions/passgen/pkg/passgen"
	"github.com/spf13/cobra"
)

func newGenerateCmd(a *app) *cobra.Command {
	var (
		preset string
		count  int
		toClip bool
	)
	cmd := &cobra.Command{
		Use:     "generate",
		Aliases: []string{"gen"},
		Short:   "Generates one or more passwords",
		Long: `Generates passwords using the default options from the config file, or a preset with --preset.
Option flags override the selected settings for this run only.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if count < 1 {
				return fmt.Errorf("count must be at least 1, got %d", count)
			}
			opts := a.cfg.Options
			if len(preset) > 0 {
				var err error
				opts, err = a.cfg.Presets.Get(config.PresetName(preset))
				if err != nil {
					return err
				}
			}
			if err := applyOptionFlags(cmd.Flags(), &opts); err != nil {
				return err
			}
			if err := opts.Validate(); err != nil {
				return err
			}
			if name, ok := a.cfg.Presets.Match(opts); ok {
				a.log.Debug("Options match preset", "preset", name)
			}
			if opts.EffectiveLength() > opts.Length {
				a.log.Info("Length raised to fit class minimums", "requested", opts.Length, "length", opts.EffectiveLength())
			}

			gen, err := a.generator()
			if err != nil {
				return err
			}
			asm := passgen.NewAssembler(gen)
			stock := opts.Stock()
			var password string
			for i := 0; i < count; i++ {
				password, err = asm.Generate(stock, opts.Length)
				if err != nil {
					return err
				}
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), password); err != nil {
					return err
				}
			}
			if toClip {
				if len(password) == 0 {
					return errors.New("refusing to copy an empty password")
				}
				if err := a.copyText(password); err != nil {
					return fmt.Errorf("failed to copy password to the clipboard: %w", err)
				}
				a.log.Info("Copied password to the clipboard")
			}
			return nil
		},
	}
	flags := cmd.Flags()
	flags.StringVarP(&preset, "preset", "p", "", "Named preset to start from instead of the default options.")
	flags.IntVarP(&count, "count", "n", 1, "Number of passwords to generate.")
	flags.BoolVar(&toClip, "copy", false, "Copy the last generated password to the clipboard.")
	addOptionFlags(flags)
	return cmd
}
