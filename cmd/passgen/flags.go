package main

import (
	"fmt"

	"github.com/saylorsolutions/passgen/pkg/passgen"
	"github.com/spf13/pflag"
)

var classNames = func() []string {
	var (
		names []string
		opts  passgen.OptionSet
	)
	for _, class := range opts.Classes() {
		names = append(names, class.Name)
	}
	return names
}()

func addOptionFlags(flags *pflag.FlagSet) {
	flags.IntP("length", "l", 0, "Password length. It's raised to the sum of enabled class minimums if needed.")
	for _, name := range classNames {
		flags.String(name, "", fmt.Sprintf("Characters of the %s class. Setting this enables the class.", name))
		flags.Int("min-"+name, 0, fmt.Sprintf("Minimum number of %s characters.", name))
		flags.Bool("use-"+name, false, fmt.Sprintf("Enable the %s class.", name))
		flags.Bool("no-"+name, false, fmt.Sprintf("Disable the %s class.", name))
	}
}

func optionFlagsChanged(flags *pflag.FlagSet) bool {
	if flags.Changed("length") {
		return true
	}
	for _, name := range classNames {
		for _, flag := range []string{name, "min-" + name, "use-" + name, "no-" + name} {
			if flags.Changed(flag) {
				return true
			}
		}
	}
	return false
}

// applyOptionFlags overrides opts with the option flags that were explicitly set.
func applyOptionFlags(flags *pflag.FlagSet, opts *passgen.OptionSet) error {
	if flags.Changed("length") {
		length, err := flags.GetInt("length")
		if err != nil {
			return err
		}
		opts.Length = length
	}
	for _, class := range opts.Classes() {
		if flags.Changed(class.Name) {
			chars, err := flags.GetString(class.Name)
			if err != nil {
				return err
			}
			class.Option.Chars = chars
			class.Option.Enabled = true
		}
		if flags.Changed("min-" + class.Name) {
			minimum, err := flags.GetInt("min-" + class.Name)
			if err != nil {
				return err
			}
			class.Option.Min = minimum
		}
		use, err := flags.GetBool("use-" + class.Name)
		if err != nil {
			return err
		}
		disable, err := flags.GetBool("no-" + class.Name)
		if err != nil {
			return err
		}
		switch {
		case use && disable:
			return fmt.Errorf("cannot use both --use-%s and --no-%s", class.Name, class.Name)
		case use:
			class.Option.Enabled = true
		case disable:
			class.Option.Enabled = false
		}
	}
	return nil
}
