package passgen

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

const DefaultLength = 16

var (
	ErrInvalidOptions = errors.New("invalid password options")
	ErrNoPreset       = errors.New("no such preset")
)

// ClassOption configures one of the standard character classes.
type ClassOption struct {
	Enabled bool   `mapstructure:"enabled" yaml:"enabled"`
	Chars   string `mapstructure:"chars" yaml:"chars"`
	Min     int    `mapstructure:"min" yaml:"min"`
}

// OptionSet is a complete set of password settings.
type OptionSet struct {
	Length  int         `mapstructure:"length" yaml:"length"`
	Lower   ClassOption `mapstructure:"lower" yaml:"lower"`
	Upper   ClassOption `mapstructure:"upper" yaml:"upper"`
	Numbers ClassOption `mapstructure:"numbers" yaml:"numbers"`
	Special ClassOption `mapstructure:"special" yaml:"special"`
}

// DefaultOptions returns settings for a 16 character password with at least one lower case, upper case, and numeric character.
// Special characters are available but disabled.
func DefaultOptions() OptionSet {
	return OptionSet{
		Length:  DefaultLength,
		Lower:   ClassOption{Enabled: true, Chars: LowerCase, Min: 1},
		Upper:   ClassOption{Enabled: true, Chars: UpperCase, Min: 1},
		Numbers: ClassOption{Enabled: true, Chars: Numbers, Min: 1},
		Special: ClassOption{Enabled: false, Chars: Special, Min: 1},
	}
}

// Classes returns pointers to the class options in stock order, keyed by name.
func (o *OptionSet) Classes() []NamedClass {
	return []NamedClass{
		{Name: "lower", Option: &o.Lower},
		{Name: "upper", Option: &o.Upper},
		{Name: "numbers", Option: &o.Numbers},
		{Name: "special", Option: &o.Special},
	}
}

// NamedClass pairs a class option with its name.
type NamedClass struct {
	Name   string
	Option *ClassOption
}

// Stock converts the enabled classes to a CharacterStock.
func (o OptionSet) Stock() CharacterStock {
	var stock CharacterStock
	for _, class := range o.Classes() {
		if class.Option.Enabled {
			stock.Add(class.Option.Chars, class.Option.Min)
		}
	}
	return stock
}

// MinLength is the sum of the minimums of enabled classes.
func (o OptionSet) MinLength() int {
	return o.Stock().MinLength()
}

// EffectiveLength is the length that will actually be generated, which is never less than MinLength.
func (o OptionSet) EffectiveLength() int {
	return max(o.Length, o.MinLength())
}

// Validate checks that the options can produce a password.
func (o OptionSet) Validate() error {
	if o.Length < 0 {
		return fmt.Errorf("%w: negative length %d", ErrInvalidOptions, o.Length)
	}
	var available bool
	for _, class := range o.Classes() {
		opt := class.Option
		if !opt.Enabled {
			continue
		}
		if opt.Min < 0 {
			return fmt.Errorf("%w: %s minimum is negative", ErrInvalidOptions, class.Name)
		}
		if len(opt.Chars) == 0 && opt.Min > 0 {
			return fmt.Errorf("%w: %s requires %d characters but has none to choose from", ErrInvalidOptions, class.Name, opt.Min)
		}
		if len(opt.Chars) > 0 {
			available = true
		}
	}
	if !available && o.EffectiveLength() > 0 {
		return fmt.Errorf("%w: no enabled character class has characters", ErrInvalidOptions)
	}
	return nil
}

// Equal reports whether both option sets would generate passwords the same way.
func (o OptionSet) Equal(other OptionSet) bool {
	return o == other
}

// Generate creates a password with these options.
func (o OptionSet) Generate(src ByteSource) (string, error) {
	if err := o.Validate(); err != nil {
		return "", err
	}
	return Generate(src, o.Stock(), o.Length)
}

// Presets are named option sets.
type Presets map[string]OptionSet

// Names returns the preset names in sorted order.
func (p Presets) Names() []string {
	names := make([]string, 0, len(p))
	for name := range p {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Get returns the named preset.
func (p Presets) Get(name string) (OptionSet, error) {
	opts, ok := p[name]
	if !ok {
		return OptionSet{}, fmt.Errorf("%w: '%s'", ErrNoPreset, name)
	}
	return opts, nil
}

// Save adds or replaces a preset. Names are trimmed, and must not be empty.
func (p Presets) Save(name string, opts OptionSet) error {
	name = strings.TrimSpace(name)
	if len(name) == 0 {
		return errors.New("empty preset name")
	}
	if err := opts.Validate(); err != nil {
		return err
	}
	p[name] = opts
	return nil
}

// Delete removes the named preset.
func (p Presets) Delete(name string) error {
	if _, ok := p[name]; !ok {
		return fmt.Errorf("%w: '%s'", ErrNoPreset, name)
	}
	delete(p, name)
	return nil
}

// Match returns the first preset, in name order, with settings equal to opts.
func (p Presets) Match(opts OptionSet) (string, bool) {
	for _, name := range p.Names() {
		if p[name].Equal(opts) {
			return name, true
		}
	}
	return "", false
}
