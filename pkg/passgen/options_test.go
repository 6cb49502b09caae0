package passgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionSet_Stock(t *testing.T) {
	opts := DefaultOptions()
	opts.Upper.Enabled = false
	opts.Special.Enabled = true
	opts.Special.Min = 2

	assert.Equal(t, CharacterStock{
		{Chars: LowerCase, Min: 1},
		{Chars: Numbers, Min: 1},
		{Chars: Special, Min: 2},
	}, opts.Stock())
	assert.Equal(t, 4, opts.MinLength())
}

func TestOptionSet_EffectiveLength(t *testing.T) {
	opts := DefaultOptions()
	assert.Equal(t, DefaultLength, opts.EffectiveLength())

	opts.Length = 2
	assert.Equal(t, 3, opts.EffectiveLength())

	opts.Upper.Enabled = false
	assert.Equal(t, 2, opts.EffectiveLength())
}

func TestOptionSet_Validate(t *testing.T) {
	tests := map[string]struct {
		modify    func(o *OptionSet)
		expectErr bool
	}{
		"Defaults": {
			modify: func(o *OptionSet) {},
		},
		"Negative length": {
			modify:    func(o *OptionSet) { o.Length = -1 },
			expectErr: true,
		},
		"Negative minimum": {
			modify:    func(o *OptionSet) { o.Numbers.Min = -2 },
			expectErr: true,
		},
		"Minimum without characters": {
			modify:    func(o *OptionSet) { o.Lower.Chars = "" },
			expectErr: true,
		},
		"Disabled class is ignored": {
			modify: func(o *OptionSet) {
				o.Special.Chars = ""
				o.Special.Min = -1
			},
		},
		"Nothing enabled": {
			modify: func(o *OptionSet) {
				o.Lower.Enabled = false
				o.Upper.Enabled = false
				o.Numbers.Enabled = false
			},
			expectErr: true,
		},
		"Nothing enabled, nothing to generate": {
			modify: func(o *OptionSet) {
				o.Lower.Enabled = false
				o.Upper.Enabled = false
				o.Numbers.Enabled = false
				o.Length = 0
			},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			opts := DefaultOptions()
			tc.modify(&opts)
			err := opts.Validate()
			if tc.expectErr {
				assert.ErrorIs(t, err, ErrInvalidOptions)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestOptionSet_Generate(t *testing.T) {
	opts := DefaultOptions()
	opts.Length = 24
	pw, err := opts.Generate(newSource(t))
	require.NoError(t, err)
	assert.Len(t, pw, 24)

	opts.Lower.Chars = ""
	_, err = opts.Generate(newSource(t))
	assert.ErrorIs(t, err, ErrInvalidOptions)
}

func TestPresets(t *testing.T) {
	presets := Presets{}
	strong := DefaultOptions()
	strong.Length = 32
	strong.Special.Enabled = true
	pin := OptionSet{Length: 6, Numbers: ClassOption{Enabled: true, Chars: Numbers}}

	require.NoError(t, presets.Save(" strong ", strong))
	require.NoError(t, presets.Save("pin", pin))
	require.NoError(t, presets.Save("pin-copy", pin))
	assert.Error(t, presets.Save("  ", pin))
	bad := pin
	bad.Numbers.Chars = ""
	bad.Numbers.Min = 1
	assert.ErrorIs(t, presets.Save("bad", bad), ErrInvalidOptions)

	assert.Equal(t, []string{"pin", "pin-copy", "strong"}, presets.Names())

	got, err := presets.Get("strong")
	require.NoError(t, err)
	assert.True(t, strong.Equal(got))
	_, err = presets.Get("missing")
	assert.ErrorIs(t, err, ErrNoPreset)

	name, ok := presets.Match(pin)
	assert.True(t, ok)
	assert.Equal(t, "pin", name)
	_, ok = presets.Match(DefaultOptions())
	assert.False(t, ok)

	require.NoError(t, presets.Delete("pin"))
	assert.ErrorIs(t, presets.Delete("pin"), ErrNoPreset)
	name, ok = presets.Match(pin)
	assert.True(t, ok)
	assert.Equal(t, "pin-copy", name)
}
