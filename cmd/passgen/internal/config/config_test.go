package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/saylorsolutions/passgen/pkg/passgen"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setConfigHome(t *testing.T) string {
	t.Helper()
	if runtime.GOOS != "linux" {
		t.Skip("Relies on XDG_CONFIG_HOME")
	}
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)
	return home
}

func TestLoad_Defaults(t *testing.T) {
	home := setConfigHome(t)
	c, err := Load("", nil)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, "passgen", "passgen.yaml"), c.Path())
	assert.Equal(t, filepath.Join(home, "passgen", "state.bin"), c.StateFile)
	assert.Equal(t, "warn", c.LogLevel)
	assert.False(t, c.RequirePersist)
	assert.Equal(t, passgen.DefaultOptions(), c.Options)
	assert.NotNil(t, c.Presets)
	assert.Empty(t, c.Presets)
}

func TestWriteLoad(t *testing.T) {
	setConfigHome(t)
	path := filepath.Join(t.TempDir(), "nested", "custom.yaml")
	c, err := Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, path, c.Path())

	pin := passgen.OptionSet{Length: 6, Numbers: passgen.ClassOption{Enabled: true, Chars: passgen.Numbers}}
	require.NoError(t, c.Presets.Save(PresetName(" PIN "), pin))
	c.Options.Length = 20
	c.RequirePersist = true
	require.NoError(t, Write(c))

	info, err := os.Stat(path)
	require.NoError(t, err)
	if runtime.GOOS != "windows" {
		assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
	}

	loaded, err := Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, 20, loaded.Options.Length)
	assert.True(t, loaded.RequirePersist)
	got, err := loaded.Presets.Get("pin")
	require.NoError(t, err)
	assert.Equal(t, pin, got)
}

func TestLoad_Overrides(t *testing.T) {
	setConfigHome(t)
	t.Setenv("PASSGEN_LOG_LEVEL", "debug")
	t.Setenv("PASSGEN_OPTIONS_LENGTH", "24")

	c, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, "debug", c.LogLevel)
	assert.Equal(t, 24, c.Options.Length)

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("log-level", "", "")
	flags.String("state-file", "", "")
	require.NoError(t, flags.Parse([]string{"--log-level=error", "--state-file=/tmp/other.bin"}))
	c, err = Load("", flags)
	require.NoError(t, err)
	assert.Equal(t, "error", c.LogLevel)
	assert.Equal(t, "/tmp/other.bin", c.StateFile)
}

func TestLoad_Invalid(t *testing.T) {
	setConfigHome(t)
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("options: [unterminated"), 0600))
	_, err := Load(path, nil)
	assert.Error(t, err)
}

func TestWrite_NoPath(t *testing.T) {
	assert.Error(t, Write(&Config{}))
}

func TestPresetName(t *testing.T) {
	assert.Equal(t, "strong", PresetName("  Strong\t"))
}
