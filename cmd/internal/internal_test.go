package internal

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFecho(t *testing.T) {
	var buf bytes.Buffer
	Fecho(&buf, "value: %d", 5)
	Fecho(&buf, "done\n")
	assert.Equal(t, "value: 5\ndone\n", buf.String())
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewLogger(&buf, "")
	require.NoError(t, err)
	assert.Equal(t, log.WarnLevel, logger.GetLevel())
	logger.Info("hidden")
	logger.Warn("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")

	logger, err = NewLogger(&buf, "DEBUG")
	require.NoError(t, err)
	assert.Equal(t, log.DebugLevel, logger.GetLevel())

	_, err = NewLogger(&buf, "loud")
	assert.Error(t, err)
}
