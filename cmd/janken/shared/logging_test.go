package shared

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupLogger(t *testing.T) {
	var buf bytes.Buffer
	logger, err := SetupLogger(&buf, "warn", "TEST")
	require.NoError(t, err)

	logger.Info("hidden")
	logger.Warn("shown", "round", 3)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
	assert.Contains(t, out, "round=3")
	assert.Contains(t, out, "TEST")

	_, err = SetupLogger(&buf, "loud", "")
	assert.Error(t, err)
}

func TestOpenLogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "janken.log")

	f, err := OpenLogFile(path)
	require.NoError(t, err)
	require.NoError(t, f.Close())

	_, err = OpenLogFile(filepath.Join(t.TempDir(), "missing", "janken.log"))
	assert.Error(t, err)
}
