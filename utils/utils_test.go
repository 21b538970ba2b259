package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContainsString(t *testing.T) {
	assert.True(t, ContainsString("chicago", []string{"washington", "chicago"}))
	assert.False(t, ContainsString("Chicago", []string{"washington", "chicago"}))
	assert.False(t, ContainsString("chicago", nil))
}

func TestSortedStringsDoesNotModifyInput(t *testing.T) {
	input := []string{"washington", "chicago", "new york city"}
	assert.Equal(t, []string{"chicago", "new york city", "washington"}, SortedStrings(input))
	assert.Equal(t, "washington", input[0])
}

func TestGetConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log_level: DEBUG\n"), 0o600))

	content, err := GetConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, "log_level: DEBUG\n", string(content))

	_, err = GetConfigFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
