package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigFromFile(t *testing.T) {
	content := `server:
  address: ":9090"
  tokens:
    - secret-token
detection:
  min_length: 20
  limit: 5
  only:
    - eng
    - spa
  exclude:
    - deu
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	envelope, err := LoadConfigFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, ":9090", envelope.Server.Address)
	assert.Equal(t, []string{"secret-token"}, envelope.Server.Tokens)
	assert.Equal(t, 20, envelope.Detection.MinLength)
	assert.Equal(t, 5, envelope.Detection.Limit)
	assert.Equal(t, []string{"eng", "spa"}, envelope.Detection.Only)
	assert.Equal(t, []string{"deu"}, envelope.Detection.Exclude)
}

func TestLoadConfigFromFileMissing(t *testing.T) {
	_, err := LoadConfigFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadConfigFromFilePartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  address: \":8080\"\n"), 0o644))

	envelope, err := LoadConfigFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, ":8080", envelope.Server.Address)
	assert.Empty(t, envelope.Server.Tokens)
	assert.Zero(t, envelope.Detection.MinLength)
}
