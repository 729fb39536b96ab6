package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	require.NoError(t, err)
	assert.Equal(t, defaultPort, cfg.Port)
	assert.Equal(t, defaultTimezone, cfg.Timezone)
	assert.True(t, cfg.IsDev())
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(
		"port: 8080\nenv: production\njwt_secret: s3cret\ntimezone: UTC\n",
	), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Port)
	assert.False(t, cfg.IsDev())
	assert.Equal(t, "s3cret", cfg.JWTSecret)
	assert.Equal(t, "UTC", cfg.Location().String())
}

func TestLoadBadTimezone(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("timezone: Mars/Olympus\n"), 0o600))

	_, err := Load(path)
	assert.Error(t, err)
}
