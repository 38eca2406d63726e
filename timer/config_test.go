package timer

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func embeddedDefaults(t *testing.T) fstest.MapFS {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("..", DefaultConfigFile))
	require.NoError(t, err)
	return fstest.MapFS{DefaultConfigFile: {Data: data}}
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(embeddedDefaults(t))
	require.NoError(t, err)

	assert.Equal(t, time.Minute, cfg.CountdownDuration())
	assert.Equal(t, 200*time.Millisecond, cfg.TickInterval())
	assert.Equal(t, StatusPaused, cfg.InitialStatus())
	assert.True(t, cfg.Sound)
	assert.Empty(t, cfg.SoundFile)
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := LoadConfig(fstest.MapFS{})
	assert.Error(t, err)

	_, err = LoadConfig(fstest.MapFS{DefaultConfigFile: {Data: []byte("{")}})
	assert.Error(t, err)

	_, err = LoadConfig(fstest.MapFS{DefaultConfigFile: {Data: []byte(`{"duration":"0","tick_interval_ms":200}`)}})
	assert.Error(t, err)

	_, err = LoadConfig(fstest.MapFS{DefaultConfigFile: {Data: []byte(`{"duration":"60","tick_interval_ms":0}`)}})
	assert.Error(t, err)

	_, err = LoadConfig(fstest.MapFS{DefaultConfigFile: {Data: []byte(`{"duration":"200000000:00","tick_interval_ms":200}`)}})
	assert.Error(t, err, "overlong duration must not wrap around")
}

func TestApplyFileOverridesPresentKeys(t *testing.T) {
	cfg, err := LoadConfig(embeddedDefaults(t))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("duration: \"25:00\"\nstart_running: true\nlanguage: pt\n"), 0o600))

	require.NoError(t, cfg.ApplyFile(path))
	assert.Equal(t, 25*time.Minute, cfg.CountdownDuration())
	assert.Equal(t, StatusRunning, cfg.InitialStatus())
	assert.Equal(t, "pt", cfg.Language)
	assert.Equal(t, 200*time.Millisecond, cfg.TickInterval())
}

func TestApplyFileMissingIsIgnored(t *testing.T) {
	cfg, err := LoadConfig(embeddedDefaults(t))
	require.NoError(t, err)
	before := *cfg

	require.NoError(t, cfg.ApplyFile(filepath.Join(t.TempDir(), "nope.yaml")))
	assert.Equal(t, before, *cfg)
}

func TestApplyFileRejectsInvalid(t *testing.T) {
	cfg, err := LoadConfig(embeddedDefaults(t))
	require.NoError(t, err)
	before := *cfg

	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("duration: [\n"), 0o600))
	assert.Error(t, cfg.ApplyFile(bad))

	invalid := filepath.Join(dir, "invalid.yaml")
	require.NoError(t, os.WriteFile(invalid, []byte("tick_interval_ms: -1\n"), 0o600))
	assert.Error(t, cfg.ApplyFile(invalid))

	assert.Equal(t, before, *cfg)
}
