package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/SUPERCILEX/grocery-bagger-9000-sub000/pkg/mino"
)

const testConfig = `
sizes: ["3x1", "4X2", " 2x3 "]
pieces: [TrominoL, TetrominoSquare]
workers: 4
log:
  level: debug
cache:
  redis:
    address: localhost:6379
    ttl_hours: 2
export:
  dir: ./levels
  seed: 7
`

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bagfill.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testConfig), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []Size{{3, 1}, {4, 2}, {2, 3}}, cfg.Sizes)
	assert.Equal(t, 4, cfg.Workers)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "localhost:6379", cfg.Cache.Redis.Address)
	assert.Equal(t, "bagfill", cfg.Cache.Redis.Prefix)
	assert.Equal(t, 2*time.Hour, cfg.Cache.Redis.TTL())
	assert.Equal(t, "./levels", cfg.Export.Dir)
	assert.Equal(t, int64(7), cfg.Export.Seed)
	assert.Equal(t, ":2222", cfg.SSH.Listen)

	allowed, err := cfg.AllowedPieces()
	require.NoError(t, err)
	assert.Equal(t, []mino.Canonical{mino.TrominoL, mino.TetrominoSquare}, allowed)
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestParseInvalid(t *testing.T) {
	for _, data := range []string{
		`sizes: ["3"]`,
		`sizes: ["0x2"]`,
		`sizes: ["ax2"]`,
		`pieces: [Pentomino]`,
		`workers: -1`,
		`sizes: {`,
	} {
		_, err := Parse([]byte(data))
		assert.Error(t, err, data)
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.NotEmpty(t, cfg.Sizes)
	assert.Equal(t, 1, cfg.Workers)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Empty(t, cfg.Cache.Redis.Address)

	allowed, err := cfg.AllowedPieces()
	require.NoError(t, err)
	assert.Nil(t, allowed)
}

func TestSizeYAML(t *testing.T) {
	out, err := yaml.Marshal(struct {
		Sizes []Size `yaml:"sizes"`
	}{[]Size{{4, 2}}})
	require.NoError(t, err)
	assert.Equal(t, "sizes:\n    - 4x2\n", string(out))
}
