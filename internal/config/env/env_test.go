package env

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPConfigDefault(t *testing.T) {
	t.Setenv("HTTP_ADDRESS", "")
	os.Unsetenv("HTTP_ADDRESS")

	cfg, err := NewHTTPConfig()
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Address())

	t.Setenv("HTTP_ADDRESS", "127.0.0.1:9000")
	cfg, err = NewHTTPConfig()
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9000", cfg.Address())
}

func TestJWTConfig(t *testing.T) {
	t.Setenv("ACCESS_TOKEN", "")
	_, err := NewJWTConfig()
	assert.Error(t, err, "secret is required")

	t.Setenv("ACCESS_TOKEN", "s3cret")
	t.Setenv("ACCESS_TOKEN_DURATION", "30m")
	cfg, err := NewJWTConfig()
	require.NoError(t, err)
	assert.Equal(t, []byte("s3cret"), cfg.AccessTokenSecretKey())
	assert.Equal(t, 30*time.Minute, cfg.AccessTokenDuration())

	t.Setenv("ACCESS_TOKEN_DURATION", "-1m")
	_, err = NewJWTConfig()
	assert.Error(t, err)
}

func TestArenaConfig(t *testing.T) {
	t.Setenv("ARENA_MIN_PLAYERS", "4")
	cfg, err := NewArenaConfig()
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.MinPlayers())

	t.Setenv("ARENA_MIN_PLAYERS", "1")
	_, err = NewArenaConfig()
	assert.Error(t, err)
}

func TestLogConfig(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FILE", "/tmp/arena.log")
	cfg, err := NewLogConfig()
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Level())
	assert.Equal(t, "/tmp/arena.log", cfg.File())
	assert.Equal(t, 100, cfg.MaxSizeMB())
}

func TestGameConfigFromYAML(t *testing.T) {
	cfg, err := NewGameConfigFromYAML([]byte(`
min_wagers:
  XRP: "5"
  ETH: "0.005"
chain_confirmations:
  Ethereum: 12
  XRPL: 1
`))
	require.NoError(t, err)
	assert.True(t, cfg.MinWagers()["XRP"].Equal(decimal.NewFromInt(5)))
	assert.True(t, cfg.MinWagers()["ETH"].Equal(decimal.RequireFromString("0.005")))
	assert.Equal(t, 12, cfg.ChainConfirmations()["Ethereum"])

	_, err = NewGameConfigFromYAML([]byte("min_wagers:\n  XRP: abc\n"))
	assert.Error(t, err)

	_, err = NewGameConfigFromYAML([]byte("min_wagers:\n  XRP: \"-1\"\n"))
	assert.Error(t, err)
}

func TestGameConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.yaml")
	require.NoError(t, os.WriteFile(path, []byte("chain_confirmations:\n  Solana: 32\n"), 0o600))

	t.Setenv("GAME_CONFIG_PATH", path)
	cfg, err := NewGameConfig()
	require.NoError(t, err)
	assert.Equal(t, 32, cfg.ChainConfirmations()["Solana"])

	t.Setenv("GAME_CONFIG_PATH", filepath.Join(t.TempDir(), "missing.yaml"))
	_, err = NewGameConfig()
	assert.Error(t, err, "explicit path must exist")
}
