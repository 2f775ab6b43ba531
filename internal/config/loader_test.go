package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// isolate points the user and local search paths at empty temp dirs.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadEmbeddedDefault(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

func TestLoadCustomPathKeepsMissingDefaults(t *testing.T) {
	isolate(t)
	path := writeConfig(t, "board:\n  size: 5\nseed: 99\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 5, cfg.Board.Size)
	require.Equal(t, int64(99), cfg.Seed)
	require.Equal(t, 60, cfg.Display.TickRate)
	require.True(t, cfg.Display.Animations)
}

func TestLoadCustomPathErrors(t *testing.T) {
	isolate(t)

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorContains(t, err, "failed to read config")

	_, err = Load(writeConfig(t, "board: [not a map"))
	require.ErrorContains(t, err, "failed to parse config")
}

func TestLoadLocalConfigsDir(t *testing.T) {
	isolate(t)
	require.NoError(t, os.Mkdir("configs", 0o755))
	require.NoError(t, os.WriteFile(filepath.Join("configs", FileName), []byte("display:\n  colors: false\n"), 0o644))

	cfg, err := Load("")
	require.NoError(t, err)
	require.False(t, cfg.Display.Colors)
}

func TestLoadUserConfigWinsOverLocal(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(t.TempDir())

	userDir := filepath.Join(home, ".arcade", "configs")
	require.NoError(t, os.MkdirAll(userDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(userDir, FileName), []byte("board:\n  size: 6\n"), 0o644))
	require.NoError(t, os.Mkdir("configs", 0o755))
	require.NoError(t, os.WriteFile(filepath.Join("configs", FileName), []byte("board:\n  size: 3\n"), 0o644))

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, 6, cfg.Board.Size)
}

func TestLoadEnvOverrides(t *testing.T) {
	isolate(t)
	t.Setenv("T2048_BOARD_SIZE", "3")
	t.Setenv("T2048_SEED", "7")
	t.Setenv("T2048_ANIMATIONS", "false")
	t.Setenv("T2048_LOG_LEVEL", "debug")

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, 3, cfg.Board.Size)
	require.Equal(t, int64(7), cfg.Seed)
	require.False(t, cfg.Display.Animations)
	require.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadEnvParseError(t *testing.T) {
	isolate(t)
	t.Setenv("T2048_BOARD_SIZE", "huge")

	_, err := Load("")
	require.ErrorContains(t, err, "failed to parse environment")
}

func TestValidate(t *testing.T) {
	require.NoError(t, Default().Validate())

	cfg := Default()
	cfg.Board.Size = 9
	cfg.Display.TickRate = 0
	cfg.Log.Level = "loud"

	err := cfg.Validate()
	require.Error(t, err)
	require.ErrorContains(t, err, "board.size 9")
	require.ErrorContains(t, err, "display.tick_rate 0")
	require.ErrorContains(t, err, `log.level "loud"`)
}
