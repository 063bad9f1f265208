package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/plus3/blockfall/config"
	"github.com/plus3/blockfall/game"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "blockfall dev")
}

func TestConfigInitStdout(t *testing.T) {
	out, err := execute(t, "config", "init")
	require.NoError(t, err)
	assert.Contains(t, out, "[game]")
	assert.Contains(t, out, "[spectate]")
}

func TestConfigInitFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blockfall.toml")

	_, err := execute(t, "config", "init", path)
	require.NoError(t, err)

	cfg, err := config.Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), *cfg)

	_, err = execute(t, "config", "init", path)
	require.ErrorContains(t, err, "already exists")

	require.NoError(t, os.WriteFile(path, []byte("stale"), 0o600))
	_, err = execute(t, "config", "init", "--force", path)
	require.NoError(t, err)

	_, err = config.Load(path, nil)
	require.NoError(t, err)
}

func TestConfigInitTooManyArgs(t *testing.T) {
	_, err := execute(t, "config", "init", "a", "b")
	require.Error(t, err)
}

func TestLoadAppliesFlags(t *testing.T) {
	cmd := newRootCmd()
	require.NoError(t, cmd.ParseFlags([]string{"--seed", "42", "--log-level", "debug", "--spectate", "127.0.0.1:0"}))

	a := &app{}
	require.NoError(t, a.load(cmd))
	assert.Equal(t, uint64(42), a.cfg.Game.Seed)
	assert.Equal(t, "debug", a.cfg.Log.Level)
	assert.Equal(t, "127.0.0.1:0", a.cfg.Spectate.Addr)
	assert.False(t, a.cfg.Audio.Enabled)
}

func TestLoadRejectsBadLevel(t *testing.T) {
	cmd := newRootCmd()
	require.NoError(t, cmd.ParseFlags([]string{"--log-level", "loud"}))

	a := &app{}
	require.ErrorIs(t, a.load(cmd), config.ErrInvalid)
}

type lastView struct {
	view game.View
}

func (l *lastView) Render(v game.View) { l.view = v }

func TestNewGameWithSpectator(t *testing.T) {
	cfg := config.Default()
	cfg.Game.Seed = 1
	cfg.Spectate.Addr = "127.0.0.1:0"
	a := &app{cfg: &cfg}

	frontend := &lastView{}
	g, release, err := a.newGame(context.Background(), frontend, zaptest.NewLogger(t))
	require.NoError(t, err)

	require.NoError(t, g.Update(0, nil))
	assert.Equal(t, game.PhaseMenu, frontend.view.Phase)

	g.Start()
	require.NoError(t, g.Update(0, nil))
	assert.Equal(t, game.PhasePlaying, frontend.view.Phase)

	release()
}

func TestNewGameRejectsBadRandomizer(t *testing.T) {
	cfg := config.Default()
	cfg.Game.Randomizer = "fair"
	a := &app{cfg: &cfg}

	_, _, err := a.newGame(context.Background(), &lastView{}, zaptest.NewLogger(t))
	require.Error(t, err)
}
