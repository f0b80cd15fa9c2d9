package cli

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rocketscienceinc/tictactoe-engine/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	out := &bytes.Buffer{}
	root := Root()
	root.SetArgs(args)
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(out)
	root.SetErr(io.Discard)

	err := root.Execute()

	return out.String(), err
}

func TestRoot(t *testing.T) {
	t.Run("Defaults to a single simulated game", func(t *testing.T) {
		out, err := execute(t, "", "--seed", "1")

		require.NoError(t, err)
		assert.Equal(t, 1, strings.Count(out, "Final Board:"))
		assert.Contains(t, out, "Result: Draw")
	})

	t.Run("Games flag plays several simulations", func(t *testing.T) {
		out, err := execute(t, "", "-m", "sim", "-n", "2")

		require.NoError(t, err)
		assert.Contains(t, out, "Games: 2, X wins: 0, O wins: 0, Draws: 2")
	})

	t.Run("Invalid mode", func(t *testing.T) {
		out, err := execute(t, "", "--mode", "Y")

		require.NoError(t, err)
		assert.Equal(t, "Invalid mode, valid modes are sim, X, O\n", out)
	})

	t.Run("Flags override the config file", func(t *testing.T) {
		// Given: a config file asking for the human to play X
		path := filepath.Join(t.TempDir(), "config.yml")
		require.NoError(t, os.WriteFile(path, []byte("mode: X\n"), 0o600))

		// When: the mode flag selects sim
		out, err := execute(t, "", "--config", path, "--mode", "sim")

		// Then: no human prompt is shown
		require.NoError(t, err)
		assert.NotContains(t, out, "Enter move")
	})

	t.Run("Positional arguments are rejected", func(t *testing.T) {
		_, err := execute(t, "", "extra")

		require.Error(t, err)
	})
}

func TestApplyFlags(t *testing.T) {
	root := Root()
	require.NoError(t, root.ParseFlags([]string{"--seed", "9", "--trace"}))

	conf := &config.Config{Mode: config.ModeO, LogLevel: "warn", Games: 1}
	applyFlags(root, conf)

	assert.Equal(t, &config.Config{Mode: config.ModeO, LogLevel: "debug", Seed: 9, Games: 1}, conf)
}
