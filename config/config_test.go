package config

import (
	"isolation/agent"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Run("full config", func(t *testing.T) {
		cfg, err := Parse([]byte("depth: 6\niterative: false\nmethod: alphabeta\nthreshold: 25ms\n"))

		require.NoError(t, err)
		require.Equal(t, Config{Depth: 6, Iterative: false, Method: "alphabeta", Threshold: 25 * time.Millisecond}, cfg)
	})

	t.Run("missing fields keep defaults", func(t *testing.T) {
		cfg, err := Parse([]byte("method: alphabeta\n"))

		require.NoError(t, err)
		require.Equal(t, agent.DefaultDepth, cfg.Depth)
		require.Equal(t, agent.DefaultIterative, cfg.Iterative)
		require.Equal(t, agent.DefaultThreshold, cfg.Threshold)
		require.Equal(t, "alphabeta", cfg.Method)
	})

	invalid := map[string]string{
		"zero depth":     "depth: 0\n",
		"zero threshold": "threshold: 0s\n",
		"unknown method": "method: mcts\n",
		"malformed yaml": "depth: [\n",
		"wrong type":     "depth: deep\n",
	}
	for name, data := range invalid {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(data))

			require.Error(t, err)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "player.yaml")
	require.NoError(t, os.WriteFile(path, []byte("depth: 4\nmethod: minimax\n"), 0644))

	cfg, err := Load(path)

	require.NoError(t, err)
	require.Equal(t, 4, cfg.Depth)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestOptions(t *testing.T) {
	cfg := Config{Depth: 2, Iterative: true, Method: "alphabeta", Threshold: 5 * time.Millisecond}

	options, err := cfg.Options()
	require.NoError(t, err)
	_, err = agent.NewPlayer(options...)
	require.NoError(t, err)

	cfg.Method = "random"
	_, err = cfg.Options()
	require.Error(t, err)
}
