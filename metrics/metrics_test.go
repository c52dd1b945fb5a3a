package metrics

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCollector(t *testing.T) {
	t.Run("records a search", func(t *testing.T) {
		c := NewCollector()
		c.Start("alphabeta")
		c.AddNode()
		c.AddNode()
		c.AddCutoff(3)
		c.CompleteDepth(1)
		c.CompleteDepth(2)
		c.TimedOut()

		got := c.Complete()

		require.Equal(t, "alphabeta", got.Method)
		require.Equal(t, 2, got.Nodes)
		require.Equal(t, 3, got.Cutoffs)
		require.Equal(t, 2, got.Depth)
		require.True(t, got.TimedOut)
		require.False(t, got.StartTime.IsZero())
	})

	t.Run("start resets counters", func(t *testing.T) {
		c := NewCollector()
		c.Start("minimax")
		c.AddNode()
		c.TimedOut()

		c.Start("minimax")
		got := c.Complete()

		require.Zero(t, got.Nodes)
		require.False(t, got.TimedOut)
	})

	t.Run("dummy collector records nothing", func(t *testing.T) {
		c := NewDummyCollector()
		c.Start("minimax")
		c.AddNode()

		require.Equal(t, SearchMetric{}, c.Complete())
	})
}

func TestWriter(t *testing.T) {
	w, err := NewWriter(t.TempDir())
	require.NoError(t, err)

	records := []SearchRecord{{
		Step:   3,
		Player: 1,
		Move:   "(2, 1)",
		SearchMetric: SearchMetric{
			Method:    "alphabeta",
			StartTime: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
			Duration:  15 * time.Millisecond,
			Depth:     4,
			Nodes:     120,
			Cutoffs:   30,
		},
	}}
	require.NoError(t, w.WriteSearchRecords(records))

	f, err := os.Open(filepath.Join(w.Dir(), "search_records.csv"))
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)

	require.Len(t, rows, 2)
	require.Equal(t, []string{"step", "player", "move", "method", "start_time", "duration", "depth", "nodes", "cutoffs", "timed_out"}, rows[0])
	require.Equal(t, []string{"3", "1", "(2, 1)", "alphabeta", "2024-01-02T03:04:05Z", "15ms", "4", "120", "30", "false"}, rows[1])
}
