package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

type SearchRecord struct {
	Step   int
	Player int
	Move   string
	SearchMetric
}

type Writer struct {
	baseDir string
}

// NewWriter creates a subfolder of dir named by the current timestamp
func NewWriter(dir string) (*Writer, error) {
	timestamp := time.Now().UTC().Format("20060102T150405Z")
	baseDir := filepath.Join(dir, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteSearchRecords(records []SearchRecord) error {
	path := filepath.Join(w.baseDir, "search_records.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create search records file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)

	header := []string{"step", "player", "move", "method", "start_time", "duration", "depth", "nodes", "cutoffs", "timed_out"}
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write search records header: %w", err)
	}

	for _, record := range records {
		row := []string{
			strconv.Itoa(record.Step),
			strconv.Itoa(record.Player),
			record.Move,
			record.Method,
			record.StartTime.Format(time.RFC3339),
			record.Duration.String(),
			strconv.Itoa(record.Depth),
			strconv.Itoa(record.Nodes),
			strconv.Itoa(record.Cutoffs),
			strconv.FormatBool(record.TimedOut),
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write search record row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush search records: %w", err)
	}
	return nil
}
