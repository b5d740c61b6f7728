package simulate

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Writer persists simulation records as CSV files in a timestamped
// subdirectory.
type Writer struct {
	baseDir string
}

func NewWriter(root string) (*Writer, error) {
	timestamp := time.Now().UTC().Format(time.RFC3339)
	baseDir := filepath.Join(root, timestamp)
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}
	return &Writer{baseDir: baseDir}, nil
}

// Dir returns the directory records are written to.
func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	rows := [][]string{
		{"id", "seed", "players", "turns", "paints", "start_time", "end_time", "duration"},
	}
	for _, r := range records {
		rows = append(rows, []string{
			strconv.Itoa(r.ID),
			strconv.FormatUint(r.Seed, 10),
			strconv.Itoa(r.Players),
			strconv.Itoa(r.Turns),
			strconv.Itoa(r.Paints),
			r.StartTime.Format(time.RFC3339),
			r.EndTime.Format(time.RFC3339),
			r.Duration.String(),
		})
	}
	return w.writeFile("game_records.csv", rows)
}

func (w *Writer) WriteRollRecords(records []RollRecord) error {
	rows := [][]string{
		{"game", "turn", "player", "die1", "die2", "sum"},
	}
	for _, r := range records {
		rows = append(rows, []string{
			strconv.Itoa(r.Game),
			strconv.Itoa(r.Turn),
			strconv.Itoa(r.Player),
			strconv.Itoa(r.Die1),
			strconv.Itoa(r.Die2),
			strconv.Itoa(r.Sum()),
		})
	}
	return w.writeFile("roll_records.csv", rows)
}

func (w *Writer) writeFile(name string, rows [][]string) error {
	path := filepath.Join(w.baseDir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	for _, row := range rows {
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write %s row: %w", name, err)
		}
	}
	return writer.Error()
}
