package simulate

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRunWritesRecords(t *testing.T) {
	dir := t.TempDir()

	err := Run(Config{
		Games:    2,
		Players:  3,
		MaxTurns: 5,
		Seed:     1,
		OutDir:   dir,
	})
	require.NoError(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1, "one timestamped batch directory")
	batch := filepath.Join(dir, entries[0].Name())

	games := readCSV(t, filepath.Join(batch, "game_records.csv"))
	require.Len(t, games, 1+2, "header plus one row per game")
	require.Equal(t, []string{"id", "seed", "players", "turns", "paints", "start_time", "end_time", "duration"}, games[0])

	rolls := readCSV(t, filepath.Join(batch, "roll_records.csv"))
	require.Greater(t, len(rolls), 1, "every game rolls at least once")
	require.Equal(t, []string{"game", "turn", "player", "die1", "die2", "sum"}, rolls[0])
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}
