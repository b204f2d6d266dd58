package farm

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"

	"sudoku-engine/internal/generator"
)

// writeBuckets serialises the coordinator's seven buckets to disk, one
// file per band, one "puzzle solution" line per record. Called only after
// every worker has joined, so no further synchronisation is needed.
func writeBuckets(dir string, coord *Coordinator) error {
	coord.mu.Lock()
	defer coord.mu.Unlock()

	for _, band := range generator.Bands {
		bk := coord.buckets[band]
		path := filepath.Join(dir, string(band)+".txt")
		if err := writeBucketFile(path, bk.records); err != nil {
			return fmt.Errorf("farm: writing %s: %w", path, err)
		}
	}
	return nil
}

func writeBucketFile(path string, records []Record) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, rec := range records {
		if _, err := fmt.Fprintf(w, "%s %s\n", rec.Puzzle, rec.Solution); err != nil {
			return err
		}
	}
	return w.Flush()
}
