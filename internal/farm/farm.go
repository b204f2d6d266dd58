// Package farm implements the parallel puzzle farm: a fixed pool of
// worker goroutines that each generate and label puzzles into private
// per-difficulty accumulators, merged periodically into one
// coordinator-owned set of seven buckets, until every bucket reaches its
// target and the coordinator writes one text file per bucket.
package farm

import (
	"fmt"
	"log"
	"math/rand"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"

	"sudoku-engine/internal/generator"
	"sudoku-engine/pkg/config"
	"sudoku-engine/pkg/constants"
)

// Record is one generated-and-labelled puzzle, ready to be written out.
type Record struct {
	ID       string
	Puzzle   string
	Solution string
	Band     generator.Band
}

// bucket is the coordinator's shared accumulator for one difficulty band.
// Append-only: workers only ever add records, never read another worker's
// entries.
type bucket struct {
	records []Record
}

func (b *bucket) full(target int) bool { return len(b.records) >= target }

// Coordinator owns the seven shared buckets and the done flag behind one
// mutex, with a condition variable that every merge broadcasts on; nothing
// in this package waits on it (workers poll Done between puzzles). This
// is the farm's only shared, mutable structure: everything else (each
// worker's own rng and pending batch) is private to that worker.
type Coordinator struct {
	mu      sync.Mutex
	cond    *sync.Cond
	buckets map[generator.Band]*bucket
	target  int
	done    bool
}

// NewCoordinator builds a coordinator whose buckets each fill to target.
func NewCoordinator(target int) *Coordinator {
	c := &Coordinator{
		buckets: make(map[generator.Band]*bucket, len(generator.Bands)),
		target:  target,
	}
	for _, band := range generator.Bands {
		c.buckets[band] = &bucket{}
	}
	c.cond = sync.NewCond(&c.mu)
	return c
}

// merge appends a worker's completed batch into the shared buckets and
// broadcasts on the condition variable. The progress reporter does not
// wait on it; it polls Counts on its own ticker. merge reports whether
// every bucket has now reached target.
func (c *Coordinator) merge(batch map[generator.Band][]Record) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for band, records := range batch {
		bk := c.buckets[band]
		if bk.full(c.target) {
			continue
		}
		room := c.target - len(bk.records)
		if room < len(records) {
			records = records[:room]
		}
		bk.records = append(bk.records, records...)
	}
	allFull := true
	for _, bk := range c.buckets {
		if !bk.full(c.target) {
			allFull = false
			break
		}
	}
	if allFull {
		c.done = true
	}
	c.cond.Broadcast()
	return c.done
}

// Done reports whether every bucket has reached its target.
func (c *Coordinator) Done() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.done
}

// Counts returns a point-in-time snapshot of each bucket's size, for the
// progress line and the status server.
func (c *Coordinator) Counts() map[generator.Band]int {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make(map[generator.Band]int, len(c.buckets))
	for band, bk := range c.buckets {
		out[band] = len(bk.records)
	}
	return out
}

// worker generates puzzles with a private rand source and a private
// per-difficulty accumulator, merging into the coordinator every SaveEvery
// puzzles to bound contention on the shared buckets.
func worker(id int, cfg *config.Config, coord *Coordinator, wg *sync.WaitGroup) {
	defer wg.Done()
	rng := rand.New(rand.NewSource(cfg.Seed + int64(id)*104729))

	pending := make(map[generator.Band][]Record)
	pendingCount := 0

	for !coord.Done() {
		solved := generator.RandomFilledBoard(rng)
		puzzle := generator.Thin(solved, generator.SymmetryCentral, rng)

		band, _, status := generator.Label(puzzle)
		if status != constants.StatusCompleted {
			// The strategy ladder could not finish this puzzle within the
			// step budget; it is not a valid find for any bucket.
			continue
		}

		rec := Record{
			ID:       uuid.NewString(),
			Puzzle:   puzzle.ToShort(),
			Solution: solved.ToShort(),
			Band:     band,
		}
		pending[band] = append(pending[band], rec)
		pendingCount++

		if pendingCount >= cfg.SaveEvery {
			coord.merge(pending)
			pending = make(map[generator.Band][]Record)
			pendingCount = 0
		}
	}

	if pendingCount > 0 {
		coord.merge(pending)
	}
}

// Run starts cfg.Workers worker goroutines against coord, reports progress
// every ~5s, and once every bucket reaches cfg.Target writes one text file
// per bucket to cfg.OutputDir before returning. The caller owns coord so
// that it can also hand it to the status server.
func Run(cfg *config.Config, coord *Coordinator) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return fmt.Errorf("farm: creating output directory: %w", err)
	}

	var wg sync.WaitGroup
	for i := 0; i < cfg.Workers; i++ {
		wg.Add(1)
		go worker(i, cfg, coord, &wg)
	}

	progressDone := make(chan struct{})
	go reportProgress(coord, progressDone)

	wg.Wait()
	close(progressDone)

	return writeBuckets(cfg.OutputDir, coord)
}

func reportProgress(coord *Coordinator, done <-chan struct{}) {
	ticker := time.NewTicker(5 * time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			counts := coord.Counts()
			log.Printf("[%s] progress: %s", time.Now().Format(time.RFC3339), formatCounts(counts))
		case <-done:
			return
		}
	}
}

func formatCounts(counts map[generator.Band]int) string {
	s := ""
	for i, band := range generator.Bands {
		if i > 0 {
			s += " "
		}
		s += fmt.Sprintf("%s=%d", band, counts[band])
	}
	return s
}
