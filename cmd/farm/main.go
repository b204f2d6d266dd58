// Command farm drives the parallel puzzle farm: it runs a fixed worker
// pool that generates and labels puzzles until each of the seven
// difficulty buckets holds at least the target count, then writes one
// text file per bucket.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/gin-gonic/gin"

	"sudoku-engine/internal/farm"
	httpTransport "sudoku-engine/internal/transport/http"
	"sudoku-engine/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "farm: %v\n", err)
		os.Exit(1)
	}

	flag.StringVar(&cfg.OutputDir, "output", cfg.OutputDir, "directory to write the seven bucket files into")
	flag.IntVar(&cfg.Target, "target", cfg.Target, "minimum puzzle count per difficulty bucket")
	flag.IntVar(&cfg.Workers, "workers", cfg.Workers, "number of worker goroutines")
	flag.Int64Var(&cfg.Seed, "seed", cfg.Seed, "entropy seed each worker's random stream is derived from")
	flag.IntVar(&cfg.SaveEvery, "save-every", cfg.SaveEvery, "puzzles a worker generates before merging into the shared buckets")
	flag.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "optional address to serve /health and /status on; empty disables it")
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "farm: %v\n", err)
		os.Exit(1)
	}

	coord := farm.NewCoordinator(cfg.Target)

	if cfg.HTTPAddr != "" {
		go func() {
			gin.SetMode(gin.ReleaseMode)
			r := gin.New()
			httpTransport.RegisterRoutes(r, coord)
			if err := r.Run(cfg.HTTPAddr); err != nil {
				log.Printf("farm: status server on %s stopped: %v", cfg.HTTPAddr, err)
			}
		}()
	}

	fmt.Printf("farm: seed=%d workers=%d target=%d output=%s\n", cfg.Seed, cfg.Workers, cfg.Target, cfg.OutputDir)

	if err := farm.Run(cfg, coord); err != nil {
		fmt.Fprintf(os.Stderr, "farm: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("farm: done")
}
