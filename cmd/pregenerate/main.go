// Command pregenerate batch-generates puzzles across a pool of worker
// goroutines and writes them to a JSON file, grounded on the teacher's
// cmd/generate/main.go worker-pool/progress-ticker pattern.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"sudoku-core/internal/generator"
	"sudoku-core/pkg/config"
)

// PuzzleRecord holds one generated puzzle alongside its category and score.
type PuzzleRecord struct {
	Seed     uint64 `json:"seed"`
	Category string `json:"category"`
	Puzzle   string `json:"puzzle"`
	Score    int32  `json:"score"`
}

// PuzzleFile is the top-level structure of the batch output file.
type PuzzleFile struct {
	Version int            `json:"version"`
	Count   int            `json:"count"`
	Puzzles []PuzzleRecord `json:"puzzles"`
}

func main() {
	count := flag.Int("n", 1000, "Number of puzzles to generate")
	output := flag.String("o", "puzzles.json", "Output file path")
	category := flag.String("category", "basic", "Difficulty category to target")
	workers := flag.Int("w", 0, "Number of worker goroutines (default: config-derived)")
	startSeed := flag.Uint64("seed", 1, "Starting seed value")
	flag.Parse()

	cfg := config.Load()
	if *workers <= 0 {
		*workers = cfg.PregenerateWorkers
	}

	fmt.Printf("Generating %d %q puzzles with %d workers...\n", *count, *category, *workers)
	start := time.Now()

	records := make([]PuzzleRecord, *count)
	var generated int64

	work := make(chan int, *count)
	for i := 0; i < *count; i++ {
		work <- i
	}
	close(work)

	done := make(chan bool)
	go func() {
		ticker := time.NewTicker(2 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				g := atomic.LoadInt64(&generated)
				elapsed := time.Since(start)
				rate := float64(g) / elapsed.Seconds()
				remaining := float64(int64(*count)-g) / rate
				fmt.Printf("  Progress: %d/%d (%.1f/sec, ~%.0fs remaining)\n", g, *count, rate, remaining)
			case <-done:
				return
			}
		}
	}()

	var wg sync.WaitGroup
	for w := 0; w < *workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range work {
				seed := *startSeed + uint64(idx)
				puzzle := generator.GenerateWithSeed(*category, seed)
				records[idx] = PuzzleRecord{
					Seed:     seed,
					Category: *category,
					Puzzle:   puzzle,
					Score:    generator.EvaluateDifficulty(puzzle),
				}
				atomic.AddInt64(&generated, 1)
			}
		}()
	}

	wg.Wait()
	done <- true

	elapsed := time.Since(start)
	fmt.Printf("Generated %d puzzles in %v (%.1f puzzles/sec)\n", *count, elapsed, float64(*count)/elapsed.Seconds())

	fmt.Printf("Writing to %s...\n", *output)
	file := PuzzleFile{
		Version: 1,
		Count:   *count,
		Puzzles: records,
	}

	data, err := json.Marshal(file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error marshaling JSON: %v\n", err)
		os.Exit(1)
	}

	if err := os.WriteFile(*output, data, 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing file: %v\n", err)
		os.Exit(1)
	}

	info, _ := os.Stat(*output)
	sizeMB := float64(info.Size()) / 1024 / 1024
	fmt.Printf("Done! File size: %.2f MB\n", sizeMB)
}
