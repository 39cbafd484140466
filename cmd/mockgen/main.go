package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"dashforge/cmd/mockgen/engine"
)

func main() {
	scenario := flag.String("scenario", "steady", "Scenario to generate: steady, seasonal, skewed")
	outDir := flag.String("out", "./datasets", "Output directory for mock files")
	count := flag.Int("count", 500, "Number of rows to generate")
	seed := flag.Int64("seed", 0, "Random seed (0 = time-based)")
	flag.Parse()

	cfg := engine.GeneratorConfig{
		Scenario: *scenario,
		Count:    *count,
		Seed:     *seed,
		Now:      time.Now(),
	}

	fmt.Printf("Generating scenario '%s' (Count: %d) to %s...\n", cfg.Scenario, cfg.Count, *outDir)

	rows, layout := engine.Generate(cfg)

	if err := engine.Save(*outDir, "sales", rows, layout); err != nil {
		fmt.Printf("Failed to save mock data: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Done.")
}
