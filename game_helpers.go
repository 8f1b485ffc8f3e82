package main

import (
	"fmt"
	"time"

	"github.com/sheikhrachel/go-life/sim"
	"github.com/sheikhrachel/go-life/utils"
)

// displayGameInfo shows the initial game information
func displayGameInfo(cfg utils.Config, s *sim.Simulator, seed int64) {
	fmt.Printf("Grid: %dx%d | Fill rate: %.2f | Seed: %d\n", cfg.Width, cfg.Height, cfg.FillRate, seed)
	fmt.Printf("Initial living cells: %d\n", s.Population())
	fmt.Println("Press Ctrl+C to exit gracefully")
	fmt.Println()
	time.Sleep(2 * time.Second)
}

// makeStatusDisplay builds the per-frame status line printed above the grid
func makeStatusDisplay(cfg utils.Config) func(*sim.Simulator) {
	total := float64(cfg.Width * cfg.Height)

	return func(s *sim.Simulator) {
		living := s.Population()
		density := float64(living) / total * 100

		status := "Active"
		if s.IsStagnant() {
			status = "Stagnant"
		}
		if living == 0 {
			status = "Extinct"
		}

		stats := s.Stats()
		fmt.Printf("Gen: %d | Living: %d | Density: %.1f%% | Status: %s\n",
			s.Generation(), living, density, status)
		fmt.Printf("Performance: %.1f gen/sec | Avg Pop: %.1f | Runtime: %.1fs\n\n",
			stats.GenerationsPerSecond, stats.AveragePopulation, time.Since(stats.StartTime).Seconds())
	}
}

// displayFinalStats shows the closing summary after the loop stops
func displayFinalStats(s *sim.Simulator) {
	stats := s.Stats()
	fmt.Printf("\nFinal stats: %d generations in %.1f seconds\n",
		s.Generation(), time.Since(stats.StartTime).Seconds())
	fmt.Printf("Average: %.1f gen/sec, %.1f avg population\n",
		stats.GenerationsPerSecond, stats.AveragePopulation)
}
