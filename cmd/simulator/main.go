package main

import (
	"context"
	"log"
	"time"

	"gator-swamp-client/simulator"
)

func main() {
	config := simulator.SimConfig{
		NumSessions:      10,
		SimulationTime:   5 * time.Minute,
		ActionInterval:   500 * time.Millisecond,
		PostFrequency:    0.10,
		CommentFrequency: 0.15,
		VoteFrequency:    0.25,
		RepostPercentage: 0.10,
		BackNavRate:      0.10,
		EngineURL:        "http://localhost:8080",
		RequestTimeout:   5 * time.Second,
	}

	log.Printf("Starting simulation with configuration:")
	log.Printf("- Engine URL: %s", config.EngineURL)
	log.Printf("- Number of sessions: %d", config.NumSessions)
	log.Printf("- Simulation time: %v", config.SimulationTime)
	log.Printf("- Action interval: %v", config.ActionInterval)
	log.Printf("- Repost percentage: %.1f%%", config.RepostPercentage*100)

	sim := simulator.NewSimulator(config)
	ctx, cancel := context.WithTimeout(context.Background(), config.SimulationTime)
	defer cancel()

	if err := sim.Run(ctx); err != nil {
		log.Fatalf("Simulation failed: %v", err)
	}

	stats := sim.GetStats()
	log.Printf("\nSimulation completed. Final stats:")
	log.Printf("- Navigations: %d (%d blocked by the allow-list)", stats.Navigations, stats.BlockedNavigations)
	log.Printf("- Posts: %d", stats.Posts)
	log.Printf("- Comments: %d", stats.Comments)
	log.Printf("- Votes: %d", stats.Votes)
	log.Printf("- Duplicate rejections: %d", stats.DuplicateRejections)
	log.Printf("- In-flight rejections: %d", stats.InFlightRejections)
	log.Printf("- Validation rejections: %d", stats.ValidationRejections)
	log.Printf("- Auth rejections: %d", stats.AuthRejections)
	log.Printf("- Errors: %d", stats.Errors)
	log.Printf("- Total requests: %d", sim.RequestCount())
}
