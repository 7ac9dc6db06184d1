package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"runtime"
	"time"

	"github.com/plus3/blockfall/session"
	"github.com/plus3/blockfall/tetris"
)

// commandPool is weighted towards movement so pieces travel before they lock.
var commandPool = []tetris.Command{
	tetris.CommandNone, tetris.CommandNone, tetris.CommandNone,
	tetris.MoveLeft, tetris.MoveLeft,
	tetris.MoveRight, tetris.MoveRight,
	tetris.SoftDrop,
	tetris.RotateCW,
	tetris.RotateCCW,
	tetris.HardDrop,
	tetris.Hold,
}

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the soak test should run for.")
	seed := flag.Uint64("seed", 1, "Seed for pieces and generated input. 0 picks a random seed.")
	preset := flag.String("preset", "classic", "Config preset: classic or arcade.")
	configPath := flag.String("config", "", "Optional YAML file overriding the preset.")
	frame := flag.Duration("frame", 16*time.Millisecond, "Simulated time passed to every step.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	log.Println("Starting tetris soak test...")

	cfg, err := session.LoadConfig(*preset, *configPath, *seed)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	sess, err := session.New(cfg)
	if err != nil {
		log.Fatalf("Failed to start session: %v", err)
	}

	inputSeed := *seed
	if inputSeed == 0 {
		inputSeed = rand.Uint64()
	}
	input := rand.New(rand.NewPCG(inputSeed, ^inputSeed))

	report := &Report{
		Duration:       *duration,
		Preset:         *preset,
		Seed:           cfg.Seed,
		Frame:          *frame,
		GCPauseMetrics: *gcPauseMetrics,
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	log.Printf("Running games for %s...\n", *duration)
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	startTime := time.Now()

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			sess.Push(commandPool[input.IntN(len(commandPool))])
			snap := sess.Once(*frame)
			if !snap.GameOver {
				continue
			}

			report.Record(snap, sess.Game().Stats())
			if err := sess.Restart(); err != nil {
				log.Fatalf("Failed to restart: %v", err)
			}
		}
	}

	report.TotalTime = time.Since(startTime)
	report.Steps = sess.Stats()
	report.Unfinished = sess.Snapshot()
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Println("Soak test finished.")

	fmt.Println("\n\n--- Soak Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")
}
