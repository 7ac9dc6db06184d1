package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/blockfall/session"
	"github.com/plus3/blockfall/tetris"
)

func main() {
	preset := flag.String("preset", "arcade", "Progression preset: classic or arcade.")
	configPath := flag.String("config", "", "Optional YAML file overriding the preset.")
	seed := flag.Uint64("seed", 0, "Piece sequence seed; 0 picks a random one.")
	frame := flag.Duration("frame", 10*time.Millisecond, "Interval between engine steps.")
	logPath := flag.String("log", "", "Write logs to this file (stdout belongs to the screen).")
	flag.Parse()

	log.SetOutput(io.Discard)
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to open log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	cfg, err := session.LoadConfig(*preset, *configPath, *seed)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	sess, err := session.New(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to start session: %v\n", err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize screen: %v\n", err)
		os.Exit(1)
	}
	screen.HideCursor()

	log.Printf("Starting game (preset=%s seed=%d)", *preset, cfg.Seed)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go pollInput(ctx, cancel, screen, sess)

	view := &View{Screen: screen}
	sess.Run(ctx, *frame, func(snap tetris.Snapshot) {
		view.Draw(&snap, sess.Paused())
	})

	screen.Fini()

	snap := sess.Snapshot()
	log.Printf("Session ended after %d games", sess.Games())
	printSummary(os.Stdout, snap.Score, snap.Level, snap.Lines)
}

// pollInput forwards decoded keys to the session until ctx ends or the
// player exits.
func pollInput(ctx context.Context, cancel context.CancelFunc, screen tcell.Screen, sess *session.Session) {
	for ctx.Err() == nil {
		switch ev := screen.PollEvent().(type) {
		case nil:
			return
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey:
			action := decodeKey(ev)
			switch action.Kind {
			case ActionExit:
				cancel()
				return
			case ActionPause:
				sess.TogglePause()
			case ActionRestart:
				if err := sess.Restart(); err != nil {
					log.Printf("Restart failed: %v", err)
				}
			case ActionCommand:
				if action.Command == tetris.Quit && sess.Snapshot().GameOver {
					cancel()
					return
				}
				if !sess.Push(action.Command) {
					log.Printf("Dropped %s", action.Command)
				}
			}
		}
	}
}

func printSummary(w io.Writer, score, level, lines int) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  ╔══════════════════════════════════════╗")
	fmt.Fprintln(w, "  ║              GAME OVER               ║")
	fmt.Fprintln(w, "  ╠══════════════════════════════════════╣")
	fmt.Fprintf(w, "  ║  Final Score: %-22d ║\n", score)
	fmt.Fprintf(w, "  ║  Level: %-28d ║\n", level)
	fmt.Fprintf(w, "  ║  Lines: %-28d ║\n", lines)
	fmt.Fprintln(w, "  ╚══════════════════════════════════════╝")
	fmt.Fprintln(w)
}
