package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/blockfall/debugui"
	debugui_ebiten "github.com/plus3/blockfall/debugui/ebiten"
	"github.com/plus3/blockfall/session"
)

const (
	ScreenWidth  = 640
	ScreenHeight = 720
	CellSize     = 30
	TPS          = 60
)

func main() {
	preset := flag.String("preset", "classic", "Progression preset: classic or arcade.")
	configPath := flag.String("config", "", "Optional YAML file overriding the preset.")
	seed := flag.Uint64("seed", 0, "Piece sequence seed; 0 picks a random one.")
	debug := flag.Bool("debug", false, "Show the ImGui debug overlay.")
	flag.Parse()

	cfg, err := session.LoadConfig(*preset, *configPath, *seed)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	sess, err := session.New(cfg)
	if err != nil {
		log.Fatalf("Failed to start session: %v", err)
	}

	game := &Game{
		Session: sess,
		Input:   &Input{},
	}

	if *debug {
		game.Imgui = debugui_ebiten.NewImguiBackend("Tetris - Debug", ScreenWidth*2, ScreenHeight)
		game.Overlay = debugui.NewOverlay(sess, 120)
		game.Timer = debugui.NewFrameTimer()
	} else {
		ebiten.SetWindowSize(ScreenWidth, ScreenHeight)
		ebiten.SetWindowTitle("Tetris")
	}
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(TPS)

	log.Printf("Starting game (preset=%s lines/level=%d base=%s)", *preset, cfg.LinesPerLevel, cfg.BaseFallInterval)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatalf("Game exited with error: %v", err)
	}

	snap := sess.Snapshot()
	log.Printf("Final score %d, level %d, lines %d", snap.Score, snap.Level, snap.Lines)
}
