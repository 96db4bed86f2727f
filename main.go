package main

import (
	"errors"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ncruces/zenity"

	"regkiosk/internal/config"
	"regkiosk/internal/game"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle("TechFest Registration")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	k := game.New(cfg, game.SystemBrowser)
	if err := ebiten.RunGame(k); err != nil && !errors.Is(err, ebiten.Termination) {
		if derr := zenity.Error(err.Error(), zenity.Title("TechFest Registration")); derr != nil {
			log.Printf("error dialog: %v", derr)
		}
		log.Fatal(err)
	}
}
