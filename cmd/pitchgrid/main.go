package main

import (
	"flag"
	"log"

	"github.com/Garsondee/pitch-grid/internal/app"
	"github.com/Garsondee/pitch-grid/internal/config"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	var configPath string
	var appName string
	flag.StringVar(&configPath, "config", "", "path to a YAML pitch config (defaults when empty)")
	flag.StringVar(&appName, "app-name", "pitchgrid", "name used for the preference store")
	flag.Parse()

	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			log.Fatal(err)
		}
		cfg = loaded
	}
	prefs := config.OpenPrefs(appName, config.Prefs{ShowLabels: cfg.ShowLabels, ActiveZone: 0})

	g := app.New(cfg, prefs)
	ebiten.SetWindowTitle("Pitch Grid")
	ebiten.SetWindowSize(g.Size())
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
