//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"gridca/internal/app"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	auto, err := buildAutomaton(cfg)
	if err != nil {
		log.Fatal(err)
	}

	game := app.New(auto, cfg.Scale)
	rows, cols := auto.Dimensions()

	ebiten.SetWindowTitle("gridca - " + cfg.Demo)
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(cols*cfg.Scale, rows*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
