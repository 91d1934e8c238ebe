//go:build !ebiten

package main

import (
	"flag"
	"fmt"
	"log"

	"gridca/internal/app"
)

// Without the ebiten tag the binary runs headless: advance the automaton a
// fixed number of steps and print the final state.
func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	auto, err := buildAutomaton(cfg)
	if err != nil {
		log.Fatal(err)
	}

	for i := 0; i < cfg.Steps; i++ {
		auto.Step()
	}
	fmt.Println(auto.State().String())
}
