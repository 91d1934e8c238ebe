package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gridca/internal/app"
	"gridca/internal/demos"
	"gridca/pkg/automaton"
	"gridca/pkg/rule"
)

// buildAutomaton assembles the automaton selected by the configuration:
// either a registered demo, or a pattern rule file applied to an initial
// state file.
func buildAutomaton(cfg *app.Config) (*automaton.Automaton, error) {
	if cfg.Rules != "" {
		return automatonFromFiles(cfg)
	}

	factory, ok := demos.Get(cfg.Demo)
	if !ok {
		return nil, fmt.Errorf("unknown demo %q, have: %s", cfg.Demo, strings.Join(demos.Names(), ", "))
	}
	return factory(map[string]string{
		"seed": strconv.FormatInt(cfg.Seed, 10),
	})
}

func automatonFromFiles(cfg *app.Config) (*automaton.Automaton, error) {
	content, err := os.ReadFile(cfg.Rules)
	if err != nil {
		return nil, fmt.Errorf("read rule file: %w", err)
	}
	pr, err := rule.ParsePatternRule(string(content))
	if err != nil {
		return nil, fmt.Errorf("parse rule file %s: %w", cfg.Rules, err)
	}
	pr.WithSeed(cfg.Seed)

	b := automaton.NewBuilder().WithRule(pr)
	if cfg.Init != "" {
		b.FromTextFile(cfg.Init)
	}
	return b.Build()
}
