package app

import "flag"

// Config represents the command-line parameters for the application.
type Config struct {
	Demo  string
	Rules string
	Init  string
	Scale int
	TPS   int
	Seed  int64
	Steps int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Demo: "life", Scale: 3, TPS: 60, Seed: 42, Steps: 100}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Demo, "demo", c.Demo, "named demo automaton to run")
	fs.StringVar(&c.Rules, "rules", c.Rules, "pattern rule file (.cel) overriding the demo rule")
	fs.StringVar(&c.Init, "init", c.Init, "text file with the initial grid state")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for randomized rules and initial states")
	fs.IntVar(&c.Steps, "steps", c.Steps, "steps to run in headless mode")
}
