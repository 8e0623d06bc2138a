// Command saw prints one random self-avoiding walk on a W×H lattice,
// one point per line as "X = <x>, Y = <y>".
//
// Configuration, lowest to highest precedence: defaults (300×300, entropy
// seed), a dotenv file (SAW_ENV_FILE, default .env), SAW_* environment
// variables, command-line flags.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/lvwalk/password"
	"github.com/katalvlaran/lvwalk/random"
	"github.com/katalvlaran/lvwalk/walk"
)

func main() {
	file := defaultEnvFile
	if v, ok := os.LookupEnv(envFile); ok {
		file = v
	}
	lookup, err := envLookup(file)
	if err != nil {
		fmt.Fprintln(os.Stderr, "saw:", err)
		os.Exit(2)
	}

	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr, lookup))
}

// run executes the demo and returns the process exit code.
func run(args []string, stdout, stderr io.Writer, lookup func(string) (string, bool)) int {
	cfg := NewConfig()
	if err := cfg.LoadEnv(lookup); err != nil {
		fmt.Fprintln(stderr, "saw: environment:", err)
		return 2
	}
	set := flag.NewFlagSet("saw", flag.ContinueOnError)
	set.SetOutput(stderr)
	cfg.Bind(set)
	if err := set.Parse(args); err != nil {
		return 2
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(stderr, "saw:", err)
		return 2
	}

	log := newLogger(stderr, cfg.LogLevel, cfg.LogFormat)

	src := random.NewEntropy()
	if cfg.Seed != 0 {
		src = random.New(cfg.Seed)
	}
	log.Debug("generating walk", "width", cfg.Width, "height", cfg.Height, "seed", cfg.Seed)

	w, err := walk.Generate(cfg.Width, cfg.Height, walk.WithSource(src))
	if err != nil {
		log.Error("walk generation failed", "err", err)
		return 1
	}
	end, _ := w.End()
	log.Info("walk generated",
		"width", cfg.Width,
		"height", cfg.Height,
		"length", w.Len(),
		"coverage", w.Coverage(cfg.Width, cfg.Height),
		"dead_end", end.String(),
	)

	out := bufio.NewWriter(stdout)

	if cfg.Render {
		s, err := walk.Render(w, cfg.Width, cfg.Height)
		if err != nil {
			log.Error("render failed", "err", err)
			return 1
		}
		fmt.Fprint(out, s)
	} else {
		for _, p := range w {
			fmt.Fprintf(out, "X = %d, Y = %d\n", p.X, p.Y)
		}
	}

	if cfg.Password {
		pw, err := password.Generate(src, password.DefaultPolicy())
		if err != nil {
			log.Error("password generation failed", "err", err)
			return 1
		}
		fmt.Fprintln(out, pw)
	}

	if err := out.Flush(); err != nil {
		log.Error("write output failed", "err", err)
		return 1
	}

	return 0
}
