// Command animrunner is a headless driver for the timeline engine: it
// loads a TOML script describing a tree of sequence/parallel/tween
// blocks against a set of synthetic named elements, compiles it into an
// anim.Timeline instruction program, and plays it to completion against
// a synthetic frame source, logging every committed frame.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/cascadefx/anim"
	"github.com/cascadefx/anim/cmd/animrunner/internal/config"
)

func main() {
	scriptPath := flag.String("script", "animrunner.toml", "path to the animrunner TOML script")
	flag.Parse()

	if err := run(*scriptPath); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(scriptPath string) error {
	cfg, err := config.Load(scriptPath)
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.Runner)
	if err != nil {
		return fmt.Errorf("animrunner: build logger: %w", err)
	}
	defer logger.Sync()
	sugar := logger.Sugar()

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	elements := buildElements(cfg.Elements)
	instr := buildInstruction(cfg.Root, elements, sugar, rng)
	sugar.Infow("animrunner: starting script", "path", scriptPath, "program", describeTree(cfg.Root))

	player := anim.NewPlayer(instr)
	scope := player.Scope()
	for _, el := range elements {
		scope.AddChild(el)
	}

	final, err := player.Play(anim.PlayArguments{
		HasSpeed: true,
		Speed:    cfg.Runner.Speed,
		RAF:      syntheticFrameSource(player, cfg.Runner.MaxDurationMS),
		OnUpdate: func(t int64) {
			sugar.Infow("animrunner: frame committed", "t_ms", t)
		},
	})
	if err != nil {
		return fmt.Errorf("animrunner: play: %w", err)
	}

	sugar.Infow("animrunner: script finished", "final_t_ms", final)
	return nil
}

// syntheticFrameSource returns a raf callback that advances every frame
// immediately instead of waiting on a wall-clock tick, since this runner
// has no real display to synchronize against. If elapsed exceeds maxMS
// before the timeline resolves on its own, it pauses the player so the
// in-flight Play call still unwinds cleanly instead of spinning forever
// on a script whose instructions never release.
func syntheticFrameSource(player *anim.Player, maxMS int64) func(cb func()) {
	var elapsed int64
	return func(cb func()) {
		if maxMS > 0 && elapsed > maxMS {
			player.Pause()
			cb()
			return
		}
		elapsed += anim.FrameMS
		cb()
	}
}
