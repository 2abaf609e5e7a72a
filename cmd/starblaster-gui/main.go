package main

import (
	"errors"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/lixenwraith/starblaster/audio"
	"github.com/lixenwraith/starblaster/config"
	"github.com/lixenwraith/starblaster/core"
	"github.com/lixenwraith/starblaster/engine"
	"github.com/lixenwraith/starblaster/gui"
)

func main() {
	flags := config.RegisterFlags(flag.CommandLine)
	flag.Parse()

	if err := run(flags); err != nil {
		fmt.Fprintf(os.Stderr, "starblaster-gui: %v\n", err)
		os.Exit(1)
	}
}

func run(flags *config.Flags) error {
	cfg, err := flags.Resolve(os.LookupEnv)
	if err != nil {
		return err
	}

	log, closeLog, err := config.NewLogger(cfg.LogFile)
	if err != nil {
		return err
	}
	defer closeLog()
	cfg.LogSummary(log)

	sound := audio.NewSoundManager(cfg.Audio)
	if err := sound.Initialize(); err != nil {
		log.Error("audio initialization failed, continuing without audio", "err", err)
	} else if err := sound.StartMusic(); err != nil {
		log.Error("music failed to start", "err", err, "file", cfg.Audio.MusicFile)
	}
	defer sound.Cleanup()

	keys, err := cfg.KeyMap()
	if err != nil {
		return err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	stage := engine.NewStage(cfg.Rules.Sprites)
	loop := engine.NewGameLoop(cfg.Rules, stage, sound, rand.New(rand.NewSource(seed)))
	sched := engine.NewScheduler(core.SystemClock{})
	if err := loop.RegisterSpawners(sched, cfg.Spawn.StarPeriods, cfg.Spawn.AlienPeriod); err != nil {
		return err
	}
	log.Info("session ready", "seed", seed, "timers", len(sched.Stats()))

	ebiten.SetWindowSize(cfg.Rules.ViewportWidth, cfg.Rules.ViewportHeight)
	ebiten.SetWindowTitle("starblaster")
	ebiten.SetTPS(cfg.FrameRate)

	if err := ebiten.RunGame(gui.NewGame(stage, loop, sched, keys, sound, log)); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}
