package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/lixenwraith/starblaster/audio"
	"github.com/lixenwraith/starblaster/config"
	"github.com/lixenwraith/starblaster/core"
	"github.com/lixenwraith/starblaster/terminal"
)

func main() {
	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flags := config.RegisterFlags(flag.CommandLine)
	flag.Parse()

	if err := run(flags); err != nil {
		fmt.Fprintf(os.Stderr, "starblaster: %v\n", err)
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

	sound := startAudio(cfg.Audio, log)
	defer sound.Cleanup()

	screen, err := terminal.OpenScreen()
	if err != nil {
		return err
	}
	// Normal exit terminal cleanup
	defer screen.Fini()

	session, err := terminal.NewSession(screen, cfg, sound, core.SystemClock{}, log)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return session.Run(ctx)
}

// startAudio initializes the speaker and music; failures leave the game silent
func startAudio(cfg audio.Config, log *slog.Logger) *audio.SoundManager {
	sound := audio.NewSoundManager(cfg)
	if err := sound.Initialize(); err != nil {
		log.Error("audio initialization failed, continuing without audio", "err", err)
		return sound
	}
	if err := sound.StartMusic(); err != nil {
		log.Error("music failed to start", "err", err, "file", cfg.MusicFile)
	}
	return sound
}
