package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand/v2"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/vi-snake/audio"
	"github.com/lixenwraith/vi-snake/config"
	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/modes"
	"github.com/lixenwraith/vi-snake/render"
)

const configEnv = "VI_SNAKE_CONFIG"

var (
	configFlag  = flag.String("config", defaultConfigPath(), "YAML config file, missing file uses defaults")
	debugFlag   = flag.Bool("debug", false, "Write debug logs to "+logDir+"/"+logFileName)
	seedFlag    = flag.Uint64("seed", 0, "Mouse spawn seed, 0 picks a random seed")
	noAvoidFlag = flag.Bool("no-avoid", false, "Allow mice to spawn on the snake's next cells")
)

func defaultConfigPath() string {
	if p := os.Getenv(configEnv); p != "" {
		return p
	}
	return "vi-snake.yaml"
}

func main() {
	var screen tcell.Screen

	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			if screen != nil {
				screen.Fini()
			}
			fmt.Fprintf(os.Stderr, "\n\x1b[31mVI-SNAKE CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	flag.Parse()

	logFile, logger := setupLogging(*debugFlag)
	if logFile != nil {
		defer logFile.Close()
	}

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	screen, err = tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	// Normal exit terminal cleanup
	defer screen.Fini()
	screen.HideCursor()

	renderer := render.NewTerminalRenderer(screen, cfg.Display, cfg.Gameplay.GridUnit)

	sound := audio.NewSoundManager(cfg.Audio, logger)
	if err := sound.Initialize(); err != nil {
		logger.Warn("audio unavailable, continuing without sound", "err", err)
	}
	defer sound.Cleanup()

	seed := *seedFlag
	if seed == 0 {
		seed = rand.Uint64()
	}
	w, h := screen.Size()
	maxW, maxH := renderer.MaxField(w, h)
	game := engine.NewGame(cfg,
		engine.WithRand(rand.New(rand.NewPCG(seed, ^seed))),
		engine.WithLogger(logger),
		engine.WithViewport(maxW, maxH),
	)
	if *noAvoidFlag {
		game.SetAvoidPredictedPath(false)
	}
	logger.Info("vi-snake starting", "seed", seed, "config", *configFlag, "width", maxW, "height", maxH)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, quit := context.WithCancel(ctx)
	defer quit()

	host := &terminalHost{renderer: renderer, sound: sound, logger: logger}
	scheduler := engine.NewClockScheduler(game, host, logger)

	g, gctx := errgroup.WithContext(ctx)

	emit := func(cmd engine.Command) {
		if err := scheduler.Submit(gctx, cmd); err != nil {
			logger.Debug("command dropped", "kind", cmd.Kind, "err", err)
		}
	}
	input := modes.NewInputHandler(emit, renderer.MaxField, constants.BoostHoldTimeout)
	host.input = input

	g.Go(func() error {
		return scheduler.Run(gctx)
	})

	// PollEvent blocks, an interrupt event wakes the pump on shutdown
	g.Go(func() error {
		<-gctx.Done()
		screen.PostEvent(tcell.NewEventInterrupt(nil))
		return nil
	})

	g.Go(func() error {
		for {
			ev := screen.PollEvent()
			if ev == nil || gctx.Err() != nil {
				return nil
			}
			if _, ok := ev.(*tcell.EventResize); ok {
				screen.Sync()
			}
			if !input.HandleEvent(ev) {
				quit()
				return nil
			}
		}
	})

	if err := g.Wait(); err != nil {
		logger.Error("fatal", "err", err)
	}
	input.Stop()
	logger.Info("vi-snake stopped", "ticks", scheduler.TickCount())
}
