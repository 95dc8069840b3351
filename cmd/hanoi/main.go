package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/hanoi/audio"
	"github.com/lixenwraith/hanoi/config"
	"github.com/lixenwraith/hanoi/constants"
	"github.com/lixenwraith/hanoi/engine"
	"github.com/lixenwraith/hanoi/input"
	"github.com/lixenwraith/hanoi/logging"
	"github.com/lixenwraith/hanoi/render"
	"github.com/lixenwraith/hanoi/status"
)

var (
	configFlag  = flag.String("config", constants.DefaultConfigFile, "CUE settings file")
	discsFlag   = flag.Int("discs", 0, "Initial disc count (0 uses the configured value)")
	motionFlag  = flag.String("motion", "", "Motion mode: tick, delta (empty uses the configured value)")
	muteFlag    = flag.Bool("mute", false, "Start with sound muted")
	debugFlag   = flag.Bool("debug", false, "Write a debug log under "+constants.LogDir)
	journalFlag = flag.Bool("journal", false, "Send log records to the systemd journal")
	traceFlag   = flag.Bool("trace", false, "Print the full move sequence and exit without opening the terminal")
)

func main() {
	flag.Parse()

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(2)
	}

	level := slog.LevelInfo
	if *debugFlag {
		level = slog.LevelDebug
	}
	logger, closeLog, err := logging.Setup(logging.Options{
		Debug:   *debugFlag,
		Journal: *journalFlag,
		Dir:     constants.LogDir,
		File:    constants.LogFileName,
		Level:   level,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Logging setup failed: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	if *traceFlag {
		if err := writeTrace(os.Stdout, cfg.Discs.Initial, cfg.Geometry); err != nil {
			fmt.Fprintf(os.Stderr, "Trace failed: %v\n", err)
			os.Exit(1)
		}
		return
	}

	logger.Info("config loaded", "file", *configFlag, "discs", cfg.Discs.Initial, "motion", cfg.Motion)

	if err := run(cfg, logger); err != nil {
		logger.Error("visualizer stopped", "error", err)
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

// loadConfig reads the settings file and applies flag overrides
// A missing file is only an error when it was named explicitly
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(*configFlag)
	if errors.Is(err, config.ErrNoConfigFile) && *configFlag == constants.DefaultConfigFile {
		err = nil
	}
	if err != nil {
		return cfg, err
	}

	if *discsFlag != 0 {
		cfg.Discs.Initial = *discsFlag
		cfg.Discs.Min = min(cfg.Discs.Min, *discsFlag)
		cfg.Discs.Max = max(cfg.Discs.Max, *discsFlag)
	}
	if *motionFlag != "" {
		cfg.Motion = *motionFlag
	}
	if *muteFlag {
		cfg.Sound = false
	}
	return cfg, cfg.Validate()
}

func run(cfg config.Config, logger *slog.Logger) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	// Panic recovery: restore the terminal before printing the trace
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mHANOI CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()
	defer screen.Fini()
	screen.EnableMouse()
	screen.HideCursor()

	metrics := status.NewRegistry()

	sound := audio.NewSoundManager(!cfg.Sound)
	if err := sound.Initialize(); err != nil {
		logger.Warn("audio initialization failed, continuing without sound", "error", err)
	}
	defer sound.Cleanup()
	metrics.Bools.Get(status.KeyMuted).Store(sound.Muted())

	session, err := engine.NewSession(cfg.Discs.Initial, engine.Options{
		Geometry:      cfg.Geometry,
		Motion:        cfg.Motion,
		FrameInterval: cfg.FrameInterval(),
		Sound:         sound,
		Logger:        logger,
		Metrics:       metrics,
	})
	if err != nil {
		return err
	}
	selector := engine.NewDiscSelector(cfg.Discs.Min, cfg.Discs.Max, cfg.Discs.Initial)

	surface := render.NewTerminalSurface(screen,
		cfg.Geometry.Width, cfg.Geometry.Height,
		cfg.Terminal.CellWidth, cfg.Terminal.CellHeight)
	mapper := input.NewMapper(surface)

	eventChan := make(chan tcell.Event, constants.EventQueueSize)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				screen.Fini()
				fmt.Fprintf(os.Stderr, "\r\n\x1b[31mEVENT POLLER CRASHED: %v\x1b[0m\r\n", r)
				fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
				os.Exit(1)
			}
		}()
		for {
			ev := screen.PollEvent()
			// Nil after Fini
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	frameTicker := time.NewTicker(cfg.FrameInterval())
	defer frameTicker.Stop()

	logger.Info("visualizer started",
		"discs", cfg.Discs.Initial,
		"motion", cfg.Motion,
		"frame", cfg.FrameInterval(),
	)

	for {
		select {
		case ev := <-eventChan:
			intent := mapper.Map(ev)
			if intent.Type == input.IntentNone {
				continue
			}
			logger.Debug("intent", "type", intent.Type.String())

			switch intent.Type {
			case input.IntentQuit:
				logger.LogAttrs(context.Background(), slog.LevelInfo, "visualizer quit", metrics.Attrs()...)
				return nil
			case input.IntentResize:
				screen.Sync()
				surface.Layout()
			case input.IntentStep:
				session.Advance()
			case input.IntentMoreDiscs:
				selector.Inc()
			case input.IntentFewerDiscs:
				selector.Dec()
			case input.IntentReset:
				if err := session.Reset(); err != nil {
					return err
				}
			case input.IntentSettle:
				session.Settle()
			case input.IntentPause:
				session.TogglePause()
			case input.IntentToggleMute:
				metrics.Bools.Get(status.KeyMuted).Store(sound.ToggleMute())
			}

		case <-frameTicker.C:
			if err := session.Sync(selector.Value()); err != nil {
				return err
			}
			surface.Clear()
			session.Frame(surface)
			render.DrawStatusBar(screen, metrics)
			surface.Show()
		}
	}
}
