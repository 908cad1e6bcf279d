package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/1broseidon/windowfun/internal/audio"
	"github.com/1broseidon/windowfun/internal/config"
	"github.com/1broseidon/windowfun/internal/host"
	"github.com/1broseidon/windowfun/internal/native"
	"github.com/1broseidon/windowfun/internal/physics"
	"github.com/1broseidon/windowfun/internal/platform"
	"github.com/1broseidon/windowfun/internal/window"
)

func init() {
	// GLFW and OpenGL calls must stay on the main thread.
	runtime.LockOSThread()
}

func main() {
	if len(os.Args) < 2 {
		os.Exit(runWindow(nil))
	}

	switch os.Args[1] {
	case "run":
		os.Exit(runWindow(os.Args[2:]))
	case "config":
		os.Exit(runConfig(os.Args[2:]))
	case "displays":
		os.Exit(runDisplays(os.Args[2:]))
	case "help", "-h", "--help":
		printMainUsage(os.Stdout)
		os.Exit(0)
	default:
		if len(os.Args[1]) > 0 && os.Args[1][0] == '-' {
			os.Exit(runWindow(os.Args[1:]))
		}
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printMainUsage(os.Stderr)
		os.Exit(2)
	}
}

func printMainUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: windowfun [command] [options]")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  run                 Open the bouncing window (default)")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "  config init         Write the default config file")
	fmt.Fprintln(w, "  config print        Print configuration")
	fmt.Fprintln(w, "  config path         Print the config file path")
	fmt.Fprintln(w, "  config explain      Explain a config value")
	fmt.Fprintln(w, "  config import       Convert a legacy windowfun_config.txt")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "  displays            List displays and the detected screen span")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Controls: drag with the left mouse button to throw, Space jumps,")
	fmt.Fprintln(w, "Left/Right push, Q stops, Escape quits.")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Run 'windowfun <command> --help' for command-specific options.")
}

func runWindow(args []string) int {
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	path := fs.String("config", "", "Config file path (default: ~/.config/windowfun/config.yaml)")
	legacy := fs.String("legacy", config.LegacyFileName, "Legacy config read when no YAML config exists (empty to disable)")
	logLevel := fs.String("log-level", "", "Override log_level (debug|info|warning|error)")
	frames := fs.Int("frames", 0, "Exit after this many frames (0 = until closed)")
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: windowfun run [--config PATH] [--log-level LEVEL]")
		fmt.Fprintln(os.Stderr, "")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}
	if fs.NArg() > 0 {
		fmt.Fprintln(os.Stderr, "run takes no arguments")
		return 2
	}

	cfgPath, err := resolveConfigPath(*path)
	if err != nil {
		log.Fatalf("Failed to resolve config path: %v", err)
	}
	res, err := config.LoadFromPathOrLegacy(cfgPath, *legacy)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	for _, w := range res.Warnings {
		log.Printf("Warning: %s", w)
	}
	cfg := res.Config

	level := cfg.LogLevel
	if *logLevel != "" {
		level = *logLevel
	}
	logger, err := newLogger(os.Stderr, level)
	if err != nil {
		log.Fatalf("Invalid --log-level: %v", err)
	}
	if len(res.Files) > 0 {
		logger.Info("configuration loaded", "files", res.Files)
	}

	span, err := host.ResolveScreen(cfg.Screen, platform.DetectSpan, logger)
	if err != nil {
		log.Fatalf("Failed to determine screen size: %v", err)
	}
	if span.Width <= 0 || span.Height <= 0 {
		log.Fatalf("Screen size %dx%d is not usable; set screen.width and screen.height", span.Width, span.Height)
	}

	colour, err := config.ParseColour(cfg.Window.Colour)
	if err != nil {
		log.Fatalf("Invalid window colour: %v", err)
	}

	win, err := native.Open(native.Options{
		Title:     cfg.Window.Title,
		Width:     cfg.Window.Width,
		Height:    cfg.Window.Height,
		Decorated: cfg.Window.Decorated,
		VSync:     true,
	})
	if err != nil {
		log.Fatalf("Failed to open window: %v", err)
	}

	state := window.New(win, window.Options{
		Sensitivity: float32(cfg.Window.Sensitivity),
		Logger:      logger.With("component", "window"),
	})
	loop := physics.New(host.PhysicsParams(cfg, span), logger.With("component", "physics"))

	var sound host.ImpactPlayer
	if cfg.Sound.Enabled {
		player := audio.NewPlayer(audio.Options{
			Volume:    cfg.Sound.Volume,
			MinImpact: cfg.Sound.MinImpact,
			Logger:    logger.With("component", "audio"),
		})
		if err := player.Initialize(); err != nil {
			logger.Warn("audio unavailable, sound disabled", "error", err)
		} else {
			defer player.Close()
			sound = player
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	h := host.New(state, loop, native.NewClearRenderer(colour), sound, host.Options{
		Logger:    logger,
		MaxFrames: *frames,
	})
	if err := h.Run(ctx); err != nil {
		logger.Error("window loop failed", "error", err)
		return 1
	}
	return 0
}

func resolveConfigPath(path string) (string, error) {
	if path != "" {
		return path, nil
	}
	return config.DefaultConfigPath()
}
