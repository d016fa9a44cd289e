package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	"github.com/marcus/notedeck/internal/account"
	"github.com/marcus/notedeck/internal/app"
	"github.com/marcus/notedeck/internal/config"
	"github.com/marcus/notedeck/internal/keymap"
	"github.com/marcus/notedeck/internal/version"
)

// Version is set at build time via ldflags
var Version = ""

var (
	configPath   = flag.String("config", "", "path to config file")
	logPath      = flag.String("log", "", "log file (overrides config)")
	debugFlag    = flag.Bool("debug", false, "enable debug logging")
	versionFlag  = flag.Bool("version", false, "print version and exit")
	shortVersion = flag.Bool("v", false, "print version and exit (short)")
)

func main() {
	flag.Parse()
	os.Exit(run())
}

// run starts the program and returns the process exit code. Deferred
// cleanup runs before main exits.
func run() int {
	if *versionFlag || *shortVersion {
		fmt.Printf("notedeck version %s\n", version.Effective(Version))
		return 0
	}

	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		fmt.Fprintln(os.Stderr, "notedeck needs an interactive terminal")
		return 1
	}

	path := *configPath
	if path == "" {
		path = config.ConfigPath()
	}
	cfg, err := config.LoadFrom(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		return 1
	}

	logger, closeLog := setupLogging(cfg.Log)
	defer closeLog()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	updates, err := config.Watch(ctx, path, logger)
	if err != nil {
		// Live reload is optional; the directory may not exist yet.
		logger.Warn("config watch disabled", "path", path, "err", err)
	}

	model, err := app.New(app.Options{
		Context:       ctx,
		Config:        cfg,
		ConfigPath:    path,
		ConfigUpdates: updates,
		Keymap:        keymap.NewDefault(),
		Authenticator: account.NewStub(logger, cfg.Auth.Delay),
		Logger:        logger,
	})
	if err != nil {
		logger.Error("startup failed", "err", err)
		fmt.Fprintf(os.Stderr, "Failed to start: %v\n", err)
		return 1
	}

	opts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}
	if cfg.UI.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	p := tea.NewProgram(model, opts...)

	final, err := p.Run()
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		logger.Error("program failed", "err", err)
		fmt.Fprintf(os.Stderr, "Error running application: %v\n", err)
		return 1
	}
	if m, ok := final.(app.Model); ok && m.Err() != nil {
		fmt.Fprintf(os.Stderr, "notedeck stopped: %v\n", m.Err())
		return 1
	}
	logger.Info("exiting")
	return 0
}

// setupLogging opens the log file. The terminal belongs to the UI, so logs
// are discarded when the file cannot be opened.
func setupLogging(lc config.LogConfig) (*slog.Logger, func()) {
	level, err := config.ParseLevel(lc.Level)
	if err != nil {
		level = slog.LevelInfo
	}
	if *debugFlag {
		level = slog.LevelDebug
	}

	file := lc.File
	if *logPath != "" {
		file = *logPath
	}
	file = config.ExpandPath(file)

	var w io.Writer = io.Discard
	closeFn := func() {}
	if file != "" {
		if err := os.MkdirAll(filepath.Dir(file), 0o755); err == nil {
			if f, err := os.OpenFile(file, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644); err == nil {
				w = f
				closeFn = func() { _ = f.Close() }
			}
		}
	}

	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
	logger.Info("starting", "version", version.Effective(Version))
	return logger, closeFn
}

func init() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: notedeck [options]\n\n")
		fmt.Fprintf(os.Stderr, "A terminal notebook of note cards.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}
}
