// Package main is the entry point for the styledit terminal editor.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/dshills/styledtext/internal/app"
	"github.com/dshills/styledtext/internal/config"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// flags holds the command line.
type flags struct {
	configPath string
	logPath    string
	logLevel   string
	language   string
	file       string
	version    bool
}

func main() {
	os.Exit(run())
}

func run() int {
	f := parseFlags()
	if f.version {
		fmt.Printf("styledit %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		return 0
	}

	cfg := config.Defaults()
	if f.configPath != "" {
		var err error
		if cfg, err = config.Load(f.configPath); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", app.NewOperationError("load config", f.configPath, err))
			return 1
		}
	}
	level := cfg.Log.Level
	if f.logLevel != "" {
		level = f.logLevel
	}

	// The terminal owns stdout and stderr, so logs go to a file or nowhere.
	var logOut io.Writer
	if f.logPath != "" {
		file, err := os.OpenFile(f.logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", app.NewOperationError("open log", f.logPath, err))
			return 1
		}
		defer file.Close()
		logOut = file
	}
	logger, err := app.NewLogger(level, logOut)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid log level %q: %v\n", level, err)
		return 1
	}

	application, err := app.New(app.Options{
		Path:       f.file,
		ConfigPath: f.configPath,
		Language:   f.language,
		Config:     cfg,
		Logger:     logger,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize: %v\n", err)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := application.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func parseFlags() flags {
	var f flags
	flag.StringVar(&f.configPath, "config", "", "Path to options file (.toml, .yaml)")
	flag.StringVar(&f.logPath, "log", "", "Write logs to this file")
	flag.StringVar(&f.logLevel, "log-level", "", "Log level (trace, debug, info, warn, error)")
	flag.StringVar(&f.language, "lang", "", "Highlight language, overriding the file extension")
	flag.BoolVar(&f.version, "version", false, "Show version information")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "styledit - styled text editor\n\n")
		fmt.Fprintf(os.Stderr, "Usage: styledit [options] [file]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nKeys:\n")
		fmt.Fprintf(os.Stderr, "  Ctrl+S  save    Ctrl+E  export RTF    Ctrl+P  PNG snapshot    Ctrl+Q  quit\n")
	}
	flag.Parse()
	f.file = flag.Arg(0)
	return f
}
