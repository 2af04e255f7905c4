package main

import (
	"context"
	"flag"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/desertwitch/geomesh/internal/configuration"
	"github.com/desertwitch/geomesh/internal/render"
	"github.com/desertwitch/geomesh/internal/ui"
	"github.com/lmittmann/tint"
)

const (
	stackTraceBufMax = 1 << 24

	defaultConfigPath = "/usr/local/etc/geomesh.conf"
)

//nolint:gochecknoglobals
var (
	ExitCode = 0
	Version  string

	configPath = flag.String("config", defaultConfigPath, "path of the configuration file")
	inputFile  = flag.String("file", "", "decode a document file instead of the running kernel")
	uiEnabled  = flag.Bool("ui", false, "browse the topology interactively")
	noStyle    = flag.Bool("no-style", false, "render without terminal styling")
)

func setupLogging(w io.Writer, level slog.Level) {
	slog.SetDefault(slog.New(
		tint.NewHandler(w, &tint.Options{
			Level:      level,
			TimeFormat: time.Kitchen,
		}),
	))
}

func setupSignalHandlers(cancel context.CancelFunc) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	go func() {
		<-sigChan
		cancel()
	}()

	sigChan2 := make(chan os.Signal, 1)
	signal.Notify(sigChan2, syscall.SIGUSR1)
	go func() {
		for range sigChan2 {
			buf := make([]byte, stackTraceBufMax)
			stacklen := runtime.Stack(buf, true)
			os.Stderr.Write(buf[:stacklen])
		}
	}()
}

func main() {
	defer func() {
		os.Exit(ExitCode)
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	flag.Parse()
	setupLogging(os.Stderr, slog.LevelInfo)
	setupSignalHandlers(cancel)

	configHandler := configuration.NewHandler(&configuration.GodotenvProvider{})

	settings, err := configHandler.LoadSettings(*configPath)
	if err != nil {
		slog.Error("Failed to read the configuration file.",
			"path", *configPath,
			"err", err,
		)
		ExitCode = 1

		return
	}
	setupLogging(os.Stderr, settings.LogLevel)

	// Command-line flags take precedence over the configuration file.
	if *inputFile != "" {
		settings.InputFile = *inputFile
	}
	if *uiEnabled {
		settings.UIEnabled = true
	}

	source, err := establishSource(settings.InputFile)
	if err != nil {
		slog.Error("Failed to establish a topology source.",
			"err", err,
		)
		ExitCode = 1

		return
	}

	renderer := render.NewHandler(!*noStyle)

	var uiHandler *ui.Handler
	if settings.UIEnabled {
		uiHandler = ui.NewHandler(ctx, cancel, source, renderer)
	}

	app := NewApp(source, renderer, uiHandler)

	if settings.UIEnabled {
		// While the browser owns the terminal, logs render inside it.
		setupLogging(uiHandler.LogWriter, settings.LogLevel)
		defer setupLogging(os.Stderr, settings.LogLevel)

		if err := app.LaunchUI(); err != nil {
			ExitCode = 1
		}

		return
	}

	if err := app.Launch(ctx); err != nil {
		ExitCode = 1
	}
}
