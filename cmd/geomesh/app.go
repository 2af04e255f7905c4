package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/desertwitch/geomesh"
	"github.com/desertwitch/geomesh/internal/render"
	"github.com/desertwitch/geomesh/internal/ui"
)

// graphProvider produces one topology snapshot per call.
type graphProvider interface {
	Graph() (*geomesh.Graph, error)
}

type App struct {
	source    graphProvider
	renderer  *render.Handler
	uiHandler *ui.Handler
}

func NewApp(source graphProvider, renderer *render.Handler, uiHandler *ui.Handler) *App {
	return &App{
		source:    source,
		renderer:  renderer,
		uiHandler: uiHandler,
	}
}

// Launch reads one snapshot and renders it to standard output.
func (app *App) Launch(ctx context.Context) error {
	graph, err := app.source.Graph()
	if err != nil {
		return fmt.Errorf("(app) %w", err)
	}

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("(app) %w", err)
	}

	slog.Info("Decoded one topology snapshot.",
		"summary", app.renderer.Summary(graph),
	)

	fmt.Print(app.renderer.Tree(graph)) //nolint:forbidigo

	return nil
}

// LaunchUI hands the terminal to the interactive topology browser.
func (app *App) LaunchUI() error {
	if err := app.uiHandler.Launch(); err != nil {
		return fmt.Errorf("(app-ui) %w", err)
	}

	return nil
}
