// Package ui implements an interactive topology browser using [tea].
package ui

import (
	"context"
	"fmt"
	"sync/atomic"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertwitch/geomesh"
	"github.com/desertwitch/geomesh/internal/render"
)

// graphProvider produces a fresh topology snapshot on demand.
type graphProvider interface {
	Graph() (*geomesh.Graph, error)
}

// Handler is the principal implementation of a user interface [Handler].
type Handler struct {
	program *tea.Program

	LogWriter *TeaLogWriter

	Ready  atomic.Bool
	Failed atomic.Bool
}

// NewHandler returns a pointer to a new user interface [Handler]. The loader
// is invoked once at startup and again on every refresh request.
func NewHandler(ctx context.Context, cancel context.CancelFunc, loader graphProvider, renderer *render.Handler) *Handler {
	handler := &Handler{}

	model := NewTeaModel(handler, loader, renderer, cancel)
	handler.program = tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	handler.LogWriter = NewTeaLogWriter(handler.program)

	return handler
}

// Launch starts the topology browser (the [tea.Program]).
func (uiHandler *Handler) Launch() error {
	defer uiHandler.LogWriter.Stop()

	if _, err := uiHandler.program.Run(); err != nil {
		uiHandler.Failed.Store(true)

		return fmt.Errorf("(ui) %w", err)
	}

	return nil
}
