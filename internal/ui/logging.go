package ui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// LogMsg is a regular string containing a log message. It is typed for
// identification as [tea.Msg] within a [tea.Program].
type LogMsg string

// teaProgramProvider is the part of a [tea.Program] the log writer needs.
type teaProgramProvider interface {
	Send(msg tea.Msg)
}

// TeaLogWriter is an implementation of an [io.Writer], for use inside a
// [slog.Handler], that forwards log lines to a [tea.Program] as [tea.Msg].
// Forwarding is decoupled through a buffered channel, so logging callers
// never block on the program's message loop.
type TeaLogWriter struct {
	program  teaProgramProvider
	doneChan chan struct{}
	logChan  chan LogMsg
}

// NewTeaLogWriter returns a pointer to a new [TeaLogWriter] and starts its
// forwarding goroutine, to be stopped with [TeaLogWriter.Stop].
func NewTeaLogWriter(program teaProgramProvider) *TeaLogWriter {
	wr := &TeaLogWriter{
		program:  program,
		doneChan: make(chan struct{}),
		logChan:  make(chan LogMsg, 1000), //nolint:mnd
	}

	go wr.forwardLogs()

	return wr
}

// Stop ends log forwarding. In-flight or late log lines are discarded after
// this call.
func (wr *TeaLogWriter) Stop() {
	close(wr.doneChan)
}

// forwardLogs drains the internal channel into the [tea.Program].
func (wr *TeaLogWriter) forwardLogs() {
	for {
		select {
		case <-wr.doneChan:
			return
		case msg := <-wr.logChan:
			wr.program.Send(msg)
		}
	}
}

// Write receives a log line from e.g. a [slog.Handler] and queues it for
// forwarding.
func (wr *TeaLogWriter) Write(p []byte) (int, error) {
	select {
	case <-wr.doneChan:
	case wr.logChan <- LogMsg(p):
	}

	return len(p), nil
}
