package app

import (
	"fmt"
	"os"
	"sync"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/draftforge/draftforge/internal/clipboard"
	"github.com/draftforge/draftforge/internal/config"
	"github.com/draftforge/draftforge/internal/dispatcher"
	"github.com/draftforge/draftforge/internal/engine/document"
)

// Options configures the application.
type Options struct {
	// ConfigPath is the path to the configuration file.
	ConfigPath string

	// DocumentPath is the document to open. Empty opens the built-in
	// sample document.
	DocumentPath string
}

// App coordinates the inspector: configuration, logging, the document
// under edit, the dispatcher and the terminal screen.
type App struct {
	mu sync.Mutex

	opts Options
	cfg  *config.Config
	log  *zap.Logger

	screen tcell.Screen
	disp   *dispatcher.Dispatcher

	doc    *document.Document
	status string
	cursor int
	rows   []row

	done     chan struct{}
	doneOnce sync.Once
}

// New creates an application from the given options.
func New(opts Options) (*App, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, err
	}
	log, err := cfg.BuildLogger()
	if err != nil {
		return nil, err
	}

	doc, err := openDocument(opts.DocumentPath)
	if err != nil {
		return nil, err
	}

	km, err := cfg.BuildKeymap()
	if err != nil {
		return nil, err
	}

	a := &App{
		opts: opts,
		cfg:  cfg,
		log:  log,
		doc:  doc,
		done: make(chan struct{}),
	}

	a.disp, err = dispatcher.New(dispatcher.Config{
		Document:            a.currentDocument,
		Dispatch:            a.applyAction,
		Clipboard:           clipboard.NewTransport(cfg.Source(), clipboard.WithLogger(log)),
		Keymap:              km,
		Notify:              a.setStatus,
		Confirm:             a.confirm,
		BulkDeleteThreshold: cfg.BulkDeleteThreshold,
		Logger:              log,
	})
	if err != nil {
		return nil, err
	}

	a.rebuildRows()
	return a, nil
}

// openDocument loads the document at path, or the sample document when
// path is empty.
func openDocument(path string) (*document.Document, error) {
	if path == "" {
		return SampleDocument(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("app: opening %s: %w", path, err)
	}
	return document.Unmarshal(data)
}

// currentDocument is the dispatcher's document provider.
func (a *App) currentDocument() *document.Document {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.doc
}

// applyAction installs the snapshot a host action carries. Async
// completions arrive off the event loop, so the screen is woken with
// an interrupt event to repaint.
func (a *App) applyAction(action dispatcher.HostAction) {
	a.mu.Lock()
	a.doc = action.Data
	a.mu.Unlock()

	a.log.Debug("document updated",
		zap.String("action", string(action.Type)),
		zap.Bool("history", action.RecordHistory))

	a.mu.Lock()
	screen := a.screen
	a.mu.Unlock()
	if screen != nil {
		_ = screen.PostEvent(tcell.NewEventInterrupt(nil))
	}
}

// setStatus replaces the status-bar message.
func (a *App) setStatus(msg string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.status = msg
}

// Shutdown stops the event loop and releases the terminal. Safe to
// call more than once.
func (a *App) Shutdown() {
	a.doneOnce.Do(func() {
		close(a.done)
		a.mu.Lock()
		screen := a.screen
		a.mu.Unlock()
		if screen != nil {
			_ = screen.PostEvent(tcell.NewEventInterrupt(nil))
		}
		_ = a.log.Sync()
	})
}

// Save writes the current document back to its file. Without a
// document path it reports a status message and does nothing.
func (a *App) Save() error {
	if a.opts.DocumentPath == "" {
		a.setStatus("No document file to save to")
		return nil
	}
	data, err := document.Marshal(a.currentDocument())
	if err != nil {
		return err
	}
	if err := os.WriteFile(a.opts.DocumentPath, data, 0o644); err != nil {
		return fmt.Errorf("app: saving %s: %w", a.opts.DocumentPath, err)
	}
	a.setStatus(fmt.Sprintf("Saved %s", a.opts.DocumentPath))
	return nil
}

// Dispatcher exposes the dispatcher, primarily for tests.
func (a *App) Dispatcher() *dispatcher.Dispatcher {
	return a.disp
}
