package clipboard

import (
	"time"

	"github.com/atotto/clipboard"
	"go.uber.org/zap"

	"github.com/draftforge/draftforge/internal/engine/document"
)

// System abstracts the OS clipboard. The default implementation uses
// the platform clipboard; tests substitute a fake.
type System interface {
	ReadAll() (string, error)
	WriteAll(text string) error
}

// osClipboard is the production System backed by atotto/clipboard.
type osClipboard struct{}

func (osClipboard) ReadAll() (string, error)   { return clipboard.ReadAll() }
func (osClipboard) WriteAll(text string) error { return clipboard.WriteAll(text) }

// Transport holds the authoritative in-memory clipboard payload and
// bridges it to the OS clipboard. The in-memory copy survives host
// editor remounts; OS failures (permission denial, missing clipboard
// utility) never surface to the user.
type Transport struct {
	source Source
	system System
	log    *zap.Logger
	now    func() time.Time

	payload []document.Serialized
}

// Option configures a Transport.
type Option func(*Transport)

// WithSystem replaces the OS clipboard implementation.
func WithSystem(system System) Option {
	return func(t *Transport) { t.system = system }
}

// WithLogger sets the transport logger.
func WithLogger(log *zap.Logger) Option {
	return func(t *Transport) { t.log = log }
}

// WithClock replaces the timestamp source for the copiedAt field.
func WithClock(now func() time.Time) Option {
	return func(t *Transport) { t.now = now }
}

// NewTransport creates a transport stamping envelopes with the given
// source identity.
func NewTransport(source Source, opts ...Option) *Transport {
	t := &Transport{
		source: source,
		system: osClipboard{},
		log:    zap.NewNop(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Store records forest as the in-memory payload and best-effort writes
// the JSON envelope to the OS clipboard. OS write failures are logged
// at debug level and otherwise swallowed; the in-memory copy remains
// authoritative regardless.
func (t *Transport) Store(forest []document.Serialized) {
	t.payload = forest

	env := Envelope{
		Version:    EnvelopeVersion,
		Source:     t.source,
		Components: forest,
		CopiedAt:   t.now().UTC().Format(time.RFC3339),
	}
	data, err := env.Encode()
	if err != nil {
		t.log.Debug("clipboard envelope encode failed", zap.Error(err))
		return
	}
	if err := t.system.WriteAll(string(data)); err != nil {
		t.log.Debug("os clipboard write failed", zap.Error(err))
	}
}

// HasPayload returns true if an in-memory payload exists.
func (t *Transport) HasPayload() bool {
	return len(t.payload) > 0
}

// Load returns the in-memory payload, or false when none exists.
func (t *Transport) Load() ([]document.Serialized, bool) {
	if len(t.payload) == 0 {
		return nil, false
	}
	return t.payload, true
}

// LoadSystem reads the OS clipboard and returns a validated envelope
// forest. Unreadable, malformed or wrong-version content returns
// false silently.
func (t *Transport) LoadSystem() ([]document.Serialized, bool) {
	text, err := t.system.ReadAll()
	if err != nil {
		t.log.Debug("os clipboard read failed", zap.Error(err))
		return nil, false
	}
	env, ok := ParseEnvelope(text)
	if !ok {
		t.log.Debug("os clipboard content is not a valid envelope")
		return nil, false
	}
	return env.Components, true
}

// Clear drops the in-memory payload. The OS clipboard is left alone.
func (t *Transport) Clear() {
	t.payload = nil
}
