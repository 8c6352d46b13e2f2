package view

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/trapdata/companion/internal/bridge"
)

// ErrNoBridge is returned by Ping when the view was mounted without a host.
var ErrNoBridge = errors.New("view: not hooked up to a desktop app")

const pingPrefix = "PING"

// State is a snapshot of what the view renders.
type State struct {
	HasBridge bool   `json:"has_bridge"`
	Message   string `json:"message"`
}

func (s State) Status() string {
	if s.HasBridge {
		return "Yes"
	}
	return "No"
}

func (s State) DisplayMessage() string {
	if s.Message == "" {
		return "-"
	}
	return s.Message
}

type Option func(*View)

func WithClock(now func() time.Time) Option {
	return func(v *View) { v.now = now }
}

func WithLogger(logger *slog.Logger) Option {
	return func(v *View) { v.logger = logger }
}

// OnChange registers fn to be called after every host push.
func OnChange(fn func(State)) Option {
	return func(v *View) { v.onChange = fn }
}

type View struct {
	host     bridge.Host
	now      func() time.Time
	logger   *slog.Logger
	onChange func(State)

	mountOnce sync.Once

	// notifyMu keeps change notifications in the order messages are stored.
	notifyMu sync.Mutex

	mu        sync.RWMutex
	hasBridge bool
	message   string
}

func New(host bridge.Host, opts ...Option) *View {
	v := &View{
		host:   host,
		now:    time.Now,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Mount checks for the host once. When present, the view installs its
// setter on the host. Calls after the first do nothing.
func (v *View) Mount() {
	v.mountOnce.Do(func() {
		if v.host == nil {
			v.logger.Info("no desktop app found, view not connected")
			return
		}

		v.mu.Lock()
		v.hasBridge = true
		v.mu.Unlock()

		v.host.SetReceiver(v.SetMessage)
		v.logger.Debug("view mounted with desktop bridge")
	})
}

// SetMessage is the callback installed on the host.
func (v *View) SetMessage(text string) {
	v.notifyMu.Lock()
	defer v.notifyMu.Unlock()

	v.mu.Lock()
	v.message = text
	st := State{HasBridge: v.hasBridge, Message: v.message}
	v.mu.Unlock()

	v.logger.Debug("message pushed by host", "text", text)
	if v.onChange != nil {
		v.onChange(st)
	}
}

// Ping sends a PING with the current timestamp to the host.
func (v *View) Ping(ctx context.Context) error {
	v.mu.RLock()
	connected := v.hasBridge
	v.mu.RUnlock()

	if !connected {
		v.logger.Warn("ping without desktop bridge ignored")
		return ErrNoBridge
	}

	msg := PingMessage(v.now())
	if err := v.host.SendMessage(ctx, msg); err != nil {
		return fmt.Errorf("send %q: %w", msg, err)
	}
	return nil
}

func (v *View) State() State {
	v.mu.RLock()
	defer v.mu.RUnlock()

	return State{HasBridge: v.hasBridge, Message: v.message}
}

// PingMessage formats t as a ping in Unix milliseconds.
func PingMessage(t time.Time) string {
	return fmt.Sprintf("%s (%d)", pingPrefix, t.UnixMilli())
}
