package runner

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"
)

// SignalManager handles OS signals and context cancellation for the loop.
// Each Reset re-arms a fresh context, so an interrupt can cancel a single
// prompt without ending the whole session.
type SignalManager struct {
	parent context.Context
	notify bool

	mu     sync.Mutex
	ctx    context.Context
	cancel context.CancelFunc
}

// NewSignalManager creates a manager derived from parent. When notify is
// true it listens for SIGINT and SIGTERM; otherwise only Interrupt and the
// parent cancel it.
func NewSignalManager(parent context.Context, notify bool) *SignalManager {
	if parent == nil {
		parent = context.Background()
	}
	sm := &SignalManager{parent: parent, notify: notify}
	sm.Reset()
	return sm
}

// Context returns the current signal context.
func (sm *SignalManager) Context() context.Context {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.ctx
}

// Reset re-arms the signal listener.
// Should be called after a signal has been successfully handled/intercepted
// to allow capturing subsequent signals.
func (sm *SignalManager) Reset() {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	if sm.cancel != nil {
		sm.cancel()
	}
	if sm.notify {
		sm.ctx, sm.cancel = signal.NotifyContext(sm.parent, os.Interrupt, syscall.SIGTERM)
		return
	}
	sm.ctx, sm.cancel = context.WithCancel(sm.parent)
}

// Interrupt cancels the current context as if a signal had arrived.
func (sm *SignalManager) Interrupt() {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.cancel()
}

// Stop permanently stops the signal listener.
func (sm *SignalManager) Stop() {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	if sm.cancel != nil {
		sm.cancel()
	}
}

// CheckRace waits briefly to see if a context cancellation follows an error.
// On some terminals Ctrl+C surfaces as an EOF slightly before the signal
// context is cancelled.
func (sm *SignalManager) CheckRace() {
	ctx := sm.Context()
	if ctx.Err() == nil {
		select {
		case <-ctx.Done():
		case <-time.After(100 * time.Millisecond):
		}
	}
}
