package runner

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSignalManager_Lifecycle(t *testing.T) {
	sm := NewSignalManager(context.Background(), true)
	defer sm.Stop()

	// 1. Initial State
	ctx1 := sm.Context()
	assert.NotNil(t, ctx1)
	assert.NoError(t, ctx1.Err())

	// 2. Reset (should create new context and cancel the old one)
	sm.Reset()
	ctx2 := sm.Context()
	assert.NotEqual(t, ctx1, ctx2, "Reset should generate a new context")
	assert.ErrorIs(t, ctx1.Err(), context.Canceled)
	assert.NoError(t, ctx2.Err())

	// 3. Stop (should cancel context)
	sm.Stop()
	assert.ErrorIs(t, ctx2.Err(), context.Canceled)
}

func TestSignalManager_InterruptThenReset(t *testing.T) {
	sm := NewSignalManager(context.Background(), false)
	defer sm.Stop()

	sm.Interrupt()
	assert.Error(t, sm.Context().Err())

	sm.Reset()
	assert.NoError(t, sm.Context().Err())
}

func TestSignalManager_ParentCancel(t *testing.T) {
	parent, cancel := context.WithCancel(context.Background())
	sm := NewSignalManager(parent, false)
	defer sm.Stop()

	cancel()
	assert.ErrorIs(t, sm.Context().Err(), context.Canceled)
}

func TestSignalManager_CheckRace(t *testing.T) {
	// CheckRace should not block indefinitely if context is not cancelled.
	sm := NewSignalManager(context.Background(), false)
	defer sm.Stop()

	start := time.Now()
	sm.CheckRace()
	elapsed := time.Since(start)

	assert.GreaterOrEqual(t, elapsed, 100*time.Millisecond)
	assert.Less(t, elapsed, 2*time.Second)
}
