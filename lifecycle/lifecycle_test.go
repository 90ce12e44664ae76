package lifecycle

import (
	"sync/atomic"
	"testing"
)

func TestStop(t *testing.T) {
	lc := New()
	if lc.ShouldStop() {
		t.Fatal("fresh lifecycle should not be stopped")
	}
	var called atomic.Int32
	lc.OnStop(func() { called.Add(1) })
	lc.OnStop(func() { called.Add(1) })

	lc.Stop()

	if !lc.ShouldStop() {
		t.Error("ShouldStop() = false after Stop")
	}
	if got := called.Load(); got != 2 {
		t.Errorf("OnStop callbacks ran %d times, want 2", got)
	}
	if lc.Context().Err() == nil {
		t.Error("context not cancelled after Stop")
	}
}
