package lifecycle

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"
)

// Lifecycle ends the event pump on Stop or on SIGINT/SIGTERM.
type Lifecycle struct {
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func New() *Lifecycle {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	return &Lifecycle{ctx: ctx, cancel: cancel}
}

func (lc *Lifecycle) Context() context.Context {
	return lc.ctx
}

func (lc *Lifecycle) ShouldStop() bool {
	select {
	case <-lc.ctx.Done():
		return true
	default:
		return false
	}
}

// OnStop runs fn once the lifecycle is stopped. Use it to wake a loop
// blocked on a device.
func (lc *Lifecycle) OnStop(fn func()) {
	lc.wg.Add(1)
	go func() {
		defer lc.wg.Done()
		<-lc.ctx.Done()
		fn()
	}()
}

// Stop cancels the lifecycle and waits for the OnStop callbacks.
func (lc *Lifecycle) Stop() {
	lc.cancel()
	lc.wg.Wait()
}
