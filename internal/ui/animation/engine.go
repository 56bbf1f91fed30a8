package animation

import (
	"context"
	"sync"
	"time"
)

// Engine toggles a target's visibility in timed sequences. Only one
// sequence runs at a time; starting a new one cancels the previous.
type Engine struct {
	mu         sync.Mutex
	setVisible func(bool)
	cancel     context.CancelFunc
	done       chan struct{}
}

// New creates an engine driving setVisible. setVisible is called from the
// engine goroutine, so UI callers must marshal it onto their own thread.
func New(setVisible func(bool)) *Engine {
	return &Engine{setVisible: setVisible}
}

// Blink starts spec and returns a channel closed when it ends. The target
// is always left visible.
func (engine *Engine) Blink(ctx context.Context, spec BlinkSpec) <-chan struct{} {
	engine.mu.Lock()
	if engine.cancel != nil {
		engine.cancel()
	}
	runCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	engine.cancel = cancel
	engine.done = done
	engine.mu.Unlock()

	go func() {
		defer close(done)
		defer cancel()
		defer engine.setVisible(true)
		engine.run(runCtx, spec)
	}()
	return done
}

// Stop terminates any active sequence and waits for it to finish.
func (engine *Engine) Stop() {
	engine.mu.Lock()
	cancel := engine.cancel
	done := engine.done
	engine.cancel = nil
	engine.done = nil
	engine.mu.Unlock()

	if cancel != nil {
		cancel()
		<-done
	}
}

func (engine *Engine) run(ctx context.Context, spec BlinkSpec) {
	for i := 0; i < spec.Count; i++ {
		engine.setVisible(false)
		if !sleepWithContext(ctx, spec.Off) {
			return
		}
		engine.setVisible(true)
		if !sleepWithContext(ctx, spec.On) {
			return
		}
	}
}

func sleepWithContext(ctx context.Context, duration time.Duration) bool {
	timer := time.NewTimer(duration)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
