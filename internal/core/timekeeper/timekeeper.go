package timekeeper

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"tickwatch/internal/core/model"
)

// ErrDurationRequired indicates a countdown start needs a duration first.
var ErrDurationRequired = errors.New("countdown duration required")

// StateStore persists the part of the timer that survives a restart.
type StateStore interface {
	Load() (model.SavedState, error)
	Save(state model.SavedState) error
}

// Notifier raises the countdown-finished alert.
type Notifier interface {
	NotifyExpired() error
}

// Config contains runtime options for TimeKeeper.
type Config struct {
	TickInterval time.Duration
	Clock        Clock
	Notifier     Notifier
	Logger       *slog.Logger
}

// TimeKeeper is the stopwatch/countdown state machine.
// All commands and ticks are serialized by a single mutex.
type TimeKeeper struct {
	mu         sync.Mutex
	options    Config
	store      StateStore
	logger     *slog.Logger
	mode       model.Mode
	running    bool
	paused     bool
	startEpoch time.Time
	pauseEpoch time.Time
	remaining  int64
	display    int64
	laps       []int64
	events     []chan Event
	looping    bool
	closed     bool
}

// New creates a TimeKeeper and restores the saved mode and remaining duration.
// A nil store keeps state in memory only.
func New(store StateStore, options Config) *TimeKeeper {
	if options.TickInterval <= 0 {
		options.TickInterval = time.Second
	}
	if options.Clock == nil {
		options.Clock = SystemClock
	}
	logger := options.Logger
	if logger == nil {
		logger = slog.Default()
	}

	saved := model.DefaultSavedState()
	if store != nil {
		loaded, err := store.Load()
		if err != nil {
			logger.Warn("load timer state, using defaults", "err", err)
		}
		if loaded.Validate() == nil {
			saved = loaded
		}
	}

	keeper := &TimeKeeper{
		options:   options,
		store:     store,
		logger:    logger,
		mode:      saved.Mode,
		remaining: saved.Remaining,
	}
	keeper.display = keeper.idleDisplayLocked()
	return keeper
}

// Subscribe registers a new observer channel.
func (keeper *TimeKeeper) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	if keeper.closed {
		close(ch)
		return ch
	}
	keeper.events = append(keeper.events, ch)
	return ch
}

// Run drives the tick loop until ctx is cancelled, then closes observers.
func (keeper *TimeKeeper) Run(ctx context.Context) {
	keeper.mu.Lock()
	if keeper.looping || keeper.closed {
		keeper.mu.Unlock()
		return
	}
	keeper.looping = true
	keeper.mu.Unlock()

	ticker := time.NewTicker(keeper.options.TickInterval)
	defer ticker.Stop()
	defer keeper.closeObservers()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			keeper.tick(keeper.options.Clock.Now())
		}
	}
}

// Snapshot returns the current observable state.
func (keeper *TimeKeeper) Snapshot() model.Snapshot {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	return keeper.snapshotLocked(keeper.options.Clock.Now())
}

// NeedsDuration reports whether Start would ask for a countdown duration.
func (keeper *TimeKeeper) NeedsDuration() bool {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	return !keeper.running && keeper.mode == model.ModeCountdown && keeper.remaining == 0
}

// Start begins a run segment. A countdown without remaining time
// returns ErrDurationRequired and leaves the state untouched.
func (keeper *TimeKeeper) Start() error {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	if keeper.running {
		return nil
	}
	if keeper.mode == model.ModeCountdown && keeper.remaining == 0 {
		return ErrDurationRequired
	}
	keeper.startLocked(keeper.options.Clock.Now())
	return nil
}

// StartWithDuration validates a duration entry, applies it to the
// countdown and starts. Invalid input leaves the state untouched.
func (keeper *TimeKeeper) StartWithDuration(entry DurationEntry) error {
	total, err := entry.Total()
	if err != nil {
		return err
	}

	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	if keeper.running {
		return nil
	}
	if keeper.mode == model.ModeCountdown {
		keeper.remaining = total
	}
	keeper.startLocked(keeper.options.Clock.Now())
	return nil
}

// Stop ends the current run segment. A countdown keeps what is left.
func (keeper *TimeKeeper) Stop() {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	if !keeper.running {
		return
	}

	now := keeper.effectiveNowLocked(keeper.options.Clock.Now())
	elapsed := keeper.elapsedLocked(now)
	if keeper.mode == model.ModeCountdown {
		keeper.remaining -= elapsed
		if keeper.remaining < 0 {
			keeper.remaining = 0
		}
		keeper.display = keeper.remaining
	} else {
		keeper.display = elapsed
	}
	keeper.running = false
	keeper.paused = false
	keeper.pauseEpoch = time.Time{}

	keeper.persistLocked()
	keeper.emitLocked(EventStateChange, now)
}

// Pause freezes a running timer.
func (keeper *TimeKeeper) Pause() {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	if keeper.running && !keeper.paused {
		keeper.pauseLocked(keeper.options.Clock.Now())
	}
}

// Resume unfreezes a paused timer.
func (keeper *TimeKeeper) Resume() {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	if keeper.running && keeper.paused {
		keeper.resumeLocked(keeper.options.Clock.Now())
	}
}

// TogglePause pauses a running timer or resumes a paused one.
func (keeper *TimeKeeper) TogglePause() {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	if !keeper.running {
		return
	}
	if keeper.paused {
		keeper.resumeLocked(keeper.options.Clock.Now())
		return
	}
	keeper.pauseLocked(keeper.options.Clock.Now())
}

// Reset stops the timer and clears laps and displayed time.
func (keeper *TimeKeeper) Reset() {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()

	keeper.resetLocked()
	keeper.persistLocked()
	keeper.emitLocked(EventStateChange, keeper.options.Clock.Now())
}

// Lap records the current stopwatch elapsed time.
func (keeper *TimeKeeper) Lap() {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	if keeper.mode != model.ModeStopwatch || !keeper.running {
		return
	}

	now := keeper.effectiveNowLocked(keeper.options.Clock.Now())
	keeper.laps = append(keeper.laps, keeper.elapsedLocked(now))
	keeper.emitLocked(EventStateChange, now)
}

// SwitchMode resets the timer and flips between stopwatch and countdown.
func (keeper *TimeKeeper) SwitchMode() {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()

	keeper.resetLocked()
	keeper.mode = keeper.mode.Toggle()
	keeper.remaining = 0
	keeper.display = 0

	keeper.persistLocked()
	keeper.emitLocked(EventStateChange, keeper.options.Clock.Now())
}

func (keeper *TimeKeeper) tick(now time.Time) {
	keeper.mu.Lock()
	if !keeper.running || keeper.paused {
		keeper.mu.Unlock()
		return
	}

	expired := false
	switch keeper.mode {
	case model.ModeStopwatch:
		keeper.display = keeper.elapsedLocked(now)
		keeper.emitLocked(EventProgress, now)
	case model.ModeCountdown:
		if keeper.remaining <= 0 {
			keeper.running = false
			keeper.display = 0
			keeper.emitLocked(EventStateChange, now)
			break
		}
		left := keeper.remaining - keeper.elapsedLocked(now)
		if left > 0 {
			keeper.display = left
			keeper.emitLocked(EventProgress, now)
			break
		}
		keeper.display = 0
		keeper.remaining = 0
		keeper.running = false
		expired = true
		keeper.persistLocked()
		keeper.emitLocked(EventExpired, now)
	}
	notifier := keeper.options.Notifier
	keeper.mu.Unlock()

	if expired {
		keeper.logger.Info("countdown finished")
		if notifier == nil {
			return
		}
		if err := notifier.NotifyExpired(); err != nil {
			keeper.logger.Debug("expiry notification failed", "err", err)
		}
	}
}

func (keeper *TimeKeeper) startLocked(now time.Time) {
	keeper.running = true
	keeper.paused = false
	keeper.startEpoch = now
	keeper.pauseEpoch = time.Time{}
	keeper.display = keeper.idleDisplayLocked()

	keeper.persistLocked()
	keeper.emitLocked(EventStateChange, now)
}

func (keeper *TimeKeeper) pauseLocked(now time.Time) {
	keeper.display = keeper.runningDisplayLocked(now)
	keeper.paused = true
	keeper.pauseEpoch = now

	keeper.persistLocked()
	keeper.emitLocked(EventStateChange, now)
}

// resumeLocked moves the start epoch forward by the paused interval so
// elapsed time excludes it.
func (keeper *TimeKeeper) resumeLocked(now time.Time) {
	keeper.startEpoch = keeper.startEpoch.Add(now.Sub(keeper.pauseEpoch))
	keeper.paused = false
	keeper.pauseEpoch = time.Time{}

	keeper.persistLocked()
	keeper.emitLocked(EventStateChange, now)
}

func (keeper *TimeKeeper) resetLocked() {
	keeper.running = false
	keeper.paused = false
	keeper.pauseEpoch = time.Time{}
	keeper.laps = nil
	keeper.display = 0
	if keeper.mode == model.ModeCountdown {
		keeper.remaining = 0
	}
}

// effectiveNowLocked pins "now" to the pause instant while paused.
func (keeper *TimeKeeper) effectiveNowLocked(now time.Time) time.Time {
	if keeper.paused {
		return keeper.pauseEpoch
	}
	return now
}

func (keeper *TimeKeeper) elapsedLocked(now time.Time) int64 {
	elapsed := now.Sub(keeper.startEpoch)
	if elapsed < 0 {
		return 0
	}
	return int64(elapsed / time.Second)
}

func (keeper *TimeKeeper) runningDisplayLocked(now time.Time) int64 {
	elapsed := keeper.elapsedLocked(now)
	if keeper.mode == model.ModeStopwatch {
		return elapsed
	}
	left := keeper.remaining - elapsed
	if left < 0 {
		return 0
	}
	return left
}

func (keeper *TimeKeeper) idleDisplayLocked() int64 {
	if keeper.mode == model.ModeCountdown {
		return keeper.remaining
	}
	return 0
}

func (keeper *TimeKeeper) statusLocked() model.Status {
	switch {
	case keeper.running && keeper.paused:
		return model.StatusPaused
	case keeper.running:
		return model.StatusRunning
	default:
		return model.StatusIdle
	}
}

func (keeper *TimeKeeper) snapshotLocked(now time.Time) model.Snapshot {
	laps := make([]model.Lap, 0, len(keeper.laps))
	for index, elapsed := range keeper.laps {
		laps = append(laps, model.Lap{Number: index + 1, Elapsed: elapsed})
	}
	return model.Snapshot{
		Mode:      keeper.mode,
		Status:    keeper.statusLocked(),
		Display:   keeper.display,
		Remaining: keeper.remaining,
		Laps:      laps,
		At:        now,
	}
}

func (keeper *TimeKeeper) persistLocked() {
	if keeper.store == nil {
		return
	}
	state := model.SavedState{Mode: keeper.mode, Remaining: keeper.remaining}
	if err := keeper.store.Save(state); err != nil {
		keeper.logger.Warn("save timer state", "mode", state.Mode, "remaining", state.Remaining, "err", err)
	}
}

func (keeper *TimeKeeper) emitLocked(eventType EventType, now time.Time) {
	event := Event{
		Type:     eventType,
		Snapshot: keeper.snapshotLocked(now),
		At:       now,
	}
	for _, ch := range keeper.events {
		select {
		case ch <- event:
			continue
		default:
		}
		if eventType != EventExpired {
			continue
		}
		// A full buffer gives up its oldest event so expiry still arrives.
		select {
		case <-ch:
		default:
		}
		select {
		case ch <- event:
		default:
			keeper.logger.Warn("expiry event dropped", "subscribers", len(keeper.events))
		}
	}
}

func (keeper *TimeKeeper) closeObservers() {
	keeper.mu.Lock()
	events := keeper.events
	keeper.events = nil
	keeper.closed = true
	keeper.looping = false
	keeper.mu.Unlock()

	for _, ch := range events {
		close(ch)
	}
}
