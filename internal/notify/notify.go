// Package notify delivers the countdown-finished alert. Every channel is
// best effort: a missing audio device or notification service is logged
// and otherwise ignored.
package notify

import (
	"log/slog"

	"tickwatch/internal/core/model"
)

// Notifier raises the countdown-finished alert through one channel.
type Notifier interface {
	NotifyExpired() error
}

// Func adapts a plain function to Notifier.
type Func func() error

// NotifyExpired calls fn.
func (fn Func) NotifyExpired() error {
	return fn()
}

// Log writes the alert to a logger. It never fails.
type Log struct {
	Logger *slog.Logger
}

// NotifyExpired logs the countdown completion.
func (notifier Log) NotifyExpired() error {
	logger := notifier.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.Info(model.ExpiredTitle, "message", model.ExpiredMessage)
	return nil
}

// Chain fans the alert out to several notifiers and swallows their errors.
type Chain struct {
	notifiers []Notifier
	logger    *slog.Logger
}

// NewChain creates a chain; nil entries are skipped.
func NewChain(logger *slog.Logger, notifiers ...Notifier) *Chain {
	if logger == nil {
		logger = slog.Default()
	}
	chain := &Chain{logger: logger}
	for _, notifier := range notifiers {
		if notifier != nil {
			chain.notifiers = append(chain.notifiers, notifier)
		}
	}
	return chain
}

// NotifyExpired calls every notifier in order. It always returns nil.
func (chain *Chain) NotifyExpired() error {
	for _, notifier := range chain.notifiers {
		if err := notifier.NotifyExpired(); err != nil {
			chain.logger.Debug("notifier failed", "err", err)
		}
	}
	return nil
}
