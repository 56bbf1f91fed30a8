package storage

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"tickwatch/internal/core/model"
)

// StateVersion is the current version of the persisted timer state.
const StateVersion = 1

// ErrCorruptState indicates stored state exists but cannot be trusted.
var ErrCorruptState = errors.New("corrupt timer state")

// Backend names accepted by Open.
const (
	BackendYAML   = "yaml"
	BackendSQLite = "sqlite"
)

// Store persists the timer mode and remaining countdown duration.
type Store interface {
	Load() (model.SavedState, error)
	Save(state model.SavedState) error
	Close() error
}

// Open returns the store for backend. An empty path places the state
// file in dir under the backend's default file name.
func Open(backend, path, dir string) (Store, error) {
	switch strings.ToLower(strings.TrimSpace(backend)) {
	case "", BackendYAML:
		if path == "" {
			path = filepath.Join(dir, stateFileName)
		}
		return NewYAMLStore(path), nil
	case BackendSQLite:
		if path == "" {
			path = filepath.Join(dir, stateDatabaseName)
		}
		return NewSQLiteStore(path)
	default:
		return nil, fmt.Errorf("open state store: unknown backend %q", backend)
	}
}

// decodeState checks the raw stored fields and builds a SavedState.
func decodeState(version int, mode string, remaining int64) (model.SavedState, error) {
	if version != StateVersion {
		return model.DefaultSavedState(), fmt.Errorf("%w: unsupported version %d", ErrCorruptState, version)
	}
	parsedMode, err := model.ParseMode(mode)
	if err != nil {
		return model.DefaultSavedState(), fmt.Errorf("%w: %v", ErrCorruptState, err)
	}
	state := model.SavedState{Mode: parsedMode, Remaining: remaining}
	if err := state.Validate(); err != nil {
		return model.DefaultSavedState(), fmt.Errorf("%w: %v", ErrCorruptState, err)
	}
	return state, nil
}
