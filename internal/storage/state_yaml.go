package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"gopkg.in/yaml.v3"

	"tickwatch/internal/core/model"
)

const stateFileName = "state.yaml"

type yamlState struct {
	Version          int       `yaml:"version"`
	Mode             string    `yaml:"mode"`
	RemainingSeconds int64     `yaml:"remaining_seconds"`
	SavedAt          time.Time `yaml:"saved_at"`
}

// YAMLStore keeps the timer state in a single YAML file.
type YAMLStore struct {
	mu   sync.Mutex
	path string
}

// NewYAMLStore creates a store backed by the file at path.
func NewYAMLStore(path string) *YAMLStore {
	return &YAMLStore{path: path}
}

// Path returns the backing file location.
func (store *YAMLStore) Path() string {
	return store.path
}

// Load reads the timer state from YAML.
// If the file does not exist, the default state is returned.
func (store *YAMLStore) Load() (model.SavedState, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	rawData, err := os.ReadFile(store.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return model.DefaultSavedState(), nil
		}
		return model.DefaultSavedState(), fmt.Errorf("read state file: %w", err)
	}

	var fileData yamlState
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return model.DefaultSavedState(), fmt.Errorf("%w: parse state yaml: %v", ErrCorruptState, err)
	}

	return decodeState(fileData.Version, fileData.Mode, fileData.RemainingSeconds)
}

// Save writes the timer state to YAML, replacing the previous file atomically.
func (store *YAMLStore) Save(state model.SavedState) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(store.path), 0o755); err != nil {
		return fmt.Errorf("create state directory: %w", err)
	}

	fileData := yamlState{
		Version:          StateVersion,
		Mode:             string(state.Mode),
		RemainingSeconds: state.Remaining,
		SavedAt:          time.Now().UTC(),
	}

	serialized, err := yaml.Marshal(fileData)
	if err != nil {
		return fmt.Errorf("marshal state yaml: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(store.path), ".state-*.yaml")
	if err != nil {
		return fmt.Errorf("create temp state file: %w", err)
	}
	tempPath := tempFile.Name()
	if _, err := tempFile.Write(serialized); err != nil {
		tempFile.Close()
		os.Remove(tempPath)
		return fmt.Errorf("write state file: %w", err)
	}
	if err := tempFile.Close(); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("close state file: %w", err)
	}
	if err := os.Rename(tempPath, store.path); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("replace state file: %w", err)
	}

	return nil
}

// Close is a no-op; every Save writes the file completely.
func (store *YAMLStore) Close() error {
	return nil
}
