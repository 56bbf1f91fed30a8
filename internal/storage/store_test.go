package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tickwatch/internal/core/model"
)

func openStores(t *testing.T) map[string]Store {
	t.Helper()
	dir := t.TempDir()

	sqliteStore, err := NewSQLiteStore(filepath.Join(dir, "state.db"))
	require.NoError(t, err)
	t.Cleanup(func() { sqliteStore.Close() })

	return map[string]Store{
		BackendYAML:   NewYAMLStore(filepath.Join(dir, "state.yaml")),
		BackendSQLite: sqliteStore,
	}
}

func TestStoreRoundTrip(t *testing.T) {
	states := []model.SavedState{
		{Mode: model.ModeStopwatch, Remaining: 0},
		{Mode: model.ModeCountdown, Remaining: 5},
		{Mode: model.ModeCountdown, Remaining: 360000},
		{Mode: model.ModeStopwatch, Remaining: 42},
	}

	for name, store := range openStores(t) {
		t.Run(name, func(t *testing.T) {
			for _, state := range states {
				require.NoError(t, store.Save(state))

				got, err := store.Load()
				require.NoError(t, err)
				assert.Equal(t, state, got)
			}
		})
	}
}

func TestStoreLoadWithoutPriorState(t *testing.T) {
	for name, store := range openStores(t) {
		t.Run(name, func(t *testing.T) {
			got, err := store.Load()
			require.NoError(t, err)
			assert.Equal(t, model.SavedState{Mode: model.ModeStopwatch, Remaining: 0}, got)
		})
	}
}

func TestYAMLStoreCorruptFile(t *testing.T) {
	tests := map[string]string{
		"garbage":          "\x00\x01not: [yaml",
		"unknown mode":     "version: 1\nmode: hourglass\nremaining_seconds: 3\n",
		"negative":         "version: 1\nmode: countdown\nremaining_seconds: -10\n",
		"future version":   "version: 7\nmode: countdown\nremaining_seconds: 10\n",
		"missing version":  "mode: countdown\nremaining_seconds: 10\n",
		"wrong field type": "version: 1\nmode: countdown\nremaining_seconds: soon\n",
	}

	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "state.yaml")
			require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

			got, err := NewYAMLStore(path).Load()
			assert.ErrorIs(t, err, ErrCorruptState)
			assert.Equal(t, model.DefaultSavedState(), got)
		})
	}
}

func TestYAMLStoreCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "state.yaml")
	store := NewYAMLStore(path)

	require.NoError(t, store.Save(model.SavedState{Mode: model.ModeCountdown, Remaining: 9}))

	_, err := os.Stat(path)
	require.NoError(t, err)
	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temp files left behind")
}

func TestSQLiteStoreCorruptRows(t *testing.T) {
	store, err := NewSQLiteStore(filepath.Join(t.TempDir(), "state.db"))
	require.NoError(t, err)
	defer store.Close()

	require.NoError(t, store.Save(model.SavedState{Mode: model.ModeCountdown, Remaining: 30}))
	_, err = store.db.Exec(`UPDATE timer_state SET value = 'soon' WHERE key = ?`, keyRemaining)
	require.NoError(t, err)

	got, err := store.Load()
	assert.ErrorIs(t, err, ErrCorruptState)
	assert.Equal(t, model.DefaultSavedState(), got)
}

func TestSQLiteStoreSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.db")

	first, err := NewSQLiteStore(path)
	require.NoError(t, err)
	require.NoError(t, first.Save(model.SavedState{Mode: model.ModeCountdown, Remaining: 75}))
	require.NoError(t, first.Close())

	second, err := NewSQLiteStore(path)
	require.NoError(t, err)
	defer second.Close()

	got, err := second.Load()
	require.NoError(t, err)
	assert.Equal(t, model.SavedState{Mode: model.ModeCountdown, Remaining: 75}, got)
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()

	yamlStore, err := Open("", "", dir)
	require.NoError(t, err)
	require.IsType(t, &YAMLStore{}, yamlStore)
	assert.Equal(t, filepath.Join(dir, "state.yaml"), yamlStore.(*YAMLStore).Path())

	sqliteStore, err := Open("SQLite", "", dir)
	require.NoError(t, err)
	require.IsType(t, &SQLiteStore{}, sqliteStore)
	sqliteStore.(*SQLiteStore).Close()

	_, err = Open("redis", "", dir)
	assert.Error(t, err)
}
