//go:build linux

package platform

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinuxAutostartRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	service := NewService()

	require.NoError(t, service.EnableAutostart("TickWatch", "/opt/tick watch/tickwatch"))

	configDir, err := service.GetConfigDir()
	require.NoError(t, err)
	entryPath := filepath.Join(configDir, "autostart", "tickwatch.desktop")
	content, err := os.ReadFile(entryPath)
	require.NoError(t, err)
	assert.Contains(t, string(content), `Exec="/opt/tick watch/tickwatch"`)
	assert.Contains(t, string(content), "Name=TickWatch")

	require.NoError(t, service.DisableAutostart("TickWatch"))
	assert.NoFileExists(t, entryPath)
	require.NoError(t, service.DisableAutostart("TickWatch"))
}

func TestAutostartRejectsEmptyValues(t *testing.T) {
	service := NewService()
	assert.Error(t, service.EnableAutostart("", "/bin/true"))
	assert.Error(t, service.EnableAutostart("TickWatch", ""))
	assert.Error(t, service.DisableAutostart(""))
}

func TestBuildDesktopEntry(t *testing.T) {
	entry := buildDesktopEntry("TickWatch", "/usr/bin/tickwatch")

	assert.Equal(t, "[Desktop Entry]\n"+
		"Type=Application\n"+
		"Name=TickWatch\n"+
		"Comment=Stopwatch and countdown timer\n"+
		"Exec=/usr/bin/tickwatch\n"+
		"Terminal=false\n"+
		"X-GNOME-Autostart-enabled=true\n", entry)
}
