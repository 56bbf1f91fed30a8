package platform

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const defaultSlug = "tickwatch"

// Service exposes the OS-specific helpers the desktop app needs.
type Service interface {
	GetConfigDir() (string, error)
	EnableAutostart(appName, execPath string) error
	DisableAutostart(appName string) error
}

type platformService struct{}

// NewService returns a platform-specific implementation.
func NewService() Service {
	return &platformService{}
}

// GetConfigDir returns the OS-standard configuration directory.
func (service *platformService) GetConfigDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err == nil && configDir != "" {
		return configDir, nil
	}

	homeDir, homeErr := os.UserHomeDir()
	if homeErr != nil {
		if err != nil {
			return "", fmt.Errorf("get config dir: %w", err)
		}
		return "", fmt.Errorf("get config dir: %w", homeErr)
	}

	return fallbackConfigDir(homeDir), nil
}

// AppDir returns the per-application directory below the config dir,
// creating it when missing.
func AppDir(service Service, appName string) (string, error) {
	configDir, err := service.GetConfigDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(configDir, appName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create app dir: %w", err)
	}
	return dir, nil
}

// ApplyAutostart registers or removes the login entry for execPath.
func ApplyAutostart(service Service, enabled bool, appName, execPath string) error {
	if enabled {
		return service.EnableAutostart(appName, execPath)
	}
	return service.DisableAutostart(appName)
}

// slug lower-cases appName and replaces spaces with dashes.
func slug(appName string) string {
	name := strings.TrimSpace(appName)
	if name == "" {
		name = defaultSlug
	}
	name = strings.ToLower(name)
	return strings.ReplaceAll(name, " ", "-")
}
