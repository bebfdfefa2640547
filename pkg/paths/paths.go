package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
)

// Environment variable names
const (
	// EnvConfigDir overrides the user rule directory
	EnvConfigDir = "CGRC_CONFIG_DIR"

	// EnvSystemDir overrides the system rule directory
	EnvSystemDir = "CGRC_SYSTEM_DIR"

	// EnvSnapUserData is set by snapd for confined installs
	EnvSnapUserData = "SNAP_USER_DATA"

	// EnvSnapData is set by snapd for confined installs
	EnvSnapData = "SNAP_DATA"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

const (
	// AppDirName is the directory name used under XDG base dirs
	AppDirName = "cgrc"

	// DefaultSystemDir is the system-wide rule directory
	DefaultSystemDir = "/etc/cgrc"

	// SettingsFileName is the name of the settings file in the user dir
	SettingsFileName = "cgrc.toml"

	// LogFileName is the name of the log file
	LogFileName = "cgrc.log"
)

// Paths answers where things live
type Paths interface {
	UserDir() string
	SystemDir() string
	StateDir() string
	SettingsFile() string
	LogFilePath() string
}

type paths struct {
	userDir   string
	systemDir string
	stateDir  string
}

// New resolves every location from the environment
func New() Paths {
	return &paths{
		userDir:   resolveUserDir(),
		systemDir: resolveSystemDir(),
		stateDir:  resolveStateDir(),
	}
}

func resolveUserDir() string {
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		return expandHome(dir)
	}
	if dir := os.Getenv(EnvSnapUserData); dir != "" {
		return dir
	}
	return filepath.Join(xdg.ConfigHome, AppDirName)
}

func resolveSystemDir() string {
	if dir := os.Getenv(EnvSystemDir); dir != "" {
		return expandHome(dir)
	}
	if dir := os.Getenv(EnvSnapData); dir != "" {
		return dir
	}
	return DefaultSystemDir
}

func resolveStateDir() string {
	if dir := os.Getenv("XDG_STATE_HOME"); dir != "" {
		return filepath.Join(dir, AppDirName)
	}
	return filepath.Join(xdg.StateHome, AppDirName)
}

// UserDir returns the per-user rule directory
func (p *paths) UserDir() string { return p.userDir }

// SystemDir returns the system-wide rule directory
func (p *paths) SystemDir() string { return p.systemDir }

// StateDir returns the directory for logs
func (p *paths) StateDir() string { return p.stateDir }

// SettingsFile returns the path of cgrc.toml
func (p *paths) SettingsFile() string {
	return filepath.Join(p.userDir, SettingsFileName)
}

// LogFilePath returns the path of the log file
func (p *paths) LogFilePath() string {
	return filepath.Join(p.StateDir(), LogFileName)
}

// ExpandHome expands a leading ~ to the user's home directory
func ExpandHome(path string) string {
	return expandHome(path)
}

func expandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		// Fallback to HOME env var
		homeDir = os.Getenv(EnvHome)
		if homeDir == "" {
			return path
		}
	}

	if len(path) == 1 {
		return homeDir
	}

	// ~user is not expanded
	if path[1] != '/' && path[1] != filepath.Separator {
		return path
	}

	return filepath.Join(homeDir, strings.TrimLeft(path[2:], "/"))
}
