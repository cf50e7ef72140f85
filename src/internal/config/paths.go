// Package config locates the npmenv inputs on disk: the runtime
// install root and the project's version-pin file.
package config

import (
	"os"
	"path/filepath"
	"sync"
)

// EnvInstallRoot overrides the install root when set.
const EnvInstallRoot = "NVM_DIR"

// Paths holds the directories npmenv reads from.
type Paths struct {
	Root string // Runtime install root (~/.nvm)
}

var (
	defaultPaths *Paths
	pathsOnce    sync.Once
)

// DefaultPaths returns the default npmenv paths.
// This function is thread-safe and guarantees single initialization.
func DefaultPaths() *Paths {
	pathsOnce.Do(func() {
		defaultPaths = &Paths{Root: installRoot()}
	})
	return defaultPaths
}

// installRoot returns the runtime install root directory.
func installRoot() string {
	if root := os.Getenv(EnvInstallRoot); root != "" {
		return root
	}

	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home is not available
		return ".nvm"
	}

	return filepath.Join(home, ".nvm")
}

// ResetPathsCache resets the cached paths, forcing reinitialization on next access.
// This is primarily useful for testing.
func ResetPathsCache() {
	pathsOnce = sync.Once{}
	defaultPaths = nil
}
