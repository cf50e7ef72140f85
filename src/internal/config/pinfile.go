package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// PinFileName is the project file that pins a runtime version.
const PinFileName = ".nvmrc"

// ManifestFileName is the project manifest read through the parse cache.
const ManifestFileName = "package.json"

// FindPinFile walks up the directory tree from startDir looking
// for a version-pin file. The walk stops at a git repository root
// or the filesystem root.
func FindPinFile(startDir string) (string, error) {
	currentDir, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	for {
		pinFile := filepath.Join(currentDir, PinFileName)
		if info, err := os.Stat(pinFile); err == nil && !info.IsDir() {
			return pinFile, nil
		}

		// A .git directory marks the repository root, stop here
		gitDir := filepath.Join(currentDir, ".git")
		if _, err := os.Stat(gitDir); err == nil {
			break
		}

		parent := filepath.Dir(currentDir)
		if parent == currentDir {
			break
		}
		currentDir = parent
	}

	return "", fmt.Errorf("no %s file found above %s", PinFileName, startDir)
}

// PinnedVersion locates the pin file above startDir and returns
// its first line, trimmed. The returned string is an opaque
// version specifier; validation happens during resolution.
func PinnedVersion(startDir string) (string, error) {
	pinFile, err := FindPinFile(startDir)
	if err != nil {
		return "", err
	}

	data, err := os.ReadFile(pinFile)
	if err != nil {
		return "", err
	}

	line, _, _ := strings.Cut(string(data), "\n")
	version := strings.TrimSpace(line)
	if version == "" {
		return "", fmt.Errorf("empty version pin in %s", pinFile)
	}

	return version, nil
}

// FindManifest walks up from startDir looking for the project
// manifest, stopping at a git repository root or the filesystem
// root.
func FindManifest(startDir string) (string, error) {
	currentDir, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	for {
		manifest := filepath.Join(currentDir, ManifestFileName)
		if info, err := os.Stat(manifest); err == nil && !info.IsDir() {
			return manifest, nil
		}

		gitDir := filepath.Join(currentDir, ".git")
		if _, err := os.Stat(gitDir); err == nil {
			break
		}

		parent := filepath.Dir(currentDir)
		if parent == currentDir {
			break
		}
		currentDir = parent
	}

	return "", fmt.Errorf("no %s file found above %s", ManifestFileName, startDir)
}
