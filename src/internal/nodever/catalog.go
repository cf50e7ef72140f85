package nodever

import (
	"os"
	"path/filepath"
	"regexp"
)

// InstalledVersion is one installed runtime version: the display
// name shown to users (e.g. "v16.3.2", "iojs-v3.3.1") and the
// absolute path of its install directory.
type InstalledVersion struct {
	Name string
	Path string
}

// Catalog is the list of installed versions in scan order. Scan
// order is significant: the resolver's tie-breaks prefer the
// first-encountered entry, so no sorting is ever applied.
type Catalog []InstalledVersion

// versionDirRegex matches directory names that are themselves
// version directories, e.g. "v16.3.2", "16.3", "v0.10.48".
var versionDirRegex = regexp.MustCompile(`^v?\d+(\.\d+)*$`)

// DefaultFamily is the runtime family whose version directories
// keep their bare name as the display name.
const DefaultFamily = "node"

// familyAliases canonicalizes runtime-family directory names.
// A fixed table rather than string rewriting so the mapping stays
// total and reviewable.
var familyAliases = map[string]string{
	"io.js": "iojs",
	"iojs":  "iojs",
	"node":  "node",
}

// canonicalFamily returns the canonical alias for a family
// directory name, or the name unchanged when no alias exists.
func canonicalFamily(name string) string {
	if alias, ok := familyAliases[name]; ok {
		return alias
	}
	return name
}

// Scan discovers installed versions under the given roots.
//
// Each root's immediate directories are examined: a version-named
// directory ("v16.3.2") is an entry of the default family; any
// other directory is treated as a runtime-family directory and its
// version-named children become entries named "<family>-<dir>"
// with the family canonicalized through the alias table. Only one
// level of family nesting is followed.
//
// A missing root contributes nothing; an unreadable directory is
// skipped. Scan never mutates disk state.
func Scan(roots []string) Catalog {
	var catalog Catalog
	for _, root := range roots {
		entries, err := os.ReadDir(root)
		if err != nil {
			continue
		}
		for _, entry := range entries {
			if !entry.IsDir() {
				continue
			}
			name := entry.Name()
			dir := filepath.Join(root, name)
			if versionDirRegex.MatchString(name) {
				catalog = append(catalog, InstalledVersion{Name: name, Path: dir})
				continue
			}
			catalog = append(catalog, scanFamilyDir(dir, name)...)
		}
	}
	return catalog
}

// scanFamilyDir lists the version-named children of a runtime
// family directory such as <root>/versions/node or <root>/io.js.
func scanFamilyDir(dir, family string) []InstalledVersion {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}
	family = canonicalFamily(family)
	var found []InstalledVersion
	for _, entry := range entries {
		if !entry.IsDir() || !versionDirRegex.MatchString(entry.Name()) {
			continue
		}
		name := entry.Name()
		if family != DefaultFamily {
			name = family + "-" + name
		}
		found = append(found, InstalledVersion{
			Name: name,
			Path: filepath.Join(dir, entry.Name()),
		})
	}
	return found
}

// ScanRoots returns the directories Scan should examine for an
// install root: the root itself and, when present, its "versions"
// child (the layout newer nvm releases use).
func ScanRoots(installRoot string) []string {
	roots := []string{installRoot}
	versions := filepath.Join(installRoot, "versions")
	if info, err := os.Stat(versions); err == nil && info.IsDir() {
		roots = append(roots, versions)
	}
	return roots
}
