// Package envsynth derives the process environment a subprocess
// needs to run under a selected installed Node.js version: the
// nvm-style auxiliary variables plus a PATH with every other
// installed version's bin directory removed.
package envsynth

import (
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/npmenv/npmenv/src/internal/nodever"
)

// Overlay is a set of environment variables that supersede
// same-named ambient variables when launching a subprocess, plus
// the replacement PATH entries in order.
type Overlay struct {
	Vars map[string]string
	Path []string
}

// Variable names the overlay always owns. Ambient values for these
// are stripped during Merge so the overlay's values win.
const (
	VarBin     = "NVM_BIN"
	VarPath    = "NVM_PATH"
	VarInclude = "NVM_INC"
)

// Synthesize builds the overlay for a selected installed version.
//
// Auxiliary variables point at the bin, lib/node and include/node
// subdirectories of the selected install path. The new PATH starts
// with the selected version's bin directory followed by every
// ambient PATH entry that does not belong to some installed
// version under installRoot (the "foreign bin" pattern), with the
// survivors' relative order preserved.
func Synthesize(selected nodever.InstalledVersion, ambientPath []string, installRoot string) *Overlay {
	binDir := filepath.Join(selected.Path, "bin")
	overlay := &Overlay{
		Vars: map[string]string{
			VarBin:     binDir,
			VarPath:    filepath.Join(selected.Path, "lib", "node"),
			VarInclude: filepath.Join(selected.Path, "include", "node"),
		},
		Path: []string{binDir},
	}

	foreign := foreignBinRegexp(installRoot)
	for _, entry := range ambientPath {
		if foreign.MatchString(filepath.ToSlash(entry)) {
			continue
		}
		overlay.Path = append(overlay.Path, entry)
	}
	return overlay
}

// foreignBinRegexp matches PATH entries that are the bin directory
// of any installed version under root, whether the flat layout
// (<root>/v16.3.2/bin) or the family layout
// (<root>/versions/node/v16.3.2/bin). A trailing slash is
// tolerated.
func foreignBinRegexp(root string) *regexp.Regexp {
	pattern := "^" + regexp.QuoteMeta(filepath.ToSlash(root)) +
		`(/versions/[^/]+)?/v\d+\.\d+\.\d+/bin/?$`
	return regexp.MustCompile(pattern)
}

// Merge overlays the receiver on an ambient environment given as
// "KEY=VALUE" strings, returning a slice suitable for exec. Ambient
// entries for PATH and for every overlay-owned variable are
// dropped, then the overlay's variables and its PATH are appended.
// A nil overlay returns the ambient environment unchanged.
func (o *Overlay) Merge(ambient []string) []string {
	if o == nil {
		return ambient
	}
	merged := make([]string, 0, len(ambient)+len(o.Vars)+1)
	for _, entry := range ambient {
		name, _, ok := strings.Cut(entry, "=")
		if !ok {
			merged = append(merged, entry)
			continue
		}
		if name == "PATH" {
			continue
		}
		if _, owned := o.Vars[name]; owned {
			continue
		}
		merged = append(merged, entry)
	}

	names := make([]string, 0, len(o.Vars))
	for name := range o.Vars {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		merged = append(merged, name+"="+o.Vars[name])
	}
	merged = append(merged, "PATH="+strings.Join(o.Path, string(filepath.ListSeparator)))
	return merged
}

// SplitPathList splits a PATH value into its entries. Empty
// entries are preserved since they are meaningful to the shell.
func SplitPathList(path string) []string {
	if path == "" {
		return nil
	}
	return strings.Split(path, string(filepath.ListSeparator))
}
