package cmd

import (
	"errors"
	"os"

	"github.com/npmenv/npmenv/src/internal/config"
	"github.com/npmenv/npmenv/src/internal/envsynth"
	"github.com/npmenv/npmenv/src/internal/nodever"
	"github.com/npmenv/npmenv/src/internal/ui"
)

// projectEnv is the outcome of resolving a directory's pinned
// version against the installed catalog. Overlay is nil whenever
// no installed version could be selected; callers then run with
// the ambient environment.
type projectEnv struct {
	Specifier string // pinned specifier, empty when no pin file exists
	Selected  nodever.InstalledVersion
	Overlay   *envsynth.Overlay
}

// resolveProject reads the pin file above dir, resolves it against
// the installed catalog and synthesizes the environment overlay.
// Every failure degrades to an empty result rather than an error:
// running without a version pin is always valid.
func resolveProject(dir string) projectEnv {
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return projectEnv{}
		}
		dir = cwd
	}

	specifier, err := config.PinnedVersion(dir)
	if err != nil {
		ui.Debug("no version pin: %v", err)
		return projectEnv{}
	}

	result := projectEnv{Specifier: specifier}

	paths := config.DefaultPaths()
	catalog := nodever.Scan(nodever.ScanRoots(paths.Root))
	selected, err := nodever.Resolve(specifier, catalog)
	if err != nil {
		if !errors.Is(err, nodever.ErrNoMatch) {
			ui.Debug("resolution failed: %v", err)
		}
		return result
	}

	result.Selected = selected
	result.Overlay = envsynth.Synthesize(
		selected,
		envsynth.SplitPathList(os.Getenv("PATH")),
		paths.Root,
	)
	return result
}

// warnUnresolved surfaces the standard warning when a pinned
// version has no installed match, so commands that fall back to
// the ambient environment all say the same thing.
func warnUnresolved(p projectEnv) {
	if p.Specifier == "" {
		ui.Debug("no version pin found, using ambient PATH")
		return
	}
	ui.Warning("pinned version %s is not installed, using ambient PATH", p.Specifier)
	ui.Info("Installed and pinned versions may not match")
}
