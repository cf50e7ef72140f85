package nodever

import (
	"errors"
	"regexp"
	"strings"
)

// ErrNoMatch is returned when a specifier is malformed or no
// installed version satisfies it. Callers are expected to proceed
// without a version-specific environment; resolution failure is
// never fatal.
var ErrNoMatch = errors.New("no matching installed version")

// specifierRegex validates the accepted specifier shapes: an
// optional family prefix followed by one to three dot-separated
// numeric components ("16", "v16.2", "node18", "iojs-3.3.1").
var specifierRegex = regexp.MustCompile(`^(v|node|iojs-?)?\d+(\.\d+(\.\d+)?)?$`)

// recognized family prefixes that suppress the "v" normalization.
var familyPrefixes = []string{"v", "node", "iojs"}

// Normalize prepares a specifier for catalog matching: whitespace
// is trimmed and a "v" prefix is added unless the string already
// starts with a recognized family prefix.
func Normalize(specifier string) string {
	s := strings.TrimSpace(specifier)
	for _, prefix := range familyPrefixes {
		if strings.HasPrefix(s, prefix) {
			return s
		}
	}
	return "v" + s
}

// ValidSpecifier reports whether the specifier has a shape the
// resolver can match. Specifiers with no digits, or with anything
// beyond a family prefix and up to three numeric components, are
// rejected rather than normalized.
func ValidSpecifier(specifier string) bool {
	return specifierRegex.MatchString(strings.TrimSpace(specifier))
}

// Resolve selects the installed version best matching the
// specifier.
//
// An exact display-name match on the normalized specifier wins
// immediately, bypassing numeric comparison entirely; when the
// catalog holds duplicate names from different scan roots the
// first in scan order is returned. Otherwise the catalog is
// filtered by partial match against the specifier's parsed
// components and the numerically greatest candidate wins, with
// ties again going to the first-encountered entry.
//
// A malformed specifier or an empty candidate set yields
// ErrNoMatch.
func Resolve(specifier string, catalog Catalog) (InstalledVersion, error) {
	if !ValidSpecifier(specifier) {
		return InstalledVersion{}, ErrNoMatch
	}
	normalized := Normalize(specifier)

	for _, installed := range catalog {
		if installed.Name == normalized {
			return installed, nil
		}
	}

	requested := Parse(normalized)
	if len(requested) == 0 {
		return InstalledVersion{}, ErrNoMatch
	}

	var (
		best        InstalledVersion
		bestVersion Version
		found       bool
	)
	for _, installed := range catalog {
		candidate := Parse(installed.Name)
		if !PartialMatch(requested, candidate) {
			continue
		}
		// Strictly-greater keeps the first-encountered entry on ties.
		if !found || Compare(candidate, bestVersion) > 0 {
			best = installed
			bestVersion = candidate
			found = true
		}
	}
	if !found {
		return InstalledVersion{}, ErrNoMatch
	}
	return best, nil
}
