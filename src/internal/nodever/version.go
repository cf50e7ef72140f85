// Package nodever models installed Node.js versions: parsing version
// strings into comparable tuples, scanning install roots for installed
// versions, and resolving a requested specifier against the catalog.
package nodever

import (
	"strconv"
	"strings"
)

// Version is an ordered sequence of numeric version components
// (major, minor, patch, ...). A Version may be partial: "v16.2"
// parses to two components.
type Version []int

// Parse extracts the numeric components of a version string.
// The string is split on every run of non-digit characters, so
// prefixes like "v16.2.1", "node18" and "iojs-3.3.1" all parse
// the same way as their bare numeric form. Returns nil when the
// string contains no digits.
func Parse(s string) Version {
	var v Version
	start := -1
	for i := 0; i <= len(s); i++ {
		if i < len(s) && s[i] >= '0' && s[i] <= '9' {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			n, err := strconv.Atoi(s[start:i])
			if err == nil {
				v = append(v, n)
			}
			start = -1
		}
	}
	return v
}

// Compare compares two versions component-wise, left to right.
// Returns -1, 0 or 1. When one version runs out of components and
// all compared components were equal, the versions compare equal;
// length alone never orders two versions.
func Compare(a, b Version) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		switch {
		case a[i] < b[i]:
			return -1
		case a[i] > b[i]:
			return 1
		}
	}
	return 0
}

// PartialMatch reports whether candidate satisfies the requested
// version: every component the request supplies must equal the
// candidate's corresponding component. Candidate components beyond
// the request's length are unconstrained, so request [16] matches
// candidate [16 2 1]. A request with more components than the
// candidate never matches.
func PartialMatch(request, candidate Version) bool {
	if len(request) > len(candidate) {
		return false
	}
	for i := range request {
		if request[i] != candidate[i] {
			return false
		}
	}
	return true
}

// String joins the components with dots, e.g. [16 2 1] -> "16.2.1".
func (v Version) String() string {
	parts := make([]string, len(v))
	for i, n := range v {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ".")
}
