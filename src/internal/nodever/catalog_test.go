package nodever

import (
	"os"
	"path/filepath"
	"testing"
)

// makeDirs creates a directory tree under root from relative paths.
func makeDirs(t *testing.T, root string, dirs ...string) {
	t.Helper()
	for _, dir := range dirs {
		if err := os.MkdirAll(filepath.Join(root, dir), 0755); err != nil {
			t.Fatalf("failed to create %s: %v", dir, err)
		}
	}
}

func TestScanFlatLayout(t *testing.T) {
	root := t.TempDir()
	makeDirs(t, root, "v0.10.48", "v0.12.18")

	catalog := Scan([]string{root})

	if len(catalog) != 2 {
		t.Fatalf("Scan() found %d entries, want 2", len(catalog))
	}
	for i, want := range []string{"v0.10.48", "v0.12.18"} {
		if catalog[i].Name != want {
			t.Errorf("catalog[%d].Name = %q, want %q", i, catalog[i].Name, want)
		}
		if catalog[i].Path != filepath.Join(root, want) {
			t.Errorf("catalog[%d].Path = %q, want %q", i, catalog[i].Path, filepath.Join(root, want))
		}
	}
}

func TestScanFamilyLayout(t *testing.T) {
	root := t.TempDir()
	makeDirs(t, root,
		filepath.Join("node", "v16.3.2"),
		filepath.Join("io.js", "v3.3.1"),
	)

	catalog := Scan([]string{root})

	byName := make(map[string]string)
	for _, installed := range catalog {
		byName[installed.Name] = installed.Path
	}

	// Default family keeps the bare directory name
	if _, ok := byName["v16.3.2"]; !ok {
		t.Errorf("expected default-family entry v16.3.2, got %v", byName)
	}
	// Alternate family gets the canonical alias prefix
	if _, ok := byName["iojs-v3.3.1"]; !ok {
		t.Errorf("expected aliased entry iojs-v3.3.1, got %v", byName)
	}
}

func TestScanVersionsSubdirectory(t *testing.T) {
	root := t.TempDir()
	makeDirs(t, root,
		filepath.Join("versions", "node", "v16.1.0"),
		filepath.Join("versions", "node", "v18.0.0"),
		"v0.10.48",
	)

	catalog := Scan(ScanRoots(root))

	names := make([]string, len(catalog))
	for i, installed := range catalog {
		names[i] = installed.Name
	}

	want := map[string]bool{"v0.10.48": true, "v16.1.0": true, "v18.0.0": true}
	if len(catalog) != len(want) {
		t.Fatalf("Scan() = %v, want the three installed versions", names)
	}
	for _, name := range names {
		if !want[name] {
			t.Errorf("unexpected catalog entry %q", name)
		}
	}
}

func TestScanIgnoresNonVersionEntries(t *testing.T) {
	root := t.TempDir()
	makeDirs(t, root, "v16.3.2", filepath.Join("alias", "subdir"))
	// Plain files never become entries
	if err := os.WriteFile(filepath.Join(root, "v1.2.3"), []byte("file"), 0644); err != nil {
		t.Fatalf("failed to create file: %v", err)
	}

	catalog := Scan([]string{root})

	if len(catalog) != 1 || catalog[0].Name != "v16.3.2" {
		t.Errorf("Scan() = %v, want only v16.3.2", catalog)
	}
}

func TestScanMissingRoot(t *testing.T) {
	catalog := Scan([]string{filepath.Join(t.TempDir(), "does-not-exist")})
	if len(catalog) != 0 {
		t.Errorf("Scan() of missing root = %v, want empty", catalog)
	}
}

func TestScanRootsWithoutVersionsChild(t *testing.T) {
	root := t.TempDir()
	roots := ScanRoots(root)
	if len(roots) != 1 || roots[0] != root {
		t.Errorf("ScanRoots() = %v, want just the root", roots)
	}

	makeDirs(t, root, "versions")
	roots = ScanRoots(root)
	if len(roots) != 2 {
		t.Errorf("ScanRoots() = %v, want root and versions child", roots)
	}
}

func TestCanonicalFamily(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"io.js", "iojs"},
		{"iojs", "iojs"},
		{"node", "node"},
		{"unknown", "unknown"},
	}
	for _, tt := range tests {
		if got := canonicalFamily(tt.input); got != tt.expected {
			t.Errorf("canonicalFamily(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}
