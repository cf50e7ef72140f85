package shell

import (
	"os"
	"path/filepath"
	goruntime "runtime"
	"testing"
)

func skipOnWindows(t *testing.T) {
	t.Helper()
	if goruntime.GOOS == "windows" {
		t.Skip("test relies on a POSIX shell")
	}
	// Pin the shell so exotic user shells don't change semantics
	t.Setenv("SHELL", "/bin/sh")
}

func TestRunExitCodes(t *testing.T) {
	skipOnWindows(t)

	tests := []struct {
		name     string
		command  string
		expected int
	}{
		{"success", "true", 0},
		{"failure", "false", 1},
		{"explicit exit code", "exit 3", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, err := Run(tt.command, "", os.Environ())
			if err != nil {
				t.Fatalf("Run() unexpected error: %v", err)
			}
			if code != tt.expected {
				t.Errorf("Run(%q) = %d, want %d", tt.command, code, tt.expected)
			}
		})
	}
}

func TestRunUsesProvidedEnv(t *testing.T) {
	skipOnWindows(t)

	env := append(os.Environ(), "NPMENV_TEST_MARKER=expected")
	code, err := Run(`test "$NPMENV_TEST_MARKER" = expected`, "", env)
	if err != nil {
		t.Fatalf("Run() unexpected error: %v", err)
	}
	if code != 0 {
		t.Errorf("Run() = %d, want 0 (env var visible to subprocess)", code)
	}
}

func TestRunHonorsWorkingDirectory(t *testing.T) {
	skipOnWindows(t)

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "marker"), []byte("x"), 0644); err != nil {
		t.Fatalf("failed to write marker: %v", err)
	}

	code, err := Run("test -f marker", dir, os.Environ())
	if err != nil {
		t.Fatalf("Run() unexpected error: %v", err)
	}
	if code != 0 {
		t.Errorf("Run() = %d, want 0 (command ran in %s)", code, dir)
	}
}

func TestRunMissingShellCommand(t *testing.T) {
	skipOnWindows(t)

	code, err := Run("definitely-not-a-real-command-xyz", "", os.Environ())
	if err != nil {
		t.Fatalf("Run() unexpected error: %v", err)
	}
	if code == 0 {
		t.Error("Run() of a missing command should return non-zero")
	}
}
