// Package shell launches package-manager subprocesses under a
// synthesized environment.
package shell

import (
	"errors"
	"os"
	"os/exec"
	goruntime "runtime"

	"github.com/npmenv/npmenv/src/internal/constants"
)

// Run executes a shell command string with the given environment,
// wiring the subprocess to this process's stdio. An empty dir runs
// in the current working directory. The subprocess's exit code is
// returned; a non-zero exit is not an error, only a failure to
// start one.
func Run(command, dir string, env []string) (int, error) {
	shellPath, shellArgs := invocation(command)

	cmd := exec.Command(shellPath, shellArgs...)
	cmd.Dir = dir
	cmd.Env = env
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		// Exit errors mean the command ran and returned non-zero
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.ExitCode(), nil
		}
		return 1, err
	}

	return 0, nil
}

// invocation returns the platform shell and its arguments for
// running a command string.
func invocation(command string) (string, []string) {
	if goruntime.GOOS == constants.OSWindows {
		return "cmd", []string{"/C", command}
	}

	shellPath := os.Getenv("SHELL")
	if shellPath == "" {
		shellPath = "/bin/sh"
	}
	return shellPath, []string{"-c", command}
}
