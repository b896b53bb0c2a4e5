package builtins

import (
	"errors"
	"fmt"
	"os"
	"syscall"

	"github.com/quash-sh/quash/core/session"
)

// The parent-side builtins mutate shell state and therefore run in the
// shell's own flow, never in a spawned process. Each returns an error to
// report; the shell keeps its prior state on failure.

// Export sets an environment variable in the session, overwriting any
// previous value.
func Export(s *session.Session, name, value string) error {
	return s.Setenv(name, value)
}

// Cd changes the session's working directory; the path must resolve to an
// existing directory.
func Cd(s *session.Session, path string) error {
	if path == "" {
		return errors.New("cd: no path given")
	}
	return s.Chdir(path)
}

// Kill delivers signal sig to the process with the given pid.
func Kill(sig, pid int) error {
	proc, err := os.FindProcess(pid)
	if err != nil {
		return fmt.Errorf("kill %d: %w", pid, err)
	}
	if err := proc.Signal(syscall.Signal(sig)); err != nil {
		return fmt.Errorf("kill %d: %w", pid, err)
	}
	return nil
}
