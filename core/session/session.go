// Package session holds the shell's own mutable state: environment
// variables, the working directory, and the terminal streams. Built-ins
// that must outlive a spawned process (export, cd) mutate a Session, never
// ambient process state, so everything here is testable against an
// in-memory filesystem.
package session

import (
	"errors"
	"fmt"
	"sync"

	"github.com/spf13/afero"
)

// Well-known environment variable names.
const (
	EnvHome     = "HOME"
	EnvPWD      = "PWD"
	EnvPath     = "PATH"
	EnvPrompt   = "PS1"
	EnvUser     = "USER"
	EnvHostname = "HOSTNAME"
)

// Session is one shell session. The filesystem is abstracted so redirection
// opens and directory resolution can run against a memory filesystem in
// tests; production sessions use afero.NewOsFs().
type Session struct {
	*Env

	FS afero.Fs
	IO Stdio

	mu  sync.RWMutex
	dir string
}

// New creates a session rooted at "/" with an empty environment.
func New(fsys afero.Fs, stdio Stdio) *Session {
	return &Session{
		Env: NewEnv(),
		FS:  fsys,
		IO:  stdio,
		dir: "/",
	}
}

// Getwd returns the session's working directory.
func (s *Session) Getwd() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dir
}

// Chdir resolves dir against the working directory to a canonical absolute
// path, which must name an existing directory, then moves the session there
// and updates PWD. On failure the working directory is left unchanged.
func (s *Session) Chdir(dir string) error {
	if dir == "" {
		return errors.New("chdir: no path given")
	}

	resolved, err := canonical(s.FS, s.Getwd(), dir)
	if err != nil {
		return fmt.Errorf("chdir %s: %w", dir, err)
	}

	fi, err := s.FS.Stat(resolved)
	if err != nil {
		return fmt.Errorf("chdir %s: %w", dir, err)
	}
	if !fi.IsDir() {
		return fmt.Errorf("chdir %s: not a directory", dir)
	}

	s.mu.Lock()
	s.dir = resolved
	s.mu.Unlock()

	s.Setenv(EnvPWD, resolved)
	return nil
}
