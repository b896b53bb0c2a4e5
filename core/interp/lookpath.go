package interp

import (
	"io/fs"
	"os/exec"
	"path"
	"strings"

	"github.com/quash-sh/quash/core/session"
)

// ErrNotFound is the error resulting if a path search failed to find an
// executable file.
var ErrNotFound = exec.ErrNotFound

func findExecutable(s *session.Session, file string) error {
	d, err := s.FS.Stat(file)
	if err != nil {
		return err
	}
	if m := d.Mode(); !m.IsDir() && m&0111 != 0 {
		return nil
	}
	return fs.ErrPermission
}

// LookPath searches for an executable named file in the directories named
// by the session's PATH variable. If file contains a slash it is resolved
// against the working directory and the PATH is not consulted.
func LookPath(s *session.Session, file string) (string, error) {
	if strings.Contains(file, "/") {
		resolved := file
		if !path.IsAbs(resolved) {
			resolved = path.Join(s.Getwd(), resolved)
		}
		if err := findExecutable(s, resolved); err != nil {
			return "", err
		}
		return resolved, nil
	}

	for _, dir := range strings.Split(s.Getenv(session.EnvPath), ":") {
		if dir == "" {
			// Unix shell semantics: path element "" means "."
			dir = s.Getwd()
		}
		candidate := path.Join(dir, file)
		if err := findExecutable(s, candidate); err == nil {
			return candidate, nil
		}
	}
	return "", ErrNotFound
}
