package session

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"
)

// Env is the shell's environment variable store. It is kept in the shell
// session rather than in the process environment so the core can be tested
// without touching real process state.
type Env struct {
	rw  sync.RWMutex
	env map[string]string
}

// NewEnv creates an empty environment.
func NewEnv() *Env {
	return &Env{}
}

// NewEnvFromList creates an environment from "KEY=value" entries, the form
// returned by Environ.
func NewEnvFromList(environ []string) *Env {
	out := &Env{}
	for _, e := range environ {
		split := strings.SplitN(e, "=", 2)
		key, value := split[0], ""
		if len(split) > 1 {
			value = split[1]
		}
		out.Setenv(key, value)
	}
	return out
}

// Setenv sets the value of the variable named by key, overwriting any
// previous value.
func (e *Env) Setenv(key, value string) error {
	if key == "" || strings.Contains(key, "=") {
		return fmt.Errorf("setenv %q: invalid variable name", key)
	}

	e.rw.Lock()
	defer e.rw.Unlock()
	if e.env == nil {
		e.env = make(map[string]string)
	}
	e.env[key] = value
	return nil
}

// Unsetenv removes the variable named by key.
func (e *Env) Unsetenv(key string) {
	e.rw.Lock()
	defer e.rw.Unlock()
	if e.env != nil {
		delete(e.env, key)
	}
}

// LookupEnv returns the value of the variable and whether it is set.
func (e *Env) LookupEnv(key string) (string, bool) {
	e.rw.RLock()
	defer e.rw.RUnlock()
	val, ok := e.env[key]
	return val, ok
}

// Getenv returns the value of the variable, or "" if unset.
func (e *Env) Getenv(key string) string {
	val, _ := e.LookupEnv(key)
	return val
}

// ExpandEnv replaces $var and ${var} references in s with their values.
func (e *Env) ExpandEnv(s string) string {
	return os.Expand(s, e.Getenv)
}

// Environ returns the environment as "KEY=value" entries in sorted order,
// the form expected by exec.Cmd.Env.
func (e *Env) Environ() []string {
	e.rw.RLock()
	defer e.rw.RUnlock()

	env := make([]string, 0, len(e.env))
	for k, v := range e.env {
		env = append(env, fmt.Sprintf("%s=%s", k, v))
	}
	sort.Strings(env)
	return env
}
