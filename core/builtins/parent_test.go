package builtins

import (
	"os"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quash-sh/quash/core/session"
)

func newTestSession(t *testing.T) *session.Session {
	t.Helper()

	fsys := afero.NewMemMapFs()
	require.NoError(t, fsys.MkdirAll("/a/b", 0755))
	return session.New(fsys, session.NewStdio(nil, nil, nil))
}

func TestExport(t *testing.T) {
	s := newTestSession(t)

	require.NoError(t, Export(s, "FOO", "old"))
	require.NoError(t, Export(s, "FOO", "bar"))

	assert.Equal(t, "bar", s.Getenv("FOO"))
}

func TestExportInvalidName(t *testing.T) {
	s := newTestSession(t)

	assert.Error(t, Export(s, "", "x"))
}

func TestCd(t *testing.T) {
	s := newTestSession(t)

	require.NoError(t, Cd(s, "/a/b"))
	assert.Equal(t, "/a/b", s.Getwd())
	assert.Equal(t, "/a/b", s.Getenv(session.EnvPWD))

	require.NoError(t, Cd(s, ".."))
	assert.Equal(t, "/a", s.Getwd())
	assert.Equal(t, "/a", s.Getenv(session.EnvPWD))
}

func TestCdFailures(t *testing.T) {
	s := newTestSession(t)
	require.NoError(t, Cd(s, "/a"))

	assert.Error(t, Cd(s, ""))
	assert.Error(t, Cd(s, "/does/not/exist"))

	// State survives every failure.
	assert.Equal(t, "/a", s.Getwd())
	assert.Equal(t, "/a", s.Getenv(session.EnvPWD))
}

func TestKill(t *testing.T) {
	// Signal 0 probes for existence without delivering anything.
	assert.NoError(t, Kill(0, os.Getpid()))
	assert.Error(t, Kill(0, 1<<28))
}
