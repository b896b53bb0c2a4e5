package session

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSession(t *testing.T) *Session {
	t.Helper()

	fsys := afero.NewMemMapFs()
	require.NoError(t, fsys.MkdirAll("/a/b", 0755))
	require.NoError(t, fsys.MkdirAll("/home/test", 0755))

	return New(fsys, NewStdio(nil, nil, nil))
}

func TestChdirDotDot(t *testing.T) {
	s := newTestSession(t)

	require.NoError(t, s.Chdir("/a/b"))
	require.NoError(t, s.Chdir(".."))

	assert.Equal(t, "/a", s.Getwd())
	assert.Equal(t, "/a", s.Getenv(EnvPWD))
}

func TestChdirRelative(t *testing.T) {
	s := newTestSession(t)

	require.NoError(t, s.Chdir("/a"))
	require.NoError(t, s.Chdir("b"))

	assert.Equal(t, "/a/b", s.Getwd())
	assert.Equal(t, "/a/b", s.Getenv(EnvPWD))
}

func TestChdirMissingLeavesStateIntact(t *testing.T) {
	s := newTestSession(t)
	require.NoError(t, s.Chdir("/a"))

	err := s.Chdir("/does/not/exist")

	assert.Error(t, err)
	assert.Equal(t, "/a", s.Getwd())
	assert.Equal(t, "/a", s.Getenv(EnvPWD))
}

func TestChdirFileNotDirectory(t *testing.T) {
	s := newTestSession(t)
	require.NoError(t, afero.WriteFile(s.FS, "/a/file.txt", []byte("x"), 0644))

	assert.Error(t, s.Chdir("/a/file.txt"))
	assert.Equal(t, "/", s.Getwd())
}

func TestChdirEmptyPath(t *testing.T) {
	s := newTestSession(t)

	assert.Error(t, s.Chdir(""))
}

func TestCanonicalLexical(t *testing.T) {
	fsys := afero.NewMemMapFs()

	cases := []struct {
		wd   string
		name string
		want string
	}{
		{"/a/b", "..", "/a"},
		{"/a/b", "../..", "/"},
		{"/a", "b/./c", "/a/b/c"},
		{"/a", "/x//y/", "/x/y"},
		{"/", "..", "/"},
	}

	for _, tc := range cases {
		got, err := canonical(fsys, tc.wd, tc.name)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "canonical(%q, %q)", tc.wd, tc.name)
	}
}

func TestCanonicalResolvesSymlinks(t *testing.T) {
	tmp, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)

	real := filepath.Join(tmp, "real")
	require.NoError(t, os.Mkdir(real, 0755))
	require.NoError(t, os.Symlink(real, filepath.Join(tmp, "ln")))

	got, err := canonical(afero.NewOsFs(), "/", filepath.Join(tmp, "ln"))
	require.NoError(t, err)
	assert.Equal(t, real, got)
}
