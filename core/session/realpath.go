package session

import (
	"errors"
	"os"
	"path"
	"strings"

	"github.com/spf13/afero"
)

const maxSymlinks = 16

var errTooManyLinks = errors.New("too many levels of symbolic links")

// canonical resolves name against wd into a cleaned absolute path with
// every symlink component expanded. Components must exist as they are
// walked; filesystems without lstat support are treated as symlink-free.
func canonical(fsys afero.Fs, wd, name string) (string, error) {
	if name == "" {
		name = "."
	}
	if !path.IsAbs(name) {
		name = path.Join(wd, name)
	}

	resolved := "/"
	rest := strings.TrimPrefix(path.Clean(name), "/")
	nlinks := 0

	for rest != "" {
		var comp string
		if i := strings.IndexByte(rest, '/'); i >= 0 {
			comp, rest = rest[:i], rest[i+1:]
		} else {
			comp, rest = rest, ""
		}

		switch comp {
		case "", ".":
			continue
		case "..":
			resolved = path.Dir(resolved)
			continue
		}

		next := path.Join(resolved, comp)
		link, isLink, err := readlink(fsys, next)
		if err != nil {
			return "", err
		}
		if !isLink {
			resolved = next
			continue
		}

		nlinks++
		if nlinks > maxSymlinks {
			return "", errTooManyLinks
		}

		target := link
		if rest != "" {
			target = link + "/" + rest
		}
		if path.IsAbs(target) {
			resolved = "/"
			rest = strings.TrimPrefix(path.Clean(target), "/")
		} else {
			rest = path.Clean(target)
		}
	}

	return resolved, nil
}

// readlink reports whether name is a symlink and, if so, its target.
func readlink(fsys afero.Fs, name string) (string, bool, error) {
	lstater, ok := fsys.(afero.Lstater)
	if !ok {
		return "", false, nil
	}

	fi, _, err := lstater.LstatIfPossible(name)
	if err != nil {
		return "", false, err
	}
	if fi.Mode()&os.ModeSymlink == 0 {
		return "", false, nil
	}

	reader, ok := fsys.(afero.LinkReader)
	if !ok {
		return "", false, nil
	}
	link, err := reader.ReadlinkIfPossible(name)
	if err != nil {
		return "", false, err
	}
	return link, true, nil
}
