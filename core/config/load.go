package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/spf13/afero"
	"sigs.k8s.io/yaml"
)

// Load loads the configuration from the directory.
func Load(fsys afero.Fs, path string) (*Configuration, error) {
	// If given the path to a config.yaml file, move back up a level.
	if filepath.Base(path) == ConfigurationName {
		path = filepath.Dir(path)
	}

	contents, err := afero.ReadFile(fsys, filepath.Join(path, ConfigurationName))
	if err != nil {
		return nil, err
	}

	out := Default()
	if err := yaml.UnmarshalStrict(contents, out); err != nil {
		return nil, err
	}
	if err := out.Validate(); err != nil {
		return nil, err
	}
	return out, nil
}

// LoadOrDefault is Load, falling back to the defaults when the directory
// has no configuration file.
func LoadOrDefault(fsys afero.Fs, path string) (*Configuration, error) {
	cfg, err := Load(fsys, path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// Initialize writes the default configuration into the directory. It
// refuses to overwrite an existing file.
func Initialize(fsys afero.Fs, path string) error {
	target := filepath.Join(path, ConfigurationName)
	if _, err := fsys.Stat(target); err == nil {
		return fmt.Errorf("%s already exists", target)
	}

	data, err := yaml.Marshal(Default())
	if err != nil {
		return err
	}
	return afero.WriteFile(fsys, target, data, 0644)
}
