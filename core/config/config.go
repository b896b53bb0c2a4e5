// Package config holds the shell's user configuration: prompt template,
// history persistence, and extra environment entries seeded into new
// sessions.
package config

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

const (
	// ConfigurationName is the file name looked up in the config
	// directory.
	ConfigurationName = "config.yaml"

	// DefaultPrompt is the PS1 template used when none is configured.
	DefaultPrompt = `\u@\h:\w\$ `
)

type Configuration struct {
	// Prompt is the PS1 template seeded into new sessions.
	Prompt string `json:"prompt" validate:"required"`

	// HistoryFile persists line history between sessions; empty keeps
	// history in memory only.
	HistoryFile string `json:"history_file"`

	// Env entries are applied to the session after the inherited
	// process environment and may override it.
	Env map[string]string `json:"env"`
}

// Default returns the configuration used when no file is present.
func Default() *Configuration {
	return &Configuration{
		Prompt: DefaultPrompt,
	}
}

// Validate the configuration for basic semantic errors.
func (c *Configuration) Validate() error {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		return strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	})
	if err := validate.Struct(c); err != nil {
		return err
	}

	for k := range c.Env {
		if k == "" || strings.Contains(k, "=") {
			return fmt.Errorf("env: invalid variable name %q", k)
		}
	}
	return nil
}
