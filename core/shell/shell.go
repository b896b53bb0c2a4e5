// Package shell is the interactive frontend: it reads lines, expands
// environment references, assembles pipelines, and hands them to the
// interpreter. The execution core itself never depends on this package.
package shell

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/abiosoft/readline"
	shlex "github.com/anmitsu/go-shlex"
	"github.com/fatih/color"
	"github.com/spf13/afero"

	"github.com/quash-sh/quash/core/config"
	"github.com/quash-sh/quash/core/interp"
	"github.com/quash-sh/quash/core/jobs"
	"github.com/quash-sh/quash/core/session"
)

var promptColor = color.New(color.FgGreen, color.Bold)

// Shell is one interactive session attached to the process's terminal.
type Shell struct {
	Session  *session.Session
	Jobs     *jobs.Table
	Runner   *interp.Runner
	Readline *readline.Instance

	history []string
}

// New creates a shell over the real filesystem and terminal.
func New(cfg *config.Configuration) (*Shell, error) {
	sess := session.New(afero.NewOsFs(), session.NewStdio(os.Stdin, os.Stdout, os.Stderr))
	table := jobs.NewTable()

	shell := &Shell{
		Session: sess,
		Jobs:    table,
		Runner:  interp.New(sess, table),
	}
	shell.init(cfg)

	rlCfg := &readline.Config{
		Stdin:       readline.NewCancelableStdin(sess.IO.In),
		Stdout:      sess.IO.Out,
		Stderr:      sess.IO.Err,
		HistoryFile: cfg.HistoryFile,
	}
	if err := rlCfg.Init(); err != nil {
		return nil, err
	}
	rl, err := readline.NewEx(rlCfg)
	if err != nil {
		return nil, err
	}
	shell.Readline = rl

	return shell, nil
}

// init seeds the session the way a login shell would: the inherited
// process environment first, then config overrides, then the working
// directory (which also sets PWD).
func (s *Shell) init(cfg *config.Configuration) {
	for _, e := range os.Environ() {
		split := strings.SplitN(e, "=", 2)
		key, value := split[0], ""
		if len(split) > 1 {
			value = split[1]
		}
		s.Session.Setenv(key, value)
	}

	for k, v := range cfg.Env {
		s.Session.Setenv(k, v)
	}
	if cfg.Prompt != "" {
		s.Session.Setenv(session.EnvPrompt, cfg.Prompt)
	}
	if host, err := os.Hostname(); err == nil {
		s.Session.Setenv(session.EnvHostname, host)
	}

	if wd, err := os.Getwd(); err == nil {
		if err := s.Session.Chdir(wd); err != nil {
			log.Printf("chdir %s: %v", wd, err)
		}
	}
}

// Prompt renders PS1 with \u, \h, \w and \$ expanded.
func (s *Shell) Prompt() string {
	prompt := s.Session.Getenv(session.EnvPrompt)
	if prompt == "" {
		prompt = config.DefaultPrompt
	}

	prompt = strings.ReplaceAll(prompt, `\u`, promptColor.Sprint(s.Session.Getenv(session.EnvUser)))
	prompt = strings.ReplaceAll(prompt, `\h`, promptColor.Sprint(s.Session.Getenv(session.EnvHostname)))

	pwd := s.Session.Getwd()
	if home := s.Session.Getenv(session.EnvHome); home != "" && strings.HasPrefix(pwd, home) {
		pwd = "~" + strings.TrimPrefix(pwd, home)
	}
	prompt = strings.ReplaceAll(prompt, `\w`, pwd)

	if os.Getuid() == 0 {
		prompt = strings.ReplaceAll(prompt, `\$`, "#")
	} else {
		prompt = strings.ReplaceAll(prompt, `\$`, "$")
	}

	return prompt
}

// Run reads and executes command lines until exit or EOF.
func (s *Shell) Run() {
	for {
		s.Readline.SetPrompt(s.Prompt())
		line, err := s.Readline.Readline()

		switch {
		case err == io.EOF:
			return // Input closed, quit.

		case err == readline.ErrInterrupt:
			continue

		case err != nil:
			log.Printf("readline: %v", err)
			continue

		case strings.TrimSpace(line) == "":
			continue
		}

		s.history = append(s.history, line)

		tokens, err := shlex.Split(line, true)
		if err != nil {
			fmt.Fprintln(s.Session.IO.Err, "quash: syntax error: unexpected end of file")
			continue
		}
		for i, tok := range tokens {
			tokens[i] = s.Session.ExpandEnv(tok)
		}
		if len(tokens) == 0 {
			continue
		}

		// Builtins that belong to the line editor, not the core.
		switch tokens[0] {
		case "exit":
			return
		case "history":
			s.builtinHistory()
			continue
		case "unset":
			s.builtinUnset(tokens)
			continue
		}

		pipeline, err := Parse(tokens, s.Jobs.Pid)
		if err != nil {
			fmt.Fprintf(s.Session.IO.Err, "quash: %v\n", err)
			continue
		}
		s.Runner.Run(pipeline)
	}
}

// Close releases the line editor.
func (s *Shell) Close() error {
	return s.Readline.Close()
}

func (s *Shell) builtinHistory() {
	for i, line := range s.history {
		fmt.Fprintf(s.Session.IO.Out, "% 5d  %s\n", i, line)
	}
}

func (s *Shell) builtinUnset(args []string) {
	for _, name := range args[1:] {
		s.Session.Unsetenv(name)
	}
}
