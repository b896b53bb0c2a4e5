// Package builtins implements the commands the shell handles itself.
//
// Child-side builtins (echo, pwd, jobs) run inside a spawned process
// against its wired stdio, so their output flows through pipes and
// redirections like any external program's. Parent-side builtins (export,
// cd, kill) run in the shell's own flow because their effects must outlive
// the spawned process.
package builtins

import (
	"fmt"
	"io"

	getopt "github.com/pborman/getopt/v2"

	"github.com/quash-sh/quash/core/jobs"
	"github.com/quash-sh/quash/core/session"
)

// Func is a child-side builtin; the return value becomes the process's
// exit status.
type Func func(p *Proc) int

// JobLister is the registry view the jobs builtin reads.
type JobLister interface {
	Active() []jobs.Job
}

// Proc is the view a child-side builtin gets of the process it runs in:
// its argument vector, the stdio wired up by the orchestrator, and
// snapshots of the shell state it is allowed to read.
type Proc struct {
	Argv []string
	IO   session.Stdio

	// Dir is the shell's working directory captured at spawn time.
	Dir string
	// Jobs lists tracked background jobs.
	Jobs JobLister
}

// SimpleCommand handles flag parsing and help for a builtin.
type SimpleCommand struct {
	// Use holds a one line usage string.
	Use string
	// Short holds a one line description of the command.
	Short string

	flags *getopt.Set
}

// Flags gets the command's flag set.
func (s *SimpleCommand) Flags() *getopt.Set {
	if s.flags == nil {
		s.flags = getopt.New()
	}
	return s.flags
}

// PrintHelp writes help for the command to the given writer.
func (s *SimpleCommand) PrintHelp(w io.Writer) {
	fmt.Fprint(w, "usage: ")
	fmt.Fprintln(w, s.Use)
	fmt.Fprintln(w, s.Short)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	s.Flags().PrintOptions(w)
}

// Run parses the process arguments and, on success, calls the callback.
func (s *SimpleCommand) Run(p *Proc, callback func() int) int {
	opts := s.Flags()
	showHelp := opts.BoolLong("help", 'h', "show this help and exit")

	if err := opts.Getopt(p.Argv, nil); err != nil {
		fmt.Fprintf(p.IO.Err, "error: %s\n\n", err)
		s.PrintHelp(p.IO.Out)
		return 1
	}

	if *showHelp {
		s.PrintHelp(p.IO.Out)
		return 0
	}

	return callback()
}
