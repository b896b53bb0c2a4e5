// Package command holds the parsed representation of one shell invocation:
// a pipeline of stages, each wrapping a single command variant.
//
// The types here are produced by a frontend (parser) and consumed exactly
// once by the interpreter; they are never mutated after construction.
package command

// Command is the closed set of things one pipeline stage can ask the shell
// to do. Each variant carries only the fields it needs; consumers dispatch
// with a type switch so a field can never be read through the wrong variant.
type Command interface {
	isCommand()
}

// Exec runs an external program with the given argument vector.
// Argv[0] is the program name.
type Exec struct {
	Argv []string
}

// Echo writes its arguments to stdout.
type Echo struct {
	Argv []string
}

// Export sets an environment variable in the shell's own environment.
type Export struct {
	Name  string
	Value string
}

// Cd changes the shell's working directory.
type Cd struct {
	Path string
}

// Kill delivers signal Sig to the process with id Pid.
type Kill struct {
	Sig int
	Pid int
}

// Pwd prints the shell's working directory.
type Pwd struct{}

// Jobs prints the currently tracked background jobs.
type Jobs struct{}

// EOC is the sentinel terminating every pipeline.
type EOC struct{}

func (Exec) isCommand()   {}
func (Echo) isCommand()   {}
func (Export) isCommand() {}
func (Cd) isCommand()     {}
func (Kill) isCommand()   {}
func (Pwd) isCommand()    {}
func (Jobs) isCommand()   {}
func (EOC) isCommand()    {}

// Name returns the user-facing name of a command, used as the display
// string for background jobs.
func Name(c Command) string {
	switch c := c.(type) {
	case Exec:
		if len(c.Argv) > 0 {
			return c.Argv[0]
		}
		return ""
	case Echo:
		return "echo"
	case Export:
		return "export"
	case Cd:
		return "cd"
	case Kill:
		return "kill"
	case Pwd:
		return "pwd"
	case Jobs:
		return "jobs"
	default:
		return ""
	}
}

// Stage is one command within a pipeline together with its wiring: whether
// its stdout feeds the next stage, file redirections, and (on stage 0 only)
// whether the whole pipeline runs in the background.
type Stage struct {
	Cmd Command

	// Background is set on the first stage and applies to the whole
	// pipeline.
	Background bool
	// PipeOut wires this stage's stdout to the next stage's stdin.
	PipeOut bool

	// RedirectIn and RedirectOut name files replacing stdin/stdout.
	// Empty means no redirection; an explicit redirection takes
	// precedence over an inherited or created pipe on the same stream.
	RedirectIn  string
	RedirectOut string
}

// Pipeline is an ordered sequence of stages terminated by an EOC stage.
type Pipeline []Stage

// Empty reports whether the pipeline contains no runnable stage.
func (p Pipeline) Empty() bool {
	if len(p) == 0 {
		return true
	}
	_, eoc := p[0].Cmd.(EOC)
	return eoc
}

// Background reports whether the pipeline should run without the shell
// blocking for its completion. By convention the flag lives on stage 0.
func (p Pipeline) Background() bool {
	return len(p) > 0 && p[0].Background
}
