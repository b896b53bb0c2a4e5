package interp

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path"

	"github.com/quash-sh/quash/core/builtins"
	"github.com/quash-sh/quash/core/command"
	"github.com/quash-sh/quash/core/session"
)

// spawn wires up and starts one pipeline stage. It returns the handle of
// the spawned process (nil when the command ran in the shell's own flow),
// the read end of this stage's pipe for the next stage to inherit, and any
// error that aborted the stage. It never blocks on the spawned process.
//
// Wiring rules: a created pipe's write end becomes this stage's stdout and
// an inherited read end its stdin; an explicit redirection supersedes the
// pipe on the same stream, in which case the unused pipe end is closed so
// the neighbor sees EOF. A failed redirection open aborts the stage before
// any command runs.
func (r *Runner) spawn(stage command.Stage, inherited io.ReadCloser) (Proc, io.ReadCloser, error) {
	// owned collects every descriptor this stage must release: the
	// shell's copy once an external child holds its own, or the builtin
	// process's wiring once it returns.
	var owned []io.Closer

	stdin := io.Reader(r.sess.IO.In)
	if inherited != nil {
		stdin = inherited
		owned = append(owned, inherited)
	}

	// The pipe exists before the spawn so the next stage always has a
	// stdin to inherit.
	var nextRead io.ReadCloser
	stdout := io.Writer(r.sess.IO.Out)
	if stage.PipeOut {
		pr, pw, err := os.Pipe()
		if err != nil {
			closeAll(owned)
			return nil, nil, fmt.Errorf("pipe: %w", err)
		}
		nextRead = pr
		stdout = pw
		owned = append(owned, pw)
	}

	if stage.RedirectIn != "" {
		f, err := r.sess.FS.Open(r.absPath(stage.RedirectIn))
		if err != nil {
			closeAll(owned)
			return nil, nextRead, fmt.Errorf("open %s: %w", stage.RedirectIn, err)
		}
		stdin = f
		owned = append(owned, f)
	}
	if stage.RedirectOut != "" {
		f, err := r.sess.FS.OpenFile(r.absPath(stage.RedirectOut), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
		if err != nil {
			closeAll(owned)
			return nil, nextRead, fmt.Errorf("open %s: %w", stage.RedirectOut, err)
		}
		stdout = f
		owned = append(owned, f)
	}

	switch c := stage.Cmd.(type) {
	case command.Exec:
		proc, err := r.startExternal(c, stdin, stdout, owned)
		return proc, nextRead, err

	case command.Echo:
		view := r.builtinView(append([]string{"echo"}, c.Argv...), stdin, stdout)
		return startBuiltin(builtins.Echo, view, owned), nextRead, nil

	case command.Pwd:
		view := r.builtinView([]string{"pwd"}, stdin, stdout)
		return startBuiltin(builtins.Pwd, view, owned), nextRead, nil

	case command.Jobs:
		view := r.builtinView([]string{"jobs"}, stdin, stdout)
		return startBuiltin(builtins.Jobs, view, owned), nextRead, nil

	// State-mutating commands run in the shell's own flow; their effects
	// must outlive any spawned process, so none is created.
	case command.Export:
		closeAll(owned)
		return nil, nextRead, builtins.Export(r.sess, c.Name, c.Value)

	case command.Cd:
		closeAll(owned)
		return nil, nextRead, builtins.Cd(r.sess, c.Path)

	case command.Kill:
		closeAll(owned)
		return nil, nextRead, builtins.Kill(c.Sig, c.Pid)

	case command.EOC:
		closeAll(owned)
		return nil, nextRead, nil

	default:
		closeAll(owned)
		return nil, nextRead, fmt.Errorf("unknown command type %T", stage.Cmd)
	}
}

// absPath resolves a redirection path against the session's working
// directory; the underlying filesystem would otherwise resolve it against
// the shell binary's own cwd.
func (r *Runner) absPath(p string) string {
	if path.IsAbs(p) {
		return p
	}
	return path.Join(r.sess.Getwd(), p)
}

// builtinView assembles the process view a child-side builtin runs
// against: its argv, the stage's wired stdio, and snapshots of the shell
// state it may read.
func (r *Runner) builtinView(argv []string, stdin io.Reader, stdout io.Writer) *builtins.Proc {
	return &builtins.Proc{
		Argv: argv,
		IO:   session.NewStdio(stdin, stdout, r.sess.IO.Err),
		Dir:  r.sess.Getwd(),
		Jobs: r.reg,
	}
}

// startExternal launches a real OS process. The child inherits the wired
// stdin/stdout and the session's environment and working directory; once
// it holds its own descriptor copies the shell's are closed.
func (r *Runner) startExternal(c command.Exec, stdin io.Reader, stdout io.Writer, owned []io.Closer) (Proc, error) {
	if len(c.Argv) == 0 {
		closeAll(owned)
		return nil, errors.New("no command given")
	}

	execPath, err := LookPath(r.sess, c.Argv[0])
	switch {
	case errors.Is(err, ErrNotFound):
		closeAll(owned)
		return nil, fmt.Errorf("%s: command not found", c.Argv[0])
	case err != nil:
		closeAll(owned)
		return nil, fmt.Errorf("%s: %w", c.Argv[0], err)
	}

	cmd := exec.Command(execPath, c.Argv[1:]...)
	cmd.Stdin = stdin
	cmd.Stdout = stdout
	cmd.Stderr = r.sess.IO.Err
	cmd.Env = r.sess.Environ()
	cmd.Dir = r.sess.Getwd()

	if err := cmd.Start(); err != nil {
		closeAll(owned)
		return nil, fmt.Errorf("%s: %w", c.Argv[0], err)
	}

	closeAll(owned)
	return &externalProc{cmd}, nil
}
