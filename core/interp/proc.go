package interp

import (
	"io"
	"os/exec"
	"sync/atomic"

	"github.com/quash-sh/quash/core/builtins"
)

// Proc is a handle to one spawned pipeline stage. External commands and
// in-shell builtin processes both satisfy it, so the runner collects exits
// without caring which flavor it started.
type Proc interface {
	// Pid identifies the process for job tracking and kill.
	Pid() int
	// Wait blocks until the process exits.
	Wait() error
}

type externalProc struct {
	cmd *exec.Cmd
}

func (p *externalProc) Pid() int {
	return p.cmd.Process.Pid
}

func (p *externalProc) Wait() error {
	return p.cmd.Wait()
}

// shellPid hands out pids for in-shell processes, above the kernel's pid
// range so they can never collide with a real process.
var shellPid int64 = 1 << 30

func nextShellPid() int {
	return int(atomic.AddInt64(&shellPid, 1))
}

// builtinProc runs a child-side builtin on its own goroutine. It owns the
// descriptors it was handed and releases them when the builtin returns, so
// a downstream pipe reader sees EOF exactly as if a child process exited.
type builtinProc struct {
	pid  int
	code int
	done chan struct{}
}

func startBuiltin(fn builtins.Func, p *builtins.Proc, owned []io.Closer) Proc {
	bp := &builtinProc{
		pid:  nextShellPid(),
		done: make(chan struct{}),
	}

	go func() {
		bp.code = fn(p)
		closeAll(owned)
		close(bp.done)
	}()

	return bp
}

func (b *builtinProc) Pid() int {
	return b.pid
}

func (b *builtinProc) Wait() error {
	<-b.done
	return nil
}

func closeAll(closers []io.Closer) {
	for _, c := range closers {
		c.Close()
	}
}
