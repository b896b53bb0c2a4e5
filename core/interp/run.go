// Package interp executes parsed pipelines: it spawns one process per
// stage, connects them with pipes and file redirections, routes built-in
// commands to the right side of the child/parent split, and tracks
// background jobs through a registry.
package interp

import (
	"fmt"
	"io"

	"github.com/quash-sh/quash/core/command"
	"github.com/quash-sh/quash/core/jobs"
	"github.com/quash-sh/quash/core/session"
)

// Runner drives pipelines against one shell session.
type Runner struct {
	sess *session.Session
	reg  jobs.Registry
}

// New creates a Runner bound to the given session and job registry.
func New(sess *session.Session, reg jobs.Registry) *Runner {
	return &Runner{sess: sess, reg: reg}
}

// Run executes one pipeline. Stages spawn strictly left to right, each
// inheriting the previous stage's pipe read end. Foreground pipelines
// block until every spawned process has exited; background pipelines
// register their processes as jobs and return immediately.
//
// Stage failures are reported and isolated: siblings keep running and the
// shell itself never dies.
func (r *Runner) Run(p command.Pipeline) {
	if p.Empty() {
		return
	}

	r.ReportFinished()

	background := p.Background()
	var inherited io.ReadCloser
	var procs []Proc

	for _, stage := range p {
		if _, done := stage.Cmd.(command.EOC); done {
			break
		}

		proc, nextRead, err := r.spawn(stage, inherited)
		inherited = nextRead
		if err != nil {
			fmt.Fprintf(r.sess.IO.Err, "quash: %v\n", err)
			continue
		}
		if proc == nil {
			continue
		}

		if background {
			display := command.Name(stage.Cmd)
			id := r.reg.Add(proc.Pid(), display)
			printJobStart(r.sess.IO.Out, jobs.Job{ID: id, PID: proc.Pid(), Display: display})
			go r.watch(proc, id)
			continue
		}
		procs = append(procs, proc)
	}

	// A trailing pipe with no consumer.
	if inherited != nil {
		inherited.Close()
	}

	// Exit collection order is unspecified.
	for _, proc := range procs {
		proc.Wait()
	}
}

// watch reaps one background process and marks its job finished. The
// completion notice itself waits for the next pipeline's poll, so notices
// appear at the next prompt rather than mid-edit.
func (r *Runner) watch(proc Proc, id int) {
	proc.Wait()
	r.reg.Finish(id)
}

// ReportFinished drains the registry's completed set, emitting one
// completion notice per finished job.
func (r *Runner) ReportFinished() {
	for {
		j, ok := r.reg.PollFinished()
		if !ok {
			return
		}
		printJobComplete(r.sess.IO.Out, j)
	}
}
