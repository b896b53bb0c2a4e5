// Package jobs tracks background jobs by small integer ids, the way an
// interactive shell reports them. The shell registers a job when it spawns
// a background process and a watcher marks it finished when the process
// exits; completions are drained one at a time at the next prompt.
package jobs

import "sync"

// State describes where a job is in its lifecycle.
type State int

const (
	Running State = iota
	Finished
)

// Job is one tracked background process.
type Job struct {
	ID      int
	PID     int
	Display string
	State   State
}

// Registry is the contract the interpreter consumes for job tracking.
type Registry interface {
	// Add records a new running job and returns a fresh job id not
	// currently in use.
	Add(pid int, display string) int
	// Finish marks the job as completed. Unknown ids are ignored.
	Finish(id int)
	// PollFinished returns at most one completed-and-unreported job,
	// removing it from the registry. Repeated calls drain the
	// completed set.
	PollFinished() (Job, bool)
	// Active lists every tracked job in insertion order.
	Active() []Job
	// Pid returns the process id for a job id.
	Pid(id int) (int, bool)
}

// Table is the in-memory Registry used by the shell. A mutex guards it
// because exit watchers run on their own goroutines; every method is a
// single critical section.
type Table struct {
	mu   sync.Mutex
	list []Job
}

var _ Registry = (*Table)(nil)

// NewTable creates an empty job table.
func NewTable() *Table {
	return &Table{}
}

// Add implements Registry.Add. Ids start at 1 and the lowest free id is
// reused once its previous job has been reported complete.
func (t *Table) Add(pid int, display string) int {
	t.mu.Lock()
	defer t.mu.Unlock()

	used := make(map[int]bool, len(t.list))
	for _, j := range t.list {
		used[j.ID] = true
	}
	id := 1
	for used[id] {
		id++
	}

	t.list = append(t.list, Job{ID: id, PID: pid, Display: display, State: Running})
	return id
}

// Finish implements Registry.Finish.
func (t *Table) Finish(id int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	for i := range t.list {
		if t.list[i].ID == id {
			t.list[i].State = Finished
			return
		}
	}
}

// PollFinished implements Registry.PollFinished.
func (t *Table) PollFinished() (Job, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	for i, j := range t.list {
		if j.State == Finished {
			t.list = append(t.list[:i], t.list[i+1:]...)
			return j, true
		}
	}
	return Job{}, false
}

// Active implements Registry.Active.
func (t *Table) Active() []Job {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make([]Job, len(t.list))
	copy(out, t.list)
	return out
}

// Pid implements Registry.Pid.
func (t *Table) Pid(id int) (int, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	for _, j := range t.list {
		if j.ID == id {
			return j.PID, true
		}
	}
	return 0, false
}
