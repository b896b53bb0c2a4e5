package interp

import (
	"fmt"
	"io"

	"github.com/quash-sh/quash/core/jobs"
)

func fprintJob(w io.Writer, j jobs.Job) {
	fmt.Fprintf(w, "[%d]\t%d\t%s\n", j.ID, j.PID, j.Display)
}

func printJobStart(w io.Writer, j jobs.Job) {
	fmt.Fprint(w, "Background job started: ")
	fprintJob(w, j)
}

func printJobComplete(w io.Writer, j jobs.Job) {
	fmt.Fprint(w, "Completed: \t")
	fprintJob(w, j)
}
