package builtins

import "fmt"

// Jobs lists the tracked background jobs, one per line as
// "[id]\tpid\tdisplay".
func Jobs(p *Proc) int {
	cmd := &SimpleCommand{
		Use:   "jobs",
		Short: "List background jobs.",
	}

	return cmd.Run(p, func() int {
		if p.Jobs == nil {
			return 0
		}
		for _, j := range p.Jobs.Active() {
			fmt.Fprintf(p.IO.Out, "[%d]\t%d\t%s\n", j.ID, j.PID, j.Display)
		}
		return 0
	})
}

var _ Func = Jobs
