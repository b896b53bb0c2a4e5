package builtins

import "fmt"

// Pwd prints the working directory the shell had when the process spawned.
func Pwd(p *Proc) int {
	cmd := &SimpleCommand{
		Use:   "pwd",
		Short: "Print the current working directory.",
	}

	return cmd.Run(p, func() int {
		if p.Dir == "" {
			fmt.Fprintln(p.IO.Err, "pwd: no working directory")
			return 1
		}
		fmt.Fprintf(p.IO.Out, "%s\n", p.Dir)
		return 0
	})
}

var _ Func = Pwd
