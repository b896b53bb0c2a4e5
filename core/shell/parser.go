package shell

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/quash-sh/quash/core/command"
)

// PidLookup resolves a %N job reference to a process id.
type PidLookup func(jobID int) (int, bool)

// Parse assembles already-split tokens into a pipeline: stages separated
// by "|", "<" and ">" file redirections, and a trailing "&" marking the
// whole pipeline as background. The returned pipeline is terminated by the
// end-of-pipeline sentinel the interpreter expects.
func Parse(tokens []string, pidOf PidLookup) (command.Pipeline, error) {
	background := false
	if n := len(tokens); n > 0 {
		last := tokens[n-1]
		switch {
		case last == "&":
			background = true
			tokens = tokens[:n-1]
		case strings.HasSuffix(last, "&"):
			background = true
			tokens = append(append([]string{}, tokens[:n-1]...), strings.TrimSuffix(last, "&"))
		}
	}

	if len(tokens) == 0 {
		return command.Pipeline{{Cmd: command.EOC{}}}, nil
	}

	var pipeline command.Pipeline
	for {
		segment := tokens
		rest := []string(nil)
		for i, tok := range tokens {
			if tok == "|" {
				segment, rest = tokens[:i], tokens[i+1:]
				break
			}
		}

		stage, err := parseStage(segment, pidOf)
		if err != nil {
			return nil, err
		}
		if rest != nil {
			stage.PipeOut = true
		}
		pipeline = append(pipeline, stage)

		if rest == nil {
			break
		}
		if len(rest) == 0 {
			return nil, fmt.Errorf("syntax error near %q", "|")
		}
		tokens = rest
	}

	if background {
		pipeline[0].Background = true
	}

	return append(pipeline, command.Stage{Cmd: command.EOC{}}), nil
}

func parseStage(tokens []string, pidOf PidLookup) (command.Stage, error) {
	var stage command.Stage
	var words []string

	for i := 0; i < len(tokens); i++ {
		switch tok := tokens[i]; tok {
		case "<", ">":
			if i+1 >= len(tokens) {
				return stage, fmt.Errorf("syntax error: %q needs a file", tok)
			}
			i++
			if tok == "<" {
				stage.RedirectIn = tokens[i]
			} else {
				stage.RedirectOut = tokens[i]
			}
		default:
			words = append(words, tok)
		}
	}

	cmd, err := parseCommand(words, pidOf)
	if err != nil {
		return stage, err
	}
	stage.Cmd = cmd
	return stage, nil
}

func parseCommand(words []string, pidOf PidLookup) (command.Command, error) {
	if len(words) == 0 {
		return nil, fmt.Errorf("syntax error: empty command")
	}

	switch words[0] {
	case "echo":
		return command.Echo{Argv: words[1:]}, nil

	case "export":
		if len(words) != 2 {
			return nil, fmt.Errorf("export: usage: export NAME=VALUE")
		}
		split := strings.SplitN(words[1], "=", 2)
		if len(split) != 2 || split[0] == "" {
			return nil, fmt.Errorf("export: usage: export NAME=VALUE")
		}
		return command.Export{Name: split[0], Value: split[1]}, nil

	case "cd":
		if len(words) < 2 {
			return command.Cd{}, nil
		}
		return command.Cd{Path: words[1]}, nil

	case "kill":
		if len(words) != 3 {
			return nil, fmt.Errorf("kill: usage: kill SIGNUM PID|%%JOB")
		}
		sig, err := strconv.Atoi(strings.TrimPrefix(words[1], "-"))
		if err != nil {
			return nil, fmt.Errorf("kill: bad signal %q", words[1])
		}
		pid, err := parseTarget(words[2], pidOf)
		if err != nil {
			return nil, err
		}
		return command.Kill{Sig: sig, Pid: pid}, nil

	case "pwd":
		return command.Pwd{}, nil

	case "jobs":
		return command.Jobs{}, nil

	default:
		return command.Exec{Argv: words}, nil
	}
}

func parseTarget(target string, pidOf PidLookup) (int, error) {
	if strings.HasPrefix(target, "%") {
		id, err := strconv.Atoi(target[1:])
		if err != nil {
			return 0, fmt.Errorf("kill: bad job %q", target)
		}
		if pidOf == nil {
			return 0, fmt.Errorf("kill: %s: no such job", target)
		}
		pid, ok := pidOf(id)
		if !ok {
			return 0, fmt.Errorf("kill: %s: no such job", target)
		}
		return pid, nil
	}

	pid, err := strconv.Atoi(target)
	if err != nil {
		return 0, fmt.Errorf("kill: bad pid %q", target)
	}
	return pid, nil
}
