package charm

import (
	"errors"
	"flag"
	"io"
)

type instance struct {
	spec    *Spec
	command Command
	flags   *flag.FlagSet
}

// path is the chain of commands selected by a command line, root first.
type path []*instance

func (p path) run(args []string) error {
	return p[len(p)-1].command.Run(args)
}

func parse(spec *Spec, args []string) (path, []string, error) {
	var p path
	var parent Command
	for {
		flags := flag.NewFlagSet(spec.Name, flag.ContinueOnError)
		flags.SetOutput(io.Discard)
		var help bool
		flags.BoolVar(&help, "h", false, "display help")
		flags.BoolVar(&help, "help", false, "display help")
		cmd, err := spec.New(parent, flags)
		if err != nil {
			return p, nil, err
		}
		p = append(p, &instance{spec: spec, command: cmd, flags: flags})
		if err := flags.Parse(args); err != nil {
			if errors.Is(err, flag.ErrHelp) {
				return p, nil, NeedHelp
			}
			return p, nil, err
		}
		if help {
			return p, nil, NeedHelp
		}
		rest := flags.Args()
		if len(rest) == 0 {
			return p, rest, nil
		}
		child := spec.lookupSub(rest[0])
		if child == nil {
			return p, rest, nil
		}
		spec, args, parent = child, rest[1:], cmd
	}
}
