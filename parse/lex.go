package parse

import (
	"github.com/google/shlex"
	"github.com/napalu/argmatch/errs"
)

// Split splits a command line into tokens using shell quoting rules
func Split(s string) ([]string, error) {
	args, err := shlex.Split(s)
	if err != nil {
		return nil, errs.ErrCommandLine.Wrap(err)
	}

	return args, nil
}
