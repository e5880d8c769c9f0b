// Package main provides the shapecast CLI: check documents against spec
// descriptors, project descriptors to JSON Schema and print their samples.
package main

import (
	"errors"
	"fmt"
	"os"
)

// Exit codes.
const (
	exitSuccess    = 0
	exitNotConform = 1
	exitUserError  = 2
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	root := newRootCmd()
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		if errors.Is(err, errNotConform) {
			return exitNotConform
		}
		fmt.Fprintln(root.ErrOrStderr(), "shapecast:", err)
		return exitUserError
	}
	return exitSuccess
}
