package main

import (
	"os"

	"github.com/mkelk/toybox/cmd/toybox/cmd"
)

func main() {
	os.Exit(run(os.Args))
}

func run(args []string) int {
	if len(args) < 2 {
		return cmd.Execute(nil)
	}
	return cmd.Execute(args[1:])
}
