// Command hugecalc performs exact decimal arithmetic from the command line.
package main

import (
	"os"

	"github.com/govalues/bigdecimal/cmd/hugecalc/command"
)

func main() {
	if err := command.Execute(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		os.Exit(1)
	}
}
