package main

import (
	"io"
	"os"

	"wacblog/service"
)

// exit is a variable so tests can observe the exit status.
var exit = os.Exit

func main() {
	if code := RealMain(os.Args[1:], os.Stdout, os.Stderr); code != 0 {
		exit(code)
	}
}

// RealMain runs the wacblog CLI and returns its exit status.
func RealMain(args []string, stdout, stderr io.Writer) int {
	return service.Execute(args, stdout, stderr)
}
