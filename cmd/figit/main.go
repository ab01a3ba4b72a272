package main

import (
	"fmt"
	"os"
)

// set by -ldflags at release time
var version = "dev"

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "figit: %v\n", err)
		os.Exit(1)
	}
}
