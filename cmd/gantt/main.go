package main

import (
	"fmt"
	"os"

	"github.com/pablasso/gantt/internal/cli"
)

func main() {
	// No args opens the viewer; everything else goes through the CLI
	var err error
	if len(os.Args) == 1 {
		err = cli.View()
	} else {
		err = cli.Execute()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
