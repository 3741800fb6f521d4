package main

import (
	"fmt"
	"os"

	"github.com/dl/quickfind/internal/cli"
)

func main() {
	if err := cli.LoadEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "quickfind: .env: %v\n", err)
	}
	// Config file args come first so command line flags override them.
	args := append(cli.LoadConfigArgs(), os.Args[1:]...)
	os.Exit(cli.Execute(args))
}
