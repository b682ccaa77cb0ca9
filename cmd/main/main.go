package main

import (
	"fmt"
	"os"

	"motor-match/internal/cli"
)

func main() {
	if err := cli.NewCLI(cli.Options{Output: os.Stdout}).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
