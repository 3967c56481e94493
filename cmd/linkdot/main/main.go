package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/linkdot/cmd/linkdot"
	"github.com/arthur-debert/linkdot/pkg/style"
)

func main() {
	rootCmd := linkdot.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, style.RenderError(err))
		os.Exit(1)
	}
}
