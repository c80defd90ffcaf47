package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/firstrun/pkg/style"
)

func main() {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, style.Render("Error", fmt.Sprintf("Error: %v", err)))
		os.Exit(1)
	}
}
