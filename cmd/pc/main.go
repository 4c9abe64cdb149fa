package main

import (
	"os"
)

func main() {
	// Initialize styled help after all commands are registered
	initHelp(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		// Single exit boundary: print a status code and scrubbed message,
		// then terminate. Library code never exits on its own.
		outputError(os.Stderr, err)
		os.Exit(1)
	}
}
