// Package main is the notequiz entry point. It serves the HTTP API, runs
// schema migrations and generates quizzes offline from text files.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
