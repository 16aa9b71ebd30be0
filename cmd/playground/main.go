package main

import (
	"fmt"
	"os"
)

func main() {
	err := newRootCmd().Execute()
	stopLogging()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(1)
	}
}
