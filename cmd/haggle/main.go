// Package main is the entry point for the haggle server.
package main

import (
	"os"

	"github.com/donaldgifford/haggle/cmd/haggle/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
