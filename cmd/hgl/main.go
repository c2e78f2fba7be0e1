// Package main is the entry point for the hgl CLI client.
package main

import "github.com/donaldgifford/haggle/cmd/hgl/cmd"

func main() {
	cmd.Execute()
}
