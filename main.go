// Package main is the entry point for the previewgen CLI.
package main

import "github.com/kongweiying2/previewjs/cmd"

func main() {
	cmd.Execute()
}
