// Package main is the single-binary entrypoint for Waybook.
package main

import "github.com/waybook-app/waybook/internal/cli"

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	cli.Execute(version)
}
