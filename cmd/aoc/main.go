// Package main provides the entry point for the aoc CLI.
package main

import (
	"github.com/colthorp/aocdata/internal/cli"
)

func main() {
	cli.Execute()
}
