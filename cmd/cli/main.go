// Package main is the entry point for the fieldtrack admin CLI.
package main

import (
	"os"

	cli "fieldtrack/pkg/cli"
)

func main() {
	os.Exit(cli.Execute())
}
