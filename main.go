// Package main is the entry point of the packagedsl command.
package main

import "packagedsl/cmd"

func main() {
	cmd.Execute()
}
