package main

import (
	"github.com/raihq/rai-go/cmd/rai/cli"
)

// main is the entry point for the rai command-line tool. It delegates all
// execution to the Execute function provided by the cli package.
func main() {
	cli.Execute()
}
