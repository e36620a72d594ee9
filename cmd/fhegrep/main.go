// Command fhegrep is a demonstration CLI for the fheregex engine.
//
// It is not part of the core specification (spec.md §6.3 places CLI
// argument parsing, logging, and key file I/O out of scope as external
// collaborators) — it exists to drive the whole pipeline end to end
// using simfhe's reference capability, since no real FHE backend is
// available in this repository's dependency stack.
package main

import (
	"os"

	"github.com/coregx/fheregex/cmd/fhegrep/internal/cli"
)

func main() {
	os.Exit(cli.Run(os.Args[1:], os.Stdout, os.Stderr))
}
