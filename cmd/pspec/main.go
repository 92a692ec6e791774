// pspec renders go test -json output as a readable specification.
//
// Usage:
//
//	go test -json ./... | pspec --pspec
//	go test -json ./... | pspec --pspec --format plaintext --color no
//
// Every test becomes a sentence grouped under its package or parent test:
//
//	Divide
//	 ✓ by zero
//	 ✗ rounds down
//
// Without --pspec the host's own "<id> OUTCOME" lines are printed. The
// summary footer is the same in both modes.
//
// Exit codes: 0 all tests passed, 1 failures or errors, 2 usage or input
// error, 130 interrupted.
package main

import (
	"os"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
