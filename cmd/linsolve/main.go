// Command linsolve solves a square linear system A·x = b with Jacobi
// iteration and prints the per-iteration trace.
//
// Usage:
//
//	linsolve solve --a "4,1,1;1,3,1;1,1,5" --b "6,5,7" --tol 1e-6 --max-iter 25
//	linsolve solve --config system.yaml --format json
//	linsolve version
package main

import "os"

func main() {
	os.Exit(Execute(os.Args[1:], os.Stdout, os.Stderr))
}
