// Command fourbar checks, solves, renders and serves planar four-bar
// linkages.
//
//	fourbar check 2.7 1 2.4 3
//	fourbar solve --format csv 2.7 1 2.4 3
//	fourbar render --kind gif -o linkage.gif 2.7 1 2.4 3
//	fourbar interactive --pace 2.75s
//	fourbar serve --addr :8080
package main

import "github.com/katalvlaran/fourbar/internal/cli"

func main() {
	cli.Execute()
}
