// Command cubesolve is the cubesolve CLI.
package main

import (
	"github.com/arjwilde/cubesolve/internal/cli"
)

func main() {
	cli.Execute()
}
