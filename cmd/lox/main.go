// Command lox is the thin entrypoint that hands off to the cobra command
// tree in internal/loxcmd, mirroring the teacher's cmd/dwscript/main.go.
package main

import (
	"fmt"
	"os"

	"github.com/loxscript/lox/internal/loxcmd"
)

func main() {
	if err := loxcmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
