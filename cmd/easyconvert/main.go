// Command easyconvert converts unit queries such as "10f to c" from the terminal.
package main

import (
	"os"
)

func main() {
	app := NewApp(os.Stdin, os.Stdout, os.Stderr)
	if err := app.CreateRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
