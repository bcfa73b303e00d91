package main

import (
	"os"

	"github.com/msto63/mdw-simpson/cmd/simpson/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
