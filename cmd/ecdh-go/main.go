package main

import (
	"os"

	"github.com/kexlab/ecdh-go/cmd/ecdh-go/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
