package main

import (
	"os"

	"github.com/saransh1220/flowart/cmd/connectory/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
