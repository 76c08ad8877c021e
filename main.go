package main

import (
	"os"

	"github.com/mediveda/healthbot/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
