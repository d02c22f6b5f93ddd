package main

import (
	"os"

	"github.com/codewithsreyash/CivicSetu/cmd"
)

func main() {
	if err := cmd.Run(); err != nil {
		os.Exit(1)
	}
}
