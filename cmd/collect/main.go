package main

import (
	"os"

	"github.com/plainview/go-collections/cmd/collect/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
