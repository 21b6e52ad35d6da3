package main

import (
	"os"

	"github.com/seuros/gopher-estree/cmd/estree-rewrite/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
