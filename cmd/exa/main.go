package main

import (
	"os"

	"github.com/skade/exa"
)

func main() {
	os.Exit(exa.Main(os.Args[1:], os.Stdout, os.Stderr))
}
