package main

import (
	"os"

	"github.com/funvibe/patlang/pkg/cli"
)

func main() {
	os.Exit(cli.Entry(os.Args[1:]))
}
