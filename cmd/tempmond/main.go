package main

import (
	"github.com/tempmon/tempmond/pkg/cli"
)

func main() {
	cli.Execute()
}
