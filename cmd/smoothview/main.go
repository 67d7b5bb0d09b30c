package main

import (
	"github.com/matjam/smoothview/internal/cli"
)

func main() {
	cli.Execute()
}
