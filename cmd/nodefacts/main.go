package main

import (
	"github.com/NVIDIA/node-facts/pkg/cli"
)

func main() {
	cli.Execute()
}
