package main

import (
	"github.com/mchmarny/gradebook/pkg/cli"
)

func main() {
	cli.Execute()
}
