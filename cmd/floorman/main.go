package main

import (
	"github.com/tannerhall/floorman/internal/cli"
)

func main() {
	cli.Execute()
}
