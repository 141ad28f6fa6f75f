package main

import (
	"github.com/go-imsto/shrink/cmd"
)

func main() {
	cmd.Main()
}
