package main

import (
	"github.com/trustedfirmware/lavagen/cmd"
)

func main() {
	cmd.Execute()
}
