package main

import (
	"github.com/christoph-weiser/ngsim/cmd/ngsim/cmd"
)

func main() {
	cmd.Execute()
}
