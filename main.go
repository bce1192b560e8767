package main

import (
	"github.com/gripdash/gripdash/cmd"
)

func main() {
	cmd.Execute()
}
