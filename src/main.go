package main

import (
	"github.com/npmenv/npmenv/src/cmd"
)

func main() {
	cmd.Execute()
}
