package main

import (
	"os"

	"github.com/ostafen/sniff/cmd/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
