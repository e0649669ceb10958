package main

import (
	"os"

	"github.com/etnz/bankacct/cmd"
)

func main() {
	os.Exit(cmd.Run(os.Args[1:]))
}
