package main

import (
	"os"

	"github.com/fairpersona/skillcert/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
