package main

import (
	"os"

	"github.com/mgreer/studyprep/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
