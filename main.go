package main

import (
	"os"

	"github.com/abhisek/careerfit/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
