package main

import (
	"os"

	"github.com/abhisek/quizstation/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
