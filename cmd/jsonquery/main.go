package main

import (
	"os"

	"github.com/jacoelho/jsonquery/internal/config"
	"github.com/jacoelho/jsonquery/internal/execute"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, exitResult := config.Parse(os.Args)
	if exitResult != nil {
		exitResult.Print()
		return exitResult.ExitCode
	}

	result := execute.New(cfg).Run()
	result.Print()
	return result.ExitCode
}
