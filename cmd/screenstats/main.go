package main

import (
	"log"
	"os"

	"github.com/gaffkit/screenstats/internal/cmd"
)

func main() {
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	if os.Getenv("SCREENSTATS_LOG_LEVEL") == "debug" {
		log.Printf("screenstats %s (built %s, commit %s)", cmd.Version, cmd.BuildDate, cmd.GitCommit)
	}

	cmd.Execute()
}
