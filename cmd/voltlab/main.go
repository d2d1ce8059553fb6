package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/voltlabhq/voltlab/internal/cli"
)

func main() {
	// A .env in the working directory is a dev convenience; absence is normal.
	_ = godotenv.Load()

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
