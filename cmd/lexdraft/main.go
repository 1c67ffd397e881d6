package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/lexdraft/lexdraft/internal/cli"
)

func main() {
	// Optional .env for local defaults (cache address, database path).
	_ = godotenv.Load()

	cmd := cli.NewRootCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(cli.GetExitCode(err))
	}
}
