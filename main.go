package main

import (
	"github.com/joho/godotenv"

	"github.com/theirongolddev/wrapped/cmd"
)

func main() {
	// Optional .env for local overrides (XDG_CONFIG_HOME, ledger paths).
	_ = godotenv.Load()

	cmd.Execute()
}
