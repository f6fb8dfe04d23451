package main

import (
	// Load environment overrides from a .env file if present.
	_ "github.com/joho/godotenv/autoload"

	"modupload/internal/cli"
)

func main() {
	cli.Execute()
}
