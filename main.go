package main

import (
	"os"

	"github.com/joho/godotenv"

	"salespulse/app/command"
)

var version = "dev"

func main() {
	// Load .env in development; in production variables are set directly.
	if os.Getenv("ENV") != "production" {
		godotenv.Overload(".env")
	}

	if err := command.NewRoot(version).Execute(); err != nil {
		os.Exit(1)
	}
}
