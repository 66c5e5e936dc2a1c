package main

//go:generate swag init

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/satheeshds/invoicing/cmd"
	_ "github.com/satheeshds/invoicing/docs"
	"github.com/satheeshds/invoicing/logger"
)

// @title           Invoicing API
// @version         1.0.0
// @description     Clients, company profile, draft and issued invoices with year-scoped numbering.
// @host            localhost:8080
// @BasePath        /api/v1

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: Could not load .env file: %v", err)
	}

	// Commands replace this once the configuration is read.
	if err := logger.Setup(logger.DefaultConfig()); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	cmd.Execute()
}
