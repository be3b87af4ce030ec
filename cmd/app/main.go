package main

import (
	"context"                  // Request scoping
	"os"                       // Stdin/stdout wiring
	"schoolhub/internal/api"   // Custom package for the backend client
	"schoolhub/internal/config" // Custom package for configuration
	"schoolhub/internal/session" // Custom package for the local user store
	"schoolhub/internal/shell" // Custom package for the navigation shell

	"github.com/sirupsen/logrus" // Logrus for structured logging
)

// Main function to set up and run the client
func main() {
	cfg := config.LoadConfig() // Load configuration

	// Setup logger
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if cfg.IsProd {
		logrus.SetLevel(logrus.WarnLevel) // Diagnostics only outside production
	}

	// Open the local preference store
	store, err := session.Open(cfg.PrefsPath)
	if err != nil {
		logrus.Fatalf("failed to open preference store: %v", err)
	}
	defer store.Close()

	// Build the API client
	client, err := api.New(cfg.BaseURL, cfg.HTTPTimeout, logrus.StandardLogger())
	if err != nil {
		logrus.Fatalf("failed to build API client: %v", err)
	}

	// Run the navigation shell over stdin/stdout
	sh := shell.New(client, store, logrus.StandardLogger(), os.Stdin, os.Stdout)
	if err := sh.Run(context.Background()); err != nil {
		logrus.Fatalf("shell error: %v", err)
	}
}
