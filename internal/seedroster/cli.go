package seedroster

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/ohack/teamforge/pkg/logger"
)

// File permission constants.
const (
	logFilePermission = 0600
)

// SetupLogging configures logging to both console and file.
// If logFile is empty, a timestamped filename is generated.
func SetupLogging(logFile string) error {
	// Initialize the logger first
	if err := logger.Init(); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	if logFile == "" {
		timestamp := time.Now().Format("20060102_150405")
		logFile = "seed_log_" + timestamp + ".log"
	}

	file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, logFilePermission)
	if err != nil {
		return fmt.Errorf("failed to create log file: %w", err)
	}

	multiWriter := io.MultiWriter(os.Stdout, file)
	log.SetOutput(multiWriter)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	logger.Get().Info(context.Background(), "logging to file", logger.String("logFile", logFile))
	return nil
}

// ShowHelp prints usage information for the roster seeding tool.
func ShowHelp() {
	os.Stdout.WriteString(`TeamForge Roster Seeder
=======================

A concurrent tool that fills a TeamForge instance with realistic hackathon
participants and exercises the team formation pass.

Usage:
  go run cmd/seed-roster/main.go [options]

Options:
  -url string
        Base URL of the service (default "http://localhost:9080")
  -profiles int
        Number of profiles to generate and submit (default 200)
  -size int
        Target team size for the formation pass (default 4)
  -workers int
        Number of concurrent workers (default CPU cores * 2)
  -timeout duration
        HTTP request timeout (default 30s)
  -output string
        Output file for generated profiles (default: generated_profiles_TIMESTAMP.json)
  -log string
        Log file for run output (default: seed_log_TIMESTAMP.log)
  -verbose
        Enable verbose logging
  -help
        Show this help message

Examples:
  # Seed with default settings
  go run cmd/seed-roster/main.go

  # Seed a large roster with bigger teams
  go run cmd/seed-roster/main.go -profiles 1000 -size 5

  # Seed against a staging instance with verbose output
  go run cmd/seed-roster/main.go -url http://staging:9080 -verbose
`)
}
