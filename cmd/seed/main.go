package main

import (
	"context" // Context for store operations
	"os"      // Process exit codes

	"book_market/internal/config" // Custom import path (Config)
	"book_market/internal/db"     // Custom import path (Database)
	"book_market/internal/seed"   // Admin seeder
	"book_market/internal/store"  // User store

	"github.com/sirupsen/logrus" // Logrus for structured logging
)

// Main entry point for the admin seeding utility. Run once at deployment
// time; exits 0 when the admin record was created or already existed, 1 on
// any failure. This thin entry point alone decides the exit status.
func main() {
	os.Exit(run())
}

// run performs the seeding and returns the process exit code
func run() int {
	cfg := config.LoadConfig() // Load configuration

	// Setup logger
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// Seeding needs a configured admin identity
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		logrus.Error("ADMIN_EMAIL and ADMIN_PASSWORD must be set")
		return 1
	}

	// Connect to the database with the same bootstrap policy as the server
	gdb, err := db.Connect(cfg.DSN(), cfg.DevMode)
	if err != nil {
		logrus.Errorf("failed to connect to DB: %v", err) // Connection failure is fatal for seeding
		return 1
	}

	seeder := seed.NewSeeder(store.NewGormUserStore(gdb))
	outcome, err := seeder.EnsureAdmin(context.Background(), cfg.AdminEmail, cfg.AdminName, cfg.AdminPassword)
	if err != nil {
		logrus.Errorf("seeding failed: %v", err) // Seed failure, exit non-zero
		return 1
	}

	// Both outcomes mean exactly one admin record exists
	logrus.WithFields(logrus.Fields{
		"email":   cfg.AdminEmail,   // Seeded admin email
		"outcome": outcome.String(), // created or already_exists
	}).Info("Admin seeding completed")
	return 0
}
