// Package main creates the database schema for the ClimaPlus API.
// It is safe to run repeatedly: every statement is IF NOT EXISTS.
package main

import (
	"database/sql"
	"log/slog"
	"os"

	_ "github.com/lib/pq"
)

var statements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id SERIAL PRIMARY KEY,
		first_name VARCHAR(100) NOT NULL,
		last_name VARCHAR(100) NOT NULL,
		email VARCHAR(255) UNIQUE NOT NULL,
		password_hash VARCHAR(255) NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS favorites (
		id SERIAL PRIMARY KEY,
		user_id INTEGER REFERENCES users(id),
		city VARCHAR(100) NOT NULL,
		UNIQUE(user_id, city)
	)`,
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		logger.Error("DATABASE_URL is required")
		os.Exit(1)
	}

	db, err := sql.Open("postgres", databaseURL)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}
	logger.Info("connected to database")

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			logger.Error("failed to execute statement", "error", err)
			os.Exit(1)
		}
	}

	logger.Info("schema ready", "tables", []string{"users", "favorites"})
}
