package main

import (
	"context"
	"log"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/osse101/SimpleIG_Go/internal/config"
	"github.com/osse101/SimpleIG_Go/internal/database"
)

const resetTimeout = time.Minute

// Drops and recreates the save database, then applies the embedded migrations.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), resetTimeout)
	defer cancel()

	dbName := cfg.DBName
	quoted := pgx.Identifier{dbName}.Sanitize()

	// Connect to the maintenance database to manage the save database
	serverConnString := database.ConnString(cfg.DBUser, cfg.DBPassword, cfg.DBHost, cfg.DBPort, "postgres", cfg.DBSSLMode)
	serverPool, err := database.NewPool(ctx, serverConnString, 1, cfg.DBMaxIdleTime, cfg.DBMaxLifetime)
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL server: %v", err)
	}
	defer serverPool.Close()

	log.Printf("Terminating existing connections to database %s...\n", dbName)
	_, err = serverPool.Exec(ctx, `
		SELECT pg_terminate_backend(pg_stat_activity.pid)
		FROM pg_stat_activity
		WHERE pg_stat_activity.datname = $1
		AND pid <> pg_backend_pid()
	`, dbName)
	if err != nil {
		log.Printf("Warning: Failed to terminate connections: %v\n", err)
	}

	log.Printf("Dropping database %s if it exists...\n", dbName)
	if _, err = serverPool.Exec(ctx, "DROP DATABASE IF EXISTS "+quoted); err != nil {
		log.Fatalf("Failed to drop database: %v", err)
	}

	log.Printf("Creating database %s...\n", dbName)
	if _, err = serverPool.Exec(ctx, "CREATE DATABASE "+quoted); err != nil {
		log.Fatalf("Failed to create database: %v", err)
	}

	pool, err := database.NewPool(ctx, cfg.GetDBConnString(), 1, cfg.DBMaxIdleTime, cfg.DBMaxLifetime)
	if err != nil {
		log.Fatalf("Failed to connect to %s: %v", dbName, err)
	}
	defer pool.Close()

	if err := database.Migrate(ctx, pool); err != nil {
		log.Fatalf("Failed to migrate %s: %v", dbName, err)
	}

	log.Println("✅ Save database reset complete!")
}
