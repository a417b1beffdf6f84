package database

import (
	"database/sql"
	"fmt"
	"time"

	"attendance.service/internal/config"
	_ "github.com/jackc/pgx/v5/stdlib" // PostgreSQL driver
)

// NewConnection creates and verifies a database connection pool. The workers
// use this plain variant; the API uses the instrumented one.
func NewConnection(cfg config.Config) (*sql.DB, error) {
	psqlInfo := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.DBHost,
		cfg.DBPort,
		cfg.DBUser,
		cfg.DBPassword,
		cfg.DBName,
	)

	db, err := sql.Open("pgx", psqlInfo)
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}
	tunePool(db)

	// Ping the database to verify the connection is alive
	return db, db.Ping()
}

// tunePool sizes the pool for the worker concurrency and the API's request
// volume; idle connections are recycled so LocalStack restarts don't leave
// dead sockets around.
func tunePool(db *sql.DB) {
	db.SetMaxOpenConns(20)
	db.SetMaxIdleConns(10)
	db.SetConnMaxIdleTime(5 * time.Minute)
}
