package repository

import (
	"context"
	"database/sql"
	"strings"

	"attendance.service/internal/core/model"
)

// PostgresUserRepository is the concrete UserRepository for PostgreSQL.
type PostgresUserRepository struct {
	DB *sql.DB
}

// NewUserRepository creates a new Postgres-backed user repository.
func NewUserRepository(db *sql.DB) UserRepository {
	return &PostgresUserRepository{DB: db}
}

// Create inserts a user. Emails are unique and stored lowercased.
func (r *PostgresUserRepository) Create(ctx context.Context, u *model.User) error {
	query := `INSERT INTO users (id, email, credential_hash, first_name, last_name, dni, role, active, registered_at)
              VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`

	_, err := r.DB.ExecContext(ctx, query,
		u.ID, strings.ToLower(u.Email), u.CredentialHash,
		u.FirstName, u.LastName, u.DNI, u.Role, u.Active, u.RegisteredAt,
	)
	if isUniqueViolation(err) {
		return ErrEmailExists
	}
	return err
}

// GetByEmail returns the user with the given email, or nil when none exists.
func (r *PostgresUserRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	query := `SELECT id, email, credential_hash, first_name, last_name, dni, role, active, registered_at
              FROM users WHERE email = $1`
	return r.scanUser(r.DB.QueryRowContext(ctx, query, strings.ToLower(email)))
}

// GetByID returns the user with the given id, or nil when none exists.
func (r *PostgresUserRepository) GetByID(ctx context.Context, id string) (*model.User, error) {
	query := `SELECT id, email, credential_hash, first_name, last_name, dni, role, active, registered_at
              FROM users WHERE id = $1`
	return r.scanUser(r.DB.QueryRowContext(ctx, query, id))
}

// SetActive flips a user's active flag.
func (r *PostgresUserRepository) SetActive(ctx context.Context, id string, active bool) error {
	query := `UPDATE users SET active = $1 WHERE id = $2`
	_, err := r.DB.ExecContext(ctx, query, active, id)
	return err
}

func (r *PostgresUserRepository) scanUser(row rowScanner) (*model.User, error) {
	u := &model.User{}
	err := row.Scan(&u.ID, &u.Email, &u.CredentialHash, &u.FirstName, &u.LastName,
		&u.DNI, &u.Role, &u.Active, &u.RegisteredAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}
