// Package repository provides data persistence implementations for user
// entities.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/allisson/people/internal/database"
	"github.com/allisson/people/internal/user/domain"

	apperrors "github.com/allisson/people/internal/errors"
)

// PostgreSQLUserRepository handles user persistence for PostgreSQL.
type PostgreSQLUserRepository struct {
	db *sql.DB
}

// NewPostgreSQLUserRepository creates a new PostgreSQLUserRepository.
func NewPostgreSQLUserRepository(db *sql.DB) *PostgreSQLUserRepository {
	return &PostgreSQLUserRepository{db: db}
}

// Create inserts a new user.
func (r *PostgreSQLUserRepository) Create(ctx context.Context, user domain.User) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO users (id, name, email, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5)`

	_, err := querier.ExecContext(
		ctx,
		query,
		user.ID(),
		user.Name().Value(),
		user.Email().Value(),
		user.CreatedAt(),
		user.UpdatedAt(),
	)
	if err != nil {
		if isPostgreSQLUniqueViolation(err) {
			return domain.ErrUserAlreadyExists
		}
		return apperrors.Wrap(err, "failed to create user")
	}

	return nil
}

// GetByID retrieves a user by ID.
func (r *PostgreSQLUserRepository) GetByID(ctx context.Context, id uuid.UUID) (domain.User, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, name, email, created_at, updated_at
			  FROM users WHERE id = $1`

	var (
		userID               uuid.UUID
		name, email          string
		createdAt, updatedAt time.Time
	)

	err := querier.QueryRowContext(ctx, query, id).Scan(&userID, &name, &email, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, domain.ErrUserNotFound
		}
		return domain.User{}, apperrors.Wrap(err, "failed to get user by id")
	}

	return domain.UserFromPersistence(userID.String(), name, email, createdAt, updatedAt)
}

// GetByEmail retrieves a user by email.
func (r *PostgreSQLUserRepository) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, name, email, created_at, updated_at
			  FROM users WHERE email = $1`

	var (
		userID               uuid.UUID
		name, storedEmail    string
		createdAt, updatedAt time.Time
	)

	err := querier.QueryRowContext(ctx, query, email).Scan(&userID, &name, &storedEmail, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, domain.ErrUserNotFound
		}
		return domain.User{}, apperrors.Wrap(err, "failed to get user by email")
	}

	return domain.UserFromPersistence(userID.String(), name, storedEmail, createdAt, updatedAt)
}

// List retrieves all users ordered by creation time.
func (r *PostgreSQLUserRepository) List(ctx context.Context) ([]domain.User, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, name, email, created_at, updated_at
			  FROM users ORDER BY created_at ASC`

	rows, err := querier.QueryContext(ctx, query)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list users")
	}
	defer func() {
		_ = rows.Close()
	}()

	users := []domain.User{}
	for rows.Next() {
		var (
			userID               uuid.UUID
			name, email          string
			createdAt, updatedAt time.Time
		)

		if err := rows.Scan(&userID, &name, &email, &createdAt, &updatedAt); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan user row")
		}

		user, err := domain.UserFromPersistence(userID.String(), name, email, createdAt, updatedAt)
		if err != nil {
			return nil, err
		}

		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate user rows")
	}

	return users, nil
}

// Update persists the mutable fields of an existing user.
func (r *PostgreSQLUserRepository) Update(ctx context.Context, user domain.User) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE users SET name = $1, email = $2, updated_at = $3
			  WHERE id = $4`

	result, err := querier.ExecContext(
		ctx,
		query,
		user.Name().Value(),
		user.Email().Value(),
		user.UpdatedAt(),
		user.ID(),
	)
	if err != nil {
		if isPostgreSQLUniqueViolation(err) {
			return domain.ErrUserAlreadyExists
		}
		return apperrors.Wrap(err, "failed to update user")
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to get affected rows")
	}
	if rowsAffected == 0 {
		return domain.ErrUserNotFound
	}

	return nil
}

// Delete removes a user. Profile rows cascade at the database level.
func (r *PostgreSQLUserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	querier := database.GetTx(ctx, r.db)

	query := `DELETE FROM users WHERE id = $1`

	result, err := querier.ExecContext(ctx, query, id)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete user")
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to get affected rows")
	}
	if rowsAffected == 0 {
		return domain.ErrUserNotFound
	}

	return nil
}

// isPostgreSQLUniqueViolation checks if the error is a PostgreSQL unique
// constraint violation.
func isPostgreSQLUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	errMsg := strings.ToLower(err.Error())
	// PostgreSQL: "duplicate key value violates unique constraint" or "pq: duplicate key"
	return strings.Contains(errMsg, "duplicate key") || strings.Contains(errMsg, "unique constraint")
}
