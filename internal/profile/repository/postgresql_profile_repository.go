// Package repository provides data persistence implementations for profile
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
	"github.com/allisson/people/internal/profile/domain"

	apperrors "github.com/allisson/people/internal/errors"
)

// PostgreSQLProfileRepository handles profile persistence for PostgreSQL.
type PostgreSQLProfileRepository struct {
	db *sql.DB
}

// NewPostgreSQLProfileRepository creates a new PostgreSQLProfileRepository.
func NewPostgreSQLProfileRepository(db *sql.DB) *PostgreSQLProfileRepository {
	return &PostgreSQLProfileRepository{db: db}
}

// Create inserts a new profile.
func (r *PostgreSQLProfileRepository) Create(ctx context.Context, profile domain.Profile) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO profiles (id, user_id, bio, position, department, linkedin_url, gravatar_url, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := querier.ExecContext(
		ctx,
		query,
		profile.ID(),
		profile.UserID(),
		profile.Bio(),
		profile.Position(),
		profile.Department(),
		profile.LinkedinURL(),
		profile.GravatarURL(),
		profile.CreatedAt(),
		profile.UpdatedAt(),
	)
	if err != nil {
		if isPostgreSQLUniqueViolation(err) {
			return domain.ErrProfileAlreadyExists
		}
		return apperrors.Wrap(err, "failed to create profile")
	}

	return nil
}

// GetByUserID retrieves the profile owned by a user.
func (r *PostgreSQLProfileRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (domain.Profile, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, user_id, bio, position, department, linkedin_url, gravatar_url, created_at, updated_at
			  FROM profiles WHERE user_id = $1`

	var (
		id, ownerID               uuid.UUID
		bio, position, department string
		linkedinURL               sql.NullString
		gravatarURL               string
		createdAt, updatedAt      time.Time
	)

	err := querier.QueryRowContext(ctx, query, userID).Scan(
		&id, &ownerID, &bio, &position, &department, &linkedinURL, &gravatarURL, &createdAt, &updatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Profile{}, domain.ErrProfileNotFound
		}
		return domain.Profile{}, apperrors.Wrap(err, "failed to get profile by user id")
	}

	data := domain.NewProfileData{
		ID:          id.String(),
		UserID:      ownerID.String(),
		Bio:         bio,
		Position:    position,
		Department:  department,
		GravatarURL: gravatarURL,
	}
	if linkedinURL.Valid {
		data.LinkedinURL = &linkedinURL.String
	}

	return domain.ProfileFromPersistence(data, createdAt, updatedAt)
}

// Update persists the mutable fields of an existing profile.
func (r *PostgreSQLProfileRepository) Update(ctx context.Context, profile domain.Profile) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE profiles SET bio = $1, position = $2, department = $3, linkedin_url = $4, gravatar_url = $5, updated_at = $6
			  WHERE id = $7`

	result, err := querier.ExecContext(
		ctx,
		query,
		profile.Bio(),
		profile.Position(),
		profile.Department(),
		profile.LinkedinURL(),
		profile.GravatarURL(),
		profile.UpdatedAt(),
		profile.ID(),
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to update profile")
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to get affected rows")
	}
	if rowsAffected == 0 {
		return domain.ErrProfileNotFound
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
	return strings.Contains(errMsg, "duplicate key") || strings.Contains(errMsg, "unique constraint")
}
