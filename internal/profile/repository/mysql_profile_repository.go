package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/google/uuid"

	"github.com/allisson/people/internal/database"
	"github.com/allisson/people/internal/profile/domain"

	apperrors "github.com/allisson/people/internal/errors"
)

// mysqlDuplicateEntryCode is the MySQL error number for unique key violations.
const mysqlDuplicateEntryCode = 1062

// MySQLProfileRepository handles profile persistence for MySQL. Identifiers
// are stored as BINARY(16).
type MySQLProfileRepository struct {
	db *sql.DB
}

// NewMySQLProfileRepository creates a new MySQLProfileRepository.
func NewMySQLProfileRepository(db *sql.DB) *MySQLProfileRepository {
	return &MySQLProfileRepository{db: db}
}

// Create inserts a new profile.
func (r *MySQLProfileRepository) Create(ctx context.Context, profile domain.Profile) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO profiles (id, user_id, bio, position, department, linkedin_url, gravatar_url, created_at, updated_at)
			  VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`

	id, err := profile.ID().MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal profile id")
	}

	userID, err := profile.UserID().MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal user id")
	}

	_, err = querier.ExecContext(
		ctx,
		query,
		id,
		userID,
		profile.Bio(),
		profile.Position(),
		profile.Department(),
		profile.LinkedinURL(),
		profile.GravatarURL(),
		profile.CreatedAt(),
		profile.UpdatedAt(),
	)
	if err != nil {
		if isMySQLDuplicateEntry(err) {
			return domain.ErrProfileAlreadyExists
		}
		return apperrors.Wrap(err, "failed to create profile")
	}

	return nil
}

// GetByUserID retrieves the profile owned by a user.
func (r *MySQLProfileRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (domain.Profile, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, user_id, bio, position, department, linkedin_url, gravatar_url, created_at, updated_at
			  FROM profiles WHERE user_id = ?`

	binaryUserID, err := userID.MarshalBinary()
	if err != nil {
		return domain.Profile{}, apperrors.Wrap(err, "failed to marshal user id")
	}

	var (
		rawID, rawOwnerID         []byte
		bio, position, department string
		linkedinURL               sql.NullString
		gravatarURL               string
		createdAt, updatedAt      time.Time
	)

	err = querier.QueryRowContext(ctx, query, binaryUserID).Scan(
		&rawID, &rawOwnerID, &bio, &position, &department, &linkedinURL, &gravatarURL, &createdAt, &updatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Profile{}, domain.ErrProfileNotFound
		}
		return domain.Profile{}, apperrors.Wrap(err, "failed to get profile by user id")
	}

	id, err := uuid.FromBytes(rawID)
	if err != nil {
		return domain.Profile{}, apperrors.Wrap(err, "failed to unmarshal profile id")
	}

	ownerID, err := uuid.FromBytes(rawOwnerID)
	if err != nil {
		return domain.Profile{}, apperrors.Wrap(err, "failed to unmarshal user id")
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
func (r *MySQLProfileRepository) Update(ctx context.Context, profile domain.Profile) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE profiles SET bio = ?, position = ?, department = ?, linkedin_url = ?, gravatar_url = ?, updated_at = ?
			  WHERE id = ?`

	id, err := profile.ID().MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal profile id")
	}

	result, err := querier.ExecContext(
		ctx,
		query,
		profile.Bio(),
		profile.Position(),
		profile.Department(),
		profile.LinkedinURL(),
		profile.GravatarURL(),
		profile.UpdatedAt(),
		id,
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

// isMySQLDuplicateEntry checks if the error is a MySQL unique key violation.
func isMySQLDuplicateEntry(err error) bool {
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlDuplicateEntryCode
}
