package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/google/uuid"

	"github.com/allisson/people/internal/database"
	"github.com/allisson/people/internal/user/domain"

	apperrors "github.com/allisson/people/internal/errors"
)

// mysqlDuplicateEntryCode is the MySQL error number for unique key violations.
const mysqlDuplicateEntryCode = 1062

// MySQLUserRepository handles user persistence for MySQL. Identifiers are
// stored as BINARY(16).
type MySQLUserRepository struct {
	db *sql.DB
}

// NewMySQLUserRepository creates a new MySQLUserRepository.
func NewMySQLUserRepository(db *sql.DB) *MySQLUserRepository {
	return &MySQLUserRepository{db: db}
}

// Create inserts a new user.
func (r *MySQLUserRepository) Create(ctx context.Context, user domain.User) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO users (id, name, email, created_at, updated_at)
			  VALUES (?, ?, ?, ?, ?)`

	id, err := user.ID().MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal user id")
	}

	_, err = querier.ExecContext(
		ctx,
		query,
		id,
		user.Name().Value(),
		user.Email().Value(),
		user.CreatedAt(),
		user.UpdatedAt(),
	)
	if err != nil {
		if isMySQLDuplicateEntry(err) {
			return domain.ErrUserAlreadyExists
		}
		return apperrors.Wrap(err, "failed to create user")
	}

	return nil
}

// GetByID retrieves a user by ID.
func (r *MySQLUserRepository) GetByID(ctx context.Context, id uuid.UUID) (domain.User, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, name, email, created_at, updated_at
			  FROM users WHERE id = ?`

	binaryID, err := id.MarshalBinary()
	if err != nil {
		return domain.User{}, apperrors.Wrap(err, "failed to marshal user id")
	}

	return r.scanUser(querier.QueryRowContext(ctx, query, binaryID), "failed to get user by id")
}

// GetByEmail retrieves a user by email.
func (r *MySQLUserRepository) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, name, email, created_at, updated_at
			  FROM users WHERE email = ?`

	return r.scanUser(querier.QueryRowContext(ctx, query, email), "failed to get user by email")
}

// List retrieves all users ordered by creation time.
func (r *MySQLUserRepository) List(ctx context.Context) ([]domain.User, error) {
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
			rawID                []byte
			name, email          string
			createdAt, updatedAt time.Time
		)

		if err := rows.Scan(&rawID, &name, &email, &createdAt, &updatedAt); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan user row")
		}

		userID, err := uuid.FromBytes(rawID)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to unmarshal user id")
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
func (r *MySQLUserRepository) Update(ctx context.Context, user domain.User) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE users SET name = ?, email = ?, updated_at = ?
			  WHERE id = ?`

	id, err := user.ID().MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal user id")
	}

	result, err := querier.ExecContext(
		ctx,
		query,
		user.Name().Value(),
		user.Email().Value(),
		user.UpdatedAt(),
		id,
	)
	if err != nil {
		if isMySQLDuplicateEntry(err) {
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
func (r *MySQLUserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	querier := database.GetTx(ctx, r.db)

	query := `DELETE FROM users WHERE id = ?`

	binaryID, err := id.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal user id")
	}

	result, err := querier.ExecContext(ctx, query, binaryID)
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

func (r *MySQLUserRepository) scanUser(row *sql.Row, message string) (domain.User, error) {
	var (
		rawID                []byte
		name, email          string
		createdAt, updatedAt time.Time
	)

	err := row.Scan(&rawID, &name, &email, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, domain.ErrUserNotFound
		}
		return domain.User{}, apperrors.Wrap(err, message)
	}

	userID, err := uuid.FromBytes(rawID)
	if err != nil {
		return domain.User{}, apperrors.Wrap(err, "failed to unmarshal user id")
	}

	return domain.UserFromPersistence(userID.String(), name, email, createdAt, updatedAt)
}

// isMySQLDuplicateEntry checks if the error is a MySQL unique key violation.
func isMySQLDuplicateEntry(err error) bool {
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlDuplicateEntryCode
}
