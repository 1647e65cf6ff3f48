package http

import (
	"database/sql"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allisson/people/internal/database"
	profileHTTP "github.com/allisson/people/internal/profile/http"
	profileRepository "github.com/allisson/people/internal/profile/repository"
	profileUsecase "github.com/allisson/people/internal/profile/usecase"
	userHTTP "github.com/allisson/people/internal/user/http"
	userRepository "github.com/allisson/people/internal/user/repository"
	userUsecase "github.com/allisson/people/internal/user/usecase"
)

// newFullStackServer wires real use cases and repositories on top of a
// sqlmock database so request flows can be exercised end to end.
func newFullStackServer(t *testing.T) (*Server, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Close()
	})

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	txManager := database.NewTxManager(db)

	userRepo := userRepository.NewPostgreSQLUserRepository(db)
	profileRepo := profileRepository.NewPostgreSQLProfileRepository(db)

	profileUseCase := profileUsecase.NewProfileUseCase(txManager, profileRepo, userRepo)
	userUseCase := userUsecase.NewUserUseCase(txManager, userRepo, profileUseCase)

	server := NewServer(db, "localhost", 8080, logger)
	server.SetupRouter(RouterConfig{
		UserHandler:    userHTTP.NewUserHandler(userUseCase, logger),
		ProfileHandler: profileHTTP.NewProfileHandler(profileUseCase, logger),
	})

	return server, mock
}

func fullStackUserRows(id uuid.UUID, name, email string) *sqlmock.Rows {
	now := time.Now().UTC()
	return sqlmock.NewRows([]string{"id", "name", "email", "created_at", "updated_at"}).
		AddRow(id.String(), name, email, now, now)
}

func fullStackProfileRows(id, userID uuid.UUID) *sqlmock.Rows {
	now := time.Now().UTC()
	return sqlmock.NewRows([]string{
		"id", "user_id", "bio", "position", "department", "linkedin_url", "gravatar_url", "created_at", "updated_at",
	}).AddRow(
		id.String(), userID.String(), "Product manager.", "Product Manager", "Product",
		nil, "https://www.gravatar.com/avatar/9e26471d35a78862c17e467d87cddedf?d=identicon", now, now,
	)
}

func TestServerE2E_CreateUser(t *testing.T) {
	server, mock := newFullStackServer(t)

	userID := uuid.New()

	// Email availability pre-check finds no user
	mock.ExpectQuery("FROM users WHERE email").
		WithArgs("jane@example.com").
		WillReturnError(sql.ErrNoRows)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO users").
		WithArgs(sqlmock.AnyArg(), "Jane Doe", "jane@example.com", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	// Lazy profile creation inside the same transaction
	mock.ExpectQuery("FROM users WHERE id").
		WillReturnRows(fullStackUserRows(userID, "Jane Doe", "jane@example.com"))
	mock.ExpectQuery("FROM profiles WHERE user_id").
		WillReturnError(sql.ErrNoRows)
	mock.ExpectExec("INSERT INTO profiles").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	w := httptest.NewRecorder()
	body := strings.NewReader(`{"name":"Jane Doe","email":"jane@example.com"}`)
	req := httptest.NewRequest(http.MethodPost, "/v1/users", body)
	req.Header.Set("Content-Type", "application/json")
	server.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "Jane Doe", response["name"])
	assert.Equal(t, "jane@example.com", response["email"])

	profile, ok := response["profile"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Add a short bio to share more about yourself.", profile["bio"])
	assert.Equal(t, "Not specified", profile["position"])
	assert.Equal(t, "Not specified", profile["department"])
	assert.Nil(t, profile["linkedinUrl"])
	assert.Equal(
		t,
		"https://www.gravatar.com/avatar/9e26471d35a78862c17e467d87cddedf?d=identicon",
		profile["gravatarUrl"],
	)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestServerE2E_GetUserWithProfile(t *testing.T) {
	server, mock := newFullStackServer(t)

	userID := uuid.New()
	profileID := uuid.New()

	mock.ExpectQuery("FROM users WHERE id").
		WillReturnRows(fullStackUserRows(userID, "Jane Doe", "jane@example.com"))
	// EnsureProfile resolves the owner again and finds the stored profile
	mock.ExpectQuery("FROM users WHERE id").
		WillReturnRows(fullStackUserRows(userID, "Jane Doe", "jane@example.com"))
	mock.ExpectQuery("FROM profiles WHERE user_id").
		WillReturnRows(fullStackProfileRows(profileID, userID))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/users/"+userID.String(), nil)
	server.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, userID.String(), response["id"])

	profile, ok := response["profile"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, userID.String(), profile["userId"])
	assert.Equal(t, "Product Manager", profile["position"])

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestServerE2E_GetUser_NotFound(t *testing.T) {
	server, mock := newFullStackServer(t)

	mock.ExpectQuery("FROM users WHERE id").
		WillReturnError(sql.ErrNoRows)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/users/"+uuid.New().String(), nil)
	server.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "not_found", response["error"])
}

func TestServerE2E_InvalidUUID(t *testing.T) {
	server, _ := newFullStackServer(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/users/not-a-uuid", nil)
	server.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
}
