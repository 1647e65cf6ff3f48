package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/allisson/people/internal/metrics"
	userDomain "github.com/allisson/people/internal/user/domain"
)

// userUseCaseWithMetrics decorates UserUseCase with metrics instrumentation.
type userUseCaseWithMetrics struct {
	next    UserUseCase
	metrics metrics.BusinessMetrics
}

// NewUserUseCaseWithMetrics wraps a UserUseCase with metrics recording.
func NewUserUseCaseWithMetrics(useCase UserUseCase, m metrics.BusinessMetrics) UserUseCase {
	return &userUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

func (u *userUseCaseWithMetrics) record(ctx context.Context, operation string, start time.Time, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}

	u.metrics.RecordOperation(ctx, "users", operation, status)
	u.metrics.RecordDuration(ctx, "users", operation, time.Since(start), status)
}

// Create records metrics for user creation operations.
func (u *userUseCaseWithMetrics) Create(ctx context.Context, name, email string) (UserWithProfile, error) {
	start := time.Now()
	result, err := u.next.Create(ctx, name, email)
	u.record(ctx, "user_create", start, err)
	return result, err
}

// List records metrics for user listing operations.
func (u *userUseCaseWithMetrics) List(ctx context.Context) ([]userDomain.User, error) {
	start := time.Now()
	users, err := u.next.List(ctx)
	u.record(ctx, "user_list", start, err)
	return users, err
}

// ListWithProfiles records metrics for combined listing operations.
func (u *userUseCaseWithMetrics) ListWithProfiles(ctx context.Context) ([]UserWithProfile, error) {
	start := time.Now()
	result, err := u.next.ListWithProfiles(ctx)
	u.record(ctx, "user_list_with_profiles", start, err)
	return result, err
}

// Get records metrics for user retrieval operations.
func (u *userUseCaseWithMetrics) Get(ctx context.Context, id uuid.UUID) (userDomain.User, error) {
	start := time.Now()
	user, err := u.next.Get(ctx, id)
	u.record(ctx, "user_get", start, err)
	return user, err
}

// GetWithProfile records metrics for combined retrieval operations.
func (u *userUseCaseWithMetrics) GetWithProfile(ctx context.Context, id uuid.UUID) (UserWithProfile, error) {
	start := time.Now()
	result, err := u.next.GetWithProfile(ctx, id)
	u.record(ctx, "user_get_with_profile", start, err)
	return result, err
}

// Update records metrics for user update operations.
func (u *userUseCaseWithMetrics) Update(
	ctx context.Context,
	id uuid.UUID,
	data userDomain.UpdateUserData,
) (UserWithProfile, error) {
	start := time.Now()
	result, err := u.next.Update(ctx, id, data)
	u.record(ctx, "user_update", start, err)
	return result, err
}

// Delete records metrics for user deletion operations.
func (u *userUseCaseWithMetrics) Delete(ctx context.Context, id uuid.UUID) error {
	start := time.Now()
	err := u.next.Delete(ctx, id)
	u.record(ctx, "user_delete", start, err)
	return err
}
