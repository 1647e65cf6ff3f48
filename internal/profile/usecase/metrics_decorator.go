package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/allisson/people/internal/metrics"
	profileDomain "github.com/allisson/people/internal/profile/domain"
)

// profileUseCaseWithMetrics decorates ProfileUseCase with metrics instrumentation.
type profileUseCaseWithMetrics struct {
	next    ProfileUseCase
	metrics metrics.BusinessMetrics
}

// NewProfileUseCaseWithMetrics wraps a ProfileUseCase with metrics recording.
func NewProfileUseCaseWithMetrics(useCase ProfileUseCase, m metrics.BusinessMetrics) ProfileUseCase {
	return &profileUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// GetByUserID records metrics for profile retrieval operations.
func (p *profileUseCaseWithMetrics) GetByUserID(ctx context.Context, userID uuid.UUID) (profileDomain.Profile, error) {
	start := time.Now()
	profile, err := p.next.GetByUserID(ctx, userID)

	status := "success"
	if err != nil {
		status = "error"
	}

	p.metrics.RecordOperation(ctx, "profiles", "profile_get", status)
	p.metrics.RecordDuration(ctx, "profiles", "profile_get", time.Since(start), status)

	return profile, err
}

// Update records metrics for profile update operations.
func (p *profileUseCaseWithMetrics) Update(
	ctx context.Context,
	userID uuid.UUID,
	data profileDomain.UpdateProfileData,
) (profileDomain.Profile, error) {
	start := time.Now()
	profile, err := p.next.Update(ctx, userID, data)

	status := "success"
	if err != nil {
		status = "error"
	}

	p.metrics.RecordOperation(ctx, "profiles", "profile_update", status)
	p.metrics.RecordDuration(ctx, "profiles", "profile_update", time.Since(start), status)

	return profile, err
}

// EnsureProfile records metrics for profile ensure operations.
func (p *profileUseCaseWithMetrics) EnsureProfile(ctx context.Context, userID uuid.UUID) (profileDomain.Profile, error) {
	start := time.Now()
	profile, err := p.next.EnsureProfile(ctx, userID)

	status := "success"
	if err != nil {
		status = "error"
	}

	p.metrics.RecordOperation(ctx, "profiles", "profile_ensure", status)
	p.metrics.RecordDuration(ctx, "profiles", "profile_ensure", time.Since(start), status)

	return profile, err
}

// RefreshGravatar records metrics for avatar refresh operations.
func (p *profileUseCaseWithMetrics) RefreshGravatar(ctx context.Context, userID uuid.UUID) (profileDomain.Profile, error) {
	start := time.Now()
	profile, err := p.next.RefreshGravatar(ctx, userID)

	status := "success"
	if err != nil {
		status = "error"
	}

	p.metrics.RecordOperation(ctx, "profiles", "profile_refresh_gravatar", status)
	p.metrics.RecordDuration(ctx, "profiles", "profile_refresh_gravatar", time.Since(start), status)

	return profile, err
}
