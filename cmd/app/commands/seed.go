package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/allisson/people/internal/app"
	"github.com/allisson/people/internal/config"
	profileDomain "github.com/allisson/people/internal/profile/domain"
	profileUsecase "github.com/allisson/people/internal/profile/usecase"
	userDomain "github.com/allisson/people/internal/user/domain"
	userUsecase "github.com/allisson/people/internal/user/usecase"
)

// seedEntry describes one demo user and the profile applied on top of the
// defaults created alongside the user.
type seedEntry struct {
	name        string
	email       string
	bio         string
	position    string
	department  string
	linkedinURL string
}

// demoRoster returns the demo users created by the seed command.
func demoRoster() []seedEntry {
	return []seedEntry{
		{
			name:        "John Doe",
			email:       "john@example.com",
			bio:         "Seasoned full-stack developer passionate about clean architecture and mentoring.",
			position:    "Senior Software Engineer",
			department:  "Engineering",
			linkedinURL: "https://www.linkedin.com/in/johndoe",
		},
		{
			name:        "Jane Smith",
			email:       "jane@example.com",
			bio:         "Product manager focused on delivering delightful user experiences and outcomes.",
			position:    "Product Manager",
			department:  "Product",
			linkedinURL: "https://www.linkedin.com/in/janesmith",
		},
		{
			name:       "Bob Johnson",
			email:      "bob@example.com",
			bio:        "People-first leader helping teams grow through coaching and clear direction.",
			position:   "Engineering Manager",
			department: "Engineering",
		},
	}
}

// RunSeedWithContainer seeds the database using a container built from the
// environment configuration.
func RunSeedWithContainer(ctx context.Context) error {
	cfg := config.Load()
	container := app.NewContainer(cfg)
	logger := container.Logger()

	defer closeContainer(container, logger)

	userUseCase, err := container.UserUseCase()
	if err != nil {
		return fmt.Errorf("failed to initialize user use case: %w", err)
	}

	profileUseCase, err := container.ProfileUseCase()
	if err != nil {
		return fmt.Errorf("failed to initialize profile use case: %w", err)
	}

	return RunSeed(ctx, logger, userUseCase, profileUseCase)
}

// RunSeed creates the demo roster. Users that already exist are skipped, so
// the command can be re-run safely.
func RunSeed(
	ctx context.Context,
	logger *slog.Logger,
	users userUsecase.UserUseCase,
	profiles profileUsecase.ProfileUseCase,
) error {
	created := 0

	for _, entry := range demoRoster() {
		result, err := users.Create(ctx, entry.name, entry.email)
		if err != nil {
			if errors.Is(err, userDomain.ErrUserEmailTaken) {
				logger.Info("user already exists, skipping",
					slog.String("email", entry.email),
				)
				continue
			}
			return fmt.Errorf("failed to create user %s: %w", entry.email, err)
		}

		data := profileDomain.UpdateProfileData{
			Bio:         &entry.bio,
			Position:    &entry.position,
			Department:  &entry.department,
			LinkedinURL: profileDomain.KeepString(),
		}
		if entry.linkedinURL != "" {
			data.LinkedinURL = profileDomain.ReplaceString(entry.linkedinURL)
		}

		if _, err := profiles.Update(ctx, result.User.ID(), data); err != nil {
			return fmt.Errorf("failed to update profile for %s: %w", entry.email, err)
		}

		created++
		logger.Info("user created",
			slog.String("name", entry.name),
			slog.String("email", entry.email),
		)
	}

	logger.Info("seed completed", slog.Int("created", created))
	return nil
}
