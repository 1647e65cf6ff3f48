package app

import (
	"fmt"

	profileHTTP "github.com/allisson/people/internal/profile/http"
	profileRepository "github.com/allisson/people/internal/profile/repository"
	profileUsecase "github.com/allisson/people/internal/profile/usecase"
)

// ProfileRepository returns the profile repository based on database driver.
func (c *Container) ProfileRepository() (profileUsecase.ProfileRepository, error) {
	var err error
	c.profileRepoInit.Do(func() {
		c.profileRepo, err = c.initProfileRepository()
		if err != nil {
			c.initErrors["profileRepo"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["profileRepo"]; exists {
		return nil, storedErr
	}
	return c.profileRepo, nil
}

// ProfileUseCase returns the profile use case instance.
func (c *Container) ProfileUseCase() (profileUsecase.ProfileUseCase, error) {
	var err error
	c.profileUseCaseInit.Do(func() {
		c.profileUseCase, err = c.initProfileUseCase()
		if err != nil {
			c.initErrors["profileUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["profileUseCase"]; exists {
		return nil, storedErr
	}
	return c.profileUseCase, nil
}

// ProfileHandler returns the HTTP handler for profile management operations.
func (c *Container) ProfileHandler() (*profileHTTP.ProfileHandler, error) {
	var err error
	c.profileHandlerInit.Do(func() {
		c.profileHandler, err = c.initProfileHandler()
		if err != nil {
			c.initErrors["profileHandler"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["profileHandler"]; exists {
		return nil, storedErr
	}
	return c.profileHandler, nil
}

// initProfileRepository creates the profile repository based on the database driver.
func (c *Container) initProfileRepository() (profileUsecase.ProfileRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for profile repository: %w", err)
	}

	switch c.config.DBDriver {
	case "postgres":
		return profileRepository.NewPostgreSQLProfileRepository(db), nil
	case "mysql":
		return profileRepository.NewMySQLProfileRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

// initProfileUseCase creates the profile use case with all its dependencies.
func (c *Container) initProfileUseCase() (profileUsecase.ProfileUseCase, error) {
	txManager, err := c.TxManager()
	if err != nil {
		return nil, fmt.Errorf("failed to get tx manager for profile use case: %w", err)
	}

	profileRepo, err := c.ProfileRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get profile repository for profile use case: %w", err)
	}

	userRepo, err := c.UserRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get user repository for profile use case: %w", err)
	}

	baseUseCase := profileUsecase.NewProfileUseCase(txManager, profileRepo, userRepo)

	// Wrap with metrics if enabled
	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for profile use case: %w", err)
		}
		return profileUsecase.NewProfileUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}

// initProfileHandler creates the profile HTTP handler with all its dependencies.
func (c *Container) initProfileHandler() (*profileHTTP.ProfileHandler, error) {
	profileUseCase, err := c.ProfileUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get profile use case for profile handler: %w", err)
	}

	return profileHTTP.NewProfileHandler(profileUseCase, c.Logger()), nil
}
