// Package client provides a typed HTTP client for the people API.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

// User represents a user returned by the API. Profile is only populated by
// endpoints that embed it.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	Profile   *Profile  `json:"profile,omitempty"`
}

// Profile represents a user's profile returned by the API.
type Profile struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	Bio         string    `json:"bio"`
	Position    string    `json:"position"`
	Department  string    `json:"department"`
	LinkedinURL *string   `json:"linkedinUrl"`
	GravatarURL string    `json:"gravatarUrl"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// CreateUserRequest is the payload for CreateUser.
type CreateUserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// UpdateUserRequest is the partial payload for UpdateUser. Nil fields are
// omitted and keep their current value.
type UpdateUserRequest struct {
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty"`
}

// OptionalString models a field that distinguishes between omitted, null,
// and a value. The zero value omits the field.
type OptionalString struct {
	Set   bool
	Value *string
}

// Keep leaves the field out of the payload.
func Keep() OptionalString {
	return OptionalString{}
}

// Clear sends an explicit null.
func Clear() OptionalString {
	return OptionalString{Set: true}
}

// Replace sends the given value.
func Replace(value string) OptionalString {
	return OptionalString{Set: true, Value: &value}
}

// UpdateProfileRequest is the partial payload for UpdateProfile. Nil fields
// are omitted; LinkedinURL carries three-way semantics, so an omitted field
// keeps the stored URL while an explicit null clears it.
type UpdateProfileRequest struct {
	Bio         *string
	Position    *string
	Department  *string
	LinkedinURL OptionalString
}

// MarshalJSON builds the payload field by field so an unset LinkedinURL is
// omitted instead of serialized as null.
func (r UpdateProfileRequest) MarshalJSON() ([]byte, error) {
	payload := make(map[string]interface{})

	if r.Bio != nil {
		payload["bio"] = *r.Bio
	}
	if r.Position != nil {
		payload["position"] = *r.Position
	}
	if r.Department != nil {
		payload["department"] = *r.Department
	}
	if r.LinkedinURL.Set {
		payload["linkedinUrl"] = r.LinkedinURL.Value
	}

	return json.Marshal(payload)
}

// APIError is a structured error returned by the API.
type APIError struct {
	StatusCode int    `json:"-"`
	Code       string `json:"error"`
	Message    string `json:"message"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("api error: status=%d code=%s message=%s", e.StatusCode, e.Code, e.Message)
}

// IsNotFound reports whether the error is a 404 response.
func (e *APIError) IsNotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// Client is a typed client for the people API.
type Client struct {
	rest *resty.Client
}

// Option configures the client.
type Option func(*Client)

// WithTimeout sets the request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.rest.SetTimeout(timeout)
	}
}

// WithHTTPClient sets a custom underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.rest = resty.NewWithClient(httpClient).SetBaseURL(c.rest.BaseURL)
	}
}

// New creates a new Client pointed at the given base URL.
func New(baseURL string, opts ...Option) *Client {
	client := &Client{
		rest: resty.New().SetBaseURL(baseURL).SetTimeout(30 * time.Second),
	}

	for _, opt := range opts {
		opt(client)
	}

	client.rest.SetHeader("Content-Type", "application/json")
	return client
}

// CreateUser creates a new user. The response embeds the default profile.
func (c *Client) CreateUser(ctx context.Context, req CreateUserRequest) (User, error) {
	var user User

	resp, err := c.rest.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&user).
		SetError(&APIError{}).
		Post("/v1/users")
	if err != nil {
		return User{}, fmt.Errorf("failed to create user: %w", err)
	}
	if resp.IsError() {
		return User{}, apiError(resp)
	}

	return user, nil
}

// ListUsers returns all users with their profiles.
func (c *Client) ListUsers(ctx context.Context) ([]User, error) {
	var users []User

	resp, err := c.rest.R().
		SetContext(ctx).
		SetResult(&users).
		SetError(&APIError{}).
		Get("/v1/users")
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	if resp.IsError() {
		return nil, apiError(resp)
	}

	return users, nil
}

// GetUser returns a single user with their profile.
func (c *Client) GetUser(ctx context.Context, id string) (User, error) {
	var user User

	resp, err := c.rest.R().
		SetContext(ctx).
		SetResult(&user).
		SetError(&APIError{}).
		Get("/v1/users/" + id)
	if err != nil {
		return User{}, fmt.Errorf("failed to get user: %w", err)
	}
	if resp.IsError() {
		return User{}, apiError(resp)
	}

	return user, nil
}

// UpdateUser applies a partial update to a user.
func (c *Client) UpdateUser(ctx context.Context, id string, req UpdateUserRequest) (User, error) {
	var user User

	resp, err := c.rest.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&user).
		SetError(&APIError{}).
		Patch("/v1/users/" + id)
	if err != nil {
		return User{}, fmt.Errorf("failed to update user: %w", err)
	}
	if resp.IsError() {
		return User{}, apiError(resp)
	}

	return user, nil
}

// DeleteUser removes a user and their profile.
func (c *Client) DeleteUser(ctx context.Context, id string) error {
	resp, err := c.rest.R().
		SetContext(ctx).
		SetError(&APIError{}).
		Delete("/v1/users/" + id)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	if resp.IsError() {
		return apiError(resp)
	}

	return nil
}

// GetProfile returns the profile for a user.
func (c *Client) GetProfile(ctx context.Context, userID string) (Profile, error) {
	var profile Profile

	resp, err := c.rest.R().
		SetContext(ctx).
		SetResult(&profile).
		SetError(&APIError{}).
		Get("/v1/users/" + userID + "/profile")
	if err != nil {
		return Profile{}, fmt.Errorf("failed to get profile: %w", err)
	}
	if resp.IsError() {
		return Profile{}, apiError(resp)
	}

	return profile, nil
}

// UpdateProfile applies a partial update to a user's profile.
func (c *Client) UpdateProfile(ctx context.Context, userID string, req UpdateProfileRequest) (Profile, error) {
	var profile Profile

	resp, err := c.rest.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&profile).
		SetError(&APIError{}).
		Patch("/v1/users/" + userID + "/profile")
	if err != nil {
		return Profile{}, fmt.Errorf("failed to update profile: %w", err)
	}
	if resp.IsError() {
		return Profile{}, apiError(resp)
	}

	return profile, nil
}

// apiError extracts the structured API error from a response, falling back
// to a generic error when the body cannot be decoded.
func apiError(resp *resty.Response) error {
	if apiErr, ok := resp.Error().(*APIError); ok && apiErr.Code != "" {
		apiErr.StatusCode = resp.StatusCode()
		return apiErr
	}

	return &APIError{
		StatusCode: resp.StatusCode(),
		Code:       "unknown",
		Message:    fmt.Sprintf("unexpected response: %s", resp.Status()),
	}
}
