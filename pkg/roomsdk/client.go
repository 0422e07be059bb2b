// Package roomsdk is a typed client for the roomgrid service, plus the
// request/response/error types the server itself serializes. Keeping both
// sides on one set of types keeps the wire contract honest.
package roomsdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Client talks to a roomgrid deployment. The zero value is not usable; use
// NewClient.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client

	// AccessToken, when set, is attached as a Bearer credential to every
	// request. Obtain one via Login or Verify.
	AccessToken string
}

func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// WithToken returns a copy of the client that authenticates with the token.
func (c *Client) WithToken(token string) *Client {
	clone := *c
	clone.AccessToken = token
	return &clone
}

// Signup starts a registration and returns the pending-verification token.
func (c *Client) Signup(ctx context.Context, req SignupRequest) (SignupResponse, error) {
	var resp SignupResponse
	err := c.doJSON(ctx, http.MethodPost, "/v1/signup", req, &resp, http.StatusCreated)
	return resp, err
}

// Verify confirms the emailed code and returns an access token.
func (c *Client) Verify(ctx context.Context, req VerifyRequest) (TokenResponse, error) {
	var resp TokenResponse
	err := c.doJSON(ctx, http.MethodPost, "/v1/signup/verify", req, &resp, http.StatusOK)
	return resp, err
}

// ResendOTP requests a fresh verification code.
func (c *Client) ResendOTP(ctx context.Context, req ResendRequest) (SignupResponse, error) {
	var resp SignupResponse
	err := c.doJSON(ctx, http.MethodPost, "/v1/signup/resend", req, &resp, http.StatusOK)
	return resp, err
}

// Login exchanges username/password for an access token.
func (c *Client) Login(ctx context.Context, req LoginRequest) (TokenResponse, error) {
	var resp TokenResponse
	err := c.doJSON(ctx, http.MethodPost, "/v1/login", req, &resp, http.StatusOK)
	return resp, err
}

// Bookings lists every occupied slot.
func (c *Client) Bookings(ctx context.Context) (BookingsResponse, error) {
	var resp BookingsResponse
	err := c.doJSON(ctx, http.MethodGet, "/v1/bookings", nil, &resp, http.StatusOK)
	return resp, err
}

// Reserve books the slot named by cellID.
func (c *Client) Reserve(ctx context.Context, cellID string) (ReserveResponse, error) {
	var resp ReserveResponse
	err := c.doJSON(ctx, http.MethodPost, "/v1/bookings",
		ReserveRequest{CellID: cellID}, &resp, http.StatusCreated)
	return resp, err
}

// Cancel releases the slot named by cellID.
func (c *Client) Cancel(ctx context.Context, cellID string) error {
	return c.doJSON(ctx, http.MethodDelete, "/v1/bookings",
		CancelRequest{CellID: cellID}, nil, http.StatusNoContent)
}

// Schedule describes the bookable grid.
func (c *Client) Schedule(ctx context.Context) (ScheduleResponse, error) {
	var resp ScheduleResponse
	err := c.doJSON(ctx, http.MethodGet, "/v1/schedule", nil, &resp, http.StatusOK)
	return resp, err
}

// AdminUsers lists all accounts. Requires an admin token.
func (c *Client) AdminUsers(ctx context.Context) (AdminUsersResponse, error) {
	var resp AdminUsersResponse
	err := c.doJSON(ctx, http.MethodGet, "/v1/admin/users", nil, &resp, http.StatusOK)
	return resp, err
}

// AdminDeleteUser removes an account and all its bookings. Requires an admin
// token.
func (c *Client) AdminDeleteUser(ctx context.Context, userID string) error {
	return c.doJSON(ctx, http.MethodDelete, "/v1/admin/users/"+userID,
		nil, nil, http.StatusNoContent)
}

// Bootstrap creates the first admin account.
func (c *Client) Bootstrap(ctx context.Context, req BootstrapRequest) (BootstrapResponse, error) {
	var resp BootstrapResponse
	err := c.doJSON(ctx, http.MethodPost, "/v1/bootstrap", req, &resp, http.StatusCreated)
	return resp, err
}

// Livez checks liveness.
func (c *Client) Livez(ctx context.Context) error {
	var resp HealthResponse
	return c.doJSON(ctx, http.MethodGet, "/livez", nil, &resp, http.StatusOK)
}

// Readyz checks readiness (includes storage).
func (c *Client) Readyz(ctx context.Context) error {
	var resp HealthResponse
	return c.doJSON(ctx, http.MethodGet, "/readyz", nil, &resp, http.StatusOK)
}

// doJSON sends body (if non-nil) as JSON and decodes the response into out
// (if non-nil). Non-expected statuses come back as *APIError.
func (c *Client) doJSON(
	ctx context.Context,
	method, path string,
	body, out any,
	expectedStatus int,
) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.AccessToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.AccessToken)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != expectedStatus {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		if err := json.Unmarshal(raw, apiErr); err != nil || apiErr.Code == "" {
			apiErr.Code = ErrorCodeServerError
			apiErr.Message = fmt.Sprintf("unexpected status %d", resp.StatusCode)
		}
		return apiErr
	}

	if out != nil && len(raw) > 0 {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}
