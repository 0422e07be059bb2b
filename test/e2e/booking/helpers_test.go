package booking_test

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"testing"
	"time"

	"github.com/parkside-labs/roomgrid/pkg/roomsdk"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

/*
 * Common constants and helper functions for booking service end-to-end
 * tests: container setup, signup helpers, and assertions.
 */

const (
	testImageName = "roomgrid-test:latest"

	bootstrapToken = "test-bootstrap-token-12345"
	adminUsername  = "admin"
	adminName      = "Administrator"
	adminPassword  = "Admin123!pass"

	memberPassword = "Member123!pass"
)

// TestMain builds the Docker image once before all tests and cleans it up
// after all tests complete.
func TestMain(m *testing.M) {
	fmt.Fprintf(os.Stdout, "Building Booking Service Docker image...")

	if err := buildDockerImage(); err != nil {
		fmt.Fprintf(os.Stderr, "\nFailed to build Docker image: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stdout, " done\n")

	exitCode := m.Run()

	fmt.Fprintf(os.Stdout, "Cleaning up Booking Service Docker image...")
	cleanupDockerImage()
	fmt.Fprintf(os.Stdout, " done\n")

	os.Exit(exitCode)
}

func buildDockerImage() error {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "build",
		"-t", testImageName,
		"-f", "../../../cmd/roomgrid/Dockerfile",
		"../../../")
	cmd.Dir = "."
	cmd.Stdout = os.Stdout
	cmd.Stderr = nil

	return cmd.Run()
}

func cleanupDockerImage() {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "rmi", "-f", testImageName)
	_ = cmd.Run() // Ignore errors - image might not exist
}

// setupBookingContainer starts the booking service in a container and
// returns the base URL.
//
// SMTP points at a closed port inside the container so every delivery fails
// immediately; with ENV=dev the service then returns the code as debug_otp,
// which is the only way the test can read it.
func setupBookingContainer(t *testing.T) (string, func()) {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        testImageName,
		ExposedPorts: []string{"8080/tcp"},
		Env: map[string]string{
			"BOOTSTRAP_TOKEN":        bootstrapToken,
			"ROOMGRID_DATABASE_FILE": "/roomgrid.db",
			"ROOMGRID_PEPPER_FILE":   "/pepper",
			"ROOMGRID_ISSUER":        "roomgrid-e2e",
			"ENV":                    "dev",
			"LOG_LEVEL":              "info",
			"LOG_FORMAT":             "json",
			"SMTP_HOST":              "127.0.0.1",
			"SMTP_PORT":              "9", // nothing listens here
			// Increase rate limits so rapid test requests don't trip the
			// strict production limits.
			"RATELIMIT_STRICT_REQUESTS":   "1000",
			"RATELIMIT_STRICT_WINDOW_SEC": "60",
			"RATELIMIT_STRICT_BURST":      "1000",
			"RATELIMIT_MODERATE_REQUESTS": "1000",
			"RATELIMIT_MODERATE_BURST":    "1000",
			"RATELIMIT_LENIENT_REQUESTS":  "1000",
			"RATELIMIT_LENIENT_BURST":     "1000",
		},
		WaitingFor: wait.ForHTTP("/livez").
			WithPort("8080/tcp").
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	mappedPort, err := container.MappedPort(ctx, "8080")
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)

	baseURL := fmt.Sprintf("http://%s:%s", host, mappedPort.Port())

	cleanup := func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	}

	return baseURL, cleanup
}

// setupBookingContainerWithDefaultRateLimits starts the service with
// production rate limits, specifically for testing that limiting works.
func setupBookingContainerWithDefaultRateLimits(t *testing.T) (string, func()) {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        testImageName,
		ExposedPorts: []string{"8080/tcp"},
		Env: map[string]string{
			"BOOTSTRAP_TOKEN":        bootstrapToken,
			"ROOMGRID_DATABASE_FILE": "/roomgrid.db",
			"ROOMGRID_PEPPER_FILE":   "/pepper",
			"ROOMGRID_ISSUER":        "roomgrid-e2e",
			"ENV":                    "dev",
			"LOG_LEVEL":              "info",
			"LOG_FORMAT":             "json",
			"SMTP_HOST":              "127.0.0.1",
			"SMTP_PORT":              "9",
			// NOTE: No rate limit overrides - production defaults apply.
		},
		WaitingFor: wait.ForHTTP("/livez").
			WithPort("8080/tcp").
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	mappedPort, err := container.MappedPort(ctx, "8080")
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)

	baseURL := fmt.Sprintf("http://%s:%s", host, mappedPort.Port())

	cleanup := func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	}

	return baseURL, cleanup
}

// signupAndVerify registers a member, completes verification via debug_otp,
// and returns an authenticated client.
func signupAndVerify(t *testing.T, client *roomsdk.Client, username string) *roomsdk.Client {
	t.Helper()

	signup, err := client.Signup(t.Context(), roomsdk.SignupRequest{
		Username:        username,
		Name:            "User " + username,
		Email:           username + "@example.com",
		Password:        memberPassword,
		ConfirmPassword: memberPassword,
	})
	require.NoError(t, err)
	require.NotEmpty(t, signup.SignupToken)
	require.False(t, signup.OTPDelivered, "no relay is reachable in the test container")
	require.NotEmpty(t, signup.DebugOTP, "dev mode must surface the undeliverable code")

	tokens, err := client.Verify(t.Context(), roomsdk.VerifyRequest{
		SignupToken: signup.SignupToken,
		Code:        signup.DebugOTP,
	})
	require.NoError(t, err)
	require.NotEmpty(t, tokens.AccessToken)
	require.Equal(t, "Bearer", tokens.TokenType)

	return client.WithToken(tokens.AccessToken)
}

// bootstrapAdmin creates the first admin and returns an authenticated client.
func bootstrapAdmin(t *testing.T, client *roomsdk.Client) *roomsdk.Client {
	t.Helper()

	_, err := client.Bootstrap(t.Context(), roomsdk.BootstrapRequest{
		Token:    bootstrapToken,
		Username: adminUsername,
		Name:     adminName,
		Email:    "admin@example.com",
		Password: adminPassword,
	})
	require.NoError(t, err)

	tokens, err := client.Login(t.Context(), roomsdk.LoginRequest{
		Username: adminUsername,
		Password: adminPassword,
	})
	require.NoError(t, err)

	return client.WithToken(tokens.AccessToken)
}

// requireAPIError asserts err is an *roomsdk.APIError with the given code.
func requireAPIError(t *testing.T, err error, code string) {
	t.Helper()

	var apiErr *roomsdk.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, code, apiErr.Code)
}
