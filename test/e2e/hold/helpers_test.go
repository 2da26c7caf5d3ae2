package hold_test

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/opsbank/payhold/pkg/holdsdk"
	"github.com/opsbank/payhold/pkg/jwtx"
)

/*
 * Common constants and helper functions for hold service end-to-end tests.
 * This includes container setup, token minting and assertions.
 */

const (
	testImageName = "payhold-test:latest"

	jwtSecret = "e2e-test-secret-12345"
	jwtIssuer = "payhold-e2e"
)

// TestMain manages the test lifecycle, builds the Docker image once before
// all tests and cleans it up after all tests complete.
func TestMain(m *testing.M) {
	fmt.Fprintf(os.Stdout, "Building Hold Service Docker image...")

	if err := buildDockerImage(); err != nil {
		fmt.Fprintf(os.Stderr, "\nFailed to build Docker image: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stdout, " done\n")

	exitCode := m.Run()

	fmt.Fprintf(os.Stdout, "Cleaning up Hold Service Docker image...")
	cleanupDockerImage()
	fmt.Fprintf(os.Stdout, " done\n")

	os.Exit(exitCode)
}

// buildDockerImage builds the test Docker image if it doesn't exist.
func buildDockerImage() error {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "build",
		"-t", testImageName,
		"-f", "../../../cmd/payhold/Dockerfile",
		"../../../")
	cmd.Dir = "."
	cmd.Stdout = os.Stdout
	cmd.Stderr = nil

	return cmd.Run()
}

// cleanupDockerImage removes the test Docker image.
func cleanupDockerImage() {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "rmi", "-f", testImageName)
	_ = cmd.Run() // Ignore errors - image might not exist
}

// setupHoldContainer starts the hold service in a container and returns the base URL.
func setupHoldContainer(t *testing.T) (string, func()) {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        testImageName,
		ExposedPorts: []string{"8080/tcp"},
		Env: map[string]string{
			"JWT_SECRET":         jwtSecret,
			"JWT_ISSUER":         jwtIssuer,
			"HOLD_DATABASE_FILE": "/tmp/holds.db",
			"ENV":                "test",
			"LOG_LEVEL":          "info",
			"LOG_FORMAT":         "json",
			// Raise rate limits so rapid test requests don't trip the
			// production profiles.
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

// mintToken signs an HS256 access token with the container's shared secret.
func mintToken(t *testing.T, subject string, roles ...string) string {
	t.Helper()

	signer, err := jwtx.NewSignerHS256([]byte(jwtSecret))
	require.NoError(t, err)

	claims := jwtx.NewAccessClaims(subject, roles, time.Hour, jwtIssuer, time.Now().UTC())
	token, err := signer.Sign(claims)
	require.NoError(t, err)
	return token
}

// newOpsClient returns an SDK client holding a token with the full set of
// hold operation roles.
func newOpsClient(t *testing.T, baseURL string) *holdsdk.Client {
	t.Helper()
	return holdsdk.New(baseURL).WithToken(mintToken(t, "user:ops1",
		"ops.block:create", "ops.block:read", "ops.block:release"))
}

// newAdminClient returns an SDK client that can provision bank clients.
func newAdminClient(t *testing.T, baseURL string) *holdsdk.Client {
	t.Helper()
	return holdsdk.New(baseURL).WithToken(mintToken(t, "user:admin", "ops.admin:write"))
}

// seedBankClient provisions a client record to place holds against.
func seedBankClient(t *testing.T, baseURL string) string {
	t.Helper()

	info, err := newAdminClient(t, baseURL).CreateClient(t.Context(),
		holdsdk.CreateClientRequest{Name: "E2E Test Client"})
	require.NoError(t, err)
	require.NotEmpty(t, info.ClientID)
	return info.ClientID
}

func strptr(s string) *string { return &s }
