package testutils

import (
	"context"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// RedisImage is the image started by StartRedisContainer
const RedisImage = "redis:7-alpine"

// StartRedisContainer runs a throwaway Redis in Docker and returns the config
// pointing at it. The test is skipped when Docker is unavailable.
func StartRedisContainer(t *testing.T) *TestRedisConfig {
	t.Helper()
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        RedisImage,
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(30 * time.Second),
		},
		Started: true,
	})
	testcontainers.CleanupContainer(t, container)
	if err != nil {
		t.Skipf("Docker not available for Redis container: %v", err)
	}

	endpoint, err := container.Endpoint(ctx, "")
	if err != nil {
		t.Fatalf("Failed to get Redis endpoint: %v", err)
	}

	if err := WaitForRedis(ctx, endpoint, 10*time.Second); err != nil {
		t.Fatalf("Redis container not ready: %v", err)
	}

	return &TestRedisConfig{Addr: endpoint}
}
