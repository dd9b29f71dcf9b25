package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupRedisContainer(t *testing.T) (*redis.Client, func()) {
	t.Helper()

	req := tc.ContainerRequest{
		Image:        "redis:7-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp"),
	}

	container, err := tc.GenericContainer(context.Background(), tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	assert.NoError(t, err)

	host, _ := container.Host(context.Background())
	port, _ := container.MappedPort(context.Background(), "6379")

	client := redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%d", host, port.Int()),
	})
	assert.NoError(t, client.Ping(context.Background()).Err())

	teardown := func() {
		client.Close()
		container.Terminate(context.Background())
	}

	return client, teardown
}

func TestRevokedTokenRepository(t *testing.T) {
	client, teardown := setupRedisContainer(t)
	defer teardown()

	repo := NewRevokedTokenRepository(client)
	ctx := context.Background()

	t.Run("revoked token is reported revoked", func(t *testing.T) {
		err := repo.Revoke(ctx, "token123", time.Hour)
		assert.NoError(t, err)

		revoked, err := repo.IsRevoked(ctx, "token123")
		assert.NoError(t, err)
		assert.True(t, revoked)
	})

	t.Run("unknown token is not revoked", func(t *testing.T) {
		revoked, err := repo.IsRevoked(ctx, "never-seen")
		assert.NoError(t, err)
		assert.False(t, revoked)
	})

	t.Run("non-positive ttl is a no-op", func(t *testing.T) {
		err := repo.Revoke(ctx, "expired-token", -time.Minute)
		assert.NoError(t, err)

		revoked, err := repo.IsRevoked(ctx, "expired-token")
		assert.NoError(t, err)
		assert.False(t, revoked)
	})

	t.Run("revocation expires with the ttl", func(t *testing.T) {
		err := repo.Revoke(ctx, "short-lived", 500*time.Millisecond)
		assert.NoError(t, err)

		revoked, err := repo.IsRevoked(ctx, "short-lived")
		assert.NoError(t, err)
		assert.True(t, revoked)

		time.Sleep(time.Second)

		revoked, err = repo.IsRevoked(ctx, "short-lived")
		assert.NoError(t, err)
		assert.False(t, revoked)
	})
}
