// Package testhelpers starts disposable Postgres and MongoDB containers for
// tests that need a real backend. Tests are skipped when Docker is missing
// or -short is set.
package testhelpers

import (
	"context"
	"fmt"
	"os/exec"
	"testing"
	"time"

	"github.com/docker/go-connections/nat"
	_ "github.com/lib/pq"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/pageza/forkcast/backend/config"
)

const (
	pgUser     = "forkcast"
	pgPassword = "forkcast"
	pgDatabase = "forkcast"
)

// RequireDocker skips the test unless containers can be started.
func RequireDocker(t *testing.T) {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping container-based test in short mode")
	}
	if _, err := exec.LookPath("docker"); err != nil {
		t.Skip("docker not installed, skipping container-based test")
	}
}

// StartPostgres runs a Postgres container and returns a config pointing at
// it with the postgres backend selected.
func StartPostgres(t *testing.T) *config.Config {
	t.Helper()
	RequireDocker(t)

	ctx := context.Background()
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "postgres:16-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     pgUser,
				"POSTGRES_PASSWORD": pgPassword,
				"POSTGRES_DB":       pgDatabase,
			},
			WaitingFor: wait.ForAll(
				wait.ForListeningPort("5432/tcp"),
				wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
				wait.ForSQL("5432/tcp", "postgres", func(host string, port nat.Port) string {
					return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
						pgUser, pgPassword, host, port.Port(), pgDatabase)
				}),
			).WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		t.Fatalf("failed to start container: %v", err)
	}
	terminateOnCleanup(t, container)

	host, port := endpoint(t, container, "5432/tcp")
	return &config.Config{
		Environment:  config.Test,
		StoreBackend: config.BackendPostgres,
		AutoMigrate:  true,
		DBHost:       host,
		DBPort:       port,
		DBUser:       pgUser,
		DBPassword:   pgPassword,
		DBName:       pgDatabase,
		DBSSLMode:    "disable",
	}
}

// StartMongo runs a MongoDB container and returns a config pointing at it
// with the mongo backend selected.
func StartMongo(t *testing.T) *config.Config {
	t.Helper()
	RequireDocker(t)

	ctx := context.Background()
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "mongo:7",
			ExposedPorts: []string{"27017/tcp"},
			WaitingFor: wait.ForAll(
				wait.ForListeningPort(nat.Port("27017/tcp")),
				wait.ForLog("Waiting for connections"),
			).WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		t.Fatalf("failed to start container: %v", err)
	}
	terminateOnCleanup(t, container)

	host, port := endpoint(t, container, "27017/tcp")
	return &config.Config{
		Environment:   config.Test,
		StoreBackend:  config.BackendMongo,
		AutoMigrate:   true,
		MongoURL:      fmt.Sprintf("mongodb://%s:%s", host, port),
		MongoDatabase: "forkcast_test",
	}
}

func endpoint(t *testing.T, container testcontainers.Container, port nat.Port) (string, string) {
	t.Helper()
	ctx := context.Background()
	host, err := container.Host(ctx)
	if err != nil {
		t.Fatalf("failed to get container host: %v", err)
	}
	mapped, err := container.MappedPort(ctx, port)
	if err != nil {
		t.Fatalf("failed to get container port: %v", err)
	}
	return host, mapped.Port()
}

func terminateOnCleanup(t *testing.T, container testcontainers.Container) {
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := container.Terminate(ctx); err != nil {
			t.Errorf("failed to terminate container: %v", err)
		}
	})
}
