package pg

import (
	"context"
	"log"
	"os"
	"strconv"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/goboards-dev/goboards/internal/config"
	"github.com/goboards-dev/goboards/internal/domain"
)

var storage *Storage

func TestMain(m *testing.M) {
	ctx := context.Background()
	var container *postgres.PostgresContainer
	storage, container = mustSetup(ctx)
	defer teardown(ctx, storage, container)

	exitCode := m.Run()
	os.Exit(exitCode)
}

func mustSetup(ctx context.Context) (*Storage, *postgres.PostgresContainer) {
	dbName := "goboards"
	dbUser := "user"
	dbPassword := "password"
	container, err := postgres.Run(ctx,
		"postgres:15.3-alpine",
		postgres.WithDatabase(dbName),
		postgres.WithUsername(dbUser),
		postgres.WithPassword(dbPassword),
		testcontainers.WithWaitStrategy(
			// The container restarts itself after the first startup,
			// wait for the readiness log twice.
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(5*time.Second),
		),
	)
	if err != nil {
		log.Fatalf("failed to start container: %s", err)
	}
	containerPort, err := container.MappedPort(ctx, "5432/tcp")
	if err != nil {
		log.Fatalf("failed to obtain container port: %s", err)
	}
	port, err := strconv.Atoi(containerPort.Port())
	if err != nil {
		log.Fatalf("failed to obtain int container port: %s", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		log.Fatalf("failed to obtain container host: %s", err)
	}

	// Schema comes up through the regular migration path.
	storage, err := New(config.Pg{
		Host:           host,
		Port:           port,
		User:           dbUser,
		Password:       dbPassword,
		Dbname:         dbName,
		MigrationsPath: "migrations",
	})
	if err != nil {
		log.Fatalf("failed to connect to postgres container: %s", err)
	}
	return storage, container
}

func teardown(ctx context.Context, storage *Storage, container *postgres.PostgresContainer) {
	if err := storage.Cleanup(); err != nil {
		log.Printf("failed to close storage connection: %s", err)
	}
	if err := container.Terminate(ctx); err != nil {
		log.Printf("failed to terminate container: %s", err)
	}
}

// cleanupTables resets all forum data between tests.
func cleanupTables(t *testing.T) {
	t.Helper()
	_, err := storage.db.Exec("TRUNCATE posts, topics, boards, users RESTART IDENTITY CASCADE")
	if err != nil {
		t.Fatalf("failed to truncate tables: %s", err)
	}
}

func mustCreateBoard(t *testing.T, name string) domain.BoardId {
	t.Helper()
	id, err := storage.CreateBoard(context.Background(), domain.BoardCreationData{Name: name, Description: "test board"})
	if err != nil {
		t.Fatalf("failed to create board: %s", err)
	}
	return id
}

func mustCreateTopic(t *testing.T, board domain.BoardId, subject string, starter domain.User, message string) domain.TopicId {
	t.Helper()
	id, err := storage.CreateTopic(context.Background(), domain.TopicCreationData{
		Board:   board,
		Subject: subject,
		Starter: starter,
		SeedPost: domain.PostCreationData{
			Board:   board,
			Author:  starter,
			Message: message,
		},
	})
	if err != nil {
		t.Fatalf("failed to create topic: %s", err)
	}
	return id
}
