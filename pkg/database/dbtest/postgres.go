// Package dbtest starts a throwaway PostgreSQL container with the service
// migrations applied, for repository integration tests.
package dbtest

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/answerking/answerking-api/migrations/answerking"
	"github.com/answerking/answerking-api/pkg/migrator"
)

// Postgres is a running container plus an open, migrated connection pool.
type Postgres struct {
	Container *tcpostgres.PostgresContainer
	DB        *sql.DB
	URL       string
}

// Start launches postgres:16-alpine and applies every migration.
func Start(ctx context.Context) (*Postgres, error) {
	container, err := tcpostgres.Run(ctx,
		"postgres:16-alpine",
		tcpostgres.WithDatabase("answerking"),
		tcpostgres.WithUsername("answerking"),
		tcpostgres.WithPassword("answerking"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("start postgres container: %w", err)
	}

	url, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, fmt.Errorf("connection string: %w", err)
	}

	db, err := sql.Open("pgx", url)
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, fmt.Errorf("open db: %w", err)
	}
	if err := migrator.Up(db, answerking.FS); err != nil {
		_ = db.Close()
		_ = container.Terminate(ctx)
		return nil, err
	}

	return &Postgres{Container: container, DB: db, URL: url}, nil
}

// Truncate empties every application table and resets identities.
func (p *Postgres) Truncate(ctx context.Context) error {
	_, err := p.DB.ExecContext(ctx,
		"TRUNCATE TABLE order_lines, orders, category_items, categories, items RESTART IDENTITY CASCADE")
	return err
}

// Stop closes the pool and terminates the container.
func (p *Postgres) Stop(ctx context.Context) error {
	if err := p.DB.Close(); err != nil {
		return err
	}
	return p.Container.Terminate(ctx)
}
