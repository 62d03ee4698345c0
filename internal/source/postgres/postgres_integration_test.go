package postgres

import (
	"context"
	"database/sql"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/mike-goetz/gerrit-charts/config"

	_ "github.com/lib/pq"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestSourceIntegration(t *testing.T) {
	ctx := context.Background()

	cfg, cleanup := setupPostgres(t)
	t.Cleanup(cleanup)

	src := New(ctx, testLogger(t), cfg)
	require.NoError(t, src.OnStart(ctx))
	t.Cleanup(func() { _ = src.OnStop(ctx) })

	seed(t, ctx, src)

	changes, err := src.Changes(ctx)
	require.NoError(t, err)
	require.Len(t, changes, 3)

	// sorted by submission time descending
	require.True(t, changes[0].Submitted.After(changes[1].Submitted))
	require.True(t, changes[1].Submitted.After(changes[2].Submitted))

	reviewed := changes[2]
	require.Equal(t, "alice", reviewed.Owner.Username)
	require.NotNil(t, reviewed.CodeReview)
	require.Equal(t, "bob", reviewed.CodeReview.Username)

	unreviewed := changes[1]
	require.Nil(t, unreviewed.CodeReview)

	teams, err := src.Teams(ctx)
	require.NoError(t, err)
	require.Len(t, teams, 2)
	require.Equal(t, "core", teams[0].Name)
	require.Len(t, teams[0].Members, 2)
	require.Equal(t, "tools", teams[1].Name)
	require.Equal(t, 0, teams[1].ActiveSize())
}

func seed(t *testing.T, ctx context.Context, src *Postgres) {
	t.Helper()

	statements := []string{
		`INSERT INTO persons (username, name) VALUES
			('alice', 'Alice'), ('bob', 'Bob')`,
		`INSERT INTO persons (username, name, end_date) VALUES
			('carol', 'Carol', '2022-11-30')`,
		`INSERT INTO teams (name) VALUES ('core'), ('tools')`,
		`INSERT INTO team_members (team_name, username) VALUES
			('core', 'alice'), ('core', 'bob'), ('tools', 'carol')`,
		`INSERT INTO changes
			(id, project, branch, change_id, status, owner_username, submitter_username,
			 reviewer_username, created, updated, submitted, insertions, deletions, unresolved_comments)
		 VALUES
			(1, 'gerald/core', 'master', 'Iaaa', 'MERGED', 'alice', 'alice', 'bob',
			 '2023-01-01 09:00:00', '2023-01-02 10:00:00', '2023-01-02 10:00:00', 12, 1, 0),
			(2, 'gerald/tools', 'master', 'Ibbb', 'MERGED', 'bob', 'bob', NULL,
			 '2023-01-03 09:00:00', '2023-01-04 10:00:00', '2023-01-04 10:00:00', 3, 0, 1),
			(3, 'gerald/core', 'master', 'Iccc', 'MERGED', 'bob', 'alice', 'alice',
			 '2023-01-05 09:00:00', '2023-01-06 10:00:00', '2023-01-06 10:00:00', 8, 2, 0)`,
	}
	for _, stmt := range statements {
		_, err := src.db.Exec(ctx, stmt)
		require.NoError(t, err)
	}
}

func setupPostgres(t *testing.T) (*config.Config, func()) {
	t.Helper()

	pool, err := dockertest.NewPool("")
	require.NoError(t, err)

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16-alpine",
		Env: []string{
			"POSTGRES_PASSWORD=postgres",
			"POSTGRES_USER=postgres",
			"POSTGRES_DB=gerrit_charts_db",
		},
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
	})
	require.NoError(t, err)

	hostPort := resource.GetPort("5432/tcp")

	port, err := strconv.Atoi(hostPort)
	require.NoError(t, err)
	migrationsDir, err := filepath.Abs(filepath.Join("..", "..", "..", "db", "migrations"))
	require.NoError(t, err)
	require.DirExists(t, migrationsDir)

	cfg := &config.Config{}
	cfg.Source.Postgres = config.PostgresConfig{
		Host:           "localhost",
		Port:           port,
		User:           "postgres",
		Password:       "postgres",
		DBName:         "gerrit_charts_db",
		SSLMode:        "disable",
		MigrationsDir:  migrationsDir,
		QueryTimeout:   10 * time.Second,
		MigrateTimeout: 20 * time.Second,
		MaxConns:       4,
		MinConns:       1,
	}

	require.NoError(t, pool.Retry(func() error {
		db, err := sql.Open("postgres", "host=localhost port="+hostPort+" user=postgres password=postgres dbname=gerrit_charts_db sslmode=disable")
		if err != nil {
			return err
		}
		defer func() { _ = db.Close() }()
		return db.Ping()
	}))

	cleanup := func() {
		_ = pool.Purge(resource)
	}

	return cfg, cleanup
}

func testLogger(t *testing.T) *zap.SugaredLogger {
	t.Helper()

	l, _ := zap.NewDevelopment()
	t.Cleanup(func() { _ = l.Sync() })
	return l.Sugar()
}
