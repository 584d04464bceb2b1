// Package integration runs the repository, migration and HTTP layers against
// real PostgreSQL and Redis servers started with testcontainers.
// Every test is skipped under `go test -short`.
package integration

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/repairshop/backend/internal/domain/identity"
	"github.com/repairshop/backend/internal/infrastructure/migration"
	"github.com/repairshop/backend/internal/infrastructure/persistence"
	"github.com/repairshop/backend/tests/testutil"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// TestDB is a migrated PostgreSQL database in its own container
type TestDB struct {
	DB        *gorm.DB
	SqlDB     *sql.DB
	Container testcontainers.Container
	DSN       string
	t         *testing.T
}

func skipIfShort(t *testing.T) {
	t.Helper()
	if testing.Short() {
		t.Skip("integration test skipped in short mode")
	}
}

// NewTestDB starts a PostgreSQL container and applies migrations/ to it.
// The container is terminated when the test ends.
func NewTestDB(t *testing.T) *TestDB {
	t.Helper()
	skipIfShort(t)

	ctx := context.Background()
	container, err := tcpostgres.Run(ctx,
		"postgres:16-alpine",
		tcpostgres.WithDatabase("repairshop_test"),
		tcpostgres.WithUsername("postgres"),
		tcpostgres.WithPassword("postgres"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err, "Failed to start PostgreSQL container")

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err, "Failed to get connection string")

	db, sqlDB := connectToDatabase(t, dsn)
	tdb := &TestDB{DB: db, SqlDB: sqlDB, Container: container, DSN: dsn, t: t}
	t.Cleanup(tdb.Close)

	m := tdb.Migrator()
	require.NoError(t, m.Up(), "Failed to run migrations")
	return tdb
}

// Migrator returns a migrator bound to this database; it is closed with the test
func (tdb *TestDB) Migrator() *migration.Migrator {
	tdb.t.Helper()

	path := findMigrationsPath()
	require.NotEmpty(tdb.t, path, "Could not find migrations directory")

	// golang-migrate closes the *sql.DB it was given, so it gets its own
	sqlDB, err := sql.Open("postgres", tdb.DSN)
	require.NoError(tdb.t, err)

	m, err := migration.New(sqlDB, path, zap.NewNop())
	require.NoError(tdb.t, err, "Failed to create migrator")
	tdb.t.Cleanup(func() { _ = m.Close() })
	return m
}

// Close closes the connection and terminates the container
func (tdb *TestDB) Close() {
	if tdb.SqlDB != nil {
		_ = tdb.SqlDB.Close()
	}
	if tdb.Container != nil {
		if err := tdb.Container.Terminate(context.Background()); err != nil {
			tdb.t.Logf("Warning: Failed to terminate container: %v", err)
		}
	}
}

// Database wraps the connection the way cmd/server does
func (tdb *TestDB) Database() *persistence.Database {
	return &persistence.Database{DB: tdb.DB}
}

// Tenant is a company with an administrator and a seeded shop
type Tenant struct {
	testutil.Shop
	TechnicianID string
}

// SeedTenant creates a company, its administrator and the records a work order refers to
func (tdb *TestDB) SeedTenant() Tenant {
	tdb.t.Helper()

	company, err := identity.NewCompany(fmt.Sprintf("Garage %d", time.Now().UnixNano()), "")
	require.NoError(tdb.t, err)
	user, err := identity.NewUser(company.ID,
		fmt.Sprintf("admin-%s@garage.example", company.ID[:8]),
		"s3cret-pass", "Ada", "Lovelace", identity.UserRoleAdmin)
	require.NoError(tdb.t, err)

	repo := persistence.NewGormUserRepository(tdb.DB)
	require.NoError(tdb.t, repo.CreateWithCompany(context.Background(), company, user))

	return Tenant{
		Shop:         testutil.SeedShop(tdb.t, tdb.DB, company.ID),
		TechnicianID: user.ID,
	}
}

// NewRedisClient starts a Redis container and returns a client connected to it
func NewRedisClient(t *testing.T) *redis.Client {
	t.Helper()
	skipIfShort(t)

	ctx := context.Background()
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(30 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err, "Failed to start Redis container")
	t.Cleanup(func() {
		if err := container.Terminate(context.Background()); err != nil {
			t.Logf("Warning: Failed to terminate container: %v", err)
		}
	})

	endpoint, err := container.Endpoint(ctx, "")
	require.NoError(t, err)

	client := redis.NewClient(&redis.Options{Addr: endpoint})
	t.Cleanup(func() { _ = client.Close() })
	require.NoError(t, client.Ping(ctx).Err())
	return client
}

func connectToDatabase(t *testing.T, dsn string) (*gorm.DB, *sql.DB) {
	t.Helper()

	gormConfig := &gorm.Config{
		Logger:                 logger.Default.LogMode(logger.Silent),
		SkipDefaultTransaction: true,
		TranslateError:         true,
	}
	if os.Getenv("TEST_DB_DEBUG") != "" {
		gormConfig.Logger = logger.Default.LogMode(logger.Info)
	}

	db, err := gorm.Open(gormpostgres.Open(dsn), gormConfig)
	require.NoError(t, err, "Failed to connect to database")

	sqlDB, err := db.DB()
	require.NoError(t, err, "Failed to get underlying SQL DB")
	sqlDB.SetMaxOpenConns(5)
	sqlDB.SetMaxIdleConns(2)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)

	return db, sqlDB
}

// findMigrationsPath walks up from this file to the module's migrations directory
func findMigrationsPath() string {
	_, filename, _, ok := runtime.Caller(0)
	if !ok {
		return ""
	}
	dir := filepath.Dir(filename)
	for range 5 {
		candidate := filepath.Join(dir, "migrations")
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
		dir = filepath.Dir(dir)
	}
	return ""
}
