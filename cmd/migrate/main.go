package main

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/repairshop/backend/internal/infrastructure/config"
	"github.com/repairshop/backend/internal/infrastructure/logger"
	"github.com/repairshop/backend/internal/infrastructure/migration"
	_ "github.com/lib/pq"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const defaultMigrationsPath = "migrations"

// cli carries the flags and lazily built dependencies shared by subcommands
type cli struct {
	migrationsPath string
	logLevel       string
	log            *zap.Logger
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	c := &cli{}
	cmd := &cobra.Command{
		Use:           "migrate",
		Short:         "Repair shop database migration tool",
		Long:          "Applies and manages the SQL schema migrations of the repair shop backend (PostgreSQL only).",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return c.init()
		},
	}
	cmd.PersistentFlags().StringVar(&c.migrationsPath, "path", "", "path to migrations directory (default: ./migrations)")
	cmd.PersistentFlags().StringVar(&c.logLevel, "log-level", "info", "log level (debug, info, warn, error)")

	cmd.AddCommand(
		c.newUpCmd(),
		c.newDownCmd(),
		c.newStepsCmd(),
		c.newVersionCmd(),
		c.newForceCmd(),
		c.newCreateCmd(),
	)
	return cmd
}

func (c *cli) init() error {
	log, err := logger.New(&logger.Config{
		Level:      c.logLevel,
		Format:     "console",
		Output:     "stdout",
		TimeFormat: "2006-01-02 15:04:05",
	})
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	c.log = log

	path, err := resolveMigrationsPath(c.migrationsPath)
	if err != nil {
		return err
	}
	c.migrationsPath = path
	return nil
}

// resolveMigrationsPath falls back to ./migrations, then to the directory two
// levels above the executable, which is where `go build -o bin/...` puts it.
func resolveMigrationsPath(path string) (string, error) {
	if path == "" {
		path = defaultMigrationsPath
		if _, err := os.Stat(path); err != nil {
			if execPath, err := os.Executable(); err == nil {
				candidate := filepath.Join(filepath.Dir(execPath), "..", "..", defaultMigrationsPath)
				if _, err := os.Stat(candidate); err == nil {
					path = candidate
				}
			}
		}
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve migrations path: %w", err)
	}
	return abs, nil
}

// withMigrator opens the configured postgres database and runs fn against it
func (c *cli) withMigrator(fn func(m *migration.Migrator) error) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if cfg.Database.Driver == config.DriverSQLite {
		return fmt.Errorf("migrations require postgres; sqlite databases are created by the server with AutoMigrate")
	}

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}

	c.log.Info("Migration CLI started", zap.String("migrations_path", c.migrationsPath))

	m, err := migration.New(db, c.migrationsPath, c.log)
	if err != nil {
		return err
	}
	defer func() {
		if err := m.Close(); err != nil {
			c.log.Warn("Failed to close migrator", zap.Error(err))
		}
	}()
	return fn(m)
}

func (c *cli) newUpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return c.withMigrator(func(m *migration.Migrator) error { return m.Up() })
		},
	}
}

func (c *cli) newDownCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "down",
		Short: "Roll back all migrations",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return c.withMigrator(func(m *migration.Migrator) error { return m.Down() })
		},
	}
}

func (c *cli) newStepsCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "steps N",
		Short:   "Apply N migrations (negative N rolls back)",
		Example: "  migrate steps -- -1",
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid step count %q", args[0])
			}
			return c.withMigrator(func(m *migration.Migrator) error { return m.Steps(n) })
		},
	}
}

func (c *cli) newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the current migration version",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return c.withMigrator(func(m *migration.Migrator) error {
				version, dirty, err := m.Version()
				if err != nil {
					return err
				}
				if version == 0 {
					c.log.Info("No migrations applied")
					return nil
				}
				c.log.Info("Current migration version",
					zap.Uint("version", version),
					zap.Bool("dirty", dirty),
				)
				return nil
			})
		},
	}
}

func (c *cli) newForceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "force V",
		Short: "Set the migration version without running migrations",
		Long:  "Marks version V as applied and clean. Use only to recover from a failed (dirty) migration.",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			version, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid version %q", args[0])
			}
			return c.withMigrator(func(m *migration.Migrator) error { return m.Force(version) })
		},
	}
}

func (c *cli) newCreateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "create NAME",
		Short: "Create a new empty up/down migration pair",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			mf, err := migration.CreateMigration(c.migrationsPath, args[0])
			if err != nil {
				return err
			}
			c.log.Info("Migration created",
				zap.String("version", mf.Version),
				zap.String("up_file", mf.UpPath),
				zap.String("down_file", mf.DownPath),
			)
			return nil
		},
	}
}
