package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/alshbh/storefront/internal/infrastructure/config"
	"github.com/alshbh/storefront/internal/infrastructure/logger"
	"github.com/alshbh/storefront/internal/infrastructure/migration"
	"github.com/alshbh/storefront/internal/infrastructure/persistence"
	_ "github.com/lib/pq"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var downConfirmed bool

var upCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply all pending migrations",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withMigrator(func(m *migration.Migrator) error { return m.Up() })
	},
}

var downCmd = &cobra.Command{
	Use:   "down",
	Short: "Roll back every migration (drops all storefront tables)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !downConfirmed {
			return errors.New("refusing to roll back everything without --yes")
		}
		return withMigrator(func(m *migration.Migrator) error { return m.Down() })
	},
}

var stepsCmd = &cobra.Command{
	Use:   "steps N",
	Short: "Apply N migrations, or roll back when N is negative",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid step count %q", args[0])
		}
		return withMigrator(func(m *migration.Migrator) error { return m.Steps(n) })
	},
}

var gotoCmd = &cobra.Command{
	Use:   "goto V",
	Short: "Migrate up or down to version V",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := strconv.ParseUint(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid version %q", args[0])
		}
		return withMigrator(func(m *migration.Migrator) error { return m.GoTo(uint(v)) })
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the current schema version",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withMigrator(func(m *migration.Migrator) error {
			status, err := m.Status()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			switch {
			case !status.Applied:
				fmt.Fprintln(out, "no migrations applied")
			case status.Dirty:
				fmt.Fprintf(out, "%d (dirty)\n", status.Version)
			default:
				fmt.Fprintln(out, status.Version)
			}
			return nil
		})
	},
}

var forceCmd = &cobra.Command{
	Use:   "force V",
	Short: "Mark version V as applied and clear the dirty flag",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid version %q", args[0])
		}
		return withMigrator(func(m *migration.Migrator) error { return m.Force(v) })
	},
}

var createDescription string

var createCmd = &cobra.Command{
	Use:   "create NAME",
	Short: "Create the next numbered up/down migration pair",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		mf, err := migration.CreateMigration(migrationsPath, args[0], createDescription)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, mf.UpPath)
		fmt.Fprintln(out, mf.DownPath)
		return nil
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List migration files",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		names, err := migration.ListMigrations(migrationsPath)
		if err != nil {
			return err
		}
		for _, name := range names {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}
		return nil
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed FILE",
	Short: "Insert reference data from a YAML file, skipping existing names",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := migration.LoadSeedFile(args[0])
		if err != nil {
			return err
		}
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		db, err := persistence.Open(cmd.Context(), &cfg.Database,
			persistence.WithLogger(logger.NewGormLogger(log, gormlogger.Warn)))
		if err != nil {
			return err
		}
		defer db.Close()

		seeder := newSeeder(db.DB)
		res, err := seeder.Apply(context.Background(), data)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "sizes=%d colors=%d categories=%d governorates=%d skipped=%d\n",
			res.Sizes, res.Colors, res.Categories, res.Governorates, res.Skipped)
		return nil
	},
}

func init() {
	downCmd.Flags().BoolVar(&downConfirmed, "yes", false, "confirm rolling back all migrations")
	createCmd.Flags().StringVarP(&createDescription, "description", "d", "", "description written into the up file")
}

func newSeeder(db *gorm.DB) *migration.Seeder {
	return migration.NewSeeder(
		persistence.NewGormSizeRepository(db),
		persistence.NewGormColorRepository(db),
		persistence.NewGormCategoryRepository(db),
		persistence.NewGormGovernorateRepository(db),
		log,
	)
}

func withMigrator(fn func(*migration.Migrator) error) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	path, err := filepath.Abs(migrationsPath)
	if err != nil {
		return fmt.Errorf("invalid migrations path: %w", err)
	}

	sqlDB, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	m, err := migration.New(sqlDB, path, log)
	if err != nil {
		_ = sqlDB.Close()
		return err
	}
	defer func() {
		if err := m.Close(); err != nil {
			log.Warn("Failed to close migrator", zap.Error(err))
		}
	}()

	log.Debug("Using migrations", zap.String("path", path), zap.String("database", cfg.Database.DBName))
	return fn(m)
}
