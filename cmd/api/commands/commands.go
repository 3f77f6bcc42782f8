package commands

import (
	"context"
	"fmt"
	"log"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/spf13/cobra"

	"github.com/creativepulse/core/internal/adapters/repository"
	"github.com/creativepulse/core/internal/domain/entities"
	"github.com/creativepulse/core/internal/infrastructure/config"
	"github.com/creativepulse/core/internal/infrastructure/database"
	"github.com/creativepulse/core/internal/infrastructure/logger"
	"github.com/creativepulse/core/internal/infrastructure/server"
	"github.com/creativepulse/core/internal/ports"
)

// NewServeCommand creates the serve command
func NewServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the CreativePulse API server",
		Long:  "Start the CreativePulse API server with all configured routes and middleware",
		Run: func(cmd *cobra.Command, args []string) {
			runServer()
		},
	}
}

// NewMigrateCommand creates the migrate command with subcommands
func NewMigrateCommand() *cobra.Command {
	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration commands",
		Long:  "Manage snapshot-table migrations for the postgres storage driver (up, down, version)",
	}

	migrateCmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Run all up migrations",
		Run: func(cmd *cobra.Command, args []string) {
			runMigration("up")
		},
	})

	migrateCmd.AddCommand(&cobra.Command{
		Use:   "down",
		Short: "Run all down migrations",
		Run: func(cmd *cobra.Command, args []string) {
			runMigration("down")
		},
	})

	migrateCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print current migration version",
		Run: func(cmd *cobra.Command, args []string) {
			showMigrationVersion()
		},
	})

	return migrateCmd
}

// NewSeedCommand creates the seed command
func NewSeedCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Write the seed dataset to the configured snapshot store",
		Long:  "Overwrite the configured snapshot blob with the built-in seed tasks. Useful for demos and resetting state.",
		Run: func(cmd *cobra.Command, args []string) {
			runSeed()
		},
	}
}

func runServer() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLogger, err := logger.New(cfg.Logger)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer appLogger.Sync()

	snapshots, err := newSnapshotStore(cfg)
	if err != nil {
		appLogger.Fatal("Failed to initialize snapshot store", "error", err)
	}

	srv, err := server.New(cfg, snapshots, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to initialize server", "error", err)
	}

	appLogger.Info("Starting CreativePulse API server",
		"port", cfg.Server.Port,
		"environment", cfg.App.Environment,
		"storage_driver", cfg.Storage.Driver,
	)

	if err := srv.Start(fmt.Sprintf(":%d", cfg.Server.Port)); err != nil {
		appLogger.Fatal("Server failed to start", "error", err)
	}
}

// newSnapshotStore builds the snapshot store the config selects.
func newSnapshotStore(cfg *config.Config) (ports.SnapshotStore, error) {
	switch cfg.Storage.Driver {
	case config.StorageDriverPostgres:
		db, err := database.NewConnection(cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		return repository.NewPostgresSnapshotStore(db.DB, cfg.Storage.SnapshotName), nil
	default:
		return repository.NewFileSnapshotStore(cfg.Storage.FilePath), nil
	}
}

func runSeed() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	snapshots, err := newSnapshotStore(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize snapshot store: %v", err)
	}
	defer snapshots.Close()

	if err := snapshots.Save(context.Background(), entities.SeedTasks()); err != nil {
		log.Fatalf("Failed to write seed snapshot: %v", err)
	}

	fmt.Printf("Seed snapshot written (%s driver, snapshot %q)\n", cfg.Storage.Driver, cfg.Storage.SnapshotName)
}

func runMigration(direction string) {
	m := newMigrator()

	var err error
	switch direction {
	case "up":
		err = m.Up()
	case "down":
		err = m.Down()
	}

	if err != nil && err != migrate.ErrNoChange {
		log.Fatalf("Migration failed: %v", err)
	}

	if err == migrate.ErrNoChange {
		fmt.Println("No migrations to run")
	} else {
		fmt.Printf("Migration %s completed successfully\n", direction)
	}
}

func showMigrationVersion() {
	m := newMigrator()

	version, dirty, err := m.Version()
	if err != nil {
		log.Fatalf("Failed to get migration version: %v", err)
	}

	fmt.Printf("Current migration version: %d\n", version)
	fmt.Printf("Dirty: %t\n", dirty)
}

func newMigrator() *migrate.Migrate {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.NewConnection(cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	driver, err := postgres.WithInstance(db.DB.DB, &postgres.Config{})
	if err != nil {
		log.Fatalf("Failed to create migration driver: %v", err)
	}

	m, err := migrate.NewWithDatabaseInstance(
		"file://migrations",
		"postgres",
		driver,
	)
	if err != nil {
		log.Fatalf("Failed to create migration instance: %v", err)
	}

	return m
}
