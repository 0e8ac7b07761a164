package db

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/jackc/pgx/v5/stdlib"
	log "github.com/sirupsen/logrus"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// RunMigrations applies all pending schema migrations. The migrate library
// works over database/sql, so a short-lived pgx stdlib connection is opened
// next to the pgx pool used for serving traffic.
func RunMigrations(dbHost, dbPort, dbName string) error {
	dsn := fmt.Sprintf(
		"postgres://postgres@%s:%s/%s?sslmode=disable",
		dbHost, dbPort, dbName,
	)
	sqlDB, err := sql.Open("pgx", dsn)
	if err != nil {
		return fmt.Errorf("open migrations db conn: %w", err)
	}
	defer func() {
		if err := sqlDB.Close(); err != nil {
			log.Warnf("close migrations db conn: %s", err)
		}
	}()

	sourceDriver, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("create migration source driver: %w", err)
	}

	dbDriver, err := postgres.WithInstance(sqlDB, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("create migration db driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", sourceDriver, "postgres", dbDriver)
	if err != nil {
		return fmt.Errorf("create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			log.Debugln("db migrations: no changes")
			return nil
		}
		return fmt.Errorf("run migrations: %w", err)
	}

	log.Debugln("db migrations applied")
	return nil
}
