package db

import (
	"fmt"
	"log/slog"
	"os"
	"regexp"
	"time"

	migrate "github.com/golang-migrate/migrate/v4"
	// Blank imports register the postgres driver and file source for golang-migrate.
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/avquote/backend/internal/config"
	"github.com/avquote/backend/internal/store"
)

// ConnectAndMigrate opens the relational backend for the collection store
// and brings the schema up to date. postgres:// DSNs get SQL migrations via
// golang-migrate when MIGRATIONS=1; everything else (including the
// sqlite path used in development and tests) uses gorm AutoMigrate.
func ConnectAndMigrate(dsn string) (*gorm.DB, error) {
	dsn = NormalizeDSN(dsn)
	if dsn == "" {
		return nil, fmt.Errorf("database DSN is empty: %w", store.ErrNotConfigured)
	}

	logLevel := logger.Silent
	if os.Getenv("DB_DEBUG") == "1" {
		logLevel = logger.Info
	}
	cfg := &gorm.Config{Logger: logger.Default.LogMode(logLevel)}

	var db *gorm.DB
	var err error
	if IsPostgres(dsn) {
		for i := 0; i < 10; i++ {
			db, err = gorm.Open(postgres.Open(dsn), cfg)
			if err == nil {
				break
			}
			slog.Warn("retrying db connection", "error", err)
			time.Sleep(2 * time.Second)
		}
	} else {
		db, err = gorm.Open(sqlite.Open(dsn), cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}
	if pingErr := db.Exec("SELECT 1").Error; pingErr != nil {
		return nil, fmt.Errorf("db ping failed: %w", pingErr)
	}
	slog.Info("database connected", "dsn", maskDSN(dsn))

	if IsPostgres(dsn) && config.ParseBool("MIGRATIONS", false) {
		if err := runSQLMigrations(dsn); err != nil {
			return nil, fmt.Errorf("sql migrations failed: %w", err)
		}
	} else if err := db.AutoMigrate(&store.Collection{}); err != nil {
		return nil, fmt.Errorf("automigrate collections: %w", err)
	}
	if !db.Migrator().HasTable("collections") {
		return nil, fmt.Errorf("missing collections table after migration")
	}
	return db, nil
}

var passwordRegex = regexp.MustCompile(`(password=)(\S+)`)

func maskDSN(dsn string) string {
	return passwordRegex.ReplaceAllString(dsn, `${1}***`)
}

// runSQLMigrations executes the files in ./migrations with the
// golang-migrate file source. ErrNoChange is not a failure.
func runSQLMigrations(dsn string) error {
	src := os.Getenv("MIGRATIONS_DIR")
	if src == "" {
		src = "migrations"
	}
	m, err := migrate.New("file://"+src, dsn)
	if err != nil {
		return err
	}
	defer m.Close()
	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return err
	}
	return nil
}
