package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/pageza/mealplanner/backend/config"
)

// DB is a plain database/sql handle on the postgres database, used for
// migrations and health checks
type DB struct {
	*sql.DB
}

// New creates a new database connection through lib/pq
func New(cfg *config.Config, log *logrus.Logger) (*DB, error) {
	log.WithFields(logrus.Fields{
		"host": cfg.DBHost,
		"port": cfg.DBPort,
		"user": cfg.DBUser,
	}).Info("Connecting to database")

	db, err := sql.Open("postgres", cfg.PostgresDSN())
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}
	configurePool(db)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("error connecting to the database: %w", err)
	}
	return &DB{db}, nil
}

// HealthCheck checks if the database is accessible
func (db *DB) HealthCheck(ctx context.Context) error {
	return db.PingContext(ctx)
}

func configurePool(db *sql.DB) {
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)
}

// Open returns the gorm handle for the configured driver. SQLite databases
// are auto-migrated; postgres schemas come from the embedded migrations.
func Open(cfg *config.Config, log *logrus.Logger) (*gorm.DB, error) {
	gormCfg := &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Warn),
		TranslateError: true,
	}

	switch cfg.DBDriver {
	case "sqlite":
		log.WithField("path", cfg.SQLitePath).Info("Opening SQLite database")
		return OpenSQLite(cfg.SQLitePath, gormCfg)
	case "postgres":
		db, err := gorm.Open(postgres.Open(cfg.PostgresDSN()), gormCfg)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("failed to get sql.DB: %w", err)
		}
		configurePool(sqlDB)
		log.Info("Successfully connected to database")
		return db, nil
	}
	return nil, fmt.Errorf("unsupported database driver %q", cfg.DBDriver)
}

// OpenSQLite opens and auto-migrates a SQLite database at dsn. Constraint
// violations come back as gorm errors such as gorm.ErrDuplicatedKey.
func OpenSQLite(dsn string, gormCfg *gorm.Config) (*gorm.DB, error) {
	if gormCfg == nil {
		gormCfg = &gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Silent)}
	}
	gormCfg.TranslateError = true
	db, err := gorm.Open(sqlite.Open(dsn), gormCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}
	if err := AutoMigrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Ping checks the connection behind a gorm handle
func Ping(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
