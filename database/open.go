package database

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/plugin/dbresolver"

	"github.com/rpupo63/portfolio-backend/config"
)

var ErrUnsupportedDBType = errors.New("unsupported DB_TYPE")

// Options selects the driver and connection strings for Open.
type Options struct {
	Type       string
	DSN        string
	ReplicaDSN string
	Logger     logger.Interface
}

// OptionsFromConfig reads DB_TYPE, DATABASE_URL and DATABASE_REPLICA_URL.
// With DB_TYPE=supa and no DATABASE_URL the DSN is assembled from the
// SUPABASE_DB_* keys.
func OptionsFromConfig(c map[string]string) Options {
	opts := Options{
		Type:       strings.ToLower(config.GetString(c, "DB_TYPE", "postgres")),
		DSN:        config.GetString(c, "DATABASE_URL", ""),
		ReplicaDSN: config.GetString(c, "DATABASE_REPLICA_URL", ""),
	}
	if opts.Type == "supa" && opts.DSN == "" {
		opts.DSN = fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=require",
			config.GetString(c, "SUPABASE_DB_HOST", ""),
			config.GetString(c, "SUPABASE_DB_USER", ""),
			config.GetString(c, "SUPABASE_DB_PASSWORD", ""),
			config.GetString(c, "SUPABASE_DB_NAME", ""),
			config.GetString(c, "SUPABASE_DB_PORT", "5432"),
		)
	}
	if opts.Type == "sqlite" && opts.DSN == "" {
		opts.DSN = "portfolio.db"
	}
	return opts
}

// DefaultLogger only reports slow queries and real errors.
func DefaultLogger() logger.Interface {
	return logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             10 * time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)
}

func dialector(dbType, dsn string) (gorm.Dialector, error) {
	switch dbType {
	case "postgres", "supa":
		return postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		}), nil
	case "mysql":
		return mysql.Open(withParseTime(dsn)), nil
	case "sqlite":
		return sqlite.Open(dsn), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDBType, dbType)
	}
}

// date columns only scan into time.Time when the MySQL driver parses them
func withParseTime(dsn string) string {
	if strings.Contains(dsn, "parseTime=") {
		return dsn
	}
	if strings.Contains(dsn, "?") {
		return dsn + "&parseTime=true"
	}
	return dsn + "?parseTime=true"
}

// Open connects with the configured driver, registers the read replica when
// one is configured, and checks the connection.
func Open(opts Options) (*gorm.DB, error) {
	if opts.DSN == "" {
		return nil, errors.New("database connection string is empty")
	}
	primary, err := dialector(opts.Type, opts.DSN)
	if err != nil {
		return nil, err
	}
	if opts.Logger == nil {
		opts.Logger = DefaultLogger()
	}

	db, err := gorm.Open(primary, &gorm.Config{
		PrepareStmt: false,
		Logger:      opts.Logger,
	})
	if err != nil {
		return nil, fmt.Errorf("connecting to %s: %w", opts.Type, err)
	}

	if opts.Type == "sqlite" {
		// one writer; keeps in-memory databases on a single connection
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(1)
	}

	if opts.ReplicaDSN != "" {
		replica, err := dialector(opts.Type, opts.ReplicaDSN)
		if err != nil {
			return nil, err
		}
		err = db.Use(dbresolver.Register(dbresolver.Config{
			Replicas: []gorm.Dialector{replica},
			Policy:   dbresolver.RandomPolicy{},
		}))
		if err != nil {
			return nil, fmt.Errorf("registering read replica: %w", err)
		}
	}

	var result int
	if err := db.Raw("SELECT 1").Scan(&result).Error; err != nil {
		return nil, fmt.Errorf("testing database connection: %w", err)
	}
	return db, nil
}
