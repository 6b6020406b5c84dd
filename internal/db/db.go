package db

import (
	"fmt"
	"log"
	"os"
	"time"

	"tagespresse/internal/config"
	"tagespresse/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Init opens the store and brings the schema up to date. With DATABASE_URL set
// it connects to Postgres; otherwise it uses the local SQLite file, creating it
// if absent. In dev mode the tables are dropped and recreated on every startup.
func Init(cfg config.AppConfig) (*gorm.DB, error) {
	gLogger := logger.New(
		log.New(os.Stdout, "", log.LstdFlags),
		logger.Config{
			SlowThreshold:             2 * time.Second,
			LogLevel:                  toGormLogLevel(cfg.LogLevel),
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)

	var dialector gorm.Dialector
	if cfg.DatabaseURL != "" {
		dialector = postgres.Open(cfg.DatabaseURL)
	} else {
		dialector = sqlite.Open(cfg.SQLitePath)
	}

	conn, err := gorm.Open(dialector, &gorm.Config{Logger: gLogger})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	if cfg.DatabaseURL != "" {
		sqlDB, err := conn.DB()
		if err != nil {
			return nil, fmt.Errorf("get sql.DB: %w", err)
		}
		sqlDB.SetMaxIdleConns(5)
		sqlDB.SetMaxOpenConns(20)
		sqlDB.SetConnMaxLifetime(30 * time.Minute)
	}

	if cfg.DevMode {
		// 开发模式：每次启动都重建表结构
		if err := conn.Migrator().DropTable(&models.Comment{}, &models.Article{}); err != nil {
			return nil, fmt.Errorf("drop tables: %w", err)
		}
	}

	if err := Migrate(conn); err != nil {
		return nil, err
	}

	return conn, nil
}

// Migrate creates or updates the Article and Comment tables.
func Migrate(conn *gorm.DB) error {
	if err := conn.AutoMigrate(
		&models.Article{},
		&models.Comment{},
	); err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}
	return nil
}

func toGormLogLevel(level string) logger.LogLevel {
	switch level {
	case "debug":
		// GORM 'Info' shows SQL; use with caution
		return logger.Info
	case "warn":
		return logger.Warn
	default:
		return logger.Error
	}
}
