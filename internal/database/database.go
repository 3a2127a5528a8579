package database

import (
	"context"
	"fmt"
	"time"

	"homeservices-backend/internal/config"
	"homeservices-backend/internal/models"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Database struct {
	*gorm.DB
	queryTimeout time.Duration
}

func Connect(cfg config.DatabaseConfig) (*Database, error) {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC connect_timeout=10",
		cfg.Host, cfg.User, cfg.Password, cfg.DBName, cfg.Port, cfg.SSLMode)

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
		DisableForeignKeyConstraintWhenMigrating: true,
		PrepareStmt:                              true,
	}

	db, err := gorm.Open(postgres.Open(dsn), gormConfig)
	if err != nil {
		logrus.WithError(err).Error("Failed to connect to database")
		return nil, fmt.Errorf("failed to connect to database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		logrus.WithError(err).Error("Failed to get underlying sql.DB")
		return nil, fmt.Errorf("failed to get underlying sql.DB: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		logrus.WithError(err).Error("Failed to ping database")
		return nil, fmt.Errorf("failed to ping database: %v", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(2 * time.Minute)

	logrus.Info("Database connection established successfully")

	database := &Database{
		DB:           db,
		queryTimeout: cfg.QueryTimeout,
	}

	if err := Migrate(db); err != nil {
		logrus.WithError(err).Error("Failed to run auto migration")
		return nil, fmt.Errorf("failed to run auto migration: %v", err)
	}

	if err := SeedLanguages(db); err != nil {
		logrus.WithError(err).Error("Failed to seed languages")
		return nil, fmt.Errorf("failed to seed languages: %v", err)
	}

	return database, nil
}

// New wraps an already-open gorm handle. Used by tests with the SQLite driver.
func New(db *gorm.DB, queryTimeout time.Duration) *Database {
	return &Database{DB: db, queryTimeout: queryTimeout}
}

func (d *Database) WithContext(ctx context.Context) *gorm.DB {
	return d.DB.WithContext(ctx)
}

func (d *Database) GetQueryTimeout() time.Duration {
	return d.queryTimeout
}

func (d *Database) HealthCheck() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	return sqlDB.PingContext(ctx)
}

func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Migrate creates or updates all tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Language{},
		&models.AdminUser{},
		&models.Service{},
		&models.Blog{},
		&models.Comment{},
		&models.Review{},
		&models.FAQ{},
		&models.Stat{},
		&models.ContactSubmission{},
		&models.AboutUs{},
	)
}

// SeedLanguages inserts the fixed language set if missing. Existing rows are
// left untouched, so the registry is stable across restarts.
func SeedLanguages(db *gorm.DB) error {
	for _, lang := range models.SupportedLanguages {
		var existing models.Language
		err := db.Where("code = ?", lang.Code).FirstOrCreate(&existing, models.Language{
			Code: lang.Code,
			Name: lang.Name,
			Dir:  lang.Dir,
		}).Error
		if err != nil {
			return fmt.Errorf("failed to seed language %s: %w", lang.Code, err)
		}
	}
	return nil
}
