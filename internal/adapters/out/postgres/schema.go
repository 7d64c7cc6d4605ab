package postgres

import (
	"context"

	"ordertrack/internal/adapters/out/postgres/companyrepo"
	"ordertrack/internal/adapters/out/postgres/dberr"
	"ordertrack/internal/adapters/out/postgres/orderrepo"
	"ordertrack/internal/adapters/out/postgres/progressrepo"

	"gorm.io/gorm"
)

// Migrate creates or updates the companies, orders and order_progress tables
// together with their unique indexes and cascading foreign keys.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&companyrepo.CompanyDTO{},
		&orderrepo.OrderDTO{},
		&progressrepo.StepDTO{},
	)
}

// Ping checks that the store answers.
func Ping(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return dberr.Translate(err, "connection", "pool")
	}
	if err = sqlDB.PingContext(ctx); err != nil {
		return dberr.Translate(err, "connection", "ping")
	}
	return nil
}
