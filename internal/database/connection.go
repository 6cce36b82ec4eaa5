// internal/database/connection.go
package database

import (
	"fmt"
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Ayupanchal18/Renters-sub005/internal/config"
	"github.com/Ayupanchal18/Renters-sub005/internal/models"
)

var DB *gorm.DB

func Initialize(cfg config.DatabaseConfig) (*gorm.DB, error) {
	var err error

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(cfg.GormLogLevel()),
	}

	// Connect to database
	DB, err = gorm.Open(postgres.Open(cfg.DSN()), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Get underlying sql.DB
	sqlDB, err := DB.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	// Configure connection pool
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(time.Duration(cfg.MaxLifetime) * time.Second)

	// Test connection
	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.Println("Database connection established successfully")
	return DB, nil
}

func Close(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("Error getting underlying sql.DB: %v", err)
		return
	}

	if err := sqlDB.Close(); err != nil {
		log.Printf("Error closing database connection: %v", err)
	} else {
		log.Println("Database connection closed successfully")
	}
}

func RunMigrations(db *gorm.DB) error {
	log.Println("Running database migrations...")

	// gen_random_uuid needs pgcrypto on Postgres < 13
	if err := db.Exec("CREATE EXTENSION IF NOT EXISTS \"pgcrypto\"").Error; err != nil {
		return fmt.Errorf("failed to create pgcrypto extension: %w", err)
	}

	// Run auto-migrations
	err := db.AutoMigrate(
		&models.Property{},
		&models.Favorite{},
		&models.AuditLog{},
		&models.MarketSnapshot{},
	)

	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	// Create indexes
	if err := createIndexes(db); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}

	log.Println("Database migrations completed successfully")
	return nil
}

func createIndexes(db *gorm.DB) error {
	indexes := []string{
		// Property indexes
		"CREATE INDEX IF NOT EXISTS idx_properties_type_status ON properties(listing_type, status)",
		"CREATE INDEX IF NOT EXISTS idx_properties_city ON properties(city)",
		"CREATE INDEX IF NOT EXISTS idx_properties_category ON properties(category)",
		"CREATE INDEX IF NOT EXISTS idx_properties_monthly_rent ON properties(monthly_rent)",
		"CREATE INDEX IF NOT EXISTS idx_properties_selling_price ON properties(selling_price)",
		"CREATE INDEX IF NOT EXISTS idx_properties_bedrooms ON properties(bedrooms)",
		"CREATE INDEX IF NOT EXISTS idx_properties_owner ON properties(owner_id)",
		"CREATE INDEX IF NOT EXISTS idx_properties_created_at ON properties(created_at DESC)",
		"CREATE INDEX IF NOT EXISTS idx_properties_views ON properties(views DESC)",
		"CREATE INDEX IF NOT EXISTS idx_properties_featured ON properties(featured, created_at DESC)",
		"CREATE INDEX IF NOT EXISTS idx_properties_amenities ON properties USING GIN(amenities)",

		// Favorite indexes
		"CREATE INDEX IF NOT EXISTS idx_favorites_property ON favorites(property_id)",
		"CREATE INDEX IF NOT EXISTS idx_favorites_created_at ON favorites(created_at DESC)",

		// Audit log indexes
		"CREATE INDEX IF NOT EXISTS idx_audit_logs_user_action ON audit_logs(user_id, action)",
		"CREATE INDEX IF NOT EXISTS idx_audit_logs_resource ON audit_logs(resource_type, resource_id)",
		"CREATE INDEX IF NOT EXISTS idx_audit_logs_created ON audit_logs(created_at DESC)",

		// Market snapshot indexes
		"CREATE INDEX IF NOT EXISTS idx_market_snapshots_day ON market_snapshots(snapshot_date, listing_type, city)",

		// Full-text search index
		"CREATE INDEX IF NOT EXISTS idx_properties_search ON properties USING GIN(to_tsvector('english', title || ' ' || description))",
	}

	for _, index := range indexes {
		if err := db.Exec(index).Error; err != nil {
			log.Printf("Warning: Failed to create index: %s, Error: %v", index, err)
			// Continue with other indexes instead of failing completely
		}
	}

	return nil
}

// Transaction helper
func WithTransaction(db *gorm.DB, fn func(*gorm.DB) error) error {
	tx := db.Begin()
	if tx.Error != nil {
		return tx.Error
	}

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	if err := fn(tx); err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit().Error
}
