package database

import (
	"gorm.io/gorm"

	"github.com/avasquez/portfolio-backend/models"
)

type Database struct {
	db            *gorm.DB
	portfolioRepo *PortfolioRepo
	userRepo      *UserRepo
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		db:            db,
		portfolioRepo: NewPortfolioRepo(db),
		userRepo:      NewUserRepo(db),
	}
}

// Accessor methods for each repository

func (d Database) PortfolioRepo() *PortfolioRepo {
	return d.portfolioRepo
}

func (d Database) UserRepo() *UserRepo {
	return d.userRepo
}

// AutoMigrate creates or updates the schema for the aggregate and user tables.
func (d Database) AutoMigrate() error {
	return d.db.AutoMigrate(&models.Portfolio{}, &models.User{})
}

// Ping verifies the underlying connection is alive.
func (d Database) Ping() error {
	sqlDB, err := d.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}
