package migrations

import (
	"log"
	"parcel_market/internal/database"
	"parcel_market/internal/models"
	"parcel_market/internal/repository"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// RunMigrations applies the schema and seeds the records the system cannot
// run without: the tracking-number sequence and a first admin account.
func RunMigrations(db *gorm.DB) error {
	log.Println("Running database migrations...")

	if err := database.AutoMigrate(db); err != nil {
		return err
	}

	return createDefaultData(db)
}

func createDefaultData(db *gorm.DB) error {
	log.Println("Creating default data...")

	// Seed the sequence row so order creation starts at AE001.
	var seq models.Sequence
	err := db.Where("name = ?", "orders").First(&seq).Error
	if err == gorm.ErrRecordNotFound {
		if err := db.Create(&models.Sequence{Name: "orders", Value: 0}).Error; err != nil {
			return err
		}
		log.Println("Tracking sequence initialized")
	} else if err != nil {
		return err
	}

	adminRepo := repository.NewAdminRepository(db)
	if _, err := adminRepo.GetByEmail("admin@parcelmarket.ae"); err == nil {
		log.Println("Default admin already exists")
		return nil
	}

	log.Println("Creating default admin...")
	hashed, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := &models.Admin{
		Name:     "Administrator",
		Email:    "admin@parcelmarket.ae",
		Password: string(hashed),
	}
	if err := adminRepo.Create(admin); err != nil {
		log.Printf("Warning: Failed to create default admin: %v", err)
		return nil
	}

	log.Println("Default admin created successfully")
	log.Println("Email: admin@parcelmarket.ae")
	log.Println("Password: admin123")
	return nil
}
