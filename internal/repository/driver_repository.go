package repository

import (
	"parcel_market/internal/models"

	"gorm.io/gorm"
)

type DriverRepository interface {
	Create(driver *models.Driver) error
	GetByID(id uint) (*models.Driver, error)
	GetByPhone(phone string) (*models.Driver, error)
	GetAll() ([]models.Driver, error)
	Update(driver *models.Driver) error
	UpdateFields(id uint, fields map[string]interface{}) error
	Delete(id uint) error
}

type driverRepository struct {
	db *gorm.DB
}

func NewDriverRepository(db *gorm.DB) DriverRepository {
	return &driverRepository{db: db}
}

func (r *driverRepository) Create(driver *models.Driver) error {
	return r.db.Create(driver).Error
}

func (r *driverRepository) GetByID(id uint) (*models.Driver, error) {
	var driver models.Driver
	err := r.db.First(&driver, id).Error
	if err != nil {
		return nil, err
	}
	return &driver, nil
}

func (r *driverRepository) GetByPhone(phone string) (*models.Driver, error) {
	var driver models.Driver
	err := r.db.Where("phone = ?", phone).First(&driver).Error
	if err != nil {
		return nil, err
	}
	return &driver, nil
}

func (r *driverRepository) GetAll() ([]models.Driver, error) {
	var drivers []models.Driver
	err := r.db.Find(&drivers).Error
	return drivers, err
}

func (r *driverRepository) Update(driver *models.Driver) error {
	return r.db.Save(driver).Error
}

// UpdateFields applies a partial update, bumping the version column so
// workflow updates racing with it are detected.
func (r *driverRepository) UpdateFields(id uint, fields map[string]interface{}) error {
	fields["version"] = gorm.Expr("version + 1")
	return r.db.Model(&models.Driver{}).Where("id = ?", id).Updates(fields).Error
}

func (r *driverRepository) Delete(id uint) error {
	return r.db.Delete(&models.Driver{}, id).Error
}
