package services

import (
	"errors"
	"parcel_market/internal/auth"
	"parcel_market/internal/models"
	"parcel_market/internal/repository"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type DriverService interface {
	Register(driver *models.Driver, password string) error
	Login(phone, password string) (string, *models.Driver, error)
	GetDriver(id uint) (*models.Driver, error)
}

type driverService struct {
	driverRepo repository.DriverRepository
	tokens     *auth.Manager
}

func NewDriverService(driverRepo repository.DriverRepository, tokens *auth.Manager) DriverService {
	return &driverService{driverRepo: driverRepo, tokens: tokens}
}

func (s *driverService) Register(driver *models.Driver, password string) error {
	if driver.Name == "" || driver.Phone == "" {
		return errValidation("name and phone are required")
	}
	if password == "" {
		return errValidation("password is required")
	}

	if _, err := s.driverRepo.GetByPhone(driver.Phone); err == nil {
		return errConflict("a driver with this phone already exists")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return errServer("could not hash password")
	}
	driver.Password = string(hashed)
	driver.IsAvailable = true

	if err := s.driverRepo.Create(driver); err != nil {
		return errServer("could not create driver")
	}
	return nil
}

func (s *driverService) Login(phone, password string) (string, *models.Driver, error) {
	driver, err := s.driverRepo.GetByPhone(phone)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil, errUnauthorized("invalid phone or password")
	}
	if err != nil {
		return "", nil, errServer("could not load driver")
	}

	if bcrypt.CompareHashAndPassword([]byte(driver.Password), []byte(password)) != nil {
		return "", nil, errUnauthorized("invalid phone or password")
	}

	token, err := s.tokens.GenerateToken(driver.ID, auth.RoleDriver)
	if err != nil {
		return "", nil, errServer("could not issue token")
	}
	return token, driver, nil
}

func (s *driverService) GetDriver(id uint) (*models.Driver, error) {
	driver, err := s.driverRepo.GetByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errNotFound("driver not found")
	}
	if err != nil {
		return nil, errServer("could not load driver")
	}
	return driver, nil
}
