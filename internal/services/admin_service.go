package services

import (
	"errors"
	"parcel_market/internal/auth"
	"parcel_market/internal/models"
	"parcel_market/internal/repository"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AdminService interface {
	Login(email, password string) (string, *models.Admin, error)
	CreateDriver(driver *models.Driver, password string) error
	ListDrivers() ([]models.Driver, error)
	UpdateDriver(id uint, fields map[string]interface{}) (*models.Driver, error)
	DeleteDriver(id uint) error
	ListUsers() ([]models.User, error)
	DeleteUser(id uint) error
}

type adminService struct {
	adminRepo  repository.AdminRepository
	driverRepo repository.DriverRepository
	userRepo   repository.UserRepository
	drivers    DriverService
	tokens     *auth.Manager
}

func NewAdminService(
	adminRepo repository.AdminRepository,
	driverRepo repository.DriverRepository,
	userRepo repository.UserRepository,
	drivers DriverService,
	tokens *auth.Manager,
) AdminService {
	return &adminService{
		adminRepo:  adminRepo,
		driverRepo: driverRepo,
		userRepo:   userRepo,
		drivers:    drivers,
		tokens:     tokens,
	}
}

func (s *adminService) Login(email, password string) (string, *models.Admin, error) {
	admin, err := s.adminRepo.GetByEmail(email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil, errUnauthorized("invalid email or password")
	}
	if err != nil {
		return "", nil, errServer("could not load admin")
	}

	if bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(password)) != nil {
		return "", nil, errUnauthorized("invalid email or password")
	}

	token, err := s.tokens.GenerateToken(admin.ID, auth.RoleAdmin)
	if err != nil {
		return "", nil, errServer("could not issue token")
	}
	return token, admin, nil
}

func (s *adminService) CreateDriver(driver *models.Driver, password string) error {
	return s.drivers.Register(driver, password)
}

func (s *adminService) ListDrivers() ([]models.Driver, error) {
	drivers, err := s.driverRepo.GetAll()
	if err != nil {
		return nil, errServer("could not list drivers")
	}
	return drivers, nil
}

// Fields an admin may patch on a driver. Workflow-owned columns
// (availability during an active delivery, earnings, version) stay out.
var updatableDriverFields = map[string]bool{
	"name":        true,
	"email":       true,
	"phone":       true,
	"is_verified": true,
	"documents":   true,
	"current_lat": true,
	"current_lng": true,
}

func (s *adminService) UpdateDriver(id uint, fields map[string]interface{}) (*models.Driver, error) {
	if _, err := s.driverRepo.GetByID(id); errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errNotFound("driver not found")
	} else if err != nil {
		return nil, errServer("could not load driver")
	}

	filtered := map[string]interface{}{}
	for key, value := range fields {
		if updatableDriverFields[key] {
			filtered[key] = value
		}
	}
	if len(filtered) == 0 {
		return nil, errValidation("no updatable fields in request")
	}

	if err := s.driverRepo.UpdateFields(id, filtered); err != nil {
		return nil, errServer("could not update driver")
	}

	driver, err := s.driverRepo.GetByID(id)
	if err != nil {
		return nil, errServer("could not load driver")
	}
	return driver, nil
}

func (s *adminService) DeleteDriver(id uint) error {
	if _, err := s.driverRepo.GetByID(id); errors.Is(err, gorm.ErrRecordNotFound) {
		return errNotFound("driver not found")
	} else if err != nil {
		return errServer("could not load driver")
	}
	if err := s.driverRepo.Delete(id); err != nil {
		return errServer("could not delete driver")
	}
	return nil
}

func (s *adminService) ListUsers() ([]models.User, error) {
	users, err := s.userRepo.GetAll()
	if err != nil {
		return nil, errServer("could not list users")
	}
	return users, nil
}

func (s *adminService) DeleteUser(id uint) error {
	if _, err := s.userRepo.GetByID(id); errors.Is(err, gorm.ErrRecordNotFound) {
		return errNotFound("user not found")
	} else if err != nil {
		return errServer("could not load user")
	}
	if err := s.userRepo.Delete(id); err != nil {
		return errServer("could not delete user")
	}
	return nil
}
