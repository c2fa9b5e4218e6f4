package services

import (
	"errors"
	"parcel_market/internal/auth"
	"parcel_market/internal/models"
	"parcel_market/internal/repository"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserService interface {
	Register(name, email, phone, password, googleID string) (*models.User, error)
	Login(email, password string) (string, *models.User, error)
	GoogleLogin(googleID, name, email string) (string, *models.User, error)
	GetUser(id uint) (*models.User, error)
	AddAddress(userID uint, address *models.UserAddress) error
	GetAddresses(userID uint) ([]models.UserAddress, error)
}

type userService struct {
	userRepo repository.UserRepository
	tokens   *auth.Manager
}

func NewUserService(userRepo repository.UserRepository, tokens *auth.Manager) UserService {
	return &userService{userRepo: userRepo, tokens: tokens}
}

// Register creates a password-based account (phone + password) or a
// federated one (google id). Supplying both or neither is rejected.
func (s *userService) Register(name, email, phone, password, googleID string) (*models.User, error) {
	if name == "" || email == "" {
		return nil, errValidation("name and email are required")
	}

	passwordBased := phone != "" && password != ""
	federated := googleID != ""
	if passwordBased && federated {
		return nil, errValidation("account must be password-based or google-based, not both")
	}
	if !passwordBased && !federated {
		return nil, errValidation("either phone and password or a google id is required")
	}

	if _, err := s.userRepo.GetByEmail(email); err == nil {
		return nil, errConflict("a user with this email already exists")
	}

	user := &models.User{Name: name, Email: email}
	if passwordBased {
		hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return nil, errServer("could not hash password")
		}
		hashedStr := string(hashed)
		user.Phone = &phone
		user.Password = &hashedStr
	} else {
		user.GoogleID = &googleID
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, errServer("could not create user")
	}
	return user, nil
}

func (s *userService) Login(email, password string) (string, *models.User, error) {
	user, err := s.userRepo.GetByEmail(email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil, errUnauthorized("invalid email or password")
	}
	if err != nil {
		return "", nil, errServer("could not load user")
	}
	if user.Password == nil {
		return "", nil, errUnauthorized("this account signs in with google")
	}
	if bcrypt.CompareHashAndPassword([]byte(*user.Password), []byte(password)) != nil {
		return "", nil, errUnauthorized("invalid email or password")
	}

	token, err := s.tokens.GenerateToken(user.ID, auth.RoleUser)
	if err != nil {
		return "", nil, errServer("could not issue token")
	}
	return token, user, nil
}

// GoogleLogin signs in a federated user, registering the account on first
// sign-in. Token verification against the identity provider happens at the
// edge; this receives the already-verified subject id.
func (s *userService) GoogleLogin(googleID, name, email string) (string, *models.User, error) {
	if googleID == "" {
		return "", nil, errValidation("google id is required")
	}

	user, err := s.userRepo.GetByGoogleID(googleID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		user, err = s.Register(name, email, "", "", googleID)
		if err != nil {
			return "", nil, err
		}
	} else if err != nil {
		return "", nil, errServer("could not load user")
	}

	token, err := s.tokens.GenerateToken(user.ID, auth.RoleUser)
	if err != nil {
		return "", nil, errServer("could not issue token")
	}
	return token, user, nil
}

func (s *userService) GetUser(id uint) (*models.User, error) {
	user, err := s.userRepo.GetByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errNotFound("user not found")
	}
	if err != nil {
		return nil, errServer("could not load user")
	}
	return user, nil
}

func (s *userService) AddAddress(userID uint, address *models.UserAddress) error {
	address.UserID = userID
	if err := s.userRepo.AddAddress(address); err != nil {
		return errServer("could not save address")
	}
	return nil
}

func (s *userService) GetAddresses(userID uint) ([]models.UserAddress, error) {
	addresses, err := s.userRepo.GetAddresses(userID)
	if err != nil {
		return nil, errServer("could not list addresses")
	}
	return addresses, nil
}
