package services

import (
	"errors"
	"parcel_market/internal/models"
	"parcel_market/internal/repository"

	"gorm.io/gorm"
)

type WithdrawalService interface {
	RequestWithdrawal(driverID uint, amount float64) (*models.Withdrawal, error)
	GetHistory(driverID uint) ([]models.Withdrawal, error)
	GetForDriver(driverID, withdrawalID uint) (*models.Withdrawal, error)
	ListAll() ([]models.Withdrawal, error)
	Get(id uint) (*models.Withdrawal, error)
	UpdateStatus(id uint, status, adminNote string) (*models.Withdrawal, error)
}

// Allowed withdrawal state machine: pending -> approved -> paid, or
// pending -> rejected.
var withdrawalTransitions = map[models.WithdrawalStatus]models.WithdrawalStatus{
	models.WithdrawalApproved: models.WithdrawalPending,
	models.WithdrawalRejected: models.WithdrawalPending,
	models.WithdrawalPaid:     models.WithdrawalApproved,
}

type withdrawalService struct {
	withdrawalRepo repository.WithdrawalRepository
}

func NewWithdrawalService(withdrawalRepo repository.WithdrawalRepository) WithdrawalService {
	return &withdrawalService{withdrawalRepo: withdrawalRepo}
}

func (s *withdrawalService) RequestWithdrawal(driverID uint, amount float64) (*models.Withdrawal, error) {
	if amount <= 0 {
		return nil, errValidation("amount must be positive")
	}

	withdrawal := &models.Withdrawal{DriverID: driverID, Amount: amount}
	err := s.withdrawalRepo.Create(withdrawal)
	if errors.Is(err, repository.ErrInsufficientBalance) {
		return nil, errConflict("wallet balance is insufficient")
	}
	if err != nil {
		return nil, errServer("could not create withdrawal request")
	}
	return withdrawal, nil
}

func (s *withdrawalService) GetHistory(driverID uint) ([]models.Withdrawal, error) {
	withdrawals, err := s.withdrawalRepo.GetByDriver(driverID)
	if err != nil {
		return nil, errServer("could not list withdrawals")
	}
	return withdrawals, nil
}

func (s *withdrawalService) GetForDriver(driverID, withdrawalID uint) (*models.Withdrawal, error) {
	withdrawal, err := s.Get(withdrawalID)
	if err != nil {
		return nil, err
	}
	if withdrawal.DriverID != driverID {
		return nil, errNotFound("withdrawal not found")
	}
	return withdrawal, nil
}

func (s *withdrawalService) ListAll() ([]models.Withdrawal, error) {
	withdrawals, err := s.withdrawalRepo.GetAll()
	if err != nil {
		return nil, errServer("could not list withdrawals")
	}
	return withdrawals, nil
}

func (s *withdrawalService) Get(id uint) (*models.Withdrawal, error) {
	withdrawal, err := s.withdrawalRepo.GetByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errNotFound("withdrawal not found")
	}
	if err != nil {
		return nil, errServer("could not load withdrawal")
	}
	return withdrawal, nil
}

func (s *withdrawalService) UpdateStatus(id uint, status, adminNote string) (*models.Withdrawal, error) {
	target := models.WithdrawalStatus(status)
	from, ok := withdrawalTransitions[target]
	if !ok {
		return nil, errValidation("status must be approved, rejected or paid")
	}

	err := s.withdrawalRepo.Transition(id, from, target, adminNote)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, errNotFound("withdrawal not found")
	case errors.Is(err, repository.ErrInvalidTransition):
		return nil, errConflict("withdrawal is not in a state that allows this change")
	case errors.Is(err, repository.ErrInsufficientBalance):
		return nil, errConflict("wallet balance is insufficient")
	case err != nil:
		return nil, errServer("could not update withdrawal")
	}

	return s.Get(id)
}
