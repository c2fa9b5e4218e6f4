package services

import (
	"parcel_market/internal/models"
	"parcel_market/internal/repository"
)

type WalletService interface {
	GetWallet(driverID uint) (*models.Wallet, error)
}

type walletService struct {
	walletRepo repository.WalletRepository
}

func NewWalletService(walletRepo repository.WalletRepository) WalletService {
	return &walletService{walletRepo: walletRepo}
}

func (s *walletService) GetWallet(driverID uint) (*models.Wallet, error) {
	wallet, err := s.walletRepo.GetOrCreateByDriver(driverID)
	if err != nil {
		return nil, errServer("could not load wallet")
	}
	return wallet, nil
}
