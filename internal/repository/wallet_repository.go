package repository

import (
	"parcel_market/internal/models"

	"gorm.io/gorm"
)

type WalletRepository interface {
	GetOrCreateByDriver(driverID uint) (*models.Wallet, error)
}

type walletRepository struct {
	db *gorm.DB
}

func NewWalletRepository(db *gorm.DB) WalletRepository {
	return &walletRepository{db: db}
}

// GetOrCreateByDriver returns the driver's wallet with its ledger, lazily
// creating an empty wallet on first access. Linked orders are expanded so
// the ledger can be rendered without extra lookups.
func (r *walletRepository) GetOrCreateByDriver(driverID uint) (*models.Wallet, error) {
	var wallet *models.Wallet
	err := r.db.Transaction(func(tx *gorm.DB) error {
		w, err := getOrCreateWallet(tx, driverID)
		if err != nil {
			return err
		}
		wallet = w
		return nil
	})
	if err != nil {
		return nil, err
	}

	var full models.Wallet
	err = r.db.Preload("Transactions", func(db *gorm.DB) *gorm.DB {
		return db.Order("created_at ASC")
	}).Preload("Transactions.Order").First(&full, wallet.ID).Error
	if err != nil {
		return nil, err
	}
	return &full, nil
}
