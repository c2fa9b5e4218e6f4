package repository

import (
	"parcel_market/internal/models"

	"gorm.io/gorm"
)

type WithdrawalRepository interface {
	Create(withdrawal *models.Withdrawal) error
	GetByID(id uint) (*models.Withdrawal, error)
	GetByDriver(driverID uint) ([]models.Withdrawal, error)
	GetAll() ([]models.Withdrawal, error)
	Transition(id uint, from, to models.WithdrawalStatus, adminNote string) error
}

type withdrawalRepository struct {
	db *gorm.DB
}

func NewWithdrawalRepository(db *gorm.DB) WithdrawalRepository {
	return &withdrawalRepository{db: db}
}

// Create records a pending withdrawal after checking it against the current
// wallet balance. The balance is not reserved until approval.
func (r *withdrawalRepository) Create(withdrawal *models.Withdrawal) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		wallet, err := getOrCreateWallet(tx, withdrawal.DriverID)
		if err != nil {
			return err
		}
		if wallet.Balance < withdrawal.Amount {
			return ErrInsufficientBalance
		}
		withdrawal.Status = string(models.WithdrawalPending)
		return tx.Create(withdrawal).Error
	})
}

func (r *withdrawalRepository) GetByID(id uint) (*models.Withdrawal, error) {
	var withdrawal models.Withdrawal
	err := r.db.Preload("Driver").First(&withdrawal, id).Error
	if err != nil {
		return nil, err
	}
	return &withdrawal, nil
}

func (r *withdrawalRepository) GetByDriver(driverID uint) ([]models.Withdrawal, error) {
	var withdrawals []models.Withdrawal
	err := r.db.Where("driver_id = ?", driverID).Order("created_at DESC").Find(&withdrawals).Error
	return withdrawals, err
}

func (r *withdrawalRepository) GetAll() ([]models.Withdrawal, error) {
	var withdrawals []models.Withdrawal
	err := r.db.Preload("Driver").Order("created_at DESC").Find(&withdrawals).Error
	return withdrawals, err
}

// Transition moves a withdrawal from one status to another with a
// conditional update, so two admins racing on the same record cannot both
// succeed. Approval debits the wallet in the same transaction.
func (r *withdrawalRepository) Transition(id uint, from, to models.WithdrawalStatus, adminNote string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var withdrawal models.Withdrawal
		if err := tx.First(&withdrawal, id).Error; err != nil {
			return err
		}

		res := tx.Model(&models.Withdrawal{}).
			Where("id = ? AND status = ?", id, string(from)).
			Updates(map[string]interface{}{
				"status":     string(to),
				"admin_note": adminNote,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrInvalidTransition
		}

		if to != models.WithdrawalApproved {
			return nil
		}

		wallet, err := getOrCreateWallet(tx, withdrawal.DriverID)
		if err != nil {
			return err
		}
		res = tx.Model(&models.Wallet{}).
			Where("id = ? AND balance >= ?", wallet.ID, withdrawal.Amount).
			UpdateColumn("balance", gorm.Expr("balance - ?", withdrawal.Amount))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrInsufficientBalance
		}

		entry := &models.WalletTransaction{
			WalletID:    wallet.ID,
			Amount:      withdrawal.Amount,
			Type:        string(models.TransactionDebit),
			Description: "Withdrawal approved",
		}
		return tx.Create(entry).Error
	})
}
