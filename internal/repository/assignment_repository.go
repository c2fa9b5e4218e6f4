package repository

import (
	"errors"
	"parcel_market/internal/models"

	"gorm.io/gorm"
)

// AssignmentRepository moves an order through its lifecycle. Every method
// runs as one transaction over both aggregates, with version-guarded
// conditional updates so racing requests are rejected instead of silently
// overwriting each other.
type AssignmentRepository interface {
	Assign(orderID, driverID uint) error
	Complete(orderID, driverID uint, commissionRate float64) (float64, error)
}

type assignmentRepository struct {
	db *gorm.DB
}

func NewAssignmentRepository(db *gorm.DB) AssignmentRepository {
	return &assignmentRepository{db: db}
}

func (r *assignmentRepository) Assign(orderID, driverID uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var order models.Order
		if err := tx.First(&order, orderID).Error; err != nil {
			return err
		}
		if order.DriverID != nil {
			return ErrOrderAlreadyAssigned
		}
		if order.Status != string(models.OrderPending) {
			return ErrOrderNotPending
		}

		var driver models.Driver
		if err := tx.First(&driver, driverID).Error; err != nil {
			return err
		}
		if !driver.IsAvailable {
			return ErrDriverUnavailable
		}

		res := tx.Model(&models.Order{}).
			Where("id = ? AND driver_id IS NULL AND version = ?", order.ID, order.Version).
			Updates(map[string]interface{}{
				"driver_id": driver.ID,
				"status":    string(models.OrderAccepted),
				"version":   gorm.Expr("version + 1"),
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrStaleRecord
		}

		res = tx.Model(&models.Driver{}).
			Where("id = ? AND is_available = ? AND version = ?", driver.ID, true, driver.Version).
			Updates(map[string]interface{}{
				"is_available": false,
				"version":      gorm.Expr("version + 1"),
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrStaleRecord
		}
		return nil
	})
}

func (r *assignmentRepository) Complete(orderID, driverID uint, commissionRate float64) (float64, error) {
	var earnings float64
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var order models.Order
		if err := tx.First(&order, orderID).Error; err != nil {
			return err
		}
		if order.DriverID == nil || *order.DriverID != driverID {
			return ErrOrderNotAssigned
		}
		if order.Status == string(models.OrderDelivered) {
			return ErrOrderAlreadyDelivered
		}

		var driver models.Driver
		if err := tx.First(&driver, driverID).Error; err != nil {
			return err
		}

		earnings = roundMoney(order.Amount * commissionRate)

		res := tx.Model(&models.Order{}).
			Where("id = ? AND status <> ? AND version = ?", order.ID, string(models.OrderDelivered), order.Version).
			Updates(map[string]interface{}{
				"status":  string(models.OrderDelivered),
				"version": gorm.Expr("version + 1"),
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrStaleRecord
		}

		res = tx.Model(&models.Driver{}).
			Where("id = ? AND version = ?", driver.ID, driver.Version).
			Updates(map[string]interface{}{
				"earnings":     gorm.Expr("earnings + ?", earnings),
				"is_available": true,
				"version":      gorm.Expr("version + 1"),
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrStaleRecord
		}

		return creditWallet(tx, driver.ID, order.ID, earnings,
			"Delivery earnings for order "+order.TrackingNumber)
	})
	if err != nil {
		return 0, err
	}
	return earnings, nil
}

// creditWallet appends a credit entry and bumps the balance inside the
// caller's transaction, creating the wallet on first credit.
func creditWallet(tx *gorm.DB, driverID, orderID uint, amount float64, description string) error {
	wallet, err := getOrCreateWallet(tx, driverID)
	if err != nil {
		return err
	}

	if err := tx.Model(&models.Wallet{}).Where("id = ?", wallet.ID).
		UpdateColumn("balance", gorm.Expr("balance + ?", amount)).Error; err != nil {
		return err
	}

	entry := &models.WalletTransaction{
		WalletID:    wallet.ID,
		OrderID:     &orderID,
		Amount:      amount,
		Type:        string(models.TransactionCredit),
		Description: description,
	}
	return tx.Create(entry).Error
}

func getOrCreateWallet(tx *gorm.DB, driverID uint) (*models.Wallet, error) {
	var wallet models.Wallet
	err := tx.Where("driver_id = ?", driverID).First(&wallet).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		wallet = models.Wallet{DriverID: driverID}
		if err := tx.Create(&wallet).Error; err != nil {
			return nil, err
		}
		return &wallet, nil
	}
	if err != nil {
		return nil, err
	}
	return &wallet, nil
}
