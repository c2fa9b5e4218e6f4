package repository

import (
	"fmt"
	"parcel_market/internal/models"

	"gorm.io/gorm"
)

const orderSequenceName = "orders"

type OrderRepository interface {
	Create(order *models.Order) error
	GetByID(id uint) (*models.Order, error)
	GetByTrackingNumber(trackingNumber string) (*models.Order, error)
	GetAvailable() ([]models.Order, error)
	GetCurrentByDriver(driverID uint) ([]models.Order, error)
	GetByUserID(userID uint) ([]models.Order, error)
	GetAll() ([]models.Order, error)
	UpdatePaymentStatus(id uint, status string) error
}

type orderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

// Create inserts the order and assigns its tracking number from the shared
// sequence row. The increment and the insert run in one transaction, so two
// concurrent creations can never observe the same value.
func (r *orderRepository) Create(order *models.Order) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Sequence{}).
			Where("name = ?", orderSequenceName).
			UpdateColumn("value", gorm.Expr("value + 1"))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			if err := tx.Create(&models.Sequence{Name: orderSequenceName, Value: 1}).Error; err != nil {
				return err
			}
		}

		var seq models.Sequence
		if err := tx.Where("name = ?", orderSequenceName).First(&seq).Error; err != nil {
			return err
		}

		order.TrackingNumber = fmt.Sprintf("AE%03d", seq.Value)
		return tx.Create(order).Error
	})
}

func (r *orderRepository) GetByID(id uint) (*models.Order, error) {
	var order models.Order
	err := r.db.Preload("User").Preload("Driver").First(&order, id).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) GetByTrackingNumber(trackingNumber string) (*models.Order, error) {
	var order models.Order
	err := r.db.Where("tracking_number = ?", trackingNumber).First(&order).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) GetAvailable() ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Preload("User").
		Where("driver_id IS NULL AND status = ?", string(models.OrderPending)).
		Order("created_at ASC").
		Find(&orders).Error
	return orders, err
}

func (r *orderRepository) GetCurrentByDriver(driverID uint) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Where("driver_id = ? AND status <> ?", driverID, string(models.OrderDelivered)).
		Order("created_at ASC").
		Find(&orders).Error
	return orders, err
}

func (r *orderRepository) GetByUserID(userID uint) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&orders).Error
	return orders, err
}

func (r *orderRepository) GetAll() ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Preload("Driver").Order("created_at DESC").Find(&orders).Error
	return orders, err
}

func (r *orderRepository) UpdatePaymentStatus(id uint, status string) error {
	return r.db.Model(&models.Order{}).Where("id = ?", id).
		Updates(map[string]interface{}{
			"payment_status": status,
			"version":        gorm.Expr("version + 1"),
		}).Error
}
