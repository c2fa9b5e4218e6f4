package services

import (
	"errors"
	"parcel_market/internal/models"
	"parcel_market/internal/redis"
	"parcel_market/internal/repository"

	"gorm.io/gorm"
)

type OrderService interface {
	CreateOrder(order *models.Order) error
	GetOrderByID(id uint) (*models.Order, error)
	TrackOrder(trackingNumber string) (*models.Order, error)
	GetAvailableOrders() ([]models.Order, error)
	GetCurrentOrders(driverID uint) ([]models.Order, error)
	GetOrdersByUser(userID uint) ([]models.Order, error)
	GetAllOrders() ([]models.Order, error)
}

type orderService struct {
	orderRepo repository.OrderRepository
	cache     *redis.Client
}

func NewOrderService(orderRepo repository.OrderRepository, cache *redis.Client) OrderService {
	return &orderService{orderRepo: orderRepo, cache: cache}
}

func (s *orderService) CreateOrder(order *models.Order) error {
	if err := validateOrder(order); err != nil {
		return err
	}

	amount, ok := priceFor(order.DeliveryType, order.ReturnType)
	if !ok {
		return errValidation("delivery_type or return_type is not a recognized option")
	}
	// The client may echo the quoted price for display, but the stored
	// amount is always the server-side one.
	if order.Amount != 0 && order.Amount != amount {
		return errValidation("amount does not match the price for the selected options")
	}
	order.Amount = amount
	order.Status = string(models.OrderPending)
	order.PaymentStatus = string(models.PaymentPending)
	order.DriverID = nil

	if err := s.orderRepo.Create(order); err != nil {
		return errServer("could not create order")
	}
	return nil
}

func validateOrder(order *models.Order) error {
	required := []struct {
		name  string
		value string
	}{
		{"pickup_building", order.PickupBuilding},
		{"pickup_apartment", order.PickupApartment},
		{"pickup_emirate", order.PickupEmirate},
		{"pickup_area", order.PickupArea},
		{"pickup_phone", order.PickupPhone},
		{"drop_building", order.DropBuilding},
		{"drop_apartment", order.DropApartment},
		{"drop_emirate", order.DropEmirate},
		{"drop_area", order.DropArea},
		{"drop_phone", order.DropPhone},
	}
	for _, field := range required {
		if field.value == "" {
			return errValidation(field.name + " is required")
		}
	}
	if order.PaymentMethod != string(models.PaymentCard) && order.PaymentMethod != string(models.PaymentCash) {
		return errValidation("payment_method must be card or cash")
	}
	return nil
}

func (s *orderService) GetOrderByID(id uint) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errNotFound("order not found")
	}
	if err != nil {
		return nil, errServer("could not load order")
	}
	return order, nil
}

// TrackOrder serves the public tracking view, with a short-lived cache in
// front of the database.
func (s *orderService) TrackOrder(trackingNumber string) (*models.Order, error) {
	if s.cache != nil {
		if order, err := s.cache.GetTrackedOrder(trackingNumber); err == nil {
			return order, nil
		}
	}

	order, err := s.orderRepo.GetByTrackingNumber(trackingNumber)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errNotFound("no order with this tracking number")
	}
	if err != nil {
		return nil, errServer("could not load order")
	}

	if s.cache != nil {
		s.cache.SetTrackedOrder(trackingNumber, order)
	}
	return order, nil
}

func (s *orderService) GetAvailableOrders() ([]models.Order, error) {
	orders, err := s.orderRepo.GetAvailable()
	if err != nil {
		return nil, errServer("could not list available orders")
	}
	return orders, nil
}

func (s *orderService) GetCurrentOrders(driverID uint) ([]models.Order, error) {
	orders, err := s.orderRepo.GetCurrentByDriver(driverID)
	if err != nil {
		return nil, errServer("could not list current orders")
	}
	return orders, nil
}

func (s *orderService) GetOrdersByUser(userID uint) ([]models.Order, error) {
	orders, err := s.orderRepo.GetByUserID(userID)
	if err != nil {
		return nil, errServer("could not list orders")
	}
	return orders, nil
}

func (s *orderService) GetAllOrders() ([]models.Order, error) {
	orders, err := s.orderRepo.GetAll()
	if err != nil {
		return nil, errServer("could not list orders")
	}
	return orders, nil
}
