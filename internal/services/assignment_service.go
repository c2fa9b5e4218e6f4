package services

import (
	"errors"
	"parcel_market/internal/models"
	"parcel_market/internal/redis"
	"parcel_market/internal/repository"

	"gorm.io/gorm"
)

// AssignmentService is the single path through which a driver gets attached
// to an order. Driver self-accept and admin manual assignment both run the
// same operation, so availability and already-assigned checks are enforced
// exactly once.
type AssignmentService interface {
	AcceptOrder(driverID, orderID uint) (*models.Order, error)
	AssignDriver(orderID, driverID uint) (*models.Order, error)
	MarkDelivered(driverID, orderID uint) (*models.Order, float64, error)
}

type assignmentService struct {
	assignmentRepo repository.AssignmentRepository
	orderRepo      repository.OrderRepository
	driverRepo     repository.DriverRepository
	cache          *redis.Client
	commissionRate float64
}

func NewAssignmentService(
	assignmentRepo repository.AssignmentRepository,
	orderRepo repository.OrderRepository,
	driverRepo repository.DriverRepository,
	cache *redis.Client,
	commissionRate float64,
) AssignmentService {
	return &assignmentService{
		assignmentRepo: assignmentRepo,
		orderRepo:      orderRepo,
		driverRepo:     driverRepo,
		cache:          cache,
		commissionRate: commissionRate,
	}
}

func (s *assignmentService) AcceptOrder(driverID, orderID uint) (*models.Order, error) {
	return s.assign(orderID, driverID)
}

func (s *assignmentService) AssignDriver(orderID, driverID uint) (*models.Order, error) {
	return s.assign(orderID, driverID)
}

func (s *assignmentService) assign(orderID, driverID uint) (*models.Order, error) {
	err := s.assignmentRepo.Assign(orderID, driverID)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, errNotFound("order or driver not found")
	case errors.Is(err, repository.ErrOrderAlreadyAssigned):
		return nil, errConflict("order is already assigned to a driver")
	case errors.Is(err, repository.ErrOrderNotPending):
		return nil, errConflict("order is not open for assignment")
	case errors.Is(err, repository.ErrDriverUnavailable):
		return nil, errConflict("driver is not available")
	case errors.Is(err, repository.ErrStaleRecord):
		return nil, errConflict("order was just taken, try another one")
	case err != nil:
		return nil, errServer("could not assign order")
	}

	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, errServer("could not load order")
	}
	s.invalidateTracking(order.TrackingNumber)
	return order, nil
}

func (s *assignmentService) MarkDelivered(driverID, orderID uint) (*models.Order, float64, error) {
	earnings, err := s.assignmentRepo.Complete(orderID, driverID, s.commissionRate)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, 0, errNotFound("order or driver not found")
	case errors.Is(err, repository.ErrOrderNotAssigned):
		return nil, 0, errConflict("order is not assigned to this driver")
	case errors.Is(err, repository.ErrOrderAlreadyDelivered):
		return nil, 0, errConflict("order is already delivered")
	case errors.Is(err, repository.ErrStaleRecord):
		return nil, 0, errConflict("order was updated concurrently, refresh and retry")
	case err != nil:
		return nil, 0, errServer("could not mark order delivered")
	}

	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, 0, errServer("could not load order")
	}
	s.invalidateTracking(order.TrackingNumber)
	return order, earnings, nil
}

func (s *assignmentService) invalidateTracking(trackingNumber string) {
	if s.cache != nil {
		s.cache.DeleteTrackedOrder(trackingNumber)
	}
}
