package services

import (
	"log"
	"parcel_market/internal/models"
	"parcel_market/internal/redis"
	"parcel_market/internal/repository"
	"parcel_market/pkg/payment"
)

type PaymentService interface {
	CreateSession(orderID uint) (*payment.CheckoutSession, error)
	VerifySession(sessionID string) (*models.Order, error)
}

type paymentService struct {
	orderRepo  repository.OrderRepository
	orders     OrderService
	client     *payment.Client
	cache      *redis.Client
	successURL string
	cancelURL  string
}

func NewPaymentService(
	orderRepo repository.OrderRepository,
	orders OrderService,
	client *payment.Client,
	cache *redis.Client,
	successURL, cancelURL string,
) PaymentService {
	return &paymentService{
		orderRepo:  orderRepo,
		orders:     orders,
		client:     client,
		cache:      cache,
		successURL: successURL,
		cancelURL:  cancelURL,
	}
}

func (s *paymentService) CreateSession(orderID uint) (*payment.CheckoutSession, error) {
	order, err := s.orders.GetOrderByID(orderID)
	if err != nil {
		return nil, err
	}
	if order.PaymentMethod != string(models.PaymentCard) {
		return nil, errValidation("order is not payable by card")
	}
	if order.PaymentStatus == string(models.PaymentCompleted) {
		return nil, errConflict("order is already paid")
	}

	session, err := s.client.CreateCheckoutSession(order.TrackingNumber, order.Amount, s.successURL, s.cancelURL)
	if err != nil {
		log.Printf("payment provider error for order %d: %v", orderID, err)
		return nil, errServer("could not create checkout session")
	}

	if s.cache != nil {
		s.cache.SetPaymentSession(session.ID, order.ID)
	}
	return session, nil
}

// VerifySession asks the provider for the session outcome and records it on
// the order. The redirect back from checkout is never trusted on its own.
func (s *paymentService) VerifySession(sessionID string) (*models.Order, error) {
	var orderID uint
	if s.cache != nil {
		if id, err := s.cache.GetPaymentSession(sessionID); err == nil {
			orderID = id
		}
	}

	session, err := s.client.GetCheckoutSession(sessionID)
	if err != nil {
		log.Printf("payment provider error for session %s: %v", sessionID, err)
		return nil, errServer("could not verify checkout session")
	}

	if orderID == 0 {
		order, err := s.orderRepo.GetByTrackingNumber(session.Reference)
		if err != nil {
			return nil, errNotFound("no order for this checkout session")
		}
		orderID = order.ID
	}

	status := string(models.PaymentFailed)
	if session.Status == "complete" {
		status = string(models.PaymentCompleted)
	}
	if err := s.orderRepo.UpdatePaymentStatus(orderID, status); err != nil {
		return nil, errServer("could not record payment result")
	}

	if s.cache != nil {
		s.cache.DeletePaymentSession(sessionID)
	}
	return s.orders.GetOrderByID(orderID)
}
