package services

import (
	"regexp"
	"testing"

	"parcel_market/internal/models"
	"parcel_market/internal/repository"
	"parcel_market/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validOrder(deliveryType, returnType string) *models.Order {
	return &models.Order{
		PickupBuilding:  "Marina Tower",
		PickupApartment: "1204",
		PickupEmirate:   "Dubai",
		PickupArea:      "Marina",
		PickupPhone:     "0501234567",
		DropBuilding:    "Khalifa Residence",
		DropApartment:   "302",
		DropEmirate:     "Abu Dhabi",
		DropArea:        "Corniche",
		DropPhone:       "0507654321",
		DeliveryType:    deliveryType,
		ReturnType:      returnType,
		PaymentMethod:   string(models.PaymentCash),
	}
}

func newOrderService(t *testing.T) (OrderService, repository.OrderRepository) {
	db := testutil.OpenTestDB(t)
	orderRepo := repository.NewOrderRepository(db)
	return NewOrderService(orderRepo, nil), orderRepo
}

func TestCreateOrderPricing(t *testing.T) {
	cases := []struct {
		deliveryType string
		returnType   string
		want         float64
	}{
		{"standard", "no-return", 30},
		{"standard", "with-return", 40},
		{"express", "no-return", 45},
		{"next-day", "no-return", 20},
		{"delivery", "no-return", 30},
	}

	svc, _ := newOrderService(t)
	for _, tc := range cases {
		order := validOrder(tc.deliveryType, tc.returnType)
		require.NoError(t, svc.CreateOrder(order), "%s/%s", tc.deliveryType, tc.returnType)
		assert.Equal(t, tc.want, order.Amount, "%s/%s", tc.deliveryType, tc.returnType)
		assert.Equal(t, string(models.OrderPending), order.Status)
	}
}

func TestCreateOrderTrackingNumbers(t *testing.T) {
	svc, _ := newOrderService(t)

	pattern := regexp.MustCompile(`^AE\d{3,}$`)
	var previous string
	for i := 0; i < 3; i++ {
		order := validOrder("standard", "no-return")
		require.NoError(t, svc.CreateOrder(order))
		assert.Regexp(t, pattern, order.TrackingNumber)
		if previous != "" {
			assert.Greater(t, order.TrackingNumber, previous, "tracking numbers must increase")
		}
		previous = order.TrackingNumber
	}
	assert.Equal(t, "AE003", previous)
}

func TestCreateOrderRejectsMismatchedAmount(t *testing.T) {
	svc, _ := newOrderService(t)

	order := validOrder("standard", "no-return")
	order.Amount = 99

	err := svc.CreateOrder(order)
	require.Error(t, err)
	svcErr, ok := err.(*ServiceError)
	require.True(t, ok)
	assert.Equal(t, CodeValidation, svcErr.Code)
}

func TestCreateOrderValidatesFields(t *testing.T) {
	svc, _ := newOrderService(t)

	order := validOrder("standard", "no-return")
	order.PickupBuilding = ""
	err := svc.CreateOrder(order)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pickup_building")

	order = validOrder("teleport", "no-return")
	err = svc.CreateOrder(order)
	require.Error(t, err)

	order = validOrder("standard", "no-return")
	order.PaymentMethod = "gold"
	err = svc.CreateOrder(order)
	require.Error(t, err)
}

func TestOrderFetchIsStable(t *testing.T) {
	svc, _ := newOrderService(t)

	order := validOrder("express", "with-return")
	require.NoError(t, svc.CreateOrder(order))

	byID, err := svc.GetOrderByID(order.ID)
	require.NoError(t, err)
	byCode, err := svc.TrackOrder(order.TrackingNumber)
	require.NoError(t, err)

	for _, got := range []*models.Order{byID, byCode} {
		assert.Equal(t, order.PickupBuilding, got.PickupBuilding)
		assert.Equal(t, order.DropArea, got.DropArea)
		assert.Equal(t, 55.0, got.Amount)
		assert.Equal(t, string(models.OrderPending), got.Status)
	}
}

func TestTrackOrderNotFound(t *testing.T) {
	svc, _ := newOrderService(t)

	_, err := svc.TrackOrder("AE999")
	require.Error(t, err)
	svcErr, ok := err.(*ServiceError)
	require.True(t, ok)
	assert.Equal(t, CodeNotFound, svcErr.Code)
}

func TestAvailableOrdersExcludesAssigned(t *testing.T) {
	db := testutil.OpenTestDB(t)
	orderRepo := repository.NewOrderRepository(db)
	svc := NewOrderService(orderRepo, nil)

	open := validOrder("standard", "no-return")
	require.NoError(t, svc.CreateOrder(open))

	taken := validOrder("standard", "no-return")
	require.NoError(t, svc.CreateOrder(taken))
	driverID := uint(7)
	require.NoError(t, db.Model(&models.Order{}).Where("id = ?", taken.ID).
		Updates(map[string]interface{}{"driver_id": driverID, "status": string(models.OrderAccepted)}).Error)

	orders, err := svc.GetAvailableOrders()
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, open.ID, orders[0].ID)
}
