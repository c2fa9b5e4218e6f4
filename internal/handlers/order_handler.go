package handlers

import (
	"net/http"
	"strconv"

	"parcel_market/internal/auth"
	"parcel_market/internal/models"
	"parcel_market/internal/services"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	orderService services.OrderService
}

func NewOrderHandler(orderService services.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

type createOrderRequest struct {
	PickupBuilding  string  `json:"pickup_building"`
	PickupApartment string  `json:"pickup_apartment"`
	PickupEmirate   string  `json:"pickup_emirate"`
	PickupArea      string  `json:"pickup_area"`
	PickupPhone     string  `json:"pickup_phone"`
	DropBuilding    string  `json:"drop_building"`
	DropApartment   string  `json:"drop_apartment"`
	DropEmirate     string  `json:"drop_emirate"`
	DropArea        string  `json:"drop_area"`
	DropPhone       string  `json:"drop_phone"`
	DeliveryType    string  `json:"delivery_type"`
	ReturnType      string  `json:"return_type"`
	PaymentMethod   string  `json:"payment_method"`
	Amount          float64 `json:"amount"`
	Notes           string  `json:"notes"`
}

func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req createOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request format")
		return
	}

	order := &models.Order{
		PickupBuilding:  req.PickupBuilding,
		PickupApartment: req.PickupApartment,
		PickupEmirate:   req.PickupEmirate,
		PickupArea:      req.PickupArea,
		PickupPhone:     req.PickupPhone,
		DropBuilding:    req.DropBuilding,
		DropApartment:   req.DropApartment,
		DropEmirate:     req.DropEmirate,
		DropArea:        req.DropArea,
		DropPhone:       req.DropPhone,
		DeliveryType:    req.DeliveryType,
		ReturnType:      req.ReturnType,
		PaymentMethod:   req.PaymentMethod,
		Amount:          req.Amount,
		Notes:           req.Notes,
	}

	// Guest checkout is allowed; the order is linked only when a valid
	// user token was sent.
	if userID, ok := auth.Subject(c); ok {
		order.UserID = &userID
	}

	if err := h.orderService.CreateOrder(order); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"orderId":        order.ID,
		"trackingNumber": order.TrackingNumber,
		"amount":         order.Amount,
	})
}

func (h *OrderHandler) GetOrder(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		respondBadRequest(c, "Invalid order id")
		return
	}

	order, svcErr := h.orderService.GetOrderByID(uint(id))
	if svcErr != nil {
		respondError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": order})
}

func (h *OrderHandler) TrackOrder(c *gin.Context) {
	order, err := h.orderService.TrackOrder(c.Param("trackingNumber"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": order})
}
