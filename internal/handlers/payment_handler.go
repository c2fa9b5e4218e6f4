package handlers

import (
	"net/http"

	"parcel_market/internal/services"

	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	paymentService services.PaymentService
}

func NewPaymentHandler(paymentService services.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

func (h *PaymentHandler) CreatePayment(c *gin.Context) {
	var req struct {
		OrderID uint `json:"orderId"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.OrderID == 0 {
		respondBadRequest(c, "orderId is required")
		return
	}

	session, err := h.paymentService.CreateSession(req.OrderID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"sessionId": session.ID, "url": session.URL})
}

// VerifyPayment is called by the frontend after the checkout redirect; the
// outcome is taken from the provider, not from the redirect itself.
func (h *PaymentHandler) VerifyPayment(c *gin.Context) {
	order, err := h.paymentService.VerifySession(c.Param("sessionId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": order, "paymentStatus": order.PaymentStatus})
}
