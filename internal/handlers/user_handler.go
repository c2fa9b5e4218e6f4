package handlers

import (
	"net/http"

	"parcel_market/internal/auth"
	"parcel_market/internal/models"
	"parcel_market/internal/services"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userService  services.UserService
	orderService services.OrderService
}

func NewUserHandler(userService services.UserService, orderService services.OrderService) *UserHandler {
	return &UserHandler{userService: userService, orderService: orderService}
}

func (h *UserHandler) Register(c *gin.Context) {
	var req struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Phone    string `json:"phone"`
		Password string `json:"password"`
		GoogleID string `json:"google_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request format")
		return
	}

	user, err := h.userService.Register(req.Name, req.Email, req.Phone, req.Password, req.GoogleID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"user": user})
}

func (h *UserHandler) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request format")
		return
	}

	token, user, err := h.userService.Login(req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token, "user": user})
}

func (h *UserHandler) GoogleLogin(c *gin.Context) {
	var req struct {
		GoogleID string `json:"google_id"`
		Name     string `json:"name"`
		Email    string `json:"email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request format")
		return
	}

	token, user, err := h.userService.GoogleLogin(req.GoogleID, req.Name, req.Email)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token, "user": user})
}

func (h *UserHandler) MyOrders(c *gin.Context) {
	userID, _ := auth.Subject(c)

	orders, err := h.orderService.GetOrdersByUser(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(orders), "orders": orders})
}

func (h *UserHandler) AddAddress(c *gin.Context) {
	userID, _ := auth.Subject(c)

	var req struct {
		Label     string `json:"label"`
		Building  string `json:"building"`
		Apartment string `json:"apartment"`
		Emirate   string `json:"emirate"`
		Area      string `json:"area"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request format")
		return
	}

	address := &models.UserAddress{
		Label:     req.Label,
		Building:  req.Building,
		Apartment: req.Apartment,
		Emirate:   req.Emirate,
		Area:      req.Area,
	}
	if err := h.userService.AddAddress(userID, address); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"address": address})
}

func (h *UserHandler) Addresses(c *gin.Context) {
	userID, _ := auth.Subject(c)

	addresses, err := h.userService.GetAddresses(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"addresses": addresses})
}
