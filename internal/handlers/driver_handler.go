package handlers

import (
	"net/http"
	"strconv"

	"parcel_market/internal/auth"
	"parcel_market/internal/models"
	"parcel_market/internal/services"

	"github.com/gin-gonic/gin"
)

type DriverHandler struct {
	driverService     services.DriverService
	orderService      services.OrderService
	assignmentService services.AssignmentService
	walletService     services.WalletService
	withdrawalService services.WithdrawalService
}

func NewDriverHandler(
	driverService services.DriverService,
	orderService services.OrderService,
	assignmentService services.AssignmentService,
	walletService services.WalletService,
	withdrawalService services.WithdrawalService,
) *DriverHandler {
	return &DriverHandler{
		driverService:     driverService,
		orderService:      orderService,
		assignmentService: assignmentService,
		walletService:     walletService,
		withdrawalService: withdrawalService,
	}
}

func (h *DriverHandler) Register(c *gin.Context) {
	var req struct {
		Name      string `json:"name"`
		Phone     string `json:"phone"`
		Email     string `json:"email"`
		Password  string `json:"password"`
		Documents string `json:"documents"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request format")
		return
	}

	driver := &models.Driver{
		Name:      req.Name,
		Phone:     req.Phone,
		Email:     req.Email,
		Documents: req.Documents,
	}
	if err := h.driverService.Register(driver, req.Password); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"driver": driver})
}

func (h *DriverHandler) Login(c *gin.Context) {
	var req struct {
		Phone    string `json:"phone"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request format")
		return
	}

	token, driver, err := h.driverService.Login(req.Phone, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token, "driver": driver})
}

func (h *DriverHandler) AvailableOrders(c *gin.Context) {
	orders, err := h.orderService.GetAvailableOrders()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(orders), "orders": orders})
}

func (h *DriverHandler) AcceptOrder(c *gin.Context) {
	driverID, _ := auth.Subject(c)

	var req struct {
		OrderID uint `json:"orderId"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.OrderID == 0 {
		respondBadRequest(c, "orderId is required")
		return
	}

	order, err := h.assignmentService.AcceptOrder(driverID, req.OrderID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": order})
}

func (h *DriverHandler) MarkDelivered(c *gin.Context) {
	driverID, _ := auth.Subject(c)

	var req struct {
		OrderID uint `json:"orderId"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.OrderID == 0 {
		respondBadRequest(c, "orderId is required")
		return
	}

	order, earnings, err := h.assignmentService.MarkDelivered(driverID, req.OrderID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": order, "earnings": earnings})
}

func (h *DriverHandler) CurrentOrders(c *gin.Context) {
	driverID, _ := auth.Subject(c)

	orders, err := h.orderService.GetCurrentOrders(driverID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(orders), "orders": orders})
}

func (h *DriverHandler) Wallet(c *gin.Context) {
	driverID, _ := auth.Subject(c)

	wallet, err := h.walletService.GetWallet(driverID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"wallet": wallet})
}

func (h *DriverHandler) RequestWithdrawal(c *gin.Context) {
	driverID, _ := auth.Subject(c)

	var req struct {
		Amount float64 `json:"amount"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request format")
		return
	}

	withdrawal, err := h.withdrawalService.RequestWithdrawal(driverID, req.Amount)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"withdrawal": withdrawal})
}

func (h *DriverHandler) WithdrawalHistory(c *gin.Context) {
	driverID, _ := auth.Subject(c)

	withdrawals, err := h.withdrawalService.GetHistory(driverID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(withdrawals), "withdrawals": withdrawals})
}

func (h *DriverHandler) WithdrawalInfo(c *gin.Context) {
	driverID, _ := auth.Subject(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		respondBadRequest(c, "Invalid withdrawal id")
		return
	}

	withdrawal, svcErr := h.withdrawalService.GetForDriver(driverID, uint(id))
	if svcErr != nil {
		respondError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"withdrawal": withdrawal})
}
