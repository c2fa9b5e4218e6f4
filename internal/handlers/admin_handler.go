package handlers

import (
	"net/http"
	"strconv"

	"parcel_market/internal/models"
	"parcel_market/internal/services"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	adminService      services.AdminService
	orderService      services.OrderService
	assignmentService services.AssignmentService
	withdrawalService services.WithdrawalService
}

func NewAdminHandler(
	adminService services.AdminService,
	orderService services.OrderService,
	assignmentService services.AssignmentService,
	withdrawalService services.WithdrawalService,
) *AdminHandler {
	return &AdminHandler{
		adminService:      adminService,
		orderService:      orderService,
		assignmentService: assignmentService,
		withdrawalService: withdrawalService,
	}
}

func (h *AdminHandler) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request format")
		return
	}

	token, admin, err := h.adminService.Login(req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token, "admin": admin})
}

func (h *AdminHandler) CreateDriver(c *gin.Context) {
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
	if err := h.adminService.CreateDriver(driver, req.Password); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"driver": driver})
}

func (h *AdminHandler) ListDrivers(c *gin.Context) {
	drivers, err := h.adminService.ListDrivers()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(drivers), "drivers": drivers})
}

func (h *AdminHandler) UpdateDriver(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		respondBadRequest(c, "Invalid driver id")
		return
	}

	var fields map[string]interface{}
	if err := c.ShouldBindJSON(&fields); err != nil {
		respondBadRequest(c, "Invalid request format")
		return
	}

	driver, svcErr := h.adminService.UpdateDriver(uint(id), fields)
	if svcErr != nil {
		respondError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"driver": driver})
}

func (h *AdminHandler) DeleteDriver(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		respondBadRequest(c, "Invalid driver id")
		return
	}

	if svcErr := h.adminService.DeleteDriver(uint(id)); svcErr != nil {
		respondError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

func (h *AdminHandler) ListUsers(c *gin.Context) {
	users, err := h.adminService.ListUsers()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(users), "users": users})
}

func (h *AdminHandler) DeleteUser(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		respondBadRequest(c, "Invalid user id")
		return
	}

	if svcErr := h.adminService.DeleteUser(uint(id)); svcErr != nil {
		respondError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

func (h *AdminHandler) ListOrders(c *gin.Context) {
	orders, err := h.orderService.GetAllOrders()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(orders), "orders": orders})
}

// AssignDriver runs the same assignment operation drivers use for
// self-accept, so manual assignment cannot bypass availability checks.
func (h *AdminHandler) AssignDriver(c *gin.Context) {
	var req struct {
		OrderID  uint `json:"orderId"`
		DriverID uint `json:"driverId"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.OrderID == 0 || req.DriverID == 0 {
		respondBadRequest(c, "orderId and driverId are required")
		return
	}

	order, err := h.assignmentService.AssignDriver(req.OrderID, req.DriverID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": order})
}

func (h *AdminHandler) ListWithdrawals(c *gin.Context) {
	withdrawals, err := h.withdrawalService.ListAll()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(withdrawals), "withdrawals": withdrawals})
}

func (h *AdminHandler) GetWithdrawal(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		respondBadRequest(c, "Invalid withdrawal id")
		return
	}

	withdrawal, svcErr := h.withdrawalService.Get(uint(id))
	if svcErr != nil {
		respondError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"withdrawal": withdrawal})
}

func (h *AdminHandler) UpdateWithdrawalStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		respondBadRequest(c, "Invalid withdrawal id")
		return
	}

	var req struct {
		Status    string `json:"status"`
		AdminNote string `json:"admin_note"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request format")
		return
	}

	withdrawal, svcErr := h.withdrawalService.UpdateStatus(uint(id), req.Status, req.AdminNote)
	if svcErr != nil {
		respondError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"withdrawal": withdrawal})
}
