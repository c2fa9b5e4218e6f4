package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"parcel_market/internal/auth"
	"parcel_market/internal/models"
	"parcel_market/internal/repository"
	"parcel_market/internal/services"
	"parcel_market/internal/testutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testServer struct {
	router *gin.Engine
	tokens *auth.Manager
}

func newTestServer(t *testing.T) *testServer {
	gin.SetMode(gin.TestMode)

	db := testutil.OpenTestDB(t)
	tokens := auth.NewManager("test-secret")

	orderRepo := repository.NewOrderRepository(db)
	driverRepo := repository.NewDriverRepository(db)
	assignmentRepo := repository.NewAssignmentRepository(db)

	orderService := services.NewOrderService(orderRepo, nil)
	driverService := services.NewDriverService(driverRepo, tokens)
	assignmentService := services.NewAssignmentService(assignmentRepo, orderRepo, driverRepo, nil, 0.30)
	walletService := services.NewWalletService(repository.NewWalletRepository(db))
	withdrawalService := services.NewWithdrawalService(repository.NewWithdrawalRepository(db))

	orderHandler := NewOrderHandler(orderService)
	driverHandler := NewDriverHandler(driverService, orderService, assignmentService, walletService, withdrawalService)

	router := gin.New()
	api := router.Group("/api")
	orders := api.Group("/orders")
	orders.POST("/create-order", auth.OptionalUser(tokens), orderHandler.CreateOrder)
	orders.GET("/order/:id", orderHandler.GetOrder)
	orders.GET("/track/:trackingNumber", orderHandler.TrackOrder)

	drivers := api.Group("/drivers")
	drivers.POST("/register", driverHandler.Register)
	drivers.POST("/login", driverHandler.Login)
	authed := drivers.Group("", auth.RequireRole(tokens, auth.RoleDriver))
	authed.GET("/available-orders", driverHandler.AvailableOrders)
	authed.POST("/accept-order", driverHandler.AcceptOrder)

	return &testServer{router: router, tokens: tokens}
}

func (s *testServer) do(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Buffer
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewBuffer(data)
	} else {
		reader = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	recorder := httptest.NewRecorder()
	s.router.ServeHTTP(recorder, req)
	return recorder
}

func orderPayload() map[string]interface{} {
	return map[string]interface{}{
		"pickup_building":  "Marina Tower",
		"pickup_apartment": "1204",
		"pickup_emirate":   "Dubai",
		"pickup_area":      "Marina",
		"pickup_phone":     "0501234567",
		"drop_building":    "Khalifa Residence",
		"drop_apartment":   "302",
		"drop_emirate":     "Abu Dhabi",
		"drop_area":        "Corniche",
		"drop_phone":       "0507654321",
		"delivery_type":    "standard",
		"return_type":      "no-return",
		"payment_method":   "cash",
	}
}

func TestCreateOrderEndpoint(t *testing.T) {
	server := newTestServer(t)

	resp := server.do(t, http.MethodPost, "/api/orders/create-order", "", orderPayload())
	require.Equal(t, http.StatusCreated, resp.Code)

	var body struct {
		OrderID        uint    `json:"orderId"`
		TrackingNumber string  `json:"trackingNumber"`
		Amount         float64 `json:"amount"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.NotZero(t, body.OrderID)
	assert.Equal(t, "AE001", body.TrackingNumber)
	assert.Equal(t, 30.0, body.Amount)

	track := server.do(t, http.MethodGet, "/api/orders/track/AE001", "", nil)
	assert.Equal(t, http.StatusOK, track.Code)
}

func TestCreateOrderEndpointValidation(t *testing.T) {
	server := newTestServer(t)

	payload := orderPayload()
	payload["payment_method"] = "gold"
	resp := server.do(t, http.MethodPost, "/api/orders/create-order", "", payload)
	require.Equal(t, http.StatusBadRequest, resp.Code)

	var body struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, "validation_error", body.Error.Code)
}

func TestDriverEndpointsRequireAuth(t *testing.T) {
	server := newTestServer(t)

	resp := server.do(t, http.MethodGet, "/api/drivers/available-orders", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.Code)

	// A user token is not accepted on driver routes.
	userToken, err := server.tokens.GenerateToken(1, auth.RoleUser)
	require.NoError(t, err)
	resp = server.do(t, http.MethodGet, "/api/drivers/available-orders", userToken, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestAcceptOrderEndpoint(t *testing.T) {
	server := newTestServer(t)

	created := server.do(t, http.MethodPost, "/api/orders/create-order", "", orderPayload())
	require.Equal(t, http.StatusCreated, created.Code)
	var createdBody struct {
		OrderID uint `json:"orderId"`
	}
	require.NoError(t, json.Unmarshal(created.Body.Bytes(), &createdBody))

	registered := server.do(t, http.MethodPost, "/api/drivers/register", "", map[string]interface{}{
		"name":     "Hassan",
		"phone":    "0509998888",
		"password": "roadrunner",
	})
	require.Equal(t, http.StatusCreated, registered.Code)

	login := server.do(t, http.MethodPost, "/api/drivers/login", "", map[string]interface{}{
		"phone":    "0509998888",
		"password": "roadrunner",
	})
	require.Equal(t, http.StatusOK, login.Code)
	var loginBody struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(login.Body.Bytes(), &loginBody))

	accept := server.do(t, http.MethodPost, "/api/drivers/accept-order", loginBody.Token,
		map[string]interface{}{"orderId": createdBody.OrderID})
	require.Equal(t, http.StatusOK, accept.Code)

	var acceptBody struct {
		Order models.Order `json:"order"`
	}
	require.NoError(t, json.Unmarshal(accept.Body.Bytes(), &acceptBody))
	assert.Equal(t, "accepted", acceptBody.Order.Status)

	// Accepted orders disappear from the open pool.
	available := server.do(t, http.MethodGet, "/api/drivers/available-orders", loginBody.Token, nil)
	require.Equal(t, http.StatusOK, available.Code)
	var availableBody struct {
		Count int `json:"count"`
	}
	require.NoError(t, json.Unmarshal(available.Body.Bytes(), &availableBody))
	assert.Zero(t, availableBody.Count)
}
