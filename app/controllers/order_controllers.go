package controllers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/shashiranjanraj/laundro/app/repositories"
	"github.com/shashiranjanraj/laundro/app/services"
	"github.com/shashiranjanraj/laundro/pkg/logger"
	"github.com/shashiranjanraj/laundro/pkg/middleware"
	"github.com/shashiranjanraj/laundro/pkg/response"
)

type OrderController struct {
	orders *services.OrderService
	users  repositories.UserRepository
}

func NewOrderController(orders *services.OrderService, users repositories.UserRepository) *OrderController {
	return &OrderController{orders: orders, users: users}
}

type orderInput struct {
	CustomerName string  `json:"customer_name"`
	Phone        string  `json:"phone"`
	Address      string  `json:"address"`
	LaundryType  string  `json:"laundry_type"`
	Service      string  `json:"service"`
	Weight       float64 `json:"weight"`
}

// Quote prices an order without creating it, for the order-form preview.
// GET /api/orders/quote?laundry_type=Express&service=Wash+%26+Dry&weight=3
func (c *OrderController) Quote(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	weight, err := strconv.ParseFloat(q.Get("weight"), 64)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "weight must be a number")
		return
	}

	total := c.orders.CalculatePrice(q.Get("laundry_type"), q.Get("service"), weight)
	response.Success(w, map[string]float64{"total": total})
}

// Create places a walk-in order under whatever customer name the counter
// staff typed in.
func (c *OrderController) Create(w http.ResponseWriter, r *http.Request) {
	var body orderInput
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	order, err := c.orders.CreateOrder(body.CustomerName, body.Phone, body.Address,
		body.LaundryType, body.Service, body.Weight)
	if err != nil {
		logger.WithCtx(r.Context()).Error("order creation failed", "error", err)
		response.Error(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	response.Created(w, order)
}

// CreateMine places an order for the logged-in member. The order is
// stamped with the username so MyOrders can find it.
func (c *OrderController) CreateMine(w http.ResponseWriter, r *http.Request) {
	claims := middleware.SessionFromCtx(r.Context())

	user, err := c.users.GetUser(claims.Username)
	if err != nil {
		logger.WithCtx(r.Context()).Error("user lookup failed", "error", err)
		response.Error(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	if user == nil {
		response.Unauthorized(w)
		return
	}

	var body orderInput
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	order, err := c.orders.CreateOrderForUser(user, body.Phone, body.Address,
		body.LaundryType, body.Service, body.Weight)
	if err != nil {
		logger.WithCtx(r.Context()).Error("order creation failed", "error", err)
		response.Error(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	response.Created(w, order)
}

// MyOrders lists the logged-in member's order history.
func (c *OrderController) MyOrders(w http.ResponseWriter, r *http.Request) {
	claims := middleware.SessionFromCtx(r.Context())

	orders, err := c.orders.GetOrdersByCustomer(claims.Username)
	if err != nil {
		logger.WithCtx(r.Context()).Error("order listing failed", "error", err)
		response.Error(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	response.Success(w, orders)
}

// MyPoints returns the logged-in member's loyalty balance.
func (c *OrderController) MyPoints(w http.ResponseWriter, r *http.Request) {
	claims := middleware.SessionFromCtx(r.Context())

	user, err := c.users.GetUser(claims.Username)
	if err != nil {
		logger.WithCtx(r.Context()).Error("user lookup failed", "error", err)
		response.Error(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	if user == nil {
		response.Unauthorized(w)
		return
	}

	response.Success(w, map[string]int{"points": user.Points})
}

// UpdateProfile applies a partial profile update. Blank fields are left
// untouched, which is how the profile dialog has always behaved.
func (c *OrderController) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	claims := middleware.SessionFromCtx(r.Context())

	user, err := c.users.GetUser(claims.Username)
	if err != nil {
		logger.WithCtx(r.Context()).Error("user lookup failed", "error", err)
		response.Error(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	if user == nil {
		response.Unauthorized(w)
		return
	}

	var body struct {
		Password string `json:"password"`
		FullName string `json:"full_name"`
		Phone    string `json:"phone"`
		Address  string `json:"address"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user.SetPassword(body.Password)
	user.SetFullName(body.FullName)
	user.SetPhone(body.Phone)
	user.SetAddress(body.Address)

	if err := c.users.UpdateUser(user); err != nil {
		logger.WithCtx(r.Context()).Error("profile update failed", "error", err)
		response.Error(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	response.Success(w, user)
}
