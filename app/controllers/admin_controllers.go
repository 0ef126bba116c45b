package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/shashiranjanraj/laundro/app/repositories"
	"github.com/shashiranjanraj/laundro/app/services"
	"github.com/shashiranjanraj/laundro/pkg/logger"
	"github.com/shashiranjanraj/laundro/pkg/response"
	"github.com/shashiranjanraj/laundro/pkg/router"
)

// AdminController serves the back-office views: the full order table, the
// stat cards, the member list, and order status changes.
type AdminController struct {
	orders *services.OrderService
	stats  *services.StatsService
	users  repositories.UserRepository
}

func NewAdminController(orders *services.OrderService, stats *services.StatsService, users repositories.UserRepository) *AdminController {
	return &AdminController{orders: orders, stats: stats, users: users}
}

// ListOrders returns every order, newest first.
func (c *AdminController) ListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := c.orders.GetAllOrders()
	if err != nil {
		logger.WithCtx(r.Context()).Error("order listing failed", "error", err)
		response.Error(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	response.Success(w, orders)
}

// UpdateStatus sets an order's status. Unknown ids get a 404; the status
// value itself is not validated.
func (c *AdminController) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	orderID := router.Param(r, "id")

	var body struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	ok, err := c.orders.UpdateOrderStatus(orderID, body.Status)
	if err != nil {
		logger.WithCtx(r.Context()).Error("status update failed", "order_id", orderID, "error", err)
		response.Error(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	if !ok {
		response.NotFound(w)
		return
	}

	response.Success(w, map[string]string{"order_id": orderID, "status": body.Status})
}

// Stats serves the dashboard cards: total orders, active orders, member
// count, revenue.
func (c *AdminController) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := c.stats.Collect()
	if err != nil {
		logger.WithCtx(r.Context()).Error("stats collection failed", "error", err)
		response.Error(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	response.Success(w, stats)
}

// ListMembers returns all MEMBER accounts, ordered by full name.
func (c *AdminController) ListMembers(w http.ResponseWriter, r *http.Request) {
	members, err := c.users.GetAllMembers()
	if err != nil {
		logger.WithCtx(r.Context()).Error("member listing failed", "error", err)
		response.Error(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	response.Success(w, members)
}
