package routes

import (
	"github.com/shashiranjanraj/laundro/app/controllers"
	"github.com/shashiranjanraj/laundro/pkg/middleware"
	"github.com/shashiranjanraj/laundro/pkg/router"
)

// RegisterAPI mounts every route. Controllers arrive pre-built so route
// registration stays free of wiring decisions.
func RegisterAPI(r *router.Router,
	authC *controllers.AuthController,
	orderC *controllers.OrderController,
	adminC *controllers.AdminController,
) {
	api := r.Group("/api")

	api.Post("/login", "auth.login", authC.Login)
	api.Post("/register", "auth.register", authC.Register)

	// Walk-in orders and price preview are open: the counter terminal
	// uses them without a member session.
	api.Get("/orders/quote", "orders.quote", orderC.Quote)
	api.Post("/orders", "orders.create", orderC.Create)

	my := api.Group("/my", middleware.Authenticated)
	my.Get("/orders", "my.orders", orderC.MyOrders)
	my.Post("/orders", "my.orders.create", orderC.CreateMine)
	my.Get("/points", "my.points", orderC.MyPoints)
	my.Put("/profile", "my.profile", orderC.UpdateProfile)

	admin := api.Group("/admin", middleware.Authenticated, middleware.AdminOnly)
	admin.Get("/orders", "admin.orders", adminC.ListOrders)
	admin.Patch("/orders/{id}/status", "admin.orders.status", adminC.UpdateStatus)
	admin.Get("/stats", "admin.stats", adminC.Stats)
	admin.Get("/members", "admin.members", adminC.ListMembers)
}
