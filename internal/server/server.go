// Package server boots the Laundro HTTP service: configuration, storage
// (durable with in-memory fallback), services, routes, and the stats
// refresh loop.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/shashiranjanraj/laundro/app/controllers"
	"github.com/shashiranjanraj/laundro/app/models"
	"github.com/shashiranjanraj/laundro/app/repositories"
	"github.com/shashiranjanraj/laundro/app/routes"
	"github.com/shashiranjanraj/laundro/app/services"
	"github.com/shashiranjanraj/laundro/config"
	"github.com/shashiranjanraj/laundro/database/seeders"
	"github.com/shashiranjanraj/laundro/pkg/database"
	"github.com/shashiranjanraj/laundro/pkg/logger"
	"github.com/shashiranjanraj/laundro/pkg/metrics"
	"github.com/shashiranjanraj/laundro/pkg/middleware"
	"github.com/shashiranjanraj/laundro/pkg/migration"
	"github.com/shashiranjanraj/laundro/pkg/reqid"
	"github.com/shashiranjanraj/laundro/pkg/router"
	"github.com/shashiranjanraj/laundro/pkg/schedule"
)

// Start boots the service and blocks serving HTTP.
func Start() error {
	if err := config.Load(); err != nil {
		return err
	}

	store := OpenStore(config.DatabaseConfig())

	authService := services.NewAuthService(store.Users)
	orderService := services.NewOrderService(store.Orders, store.Users)
	statsService := services.NewStatsService(store.Orders, store.Users)

	if store.Fallback {
		seedMemoryStore(store, orderService)
	}

	r := router.New()
	r.Use(metrics.Middleware())
	r.Use(reqid.Middleware())
	r.Use(middleware.Recovery)
	r.Use(middleware.Logger)
	r.Use(middleware.CORS(middleware.DefaultCORSOptions()))

	routes.RegisterAPI(r,
		controllers.NewAuthController(authService),
		controllers.NewOrderController(orderService, store.Users),
		controllers.NewAdminController(orderService, statsService, store.Users),
	)
	r.Get("/metrics", "metrics", metrics.Handler())
	r.Get("/healthz", "healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("ok"))
	})

	// The dashboard auto-refresh: re-read orders and stats on a fixed
	// interval and republish them as gauges.
	sched := schedule.New()
	sched.Every(config.StatsRefreshInterval()).Name("stats-refresh").Run(func() {
		if _, err := statsService.Refresh(); err != nil {
			logger.Error("stats refresh failed", "error", err)
		}
	})
	sched.Start(context.Background())

	addr := ":" + config.AppPort()
	logger.Info("laundro running", "addr", addr, "fallback_store", store.Fallback)
	return http.ListenAndServe(addr, r.Handler())
}

// OpenStore opens the durable store, runs migrations and optional seed
// rows, and falls back to the in-memory store when the database is
// unreachable. The choice is visible on Store.Fallback rather than buried
// in a recovered panic.
func OpenStore(cfg config.Database) *repositories.Store {
	db, err := database.Connect(cfg)
	if err != nil {
		logger.Warn("database unreachable, using in-memory fallback store", "error", err)
		return repositories.NewMemoryStore()
	}

	if cfg.AutoMigrate {
		if err := migration.New(db).Run(); err != nil {
			logger.Warn("migrations failed, using in-memory fallback store", "error", err)
			return repositories.NewMemoryStore()
		}
	}
	if cfg.SeedSampleData {
		if err := seeders.RunAll(db); err != nil {
			logger.Warn("seeding failed", "error", err)
		}
	}

	logger.Info("connected to database", "driver", cfg.Driver)
	return repositories.NewDatabaseStore(db)
}

// seedMemoryStore loads the fallback store with the same demo rows the
// seeders would insert, plus one order already in progress, so the app
// stays usable without a database.
func seedMemoryStore(store *repositories.Store, orders *services.OrderService) {
	admin := models.NewUser("admin", "admin", "Administrator", "081234567890", "Admin Office", models.RoleAdmin)
	john := models.NewUser("john", "123", "John Doe", "081234567891", "Jl. Merdeka No. 1", models.RoleMember)
	if err := store.Users.AddUser(admin); err != nil {
		logger.Warn("fallback seed failed", "error", err)
	}
	if err := store.Users.AddUser(john); err != nil {
		logger.Warn("fallback seed failed", "error", err)
	}

	order, err := orders.CreateOrder("John Doe", "081234567891", "Jl. Merdeka No. 1",
		"Cuci Setrika", "Regular", 2.5)
	if err != nil {
		logger.Warn("fallback sample order failed", "error", err)
		return
	}
	order.SetStatus("Processing")
	pickup := time.Now().Add(2 * time.Hour)
	order.PickupTime = &pickup
	if err := store.Orders.UpdateOrder(order); err != nil {
		logger.Warn("fallback sample order failed", "error", err)
	}
}
