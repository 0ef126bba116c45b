package services_test

import (
	"testing"

	"github.com/shashiranjanraj/laundro/app/models"
	"github.com/shashiranjanraj/laundro/app/repositories"
	"github.com/shashiranjanraj/laundro/app/services"
)

func TestCollectEmptyStore(t *testing.T) {
	store := repositories.NewMemoryStore()
	svc := services.NewStatsService(store.Orders, store.Users)

	stats, err := svc.Collect()
	if err != nil {
		t.Fatal(err)
	}
	if stats != (services.Stats{}) {
		t.Errorf("expected zero stats, got %+v", stats)
	}
}

func TestCollectCountsAndRevenue(t *testing.T) {
	store := repositories.NewMemoryStore()
	orderSvc := services.NewOrderService(store.Orders, store.Users)
	statsSvc := services.NewStatsService(store.Orders, store.Users)

	// One admin and two members; the admin never counts as a member.
	if err := store.Users.AddUser(models.NewUser("admin", "admin", "Administrator", "0800", "Office", models.RoleAdmin)); err != nil {
		t.Fatal(err)
	}
	for _, u := range []*models.User{
		models.NewUser("john", "123", "John Doe", "0811", "A", models.RoleMember),
		models.NewUser("jane", "456", "Jane Roe", "0822", "B", models.RoleMember),
	} {
		if err := store.Users.AddUser(u); err != nil {
			t.Fatal(err)
		}
	}

	// Three orders: 15000 + 6000 + 10000 = 31000 revenue.
	o1, err := orderSvc.CreateOrder("John Doe", "0811", "A", "Regular", "Dry Clean", 1.0)
	if err != nil {
		t.Fatal(err)
	}
	o2, err := orderSvc.CreateOrder("Jane Roe", "0822", "B", "Regular", "Wash Only", 2.0)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := orderSvc.CreateOrder("Walk In", "0999", "C", "Regular", "Wash & Dry", 2.0); err != nil {
		t.Fatal(err)
	}

	// Pending and Processing are active; Completed is not.
	if _, err := orderSvc.UpdateOrderStatus(o1.OrderID, models.StatusProcessing); err != nil {
		t.Fatal(err)
	}
	if _, err := orderSvc.UpdateOrderStatus(o2.OrderID, models.StatusCompleted); err != nil {
		t.Fatal(err)
	}

	stats, err := statsSvc.Collect()
	if err != nil {
		t.Fatal(err)
	}
	if stats.TotalOrders != 3 {
		t.Errorf("total orders = %d, want 3", stats.TotalOrders)
	}
	if stats.ActiveOrders != 2 {
		t.Errorf("active orders = %d, want 2", stats.ActiveOrders)
	}
	if stats.TotalMembers != 2 {
		t.Errorf("members = %d, want 2", stats.TotalMembers)
	}
	if stats.Revenue != 31000 {
		t.Errorf("revenue = %v, want 31000", stats.Revenue)
	}
}

func TestRefreshReturnsCollectedStats(t *testing.T) {
	store := repositories.NewMemoryStore()
	orderSvc := services.NewOrderService(store.Orders, store.Users)
	statsSvc := services.NewStatsService(store.Orders, store.Users)

	if _, err := orderSvc.CreateOrder("Walk In", "0800", "X", "Regular", "Wash Only", 1.0); err != nil {
		t.Fatal(err)
	}

	stats, err := statsSvc.Refresh()
	if err != nil {
		t.Fatal(err)
	}
	if stats.TotalOrders != 1 || stats.Revenue != 3000 {
		t.Errorf("stats = %+v, want 1 order / 3000 revenue", stats)
	}
}
