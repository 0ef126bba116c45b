package repositories_test

import (
	"fmt"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/shashiranjanraj/laundro/app/models"
	"github.com/shashiranjanraj/laundro/app/repositories"
)

// testDB opens a per-test in-memory sqlite database. The database is named
// after the test so parallel tests never share state.
func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Order{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

// ─── Users ────────────────────────────────────────────────────────────────────

func TestUserRepositoryRoundTrip(t *testing.T) {
	store := repositories.NewDatabaseStore(testDB(t))

	user := models.NewUser("john", "123", "John Doe", "0811", "Jl. Merdeka", models.RoleMember)
	if err := store.Users.AddUser(user); err != nil {
		t.Fatal(err)
	}

	got, err := store.Users.GetUser("john")
	if err != nil {
		t.Fatal(err)
	}
	if got == nil {
		t.Fatal("expected user")
	}
	if got.FullName != "John Doe" || got.Points != 0 {
		t.Errorf("got %+v", got)
	}

	exists, err := store.Users.UserExists("john")
	if err != nil {
		t.Fatal(err)
	}
	if !exists {
		t.Error("expected john to exist")
	}
}

func TestGetUserMissIsNilNil(t *testing.T) {
	store := repositories.NewDatabaseStore(testDB(t))

	got, err := store.Users.GetUser("ghost")
	if err != nil {
		t.Fatalf("a lookup miss is not an error: %v", err)
	}
	if got != nil {
		t.Errorf("got %+v, want nil", got)
	}

	exists, err := store.Users.UserExists("ghost")
	if err != nil {
		t.Fatal(err)
	}
	if exists {
		t.Error("expected ghost to not exist")
	}
}

func TestGetAllMembersFiltersAndSorts(t *testing.T) {
	store := repositories.NewDatabaseStore(testDB(t))

	for _, u := range []*models.User{
		models.NewUser("admin", "pw", "Administrator", "0800", "Office", models.RoleAdmin),
		models.NewUser("zed", "pw", "Zed Last", "0833", "C", models.RoleMember),
		models.NewUser("amy", "pw", "Amy First", "0811", "A", models.RoleMember),
	} {
		if err := store.Users.AddUser(u); err != nil {
			t.Fatal(err)
		}
	}

	members, err := store.Users.GetAllMembers()
	if err != nil {
		t.Fatal(err)
	}
	if len(members) != 2 {
		t.Fatalf("got %d members, want 2 (admins excluded)", len(members))
	}
	if members[0].Username != "amy" || members[1].Username != "zed" {
		t.Errorf("wrong order: %q, %q", members[0].Username, members[1].Username)
	}
}

func TestUpdateUserPersistsPoints(t *testing.T) {
	store := repositories.NewDatabaseStore(testDB(t))

	user := models.NewUser("john", "123", "John Doe", "0811", "Jl. Merdeka", models.RoleMember)
	if err := store.Users.AddUser(user); err != nil {
		t.Fatal(err)
	}

	user.AddPoints(25)
	if err := store.Users.UpdateUser(user); err != nil {
		t.Fatal(err)
	}

	got, err := store.Users.GetUser("john")
	if err != nil {
		t.Fatal(err)
	}
	if got.Points != 25 {
		t.Errorf("points = %d, want 25", got.Points)
	}
}

// ─── Orders ───────────────────────────────────────────────────────────────────

func TestGenerateOrderIDCountsRows(t *testing.T) {
	store := repositories.NewDatabaseStore(testDB(t))

	id, err := store.Orders.GenerateOrderID()
	if err != nil {
		t.Fatal(err)
	}
	if id != "ORD001" {
		t.Errorf("first id = %q, want ORD001", id)
	}

	for i := 0; i < 2; i++ {
		id, err := store.Orders.GenerateOrderID()
		if err != nil {
			t.Fatal(err)
		}
		order := models.NewOrder(id)
		order.SetCustomerName("Walk In")
		if err := store.Orders.AddOrder(order); err != nil {
			t.Fatal(err)
		}
	}

	id, err = store.Orders.GenerateOrderID()
	if err != nil {
		t.Fatal(err)
	}
	if id != "ORD003" {
		t.Errorf("id after 2 rows = %q, want ORD003", id)
	}
}

func TestFindByIDMissIsNilNil(t *testing.T) {
	store := repositories.NewDatabaseStore(testDB(t))

	got, err := store.Orders.FindByID("ORD999")
	if err != nil {
		t.Fatalf("a lookup miss is not an error: %v", err)
	}
	if got != nil {
		t.Errorf("got %+v, want nil", got)
	}
}

func TestUpdateOrderRoundTrip(t *testing.T) {
	store := repositories.NewDatabaseStore(testDB(t))

	order := models.NewOrder("ORD001")
	order.SetCustomerName("John Doe")
	if err := store.Orders.AddOrder(order); err != nil {
		t.Fatal(err)
	}

	order.SetStatus(models.StatusReady)
	if err := store.Orders.UpdateOrder(order); err != nil {
		t.Fatal(err)
	}

	got, err := store.Orders.FindByID("ORD001")
	if err != nil {
		t.Fatal(err)
	}
	if got.Status != models.StatusReady {
		t.Errorf("status = %q, want Ready", got.Status)
	}
}

func TestGetAllOrdersNewestFirst(t *testing.T) {
	store := repositories.NewDatabaseStore(testDB(t))

	base := time.Now().Add(-time.Hour)
	for i, id := range []string{"ORD001", "ORD002", "ORD003"} {
		order := models.NewOrder(id)
		order.SetCustomerName("Walk In")
		order.OrderTime = base.Add(time.Duration(i) * time.Minute)
		if err := store.Orders.AddOrder(order); err != nil {
			t.Fatal(err)
		}
	}

	orders, err := store.Orders.GetAllOrders()
	if err != nil {
		t.Fatal(err)
	}
	if len(orders) != 3 {
		t.Fatalf("got %d orders, want 3", len(orders))
	}
	if orders[0].OrderID != "ORD003" || orders[2].OrderID != "ORD001" {
		t.Errorf("wrong order: %q … %q, want newest first", orders[0].OrderID, orders[2].OrderID)
	}
}

func TestGetOrdersByCustomer(t *testing.T) {
	store := repositories.NewDatabaseStore(testDB(t))

	for id, name := range map[string]string{
		"ORD001": "john",
		"ORD002": "jane",
		"ORD003": "john",
	} {
		order := models.NewOrder(id)
		order.SetCustomerName(name)
		if err := store.Orders.AddOrder(order); err != nil {
			t.Fatal(err)
		}
	}

	mine, err := store.Orders.GetOrdersByCustomer("john")
	if err != nil {
		t.Fatal(err)
	}
	if len(mine) != 2 {
		t.Errorf("got %d orders for john, want 2", len(mine))
	}
}
