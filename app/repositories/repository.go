// Package repositories provides the storage layer for users and orders.
//
// Two interchangeable backends exist: a durable one on GORM (sqlite by
// default, postgres/mysql/sqlserver via config) and an in-memory one used
// as a fallback when the database is unreachable at startup. Lookup misses
// are reported as (nil, nil) — an error always means the backend itself
// failed.
package repositories

import (
	"gorm.io/gorm"

	"github.com/shashiranjanraj/laundro/app/models"
)

// UserRepository is the persistence contract for accounts.
type UserRepository interface {
	AddUser(user *models.User) error
	GetUser(username string) (*models.User, error)
	UserExists(username string) (bool, error)
	GetAllMembers() ([]models.User, error)
	UpdateUser(user *models.User) error
}

// OrderRepository is the persistence contract for orders.
type OrderRepository interface {
	AddOrder(order *models.Order) error
	UpdateOrder(order *models.Order) error
	FindByID(orderID string) (*models.Order, error)
	GetOrdersByCustomer(username string) ([]models.Order, error)
	GetAllOrders() ([]models.Order, error)
	GenerateOrderID() (string, error)
}

// Store bundles the two repositories behind one handle. Fallback is true
// when the store runs on transient in-memory collections instead of the
// database, so callers can log and surface the degraded mode.
type Store struct {
	Users    UserRepository
	Orders   OrderRepository
	Fallback bool
}

// NewDatabaseStore builds a Store on an open GORM handle.
func NewDatabaseStore(db *gorm.DB) *Store {
	return &Store{
		Users:  NewUserRepository(db),
		Orders: NewOrderRepository(db),
	}
}

// NewMemoryStore builds the in-memory fallback Store. Contents vanish on
// process exit and order ids restart from ORD001.
func NewMemoryStore() *Store {
	return &Store{
		Users:    NewMemoryUserRepository(),
		Orders:   NewMemoryOrderRepository(),
		Fallback: true,
	}
}
