package repositories

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/laundro/app/models"
)

// OrderRepositoryDB is the GORM-backed OrderRepository.
type OrderRepositoryDB struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepositoryDB {
	return &OrderRepositoryDB{db: db}
}

func (r *OrderRepositoryDB) AddOrder(order *models.Order) error {
	if err := r.db.Create(order).Error; err != nil {
		return fmt.Errorf("repositories: add order %q: %w", order.OrderID, err)
	}
	return nil
}

func (r *OrderRepositoryDB) UpdateOrder(order *models.Order) error {
	if err := r.db.Save(order).Error; err != nil {
		return fmt.Errorf("repositories: update order %q: %w", order.OrderID, err)
	}
	return nil
}

func (r *OrderRepositoryDB) FindByID(orderID string) (*models.Order, error) {
	var order models.Order
	err := r.db.Where("order_id = ?", orderID).First(&order).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("repositories: find order %q: %w", orderID, err)
	}
	return &order, nil
}

func (r *OrderRepositoryDB) GetOrdersByCustomer(username string) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Where("customer_name = ?", username).
		Order("order_time DESC").
		Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("repositories: orders for %q: %w", username, err)
	}
	return orders, nil
}

func (r *OrderRepositoryDB) GetAllOrders() ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Order("order_time DESC").Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("repositories: get all orders: %w", err)
	}
	return orders, nil
}

// GenerateOrderID hands out the next id as "ORD" + zero-padded row count
// plus one. This is a row count, not a sequence: two writers generating at
// the same moment can collide. Known weakness carried over from the
// deployed system.
func (r *OrderRepositoryDB) GenerateOrderID() (string, error) {
	var count int64
	if err := r.db.Model(&models.Order{}).Count(&count).Error; err != nil {
		return "", fmt.Errorf("repositories: generate order id: %w", err)
	}
	return fmt.Sprintf("ORD%03d", count+1), nil
}
