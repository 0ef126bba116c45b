package repositories

import (
	"fmt"
	"sort"
	"sync"

	"github.com/shashiranjanraj/laundro/app/models"
)

// MemoryUserRepository keeps accounts in a map. It is the fallback backend
// when the database is unreachable; a mutex makes it safe under the HTTP
// surface, nothing more.
type MemoryUserRepository struct {
	mu    sync.Mutex
	users map[string]models.User
}

func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{users: make(map[string]models.User)}
}

func (r *MemoryUserRepository) AddUser(user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[user.Username] = *user
	return nil
}

func (r *MemoryUserRepository) GetUser(username string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[username]
	if !ok {
		return nil, nil
	}
	return &user, nil
}

func (r *MemoryUserRepository) UserExists(username string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.users[username]
	return ok, nil
}

func (r *MemoryUserRepository) GetAllMembers() ([]models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var members []models.User
	for _, user := range r.users {
		if user.Role == models.RoleMember {
			members = append(members, user)
		}
	}
	// Stable output, same as the database ordering.
	sort.Slice(members, func(i, j int) bool {
		return members[i].FullName < members[j].FullName
	})
	return members, nil
}

func (r *MemoryUserRepository) UpdateUser(user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[user.Username] = *user
	return nil
}

// MemoryOrderRepository keeps orders in a slice with a per-instance id
// counter. Ids restart at ORD001 whenever the process restarts.
type MemoryOrderRepository struct {
	mu      sync.Mutex
	orders  []models.Order
	counter int
}

func NewMemoryOrderRepository() *MemoryOrderRepository {
	return &MemoryOrderRepository{counter: 1}
}

func (r *MemoryOrderRepository) AddOrder(order *models.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders = append(r.orders, *order)
	return nil
}

func (r *MemoryOrderRepository) UpdateOrder(order *models.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.orders {
		if r.orders[i].OrderID == order.OrderID {
			r.orders[i] = *order
			return nil
		}
	}
	return nil
}

func (r *MemoryOrderRepository) FindByID(orderID string) (*models.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.orders {
		if r.orders[i].OrderID == orderID {
			order := r.orders[i]
			return &order, nil
		}
	}
	return nil, nil
}

func (r *MemoryOrderRepository) GetOrdersByCustomer(username string) ([]models.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var matched []models.Order
	for _, order := range r.orders {
		if order.CustomerName == username {
			matched = append(matched, order)
		}
	}
	sortNewestFirst(matched)
	return matched, nil
}

func (r *MemoryOrderRepository) GetAllOrders() ([]models.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.Order, len(r.orders))
	copy(out, r.orders)
	sortNewestFirst(out)
	return out, nil
}

// sortNewestFirst matches the database backend's order_time DESC listing.
func sortNewestFirst(orders []models.Order) {
	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].OrderTime.After(orders[j].OrderTime)
	})
}

func (r *MemoryOrderRepository) GenerateOrderID() (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	id := fmt.Sprintf("ORD%03d", r.counter)
	r.counter++
	return id, nil
}
