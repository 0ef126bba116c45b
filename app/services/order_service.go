package services

import (
	"github.com/shashiranjanraj/laundro/app/models"
	"github.com/shashiranjanraj/laundro/app/repositories"
	"github.com/shashiranjanraj/laundro/pkg/metrics"
)

// Price per kg in Rupiah, keyed by service level then laundry type.
// "Express" only changes the Wash & Dry rate; Dry Clean and Wash Only are
// flat. Unknown services fall back to the regular rate.
const (
	rateWashDryRegular = 5000
	rateWashDryExpress = 8000
	rateDryClean       = 15000
	rateWashOnly       = 3000
	rateDefault        = 5000
)

// OrderService creates orders, prices them, and credits loyalty points to
// the member whose phone number matches the order.
type OrderService struct {
	orders repositories.OrderRepository
	users  repositories.UserRepository
}

func NewOrderService(orders repositories.OrderRepository, users repositories.UserRepository) *OrderService {
	return &OrderService{orders: orders, users: users}
}

// CreateOrder places a walk-in order. Weight is taken as given — zero and
// negative weights go through and simply produce a zero or negative total.
func (s *OrderService) CreateOrder(customerName, phone, address, laundryType, service string, weight float64) (*models.Order, error) {
	return s.create(customerName, phone, address, laundryType, service, weight)
}

// CreateOrderForUser places an order for a logged-in member. The order's
// customer-name column holds the username (not the full name) so that
// GetOrdersByCustomer can find it later.
func (s *OrderService) CreateOrderForUser(user *models.User, phone, address, laundryType, service string, weight float64) (*models.Order, error) {
	return s.create(user.Username, phone, address, laundryType, service, weight)
}

func (s *OrderService) create(customerName, phone, address, laundryType, service string, weight float64) (*models.Order, error) {
	orderID, err := s.orders.GenerateOrderID()
	if err != nil {
		return nil, err
	}

	order := models.NewOrder(orderID)
	order.SetCustomerName(customerName)
	order.SetPhone(phone)
	order.SetAddress(address)
	order.SetLaundryType(laundryType)
	order.SetService(service)
	order.Weight = weight
	order.Total = weight * pricePerKg(laundryType, service)

	if err := s.awardPoints(phone, order.Total); err != nil {
		return nil, err
	}

	if err := s.orders.AddOrder(order); err != nil {
		return nil, err
	}

	metrics.OrdersCreated.WithLabelValues(order.Service).Inc()
	return order, nil
}

// CalculatePrice quotes an order total without touching storage. Used by
// the price-preview endpoint.
func (s *OrderService) CalculatePrice(laundryType, service string, weight float64) float64 {
	return weight * pricePerKg(laundryType, service)
}

func pricePerKg(laundryType, service string) float64 {
	switch service {
	case "Wash & Dry":
		if laundryType == "Express" {
			return rateWashDryExpress
		}
		return rateWashDryRegular
	case "Dry Clean":
		return rateDryClean
	case "Wash Only":
		return rateWashOnly
	default:
		return rateDefault
	}
}

// awardPoints credits total/1000 points to the first member whose phone
// matches the order. No match is a silent no-op, and so is a non-positive
// point amount (AddPoints rejects it), which is why negative-total orders
// never debit anyone.
func (s *OrderService) awardPoints(phone string, total float64) error {
	members, err := s.users.GetAllMembers()
	if err != nil {
		return err
	}

	for i := range members {
		if members[i].Phone != phone {
			continue
		}
		points := int(total / 1000)
		members[i].AddPoints(points)
		if err := s.users.UpdateUser(&members[i]); err != nil {
			return err
		}
		if points > 0 {
			metrics.PointsAwarded.Add(float64(points))
		}
		break
	}
	return nil
}

// GetAllOrders lists every order, newest first under the database backend.
func (s *OrderService) GetAllOrders() ([]models.Order, error) {
	return s.orders.GetAllOrders()
}

// GetOrdersByCustomer lists the orders placed under a username.
func (s *OrderService) GetOrdersByCustomer(username string) ([]models.Order, error) {
	return s.orders.GetOrdersByCustomer(username)
}

// UpdateOrderStatus sets an order's status. Returns false for an unknown
// id. The new status is stored as-is — the admin tooling has always been
// free to write any non-blank string.
func (s *OrderService) UpdateOrderStatus(orderID, newStatus string) (bool, error) {
	order, err := s.orders.FindByID(orderID)
	if err != nil {
		return false, err
	}
	if order == nil {
		return false, nil
	}

	order.SetStatus(newStatus)
	if err := s.orders.UpdateOrder(order); err != nil {
		return false, err
	}
	return true, nil
}
