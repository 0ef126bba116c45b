package services

import (
	"github.com/shashiranjanraj/laundro/app/repositories"
	"github.com/shashiranjanraj/laundro/pkg/metrics"
)

// Stats are the four cards on the admin dashboard.
type Stats struct {
	TotalOrders  int     `json:"total_orders"`
	ActiveOrders int     `json:"active_orders"`
	TotalMembers int     `json:"total_members"`
	Revenue      float64 `json:"revenue"`
}

// StatsService aggregates order and member figures. It re-reads storage on
// every call; the scheduler invokes Refresh on a fixed interval, replacing
// the old dashboard's auto-refresh timer.
type StatsService struct {
	orders repositories.OrderRepository
	users  repositories.UserRepository
}

func NewStatsService(orders repositories.OrderRepository, users repositories.UserRepository) *StatsService {
	return &StatsService{orders: orders, users: users}
}

// Collect computes the current statistics from storage.
func (s *StatsService) Collect() (Stats, error) {
	orders, err := s.orders.GetAllOrders()
	if err != nil {
		return Stats{}, err
	}
	members, err := s.users.GetAllMembers()
	if err != nil {
		return Stats{}, err
	}

	stats := Stats{
		TotalOrders:  len(orders),
		TotalMembers: len(members),
	}
	for _, order := range orders {
		stats.Revenue += order.Total
		if order.IsActive() {
			stats.ActiveOrders++
		}
	}
	return stats, nil
}

// Refresh collects and republishes the figures as Prometheus gauges.
func (s *StatsService) Refresh() (Stats, error) {
	stats, err := s.Collect()
	if err != nil {
		return Stats{}, err
	}

	metrics.OrdersTotal.Set(float64(stats.TotalOrders))
	metrics.OrdersActive.Set(float64(stats.ActiveOrders))
	metrics.MembersTotal.Set(float64(stats.TotalMembers))
	metrics.Revenue.Set(stats.Revenue)
	return stats, nil
}
