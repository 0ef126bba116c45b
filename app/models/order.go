package models

import (
	"strings"
	"time"
)

// Canonical order statuses. The status column is free-form on purpose —
// UpdateOrderStatus accepts any non-blank string, matching the deployed
// admin tooling.
const (
	StatusPending    = "Pending"
	StatusProcessing = "Processing"
	StatusReady      = "Ready"
	StatusCompleted  = "Completed"
	StatusCancelled  = "Cancelled"
)

// Order is a single laundry order. The primary key is the human-readable
// "ORD"-prefixed id handed out by the repository sequence.
type Order struct {
	OrderID      string     `gorm:"primaryKey;size:20;column:order_id" json:"order_id"`
	CustomerName string     `gorm:"size:100;not null" json:"customer_name"`
	Phone        string     `gorm:"size:20;not null" json:"phone"`
	Address      string     `gorm:"type:text;not null" json:"address"`
	LaundryType  string     `gorm:"size:50;not null" json:"laundry_type"`
	Service      string     `gorm:"size:50;not null" json:"service"`
	Status       string     `gorm:"size:20;default:Pending" json:"status"`
	Weight       float64    `gorm:"type:decimal(5,2)" json:"weight"`
	Total        float64    `gorm:"type:decimal(10,2)" json:"total"`
	PickupTime   *time.Time `json:"pickup_time,omitempty"`
	OrderTime    time.Time  `gorm:"autoCreateTime" json:"order_time"`
	CustomerID   int        `json:"customer_id,omitempty"`
}

// NewOrder builds a Pending order with the creation time stamped once.
func NewOrder(orderID string) *Order {
	return &Order{
		OrderID:   orderID,
		Status:    StatusPending,
		OrderTime: time.Now(),
	}
}

// Setters ignore blank input, same rationale as on User.

func (o *Order) SetCustomerName(name string) {
	if strings.TrimSpace(name) != "" {
		o.CustomerName = name
	}
}

func (o *Order) SetPhone(phone string) {
	if strings.TrimSpace(phone) != "" {
		o.Phone = phone
	}
}

func (o *Order) SetAddress(address string) {
	if strings.TrimSpace(address) != "" {
		o.Address = address
	}
}

func (o *Order) SetLaundryType(laundryType string) {
	if strings.TrimSpace(laundryType) != "" {
		o.LaundryType = laundryType
	}
}

func (o *Order) SetService(service string) {
	if strings.TrimSpace(service) != "" {
		o.Service = service
	}
}

func (o *Order) SetStatus(status string) {
	if strings.TrimSpace(status) != "" {
		o.Status = status
	}
}

// IsActive reports whether the order still needs work, for the dashboard
// "Active Orders" card.
func (o *Order) IsActive() bool {
	return o.Status == StatusPending || o.Status == StatusProcessing
}
