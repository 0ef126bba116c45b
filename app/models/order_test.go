package models_test

import (
	"testing"

	"github.com/shashiranjanraj/laundro/app/models"
)

func TestNewOrderDefaults(t *testing.T) {
	order := models.NewOrder("ORD001")

	if order.Status != models.StatusPending {
		t.Errorf("status = %q, want Pending", order.Status)
	}
	if order.OrderTime.IsZero() {
		t.Error("order time not stamped")
	}
}

func TestOrderSettersIgnoreBlank(t *testing.T) {
	order := models.NewOrder("ORD001")
	order.SetCustomerName("John Doe")
	order.SetStatus("Processing")

	order.SetCustomerName("  ")
	order.SetStatus("")
	if order.CustomerName != "John Doe" {
		t.Errorf("customer name = %q, want John Doe", order.CustomerName)
	}
	if order.Status != "Processing" {
		t.Errorf("status = %q, want Processing", order.Status)
	}
}

func TestIsActive(t *testing.T) {
	cases := map[string]bool{
		models.StatusPending:    true,
		models.StatusProcessing: true,
		models.StatusReady:      false,
		models.StatusCompleted:  false,
		models.StatusCancelled:  false,
		"Lost In Transit":       false,
	}
	for status, want := range cases {
		order := models.NewOrder("ORD001")
		order.SetStatus(status)
		if got := order.IsActive(); got != want {
			t.Errorf("IsActive(%q) = %v, want %v", status, got, want)
		}
	}
}
