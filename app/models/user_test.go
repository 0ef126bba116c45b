package models_test

import (
	"testing"

	"github.com/shashiranjanraj/laundro/app/models"
)

func TestAddPointsIgnoresNonPositive(t *testing.T) {
	user := models.NewUser("john", "123", "John Doe", "0811", "Addr", models.RoleMember)

	user.AddPoints(10)
	user.AddPoints(0)
	user.AddPoints(-5)
	if user.Points != 10 {
		t.Errorf("points = %d, want 10", user.Points)
	}
}

func TestDeductPoints(t *testing.T) {
	user := models.NewUser("john", "123", "John Doe", "0811", "Addr", models.RoleMember)
	user.AddPoints(10)

	if !user.DeductPoints(4) {
		t.Error("expected deduction within balance to succeed")
	}
	if user.Points != 6 {
		t.Errorf("points = %d, want 6", user.Points)
	}

	// Overdraw and non-positive amounts leave the balance alone.
	if user.DeductPoints(7) {
		t.Error("expected overdraw to fail")
	}
	if user.DeductPoints(0) || user.DeductPoints(-1) {
		t.Error("expected non-positive deduction to fail")
	}
	if user.Points != 6 {
		t.Errorf("points = %d, want 6", user.Points)
	}
}

func TestSettersIgnoreBlank(t *testing.T) {
	user := models.NewUser("john", "123", "John Doe", "0811", "Addr", models.RoleMember)

	user.SetFullName("  ")
	user.SetPhone("")
	user.SetAddress("\t")
	user.SetPassword("")
	if user.FullName != "John Doe" || user.Phone != "0811" || user.Address != "Addr" || user.Password != "123" {
		t.Errorf("blank setter mutated user: %+v", user)
	}

	user.SetFullName("Johnny")
	user.SetPassword("456")
	if user.FullName != "Johnny" || user.Password != "456" {
		t.Errorf("setter did not apply: %+v", user)
	}
}

func TestIsAdmin(t *testing.T) {
	admin := models.NewUser("admin", "pw", "Admin", "0800", "Office", models.RoleAdmin)
	member := models.NewUser("john", "pw", "John", "0811", "Home", models.RoleMember)

	if !admin.IsAdmin() {
		t.Error("expected ADMIN role to be admin")
	}
	if member.IsAdmin() {
		t.Error("expected MEMBER role to not be admin")
	}
}
