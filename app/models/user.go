package models

import (
	"strings"
	"time"
)

// User roles. Admins manage orders; members place them and collect points.
const (
	RoleAdmin  = "ADMIN"
	RoleMember = "MEMBER"
)

// User is an account in the laundry system, keyed by username.
// Passwords are stored and compared as plain text — this mirrors the
// deployed system and is a documented limitation, not an oversight.
type User struct {
	Username  string    `gorm:"primaryKey;size:50" json:"username"`
	Password  string    `gorm:"size:255;not null" json:"-"`
	FullName  string    `gorm:"size:100;not null" json:"full_name"`
	Phone     string    `gorm:"size:20;not null" json:"phone"`
	Address   string    `gorm:"type:text;not null" json:"address"`
	Role      string    `gorm:"size:10;not null" json:"role"`
	Points    int       `gorm:"default:0" json:"points"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// NewUser builds a user with zero points.
func NewUser(username, password, fullName, phone, address, role string) *User {
	return &User{
		Username: username,
		Password: password,
		FullName: fullName,
		Phone:    phone,
		Address:  address,
		Role:     role,
		Points:   0,
	}
}

// Profile setters ignore blank input so a half-filled update form never
// wipes an existing value.

func (u *User) SetPassword(password string) {
	if strings.TrimSpace(password) != "" {
		u.Password = password
	}
}

func (u *User) SetFullName(fullName string) {
	if strings.TrimSpace(fullName) != "" {
		u.FullName = fullName
	}
}

func (u *User) SetPhone(phone string) {
	if strings.TrimSpace(phone) != "" {
		u.Phone = phone
	}
}

func (u *User) SetAddress(address string) {
	if strings.TrimSpace(address) != "" {
		u.Address = address
	}
}

// AddPoints increases the loyalty balance. Non-positive increments are
// ignored, so a zero- or negative-total order awards nothing.
func (u *User) AddPoints(points int) {
	if points > 0 {
		u.Points += points
	}
}

// DeductPoints spends points from the balance. Returns false without
// mutating when the amount is non-positive or exceeds the balance, so the
// balance can never go negative.
func (u *User) DeductPoints(points int) bool {
	if points > 0 && u.Points >= points {
		u.Points -= points
		return true
	}
	return false
}

// IsAdmin reports whether the user holds the ADMIN role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
