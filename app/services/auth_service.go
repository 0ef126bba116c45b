package services

import (
	"strings"

	"github.com/shashiranjanraj/laundro/app/models"
	"github.com/shashiranjanraj/laundro/app/repositories"
)

// AuthService handles login and registration. Credentials are compared as
// plain text, exactly like the system it replaces; there are no error
// codes distinguishing "no such user" from "wrong password".
type AuthService struct {
	users repositories.UserRepository
}

func NewAuthService(users repositories.UserRepository) *AuthService {
	return &AuthService{users: users}
}

// Authenticate returns the user on an exact username/password match and
// nil otherwise. An error means the storage backend failed, not that the
// credentials were wrong.
func (s *AuthService) Authenticate(username, password string) (*models.User, error) {
	user, err := s.users.GetUser(username)
	if err != nil {
		return nil, err
	}
	if user != nil && user.Password == password {
		return user, nil
	}
	return nil, nil
}

// Register creates a MEMBER account with zero points. It returns false
// when any field is blank or the username is taken; the caller gets no
// further detail, matching the registration form's single error dialog.
func (s *AuthService) Register(username, password, fullName, phone, address string) (bool, error) {
	for _, field := range []string{username, password, fullName, phone, address} {
		if strings.TrimSpace(field) == "" {
			return false, nil
		}
	}

	exists, err := s.users.UserExists(username)
	if err != nil {
		return false, err
	}
	if exists {
		return false, nil
	}

	user := models.NewUser(username, password, fullName, phone, address, models.RoleMember)
	if err := s.users.AddUser(user); err != nil {
		return false, err
	}
	return true, nil
}
