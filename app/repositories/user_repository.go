package repositories

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/laundro/app/models"
)

// UserRepositoryDB is the GORM-backed UserRepository.
type UserRepositoryDB struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepositoryDB {
	return &UserRepositoryDB{db: db}
}

func (r *UserRepositoryDB) AddUser(user *models.User) error {
	if err := r.db.Create(user).Error; err != nil {
		return fmt.Errorf("repositories: add user %q: %w", user.Username, err)
	}
	return nil
}

func (r *UserRepositoryDB) GetUser(username string) (*models.User, error) {
	var user models.User
	err := r.db.Where("username = ?", username).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("repositories: get user %q: %w", username, err)
	}
	return &user, nil
}

func (r *UserRepositoryDB) UserExists(username string) (bool, error) {
	var count int64
	err := r.db.Model(&models.User{}).Where("username = ?", username).Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("repositories: user exists %q: %w", username, err)
	}
	return count > 0, nil
}

func (r *UserRepositoryDB) GetAllMembers() ([]models.User, error) {
	var members []models.User
	err := r.db.Where("role = ?", models.RoleMember).
		Order("full_name").
		Find(&members).Error
	if err != nil {
		return nil, fmt.Errorf("repositories: get all members: %w", err)
	}
	return members, nil
}

func (r *UserRepositoryDB) UpdateUser(user *models.User) error {
	if err := r.db.Save(user).Error; err != nil {
		return fmt.Errorf("repositories: update user %q: %w", user.Username, err)
	}
	return nil
}
