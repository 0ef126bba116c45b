package seeders

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/shashiranjanraj/laundro/app/models"
)

func init() {
	Register("users", SeedUsers)
}

// SeedUsers inserts the default admin and a sample member, skipping rows
// that already exist (matches the old INSERT IGNORE provisioning step).
func SeedUsers(db *gorm.DB) error {
	users := []*models.User{
		models.NewUser("admin", "admin", "Administrator", "081234567890", "Admin Office", models.RoleAdmin),
		models.NewUser("john", "123", "John Doe", "081234567891", "Jl. Merdeka No. 1", models.RoleMember),
	}

	for _, user := range users {
		err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(user).Error
		if err != nil {
			return err
		}
	}
	return nil
}
