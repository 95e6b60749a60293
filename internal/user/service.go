package user

import (
	"github.com/eventtalk/formbuilder/internal/database"
	"github.com/eventtalk/formbuilder/internal/models"
	"github.com/eventtalk/formbuilder/internal/utils"
	"gorm.io/gorm"
)

func CreateUser(db *gorm.DB, u *models.User) (*models.User, error) {
	hash, err := utils.HashPassword(u.Password)
	if err != nil {
		return nil, err
	}
	u.Password = hash
	if u.Role == "" {
		u.Role = models.RoleUser
	}
	if err := db.Create(u).Error; err != nil {
		return nil, err
	}
	return u, nil
}

func IsAdmin(db *gorm.DB, userID uint) (bool, error) {
	var u models.User
	if err := db.First(&u, userID).Error; err != nil {
		return false, err
	}
	return u.Role == models.RoleAdmin, nil
}

func ListUsers() ([]models.User, error) {
	var users []models.User
	if err := database.DB.Order("created_at DESC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}
