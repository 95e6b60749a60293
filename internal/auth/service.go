package auth

import (
	"fmt"

	"github.com/eventtalk/formbuilder/internal/database"
	"github.com/eventtalk/formbuilder/internal/models"
	"github.com/eventtalk/formbuilder/internal/utils"
)

func RegisterUser(username, email, password string) (*models.User, error) {
	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}

	u := models.User{
		Username: username,
		Email:    email,
		Password: hashedPassword,
		Provider: "local",
		Role:     models.RoleUser,
	}

	if err := database.DB.Create(&u).Error; err != nil {
		return nil, err
	}

	return &u, nil
}

func LoginUser(username, password string) (*models.User, string, string, error) {
	var user models.User
	if err := database.DB.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, "", "", err
	}

	if !utils.CheckPasswordHash(password, user.Password) {
		return nil, "", "", fmt.Errorf("invalid credentials")
	}

	accessToken, err := utils.GenerateJWT(user.ID, user.Role)
	if err != nil {
		return nil, "", "", err
	}

	refreshToken, err := utils.GenerateRefreshToken(user.ID)
	if err != nil {
		return nil, "", "", err
	}

	return &user, accessToken, refreshToken, nil
}
