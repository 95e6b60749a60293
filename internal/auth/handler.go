package auth

import (
	"github.com/eventtalk/formbuilder/internal/database"
	"github.com/eventtalk/formbuilder/internal/models"
	"github.com/eventtalk/formbuilder/internal/response"
	"github.com/eventtalk/formbuilder/internal/utils"
	"github.com/gofiber/fiber/v2"
)

func RegisterHandler(c *fiber.Ctx) error {
	var body struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	if err := c.BodyParser(&body); err != nil {
		return response.BadRequest(c, "Invalid request body", err.Error())
	}

	if body.Username == "" || body.Email == "" || body.Password == "" {
		return response.ValidationError(c, map[string]string{
			"username": "username is required",
			"email":    "email is required",
			"password": "password is required",
		})
	}

	var existing models.User
	if err := database.DB.Where("username = ? OR email = ?", body.Username, body.Email).
		First(&existing).Error; err == nil {
		return response.Conflict(c, "Username or email already registered")
	}

	u, err := RegisterUser(body.Username, body.Email, body.Password)
	if err != nil {
		return response.InternalError(c, "Failed to create user")
	}

	token, _ := utils.GenerateJWT(u.ID, u.Role)
	refreshToken, _ := utils.GenerateRefreshToken(u.ID)

	return response.Created(c, fiber.Map{
		"token":         token,
		"refresh_token": refreshToken,
		"user":          u,
	}, "Registration successful")
}

func LoginHandler(c *fiber.Ctx) error {
	var body struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}

	if err := c.BodyParser(&body); err != nil {
		return response.BadRequest(c, "Invalid request body", err.Error())
	}

	if body.Username == "" || body.Password == "" {
		return response.ValidationError(c, map[string]string{
			"username": "username is required",
			"password": "password is required",
		})
	}

	user, token, refreshToken, err := LoginUser(body.Username, body.Password)
	if err != nil {
		return response.Unauthorized(c, "Invalid username or password")
	}

	return response.Success(c, fiber.Map{
		"token":         token,
		"refresh_token": refreshToken,
		"user":          user,
		"expires_in":    900,
	}, "Login successful")
}

// MeHandler returns the authenticated user's profile; the editor calls it
// before every save to confirm the session is still valid.
func MeHandler(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(uint)

	var user models.User
	if err := database.DB.First(&user, userID).Error; err != nil {
		return response.NotAuthenticated(c)
	}

	return response.Success(c, user, "")
}

func RefreshHandler(c *fiber.Ctx) error {
	var body struct {
		UserID       uint   `json:"user_id"`
		RefreshToken string `json:"refresh_token"`
	}

	if err := c.BodyParser(&body); err != nil {
		return response.BadRequest(c, "Invalid request body", err.Error())
	}

	if body.UserID == 0 || body.RefreshToken == "" {
		return response.ValidationError(c, map[string]string{
			"user_id":       "user_id is required",
			"refresh_token": "refresh_token is required",
		})
	}

	token, newRefreshToken, err := utils.RefreshTokenPair(body.UserID, body.RefreshToken)
	if err != nil {
		return response.Unauthorized(c, err.Error())
	}

	var user models.User
	database.DB.First(&user, body.UserID)

	return response.Success(c, fiber.Map{
		"token":         token,
		"refresh_token": newRefreshToken,
		"user":          user,
		"expires_in":    900,
	}, "Token refreshed successfully")
}

func LogoutHandler(c *fiber.Ctx) error {
	userID, ok := c.Locals("user_id").(uint)
	if !ok {
		return response.NotAuthenticated(c)
	}

	database.DB.Model(&models.RefreshToken{}).
		Where("user_id = ? AND revoked = false", userID).
		Update("revoked", true)

	return response.Success(c, nil, "Logged out successfully")
}
