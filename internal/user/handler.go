package user

import (
	"github.com/eventtalk/formbuilder/internal/database"
	"github.com/eventtalk/formbuilder/internal/models"
	"github.com/eventtalk/formbuilder/internal/response"
	"github.com/eventtalk/formbuilder/internal/utils"
	"github.com/gofiber/fiber/v2"
)

func CreateAdminHandler(c *fiber.Ctx) error {
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
	if err := database.DB.Where("email = ? OR username = ?", body.Email, body.Username).First(&existing).Error; err == nil {
		return response.Conflict(c, "User with this email or username already exists")
	}

	hashed, err := utils.HashPassword(body.Password)
	if err != nil {
		return response.InternalError(c, "Failed to hash password")
	}

	user := models.User{
		Username: body.Username,
		Email:    body.Email,
		Password: hashed,
		Role:     models.RoleAdmin,
	}

	if err := database.DB.Create(&user).Error; err != nil {
		return response.InternalError(c, "Failed to create user")
	}

	user.Password = ""

	return response.Created(c, user, "Admin user created successfully")
}

func ListUsersHandler(c *fiber.Ctx) error {
	var users []models.User

	if err := database.DB.Order("created_at DESC").Find(&users).Error; err != nil {
		return response.InternalError(c, "Failed to fetch users")
	}

	for i := range users {
		users[i].Password = ""
	}

	return response.Success(c, users, "Users retrieved successfully")
}

func GetUserHandler(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "Invalid user ID", nil)
	}

	var user models.User
	if err := database.DB.First(&user, id).Error; err != nil {
		return response.NotFound(c, "User")
	}

	user.Password = ""

	return response.Success(c, user, "User retrieved successfully")
}

func UpdateUserHandler(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "Invalid user ID", nil)
	}

	var body struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Role     string `json:"role"`
	}

	if err := c.BodyParser(&body); err != nil {
		return response.BadRequest(c, "Invalid request body", err.Error())
	}

	var user models.User
	if err := database.DB.First(&user, id).Error; err != nil {
		return response.NotFound(c, "User")
	}

	if body.Email != "" && body.Email != user.Email {
		var existing models.User
		if err := database.DB.Where("email = ? AND id != ?", body.Email, id).First(&existing).Error; err == nil {
			return response.Conflict(c, "Email already taken")
		}
		user.Email = body.Email
	}

	if body.Username != "" {
		user.Username = body.Username
	}

	if body.Role != "" {
		if body.Role != models.RoleAdmin && body.Role != models.RoleUser {
			return response.BadRequest(c, "Invalid role", nil)
		}
		user.Role = body.Role
	}

	if err := database.DB.Save(&user).Error; err != nil {
		return response.InternalError(c, "Failed to update user")
	}

	user.Password = ""

	return response.Success(c, user, "User updated successfully")
}

func DeleteUserHandler(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "Invalid user ID", nil)
	}

	var user models.User
	if err := database.DB.First(&user, id).Error; err != nil {
		return response.NotFound(c, "User")
	}

	currentUserID := c.Locals("user_id").(uint)
	if uint(id) == currentUserID {
		return response.BadRequest(c, "Cannot delete your own account", nil)
	}

	if err := database.DB.Delete(&user).Error; err != nil {
		return response.InternalError(c, "Failed to delete user")
	}

	return response.NoContent(c)
}
