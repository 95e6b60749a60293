package user_test

import (
	"fmt"
	"testing"

	"github.com/eventtalk/formbuilder/internal/database"
	"github.com/eventtalk/formbuilder/internal/models"
	"github.com/eventtalk/formbuilder/internal/testutils"
	"github.com/stretchr/testify/assert"
)

// ========== USER TESTS ==========

func TestCreateAdminHandler(t *testing.T) {
	app := testutils.SetupTestApp(t)
	db := database.DB

	admin := testutils.CreateTestUser(t, db, "admin", "admin@test.com", "password", models.RoleAdmin)
	token := testutils.GetAuthToken(t, admin.ID, admin.Role)

	t.Run("Success - Create admin user", func(t *testing.T) {
		body := map[string]interface{}{
			"username": "newadmin",
			"email":    "newadmin@test.com",
			"password": "password123",
		}

		resp, err := testutils.MakeRequest(app, "POST", "/api/users/admin", body, token)
		assert.NoError(t, err)
		assert.Equal(t, 201, resp.Code)

		testutils.AssertSuccess(t, resp)

		var created models.User
		db.Where("username = ?", "newadmin").First(&created)
		assert.Equal(t, models.RoleAdmin, created.Role)
	})

	t.Run("Error - Duplicate email", func(t *testing.T) {
		body := map[string]interface{}{
			"username": "duplicate",
			"email":    "newadmin@test.com", // Already exists
			"password": "password123",
		}

		resp, err := testutils.MakeRequest(app, "POST", "/api/users/admin", body, token)
		assert.NoError(t, err)
		assert.Equal(t, 409, resp.Code)

		testutils.AssertError(t, resp, "CONFLICT")
	})

	t.Run("Error - Missing required fields", func(t *testing.T) {
		body := map[string]interface{}{
			"email": "incomplete@test.com",
		}

		resp, err := testutils.MakeRequest(app, "POST", "/api/users/admin", body, token)
		assert.NoError(t, err)
		assert.Equal(t, 422, resp.Code)

		testutils.AssertError(t, resp, "VALIDATION_ERROR")
	})

	t.Run("Error - Non-admin cannot create admin", func(t *testing.T) {
		regular := testutils.CreateTestUser(t, db, "regular", "regular@test.com", "password", models.RoleUser)
		regularToken := testutils.GetAuthToken(t, regular.ID, regular.Role)

		body := map[string]interface{}{
			"username": "sneaky",
			"email":    "sneaky@test.com",
			"password": "password123",
		}

		resp, err := testutils.MakeRequest(app, "POST", "/api/users/admin", body, regularToken)
		assert.NoError(t, err)
		assert.Equal(t, 403, resp.Code)

		testutils.AssertError(t, resp, "FORBIDDEN")
	})
}

func TestListUsersHandler(t *testing.T) {
	app := testutils.SetupTestApp(t)
	db := database.DB

	admin := testutils.CreateTestUser(t, db, "admin", "admin@test.com", "password", models.RoleAdmin)
	token := testutils.GetAuthToken(t, admin.ID, admin.Role)

	testutils.CreateTestUser(t, db, "user1", "user1@test.com", "password", models.RoleUser)
	testutils.CreateTestUser(t, db, "user2", "user2@test.com", "password", models.RoleUser)

	t.Run("Success - List all users", func(t *testing.T) {
		resp, err := testutils.MakeRequest(app, "GET", "/api/users/", nil, token)
		assert.NoError(t, err)
		assert.Equal(t, 200, resp.Code)

		var result testutils.StandardResponse
		testutils.ParseResponse(t, resp, &result)
		assert.True(t, result.Success)

		users := result.Data.([]interface{})
		assert.GreaterOrEqual(t, len(users), 3)
	})

	t.Run("Error - Regular user cannot list", func(t *testing.T) {
		regular := testutils.CreateTestUser(t, db, "plain", "plain@test.com", "password", models.RoleUser)
		regularToken := testutils.GetAuthToken(t, regular.ID, regular.Role)

		resp, err := testutils.MakeRequest(app, "GET", "/api/users/", nil, regularToken)
		assert.NoError(t, err)
		assert.Equal(t, 403, resp.Code)
	})
}

func TestGetUserHandler(t *testing.T) {
	app := testutils.SetupTestApp(t)
	db := database.DB

	admin := testutils.CreateTestUser(t, db, "admin", "admin@test.com", "password", models.RoleAdmin)
	token := testutils.GetAuthToken(t, admin.ID, admin.Role)

	user := testutils.CreateTestUser(t, db, "target", "target@test.com", "password", models.RoleUser)

	t.Run("Success - Get user by ID", func(t *testing.T) {
		resp, err := testutils.MakeRequest(app, "GET", fmt.Sprintf("/api/users/%d", user.ID), nil, token)
		assert.NoError(t, err)
		assert.Equal(t, 200, resp.Code)

		testutils.AssertSuccess(t, resp)
	})

	t.Run("Error - User not found", func(t *testing.T) {
		resp, err := testutils.MakeRequest(app, "GET", "/api/users/99999", nil, token)
		assert.NoError(t, err)
		assert.Equal(t, 404, resp.Code)

		testutils.AssertError(t, resp, "NOT_FOUND")
	})
}

func TestUpdateUserHandler(t *testing.T) {
	app := testutils.SetupTestApp(t)
	db := database.DB

	admin := testutils.CreateTestUser(t, db, "admin", "admin@test.com", "password", models.RoleAdmin)
	token := testutils.GetAuthToken(t, admin.ID, admin.Role)

	user := testutils.CreateTestUser(t, db, "target", "target@test.com", "password", models.RoleUser)

	t.Run("Success - Promote user to admin", func(t *testing.T) {
		body := map[string]interface{}{
			"role": models.RoleAdmin,
		}

		resp, err := testutils.MakeRequest(app, "PUT", fmt.Sprintf("/api/users/%d", user.ID), body, token)
		assert.NoError(t, err)
		assert.Equal(t, 200, resp.Code)

		var updated models.User
		db.First(&updated, user.ID)
		assert.Equal(t, models.RoleAdmin, updated.Role)
	})

	t.Run("Error - Invalid role", func(t *testing.T) {
		body := map[string]interface{}{
			"role": "superuser",
		}

		resp, err := testutils.MakeRequest(app, "PUT", fmt.Sprintf("/api/users/%d", user.ID), body, token)
		assert.NoError(t, err)
		assert.Equal(t, 400, resp.Code)
	})

	t.Run("Error - Email already taken", func(t *testing.T) {
		body := map[string]interface{}{
			"email": "admin@test.com",
		}

		resp, err := testutils.MakeRequest(app, "PUT", fmt.Sprintf("/api/users/%d", user.ID), body, token)
		assert.NoError(t, err)
		assert.Equal(t, 409, resp.Code)
	})
}

func TestDeleteUserHandler(t *testing.T) {
	app := testutils.SetupTestApp(t)
	db := database.DB

	admin := testutils.CreateTestUser(t, db, "admin", "admin@test.com", "password", models.RoleAdmin)
	token := testutils.GetAuthToken(t, admin.ID, admin.Role)

	user := testutils.CreateTestUser(t, db, "target", "target@test.com", "password", models.RoleUser)

	t.Run("Success - Delete user", func(t *testing.T) {
		resp, err := testutils.MakeRequest(app, "DELETE", fmt.Sprintf("/api/users/%d", user.ID), nil, token)
		assert.NoError(t, err)
		assert.Equal(t, 204, resp.Code)
	})

	t.Run("Error - Cannot delete own account", func(t *testing.T) {
		resp, err := testutils.MakeRequest(app, "DELETE", fmt.Sprintf("/api/users/%d", admin.ID), nil, token)
		assert.NoError(t, err)
		assert.Equal(t, 400, resp.Code)
	})
}
