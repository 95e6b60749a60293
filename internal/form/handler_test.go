package form_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/eventtalk/formbuilder/internal/database"
	"github.com/eventtalk/formbuilder/internal/models"
	"github.com/eventtalk/formbuilder/internal/testutils"
	"github.com/stretchr/testify/assert"
)

// ========== FORM TESTS ==========

func simpleSchema() map[string]interface{} {
	return map[string]interface{}{
		"fields": []map[string]interface{}{
			{
				"id":       "f1",
				"type":     "textInput",
				"label":    "Full Name",
				"required": true,
			},
			{
				"id":    "f2",
				"type":  "email",
				"label": "Email",
			},
		},
	}
}

func TestCreateFormHandler(t *testing.T) {
	app := testutils.SetupTestApp(t)
	db := database.DB

	user := testutils.CreateTestUser(t, db, "alice", "alice@test.com", "password", models.RoleUser)
	token := testutils.GetAuthToken(t, user.ID, user.Role)

	t.Run("Success - Create draft form", func(t *testing.T) {
		body := map[string]interface{}{
			"name":        "Event Registration",
			"description": "Signup form",
			"schema":      simpleSchema(),
			"status":      "draft",
		}

		resp, err := testutils.MakeRequest(app, "POST", "/api/forms/", body, token)
		assert.NoError(t, err)
		assert.Equal(t, 201, resp.Code)

		var result testutils.StandardResponse
		testutils.ParseResponse(t, resp, &result)
		assert.True(t, result.Success)

		data := result.Data.(map[string]interface{})
		assert.NotEmpty(t, data["id"])
		assert.Equal(t, "draft", data["status"])
	})

	t.Run("Success - Empty name defaults to Untitled Form", func(t *testing.T) {
		body := map[string]interface{}{
			"schema": simpleSchema(),
		}

		resp, err := testutils.MakeRequest(app, "POST", "/api/forms/", body, token)
		assert.NoError(t, err)
		assert.Equal(t, 201, resp.Code)

		var result testutils.StandardResponse
		testutils.ParseResponse(t, resp, &result)
		data := result.Data.(map[string]interface{})
		assert.Equal(t, "Untitled Form", data["name"])
	})

	t.Run("Error - Unknown field type rejected", func(t *testing.T) {
		body := map[string]interface{}{
			"name": "Broken",
			"schema": map[string]interface{}{
				"fields": []map[string]interface{}{
					{"id": "x1", "type": "hologram", "label": "Nope"},
				},
			},
		}

		resp, err := testutils.MakeRequest(app, "POST", "/api/forms/", body, token)
		assert.NoError(t, err)
		assert.Equal(t, 400, resp.Code)
	})

	t.Run("Error - Requires authentication", func(t *testing.T) {
		resp, err := testutils.MakeRequest(app, "POST", "/api/forms/", map[string]interface{}{"name": "X"}, "")
		assert.NoError(t, err)
		assert.Equal(t, 401, resp.Code)
	})
}

func TestGetAndListForms(t *testing.T) {
	app := testutils.SetupTestApp(t)
	db := database.DB

	alice := testutils.CreateTestUser(t, db, "alice", "alice@test.com", "password", models.RoleUser)
	aliceToken := testutils.GetAuthToken(t, alice.ID, alice.Role)
	bob := testutils.CreateTestUser(t, db, "bob", "bob@test.com", "password", models.RoleUser)
	bobToken := testutils.GetAuthToken(t, bob.ID, bob.Role)

	body := map[string]interface{}{"name": "Alice's Form", "schema": simpleSchema()}
	resp, err := testutils.MakeRequest(app, "POST", "/api/forms/", body, aliceToken)
	assert.NoError(t, err)
	assert.Equal(t, 201, resp.Code)

	var created testutils.StandardResponse
	testutils.ParseResponse(t, resp, &created)
	formID := created.Data.(map[string]interface{})["id"].(float64)

	t.Run("Success - Owner fetches form", func(t *testing.T) {
		resp, err := testutils.MakeRequest(app, "GET", fmt.Sprintf("/api/forms/%.0f", formID), nil, aliceToken)
		assert.NoError(t, err)
		assert.Equal(t, 200, resp.Code)

		var result testutils.StandardResponse
		testutils.ParseResponse(t, resp, &result)
		data := result.Data.(map[string]interface{})

		schema := data["schema"].(map[string]interface{})
		fields := schema["fields"].([]interface{})
		assert.Len(t, fields, 2)
	})

	t.Run("Error - Non-owner cannot fetch", func(t *testing.T) {
		resp, err := testutils.MakeRequest(app, "GET", fmt.Sprintf("/api/forms/%.0f", formID), nil, bobToken)
		assert.NoError(t, err)
		assert.Equal(t, 403, resp.Code)
	})

	t.Run("Success - List only own forms", func(t *testing.T) {
		resp, err := testutils.MakeRequest(app, "GET", "/api/forms/", nil, bobToken)
		assert.NoError(t, err)
		assert.Equal(t, 200, resp.Code)

		var result testutils.StandardResponse
		testutils.ParseResponse(t, resp, &result)
		forms := result.Data.([]interface{})
		assert.Len(t, forms, 0)
	})
}

func TestUpdateFormHandler(t *testing.T) {
	app := testutils.SetupTestApp(t)
	db := database.DB

	user := testutils.CreateTestUser(t, db, "alice", "alice@test.com", "password", models.RoleUser)
	token := testutils.GetAuthToken(t, user.ID, user.Role)

	body := map[string]interface{}{"name": "Original", "schema": simpleSchema()}
	resp, _ := testutils.MakeRequest(app, "POST", "/api/forms/", body, token)
	var created testutils.StandardResponse
	testutils.ParseResponse(t, resp, &created)
	formID := created.Data.(map[string]interface{})["id"].(float64)

	t.Run("Success - Rename and change schema", func(t *testing.T) {
		update := map[string]interface{}{
			"name": "Renamed",
			"schema": map[string]interface{}{
				"fields": []map[string]interface{}{
					{"id": "f1", "type": "textArea", "label": "Comments"},
				},
			},
		}

		resp, err := testutils.MakeRequest(app, "PUT", fmt.Sprintf("/api/forms/%.0f", formID), update, token)
		assert.NoError(t, err)
		assert.Equal(t, 200, resp.Code)

		var result testutils.StandardResponse
		testutils.ParseResponse(t, resp, &result)
		data := result.Data.(map[string]interface{})
		assert.Equal(t, "Renamed", data["name"])
	})

	t.Run("Error - Unknown form", func(t *testing.T) {
		resp, err := testutils.MakeRequest(app, "PUT", "/api/forms/99999", map[string]interface{}{"name": "X"}, token)
		assert.NoError(t, err)
		assert.Equal(t, 404, resp.Code)
	})
}

func TestPublishFormHandler(t *testing.T) {
	app := testutils.SetupTestApp(t)
	db := database.DB

	user := testutils.CreateTestUser(t, db, "alice", "alice@test.com", "password", models.RoleUser)
	token := testutils.GetAuthToken(t, user.ID, user.Role)

	body := map[string]interface{}{"name": "To Publish", "schema": simpleSchema()}
	resp, _ := testutils.MakeRequest(app, "POST", "/api/forms/", body, token)
	var created testutils.StandardResponse
	testutils.ParseResponse(t, resp, &created)
	formID := created.Data.(map[string]interface{})["id"].(float64)

	t.Run("Success - Publish mints URL and flips status", func(t *testing.T) {
		resp, err := testutils.MakeRequest(app, "POST", fmt.Sprintf("/api/forms/%.0f/publish", formID), nil, token)
		assert.NoError(t, err)
		assert.Equal(t, 200, resp.Code)

		var result testutils.StandardResponse
		testutils.ParseResponse(t, resp, &result)
		url := result.Data.(map[string]interface{})["publishedUrl"].(string)
		assert.True(t, strings.HasSuffix(url, fmt.Sprintf("/f/%.0f", formID)))

		var f models.Form
		db.First(&f, uint(formID))
		assert.Equal(t, models.FormStatusPublished, f.Status)
		assert.NotNil(t, f.PublishedAt)
	})

	t.Run("Success - Publish is idempotent", func(t *testing.T) {
		resp1, _ := testutils.MakeRequest(app, "POST", fmt.Sprintf("/api/forms/%.0f/publish", formID), nil, token)
		resp2, _ := testutils.MakeRequest(app, "POST", fmt.Sprintf("/api/forms/%.0f/publish", formID), nil, token)

		var r1, r2 testutils.StandardResponse
		testutils.ParseResponse(t, resp1, &r1)
		testutils.ParseResponse(t, resp2, &r2)
		assert.Equal(t,
			r1.Data.(map[string]interface{})["publishedUrl"],
			r2.Data.(map[string]interface{})["publishedUrl"])
	})
}

func TestPublicFormAccess(t *testing.T) {
	app := testutils.SetupTestApp(t)
	db := database.DB

	user := testutils.CreateTestUser(t, db, "alice", "alice@test.com", "password", models.RoleUser)
	token := testutils.GetAuthToken(t, user.ID, user.Role)

	body := map[string]interface{}{"name": "Public Form", "schema": simpleSchema()}
	resp, _ := testutils.MakeRequest(app, "POST", "/api/forms/", body, token)
	var created testutils.StandardResponse
	testutils.ParseResponse(t, resp, &created)
	formID := created.Data.(map[string]interface{})["id"].(float64)

	t.Run("Error - Draft not publicly visible", func(t *testing.T) {
		resp, err := testutils.MakeRequest(app, "GET", fmt.Sprintf("/api/public-forms/%.0f", formID), nil, "")
		assert.NoError(t, err)
		assert.Equal(t, 404, resp.Code)
	})

	t.Run("Success - Published form visible without auth", func(t *testing.T) {
		testutils.MakeRequest(app, "POST", fmt.Sprintf("/api/forms/%.0f/publish", formID), nil, token)

		resp, err := testutils.MakeRequest(app, "GET", fmt.Sprintf("/api/public-forms/%.0f", formID), nil, "")
		assert.NoError(t, err)
		assert.Equal(t, 200, resp.Code)

		testutils.AssertSuccess(t, resp)
	})

	t.Run("Success - Rendered page serves HTML", func(t *testing.T) {
		resp, err := testutils.MakeRequest(app, "GET", fmt.Sprintf("/f/%.0f", formID), nil, "")
		assert.NoError(t, err)
		assert.Equal(t, 200, resp.Code)

		html := resp.Body.String()
		assert.Contains(t, html, "Public Form")
		assert.Contains(t, html, `name="data[f1]"`)
		assert.Contains(t, html, "required")
	})
}

func TestDeleteFormHandler(t *testing.T) {
	app := testutils.SetupTestApp(t)
	db := database.DB

	user := testutils.CreateTestUser(t, db, "alice", "alice@test.com", "password", models.RoleUser)
	token := testutils.GetAuthToken(t, user.ID, user.Role)

	body := map[string]interface{}{"name": "Doomed", "schema": simpleSchema()}
	resp, _ := testutils.MakeRequest(app, "POST", "/api/forms/", body, token)
	var created testutils.StandardResponse
	testutils.ParseResponse(t, resp, &created)
	formID := created.Data.(map[string]interface{})["id"].(float64)

	t.Run("Success - Delete own form", func(t *testing.T) {
		resp, err := testutils.MakeRequest(app, "DELETE", fmt.Sprintf("/api/forms/%.0f", formID), nil, token)
		assert.NoError(t, err)
		assert.Equal(t, 204, resp.Code)

		resp, err = testutils.MakeRequest(app, "GET", fmt.Sprintf("/api/forms/%.0f", formID), nil, token)
		assert.NoError(t, err)
		assert.Equal(t, 404, resp.Code)
	})
}
