package testutils

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http/httptest"
	"testing"

	"github.com/eventtalk/formbuilder/internal/config"
	"github.com/eventtalk/formbuilder/internal/database"
	"github.com/eventtalk/formbuilder/internal/models"
	"github.com/eventtalk/formbuilder/internal/server"
	"github.com/eventtalk/formbuilder/internal/utils"
	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	assert.NoError(t, err, "Failed to create test database")

	err = db.AutoMigrate(
		&models.User{},
		&models.RefreshToken{},
		&models.Form{},
		&models.Submission{},
		&models.SubmissionFile{},
	)
	assert.NoError(t, err, "Failed to migrate test database")

	return db
}

func TestConfig() *config.Config {
	return &config.Config{
		ServerAddr:    ":8080",
		PublicBaseURL: "http://localhost:8080",
	}
}

func SetupTestApp(t *testing.T) *fiber.App {
	db := TestDB(t)
	database.DB = db

	err := utils.InitLocalStorage()
	assert.NoError(t, err, "Failed to initialize storage")
	utils.SetStorageMode(true)

	app := server.New(TestConfig())
	return app
}

func CreateTestUser(t *testing.T, db *gorm.DB, username, email, password, role string) *models.User {
	hashedPassword, _ := utils.HashPassword(password)

	user := &models.User{
		Username: username,
		Email:    email,
		Password: hashedPassword,
		Role:     role,
	}

	err := db.Create(user).Error
	assert.NoError(t, err, "Failed to create test user")

	return user
}

func GetAuthToken(t *testing.T, userID uint, role string) string {
	token, err := utils.GenerateJWT(userID, role)
	assert.NoError(t, err, "Failed to generate test token")
	return token
}

func MakeRequest(app *fiber.App, method, url string, body interface{}, token string) (*httptest.ResponseRecorder, error) {
	var bodyReader io.Reader
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		bodyReader = bytes.NewReader(jsonBody)
	}

	req := httptest.NewRequest(method, url, bodyReader)
	req.Header.Set("Content-Type", "application/json")

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()

	resp, err := app.Test(req, -1)
	if err != nil {
		return rec, err
	}

	rec.Code = resp.StatusCode

	io.Copy(rec.Body, resp.Body)
	resp.Body.Close()

	return rec, nil
}

func ParseResponse(t *testing.T, resp *httptest.ResponseRecorder, v interface{}) {
	if resp.Body.Len() == 0 {
		t.Log("Warning: Response body is empty")
		return
	}

	err := json.NewDecoder(resp.Body).Decode(v)
	if err != nil && err != io.EOF {
		t.Logf("Response body: %s", resp.Body.String())
		assert.NoError(t, err, "Failed to parse response")
	}
}

type StandardResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	Data    interface{}  `json:"data"`
	Error   *ErrorDetail `json:"error"`
	Meta    *Meta        `json:"meta"`
}

type ErrorDetail struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details"`
}

type Meta struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int64 `json:"total_pages"`
}

func AssertSuccess(t *testing.T, resp *httptest.ResponseRecorder) {
	var result StandardResponse
	ParseResponse(t, resp, &result)
	assert.True(t, result.Success, "Expected success response")
	assert.Empty(t, result.Error, "Expected no error")
}

func AssertError(t *testing.T, resp *httptest.ResponseRecorder, expectedCode string) {
	var result StandardResponse
	ParseResponse(t, resp, &result)
	assert.False(t, result.Success, "Expected error response")
	assert.NotNil(t, result.Error, "Expected error object")
	assert.Equal(t, expectedCode, result.Error.Code, "Error code mismatch")
}

func MakeMultipartRequest(app *fiber.App, method, url string, fields map[string]string, token string) (*httptest.ResponseRecorder, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	for key, val := range fields {
		writer.WriteField(key, val)
	}

	contentType := writer.FormDataContentType()
	writer.Close()

	req := httptest.NewRequest(method, url, body)
	req.Header.Set("Content-Type", contentType)

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	resp, err := app.Test(req, -1)
	if err != nil {
		return rec, err
	}

	rec.Code = resp.StatusCode
	io.Copy(rec.Body, resp.Body)
	resp.Body.Close()

	return rec, nil
}

func MakeMultipartRequestWithFile(app *fiber.App, method, url string, fields map[string]string, files map[string][]byte, token string) (*httptest.ResponseRecorder, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	for key, val := range fields {
		writer.WriteField(key, val)
	}

	for fieldName, fileContent := range files {
		part, err := writer.CreateFormFile(fieldName, fieldName+".jpg")
		if err != nil {
			return nil, err
		}
		part.Write(fileContent)
	}

	contentType := writer.FormDataContentType()
	writer.Close()

	req := httptest.NewRequest(method, url, body)
	req.Header.Set("Content-Type", contentType)

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	resp, err := app.Test(req, -1)
	if err != nil {
		return rec, err
	}

	rec.Code = resp.StatusCode
	io.Copy(rec.Body, resp.Body)
	resp.Body.Close()

	return rec, nil
}
