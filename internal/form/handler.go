package form

import (
	"errors"
	"strconv"

	"github.com/eventtalk/formbuilder/internal/builder"
	"github.com/eventtalk/formbuilder/internal/config"
	"github.com/eventtalk/formbuilder/internal/database"
	"github.com/eventtalk/formbuilder/internal/models"
	"github.com/eventtalk/formbuilder/internal/renderer"
	"github.com/eventtalk/formbuilder/internal/response"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func CreateFormHandler(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(uint)

	var body FormInput
	if err := c.BodyParser(&body); err != nil {
		return response.BadRequest(c, "Invalid request body", err.Error())
	}

	f, err := CreateForm(userID, body)
	if err != nil {
		return response.BadRequest(c, err.Error(), nil)
	}

	return response.Created(c, f, "Form created successfully")
}

func ListFormsHandler(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(uint)

	forms, err := ListForms(userID)
	if err != nil {
		return response.InternalError(c, "Failed to fetch forms")
	}

	return response.Success(c, forms, "Forms retrieved successfully")
}

func GetFormHandler(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "Invalid form ID", nil)
	}
	userID := c.Locals("user_id").(uint)

	var f models.Form
	if err := database.DB.First(&f, id).Error; err != nil {
		return response.NotFound(c, "Form")
	}
	if f.UserID != userID {
		return response.Forbidden(c, "Form belongs to another user")
	}

	return response.Success(c, f, "Form retrieved successfully")
}

func UpdateFormHandler(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "Invalid form ID", nil)
	}
	userID := c.Locals("user_id").(uint)

	var body FormInput
	if err := c.BodyParser(&body); err != nil {
		return response.BadRequest(c, "Invalid request body", err.Error())
	}

	f, err := UpdateForm(uint(id), userID, body)
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return response.NotFound(c, "Form")
		case errors.Is(err, ErrNotOwner):
			return response.Forbidden(c, "Form belongs to another user")
		default:
			return response.BadRequest(c, err.Error(), nil)
		}
	}

	return response.Success(c, f, "Form updated successfully")
}

func DeleteFormHandler(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "Invalid form ID", nil)
	}
	userID := c.Locals("user_id").(uint)

	var f models.Form
	if err := database.DB.First(&f, id).Error; err != nil {
		return response.NotFound(c, "Form")
	}
	if f.UserID != userID {
		return response.Forbidden(c, "Form belongs to another user")
	}

	if err := database.DB.Delete(&f).Error; err != nil {
		return response.InternalError(c, "Failed to delete form")
	}

	return response.NoContent(c)
}

func PublishFormHandler(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil {
			return response.BadRequest(c, "Invalid form ID", nil)
		}
		userID := c.Locals("user_id").(uint)

		f, err := PublishForm(uint(id), userID, cfg.PublicBaseURL)
		if err != nil {
			switch {
			case errors.Is(err, gorm.ErrRecordNotFound):
				return response.NotFound(c, "Form")
			case errors.Is(err, ErrNotOwner):
				return response.Forbidden(c, "Form belongs to another user")
			default:
				return response.InternalError(c, "Failed to publish form")
			}
		}

		return response.Success(c, fiber.Map{"publishedUrl": f.PublishedURL}, "Form published successfully")
	}
}

func GetPublicFormHandler(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "Invalid form ID", nil)
	}

	var f models.Form
	if err := database.DB.First(&f, id).Error; err != nil {
		return response.NotFound(c, "Form")
	}
	if f.Status != models.FormStatusPublished {
		return response.NotFound(c, "Form")
	}

	return response.Success(c, f, "Form retrieved successfully")
}

// PublicFormPageHandler serves the published form as a standalone HTML page
// at /f/:id, rendered with the runtime widget set.
func PublicFormPageHandler(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).SendString("Invalid form ID")
	}

	var f models.Form
	if err := database.DB.First(&f, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).SendString("Form not found")
	}
	if f.Status != models.FormStatusPublished {
		return c.Status(fiber.StatusNotFound).SendString("Form not found")
	}

	s, err := FormSchema(&f)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("Form schema is invalid")
	}

	page := builder.Form{
		ID:          strconv.FormatUint(uint64(f.ID), 10),
		Name:        f.Name,
		Description: f.Description,
		Fields:      s.Fields,
		Status:      f.Status,
	}

	html, err := renderer.RenderCanvas(page, renderer.ModePreview, nil)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("Failed to render form")
	}

	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.SendString(html)
}
