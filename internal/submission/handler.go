package submission

import (
	"github.com/eventtalk/formbuilder/internal/database"
	"github.com/eventtalk/formbuilder/internal/form"
	"github.com/eventtalk/formbuilder/internal/models"
	"github.com/eventtalk/formbuilder/internal/response"
	"github.com/eventtalk/formbuilder/internal/utils"
	"github.com/gofiber/fiber/v2"
)

// SubmitHandler accepts a public multipart submission against a published
// form. Field values arrive JSON-encoded under data[fieldId]; uploads arrive
// under files[fieldId] with companion fileData[fieldId] metadata.
func SubmitHandler(c *fiber.Ctx) error {
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

	s, err := form.FormSchema(&f)
	if err != nil {
		return response.InternalError(c, "Form schema is invalid")
	}

	mf, err := c.MultipartForm()
	if err != nil {
		return response.BadRequest(c, "Invalid multipart form", err.Error())
	}

	values := ParseValues(mf)
	if err := Validate(s, values, mf.File, ParseFileMeta(mf)); err != nil {
		return response.BadRequest(c, err.Error(), nil)
	}

	sub, err := Record(&f, values, mf)
	if err != nil {
		return response.InternalError(c, "Failed to record submission")
	}

	return response.Created(c, sub, "Submission recorded successfully")
}

func ListSubmissionsHandler(c *fiber.Ctx) error {
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

	subs, err := ListForForm(f.ID, c.Query("search"))
	if err != nil {
		return response.InternalError(c, "Failed to fetch submissions")
	}

	return response.Success(c, subs, "Submissions retrieved successfully")
}

func DeleteSubmissionHandler(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "Invalid submission ID", nil)
	}
	userID := c.Locals("user_id").(uint)

	var sub models.Submission
	if err := database.DB.Preload("Files").First(&sub, id).Error; err != nil {
		return response.NotFound(c, "Submission")
	}

	var f models.Form
	if err := database.DB.First(&f, sub.FormID).Error; err != nil {
		return response.NotFound(c, "Form")
	}
	if f.UserID != userID {
		return response.Forbidden(c, "Submission belongs to another user's form")
	}

	for _, file := range sub.Files {
		utils.DeleteFile(file.URL)
	}

	if err := database.DB.Delete(&sub).Error; err != nil {
		return response.InternalError(c, "Failed to delete submission")
	}

	return response.NoContent(c)
}
