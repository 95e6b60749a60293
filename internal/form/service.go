package form

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/eventtalk/formbuilder/internal/database"
	"github.com/eventtalk/formbuilder/internal/models"
	"github.com/eventtalk/formbuilder/internal/schema"
	"gorm.io/datatypes"
)

// FormInput is the document shape the editor sends on create and update.
type FormInput struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Schema      json.RawMessage `json:"schema"`
	Status      string          `json:"status"`
	UserID      string          `json:"userId"`
}

// ParseInput validates the incoming document and returns the parsed field
// list. Unknown field types and fields without ids are rejected here so bad
// schemas never reach the database.
func ParseInput(in FormInput) (*schema.Schema, error) {
	if len(in.Schema) == 0 {
		return &schema.Schema{}, nil
	}
	s, err := schema.ParseSchema(in.Schema)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func CreateForm(userID uint, in FormInput) (*models.Form, error) {
	if _, err := ParseInput(in); err != nil {
		return nil, err
	}

	name := in.Name
	if name == "" {
		name = "Untitled Form"
	}

	f := models.Form{
		Name:        name,
		Description: in.Description,
		Schema:      datatypes.JSON(in.Schema),
		Status:      models.FormStatusDraft,
		UserID:      userID,
	}

	if err := database.DB.Create(&f).Error; err != nil {
		return nil, err
	}
	return &f, nil
}

func UpdateForm(formID, userID uint, in FormInput) (*models.Form, error) {
	var f models.Form
	if err := database.DB.First(&f, formID).Error; err != nil {
		return nil, err
	}
	if f.UserID != userID {
		return nil, ErrNotOwner
	}

	if _, err := ParseInput(in); err != nil {
		return nil, err
	}

	if in.Name != "" {
		f.Name = in.Name
	}
	f.Description = in.Description
	if len(in.Schema) > 0 {
		f.Schema = datatypes.JSON(in.Schema)
	}

	if err := database.DB.Save(&f).Error; err != nil {
		return nil, err
	}
	return &f, nil
}

// PublishForm flips a form to published and mints its public URL. Publishing
// an already-published form returns the existing URL unchanged.
func PublishForm(formID, userID uint, publicBaseURL string) (*models.Form, error) {
	var f models.Form
	if err := database.DB.First(&f, formID).Error; err != nil {
		return nil, err
	}
	if f.UserID != userID {
		return nil, ErrNotOwner
	}

	if f.Status == models.FormStatusPublished && f.PublishedURL != "" {
		return &f, nil
	}

	now := time.Now()
	f.Status = models.FormStatusPublished
	f.PublishedURL = publicBaseURL + "/f/" + strconv.FormatUint(uint64(f.ID), 10)
	f.PublishedAt = &now

	if err := database.DB.Save(&f).Error; err != nil {
		return nil, err
	}
	return &f, nil
}

// ErrNotOwner is returned when a user touches a form they don't own.
var ErrNotOwner = fmt.Errorf("form belongs to another user")

// FormSchema decodes the stored schema document of a form.
func FormSchema(f *models.Form) (*schema.Schema, error) {
	if len(f.Schema) == 0 {
		return &schema.Schema{}, nil
	}
	return schema.ParseSchema(f.Schema)
}

func ListForms(userID uint) ([]models.Form, error) {
	var forms []models.Form
	if err := database.DB.Where("user_id = ?", userID).Order("updated_at DESC").Find(&forms).Error; err != nil {
		return nil, err
	}
	return forms, nil
}
