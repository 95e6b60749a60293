package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	FormStatusDraft     = "draft"
	FormStatusPublished = "published"
)

// Form is a form definition document. Schema holds the ordered field list as
// JSON ({"fields":[...]}); field-level structure is owned by internal/schema.
type Form struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	Name         string         `gorm:"size:200" json:"name"`
	Description  string         `gorm:"size:1000" json:"description"`
	Schema       datatypes.JSON `json:"schema"`
	Status       string         `gorm:"size:20;default:'draft';index" json:"status"`
	PublishedURL string         `gorm:"size:500" json:"publishedUrl,omitempty"`
	UserID       uint           `gorm:"index" json:"user_id"`
	Owner        *User          `gorm:"foreignKey:UserID" json:"owner,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	PublishedAt  *time.Time     `json:"published_at,omitempty"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

// Submission is one end-user response against a published form. Data maps
// field id -> submitted value.
type Submission struct {
	ID        uint             `gorm:"primaryKey" json:"id"`
	FormID    uint             `gorm:"index" json:"form_id"`
	Data      datatypes.JSON   `json:"data"`
	Files     []SubmissionFile `gorm:"foreignKey:SubmissionID" json:"files,omitempty"`
	CreatedAt time.Time        `json:"created_at"`
	DeletedAt gorm.DeletedAt   `gorm:"index" json:"-"`
}

// SubmissionFile is a stored upload belonging to a submission.
type SubmissionFile struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	SubmissionID uint      `gorm:"index" json:"submission_id"`
	FieldID      string    `gorm:"size:64;index" json:"field_id"`
	FileName     string    `gorm:"size:255" json:"file_name"`
	URL          string    `gorm:"size:500" json:"url"`
	Type         string    `gorm:"size:100" json:"type"`
	Size         int64     `json:"size"`
	CreatedAt    time.Time `json:"created_at"`
}
