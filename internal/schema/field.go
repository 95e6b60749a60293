package schema

import (
	"encoding/json"
	"fmt"
)

// FieldType discriminates field behavior. The set is closed: renderer and
// property editor switch exhaustively over these values and reject anything
// else instead of falling through.
type FieldType string

const (
	TypeTextInput          FieldType = "textInput"
	TypeTextArea           FieldType = "textArea"
	TypeCheckbox           FieldType = "checkbox"
	TypeSelect             FieldType = "select"
	TypeRadio              FieldType = "radio"
	TypeDate               FieldType = "date"
	TypeToggle             FieldType = "toggle"
	TypeFileUpload         FieldType = "fileUpload"
	TypeResumeUpload       FieldType = "resumeUpload"
	TypeNumber             FieldType = "number"
	TypeEmail              FieldType = "email"
	TypeMobileWithCheckbox FieldType = "mobileWithCheckbox"
	TypeMediaUpload        FieldType = "mediaUpload"
	TypeBannerUpload       FieldType = "bannerUpload"
	TypePDFUpload          FieldType = "pdfUpload"
	TypeCarouselUpload     FieldType = "carouselUpload"
)

const (
	GridFull = "full"
	GridHalf = "half"

	PositionLeft = "left"
	PositionTop  = "top"

	// MaxCarouselImages is the hard cap on a carousel's image list; a
	// field's own MaxImages may be lower but never higher.
	MaxCarouselImages = 8
)

// Option is one selectable entry of a select or radio field. Values need not
// be unique; slice order is display order.
type Option struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// CarouselImage is one slide of a carousel field.
type CarouselImage struct {
	Src      string `json:"src"`
	FileName string `json:"fileName"`
	FileType string `json:"fileType"`
	Alt      string `json:"alt,omitempty"`
}

// Field is one configurable input or display unit inside a form definition.
// ID and Type are assigned at creation and immutable afterwards; everything
// else is editable through a FieldPatch.
type Field struct {
	ID   string    `json:"id"`
	Type FieldType `json:"type"`

	Label       string `json:"label"`
	HelperText  string `json:"helperText,omitempty"`
	Placeholder string `json:"placeholder,omitempty"`
	Required    bool   `json:"required"`
	GridColumn  string `json:"gridColumn,omitempty"`
	ReadOnly    bool   `json:"readOnly,omitempty"`
	HideLabel   bool   `json:"hideLabel,omitempty"`
	CSSClasses  string `json:"cssClasses,omitempty"`
	ErrMessage  string `json:"errorMessage,omitempty"`

	// Text validation
	MinLength *int   `json:"minLength,omitempty"`
	MaxLength *int   `json:"maxLength,omitempty"`
	Pattern   string `json:"pattern,omitempty"`
	Rows      int    `json:"rows,omitempty"`

	// Number validation
	Min  *float64 `json:"min,omitempty"`
	Max  *float64 `json:"max,omitempty"`
	Step float64  `json:"step,omitempty"`

	// Checkbox / toggle / mobile composite
	CheckboxLabel  string `json:"checkboxLabel,omitempty"`
	CheckboxText   string `json:"checkboxText,omitempty"`
	ToggleLabel    string `json:"toggleLabel,omitempty"`
	DefaultChecked bool   `json:"defaultChecked,omitempty"`

	// Selection
	Options []Option `json:"options,omitempty"`

	// Uploads
	AllowedTypes  string `json:"allowedTypes,omitempty"`
	FileTypeText  string `json:"fileTypeText,omitempty"`
	MediaTypeText string `json:"mediaTypeText,omitempty"`
	MaxFileSize   int    `json:"maxFileSize,omitempty"` // megabytes

	// Banner / PDF / carousel blocks
	Position    string          `json:"position,omitempty"`
	BannerURL   string          `json:"bannerUrl,omitempty"`
	PDFURL      string          `json:"pdfUrl,omitempty"`
	Images      []CarouselImage `json:"images,omitempty"`
	MaxImages   int             `json:"maxImages,omitempty"`
	AutoAdvance int             `json:"autoAdvanceTime,omitempty"` // milliseconds
	ShowDots    bool            `json:"showDots,omitempty"`
	CanUpload   bool            `json:"canUpload,omitempty"`
	CanDownload bool            `json:"canDownload,omitempty"`
	CanView     bool            `json:"canView,omitempty"`
}

// Clone returns a deep copy. Slices are copied so callers can never reach
// back into store-owned state.
func (f Field) Clone() Field {
	c := f
	if f.Options != nil {
		c.Options = append([]Option(nil), f.Options...)
	}
	if f.Images != nil {
		c.Images = append([]CarouselImage(nil), f.Images...)
	}
	c.MinLength = cloneIntPtr(f.MinLength)
	c.MaxLength = cloneIntPtr(f.MaxLength)
	c.Min = cloneFloatPtr(f.Min)
	c.Max = cloneFloatPtr(f.Max)
	return c
}

func cloneIntPtr(p *int) *int {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneFloatPtr(p *float64) *float64 {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// Schema is the persisted shape of a form definition, the "schema" object of
// the forms API payload.
type Schema struct {
	Fields []Field `json:"fields"`
}

// ParseSchema decodes a schema document, rejecting fields whose type is not
// in the registry so bad data fails at the boundary instead of at render time.
func ParseSchema(raw []byte) (*Schema, error) {
	var s Schema
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("invalid form schema: %v", err)
	}
	for i, f := range s.Fields {
		if !KnownType(f.Type) {
			return nil, fmt.Errorf("field %d: unknown field type %q", i, f.Type)
		}
		if f.ID == "" {
			return nil, fmt.Errorf("field %d: missing id", i)
		}
	}
	return &s, nil
}

// FieldByID returns the field with the given id, or nil.
func (s *Schema) FieldByID(id string) *Field {
	for i := range s.Fields {
		if s.Fields[i].ID == id {
			return &s.Fields[i]
		}
	}
	return nil
}
