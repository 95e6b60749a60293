package schema

import "github.com/google/uuid"

// Palette entry names. Most map 1:1 to a field type; presets like "gender"
// reuse an existing type with different defaults.
const PresetGender = "gender"

func intPtr(v int) *int { return &v }

const docUploadTypes = "image/*,application/pdf,application/msword," +
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document"

// defaults holds the registry: palette key -> freshly addable field state.
// Copied (never aliased) on every lookup.
var defaults = map[string]Field{
	string(TypeTextInput): {
		Type:        TypeTextInput,
		Label:       "Text Input",
		HelperText:  "Enter text here",
		Placeholder: "Type here...",
		GridColumn:  GridFull,
	},
	string(TypeTextArea): {
		Type:        TypeTextArea,
		Label:       "Text Area",
		HelperText:  "Enter longer text here",
		Placeholder: "Type here...",
		Rows:        3,
	},
	string(TypeCheckbox): {
		Type:          TypeCheckbox,
		Label:         "Checkbox",
		HelperText:    "Select options",
		CheckboxLabel: "I agree",
		CheckboxText:  "By checking this box, you agree to our terms and conditions.",
	},
	string(TypeSelect): {
		Type:        TypeSelect,
		Label:       "Select List",
		HelperText:  "Choose from options",
		Placeholder: "Please select an option",
		Options: []Option{
			{Label: "Option 1", Value: "option1"},
			{Label: "Option 2", Value: "option2"},
			{Label: "Option 3", Value: "option3"},
		},
	},
	string(TypeRadio): {
		Type:       TypeRadio,
		Label:      "Radio Button",
		HelperText: "Select one option",
		Options: []Option{
			{Label: "Option 1", Value: "option1"},
			{Label: "Option 2", Value: "option2"},
			{Label: "Option 3", Value: "option3"},
		},
	},
	PresetGender: {
		Type:     TypeRadio,
		Label:    "Gender",
		Required: true,
		Options: []Option{
			{Label: "Male", Value: "male"},
			{Label: "Female", Value: "female"},
			{Label: "Other", Value: "other"},
		},
	},
	string(TypeDate): {
		Type:       TypeDate,
		Label:      "Date/Time Picker",
		HelperText: "Select a date",
	},
	string(TypeToggle): {
		Type:        TypeToggle,
		Label:       "Toggle Switch",
		HelperText:  "Toggle this option",
		ToggleLabel: "Enable",
	},
	string(TypeFileUpload): {
		Type:         TypeFileUpload,
		Label:        "File Upload",
		HelperText:   "Upload your documents",
		AllowedTypes: docUploadTypes,
		FileTypeText: "PNG, JPG, PDF, DOC up to 10MB",
		MaxFileSize:  10,
	},
	string(TypeResumeUpload): {
		Type:         TypeResumeUpload,
		Label:        "Resume Upload",
		AllowedTypes: docUploadTypes,
		FileTypeText: "PNG, JPG, PDF, DOC up to 10MB",
		MaxFileSize:  10,
	},
	string(TypeNumber): {
		Type:        TypeNumber,
		Label:       "Number Input",
		HelperText:  "Enter a number",
		Placeholder: "0",
		Step:        1,
	},
	string(TypeEmail): {
		Type:        TypeEmail,
		Label:       "Email Input",
		HelperText:  "Enter your email address",
		Placeholder: "email@example.com",
		Pattern:     `^[^\s@]+@[^\s@]+\.[^\s@]+$`,
	},
	string(TypeMobileWithCheckbox): {
		Type:          TypeMobileWithCheckbox,
		Label:         "Mobile Number",
		CheckboxLabel: "Checkbox",
		CheckboxText:  "Check this box",
		GridColumn:    GridFull,
	},
	string(TypeMediaUpload): {
		Type:          TypeMediaUpload,
		Label:         "Audio/Video Upload",
		HelperText:    "Upload audio or video files",
		AllowedTypes:  "audio/*,video/*",
		MediaTypeText: "MP3, WAV, MP4, MOV up to 10MB",
		MaxFileSize:   10,
	},
	string(TypeBannerUpload): {
		Type:         TypeBannerUpload,
		Label:        "Upload Banner",
		HelperText:   "PNG, JPG, GIF up to 10MB",
		AllowedTypes: "image/*",
		FileTypeText: "PNG, JPG, GIF up to 10MB",
		MaxFileSize:  10,
		Position:     PositionLeft,
		CanUpload:    true,
		CanDownload:  true,
		CanView:      true,
	},
	string(TypePDFUpload): {
		Type:         TypePDFUpload,
		Label:        "PDF Upload",
		HelperText:   "PDF up to 10MB",
		AllowedTypes: "application/pdf",
		FileTypeText: "PDF up to 10MB",
		MaxFileSize:  10,
		Position:     PositionLeft,
		CanUpload:    true,
		CanDownload:  true,
		CanView:      true,
	},
	string(TypeCarouselUpload): {
		Type:         TypeCarouselUpload,
		Label:        "Carousel Upload",
		HelperText:   "PNG images up to 5MB each (max 8 images)",
		AllowedTypes: "image/png",
		FileTypeText: "PNG up to 5MB each (max 8 images)",
		MaxFileSize:  5,
		MaxImages:    MaxCarouselImages,
		AutoAdvance:  20000,
		Position:     PositionLeft,
		ShowDots:     true,
		CanUpload:    true,
		CanDownload:  true,
		CanView:      true,
	},
}

// singletonTypes may appear at most once per form.
var singletonTypes = map[FieldType]bool{
	TypeBannerUpload:   true,
	TypePDFUpload:      true,
	TypeCarouselUpload: true,
}

// NewField mints a field from the registry entry for the given palette key,
// with a fresh id. Returns false for unknown keys.
func NewField(paletteKey string) (Field, bool) {
	def, ok := defaults[paletteKey]
	if !ok {
		return Field{}, false
	}
	f := def.Clone()
	f.ID = uuid.New().String()
	return f, true
}

// KnownType reports whether t is a registered field type. Presets are palette
// entries, not types, so they don't count here.
func KnownType(t FieldType) bool {
	_, ok := defaults[string(t)]
	return ok && string(t) != PresetGender
}

// Singleton reports whether at most one field of type t may exist per form.
func Singleton(t FieldType) bool {
	return singletonTypes[t]
}

// PaletteKeys lists all registry entries in stable display order.
func PaletteKeys() []string {
	return []string{
		string(TypeTextInput), string(TypeTextArea), string(TypeCheckbox),
		string(TypeSelect), string(TypeRadio), PresetGender,
		string(TypeDate), string(TypeToggle), string(TypeFileUpload),
		string(TypeResumeUpload), string(TypeNumber), string(TypeEmail),
		string(TypeMobileWithCheckbox), string(TypeMediaUpload),
		string(TypeBannerUpload), string(TypePDFUpload), string(TypeCarouselUpload),
	}
}
