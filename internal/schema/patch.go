package schema

// FieldPatch is a partial update to a field's editable attributes. Pointer
// fields distinguish "not present" from zero values so the merge stays
// shallow. Identity (id, type) is deliberately not representable here: the
// generic update path in the original client let callers clobber both, which
// is treated as a bug, not a contract.
type FieldPatch struct {
	Label       *string `json:"label,omitempty"`
	HelperText  *string `json:"helperText,omitempty"`
	Placeholder *string `json:"placeholder,omitempty"`
	Required    *bool   `json:"required,omitempty"`
	GridColumn  *string `json:"gridColumn,omitempty"`
	ReadOnly    *bool   `json:"readOnly,omitempty"`
	HideLabel   *bool   `json:"hideLabel,omitempty"`
	CSSClasses  *string `json:"cssClasses,omitempty"`
	ErrMessage  *string `json:"errorMessage,omitempty"`

	MinLength *int    `json:"minLength,omitempty"`
	MaxLength *int    `json:"maxLength,omitempty"`
	Pattern   *string `json:"pattern,omitempty"`
	Rows      *int    `json:"rows,omitempty"`

	Min  *float64 `json:"min,omitempty"`
	Max  *float64 `json:"max,omitempty"`
	Step *float64 `json:"step,omitempty"`

	CheckboxLabel  *string `json:"checkboxLabel,omitempty"`
	CheckboxText   *string `json:"checkboxText,omitempty"`
	ToggleLabel    *string `json:"toggleLabel,omitempty"`
	DefaultChecked *bool   `json:"defaultChecked,omitempty"`

	Options *[]Option `json:"options,omitempty"`

	AllowedTypes  *string `json:"allowedTypes,omitempty"`
	FileTypeText  *string `json:"fileTypeText,omitempty"`
	MediaTypeText *string `json:"mediaTypeText,omitempty"`
	MaxFileSize   *int    `json:"maxFileSize,omitempty"`

	Position    *string          `json:"position,omitempty"`
	BannerURL   *string          `json:"bannerUrl,omitempty"`
	PDFURL      *string          `json:"pdfUrl,omitempty"`
	Images      *[]CarouselImage `json:"images,omitempty"`
	MaxImages   *int             `json:"maxImages,omitempty"`
	AutoAdvance *int             `json:"autoAdvanceTime,omitempty"`
	ShowDots    *bool            `json:"showDots,omitempty"`
	CanUpload   *bool            `json:"canUpload,omitempty"`
	CanDownload *bool            `json:"canDownload,omitempty"`
	CanView     *bool            `json:"canView,omitempty"`
}

// Apply merges the set attributes of p into f. MaxImages is clamped to the
// hard cap and an images list longer than the effective cap is rejected by
// leaving the previous list in place.
func (p FieldPatch) Apply(f *Field) {
	setString(&f.Label, p.Label)
	setString(&f.HelperText, p.HelperText)
	setString(&f.Placeholder, p.Placeholder)
	setBool(&f.Required, p.Required)
	setString(&f.GridColumn, p.GridColumn)
	setBool(&f.ReadOnly, p.ReadOnly)
	setBool(&f.HideLabel, p.HideLabel)
	setString(&f.CSSClasses, p.CSSClasses)
	setString(&f.ErrMessage, p.ErrMessage)

	if p.MinLength != nil {
		f.MinLength = cloneIntPtr(p.MinLength)
	}
	if p.MaxLength != nil {
		f.MaxLength = cloneIntPtr(p.MaxLength)
	}
	setString(&f.Pattern, p.Pattern)
	setInt(&f.Rows, p.Rows)

	if p.Min != nil {
		f.Min = cloneFloatPtr(p.Min)
	}
	if p.Max != nil {
		f.Max = cloneFloatPtr(p.Max)
	}
	if p.Step != nil {
		f.Step = *p.Step
	}

	setString(&f.CheckboxLabel, p.CheckboxLabel)
	setString(&f.CheckboxText, p.CheckboxText)
	setString(&f.ToggleLabel, p.ToggleLabel)
	setBool(&f.DefaultChecked, p.DefaultChecked)

	if p.Options != nil {
		f.Options = append([]Option(nil), (*p.Options)...)
	}

	setString(&f.AllowedTypes, p.AllowedTypes)
	setString(&f.FileTypeText, p.FileTypeText)
	setString(&f.MediaTypeText, p.MediaTypeText)
	setInt(&f.MaxFileSize, p.MaxFileSize)

	setString(&f.Position, p.Position)
	setString(&f.BannerURL, p.BannerURL)
	setString(&f.PDFURL, p.PDFURL)

	if p.MaxImages != nil {
		f.MaxImages = *p.MaxImages
		if f.MaxImages > MaxCarouselImages || f.MaxImages <= 0 {
			f.MaxImages = MaxCarouselImages
		}
	}
	if p.Images != nil && len(*p.Images) <= f.ImageCap() {
		f.Images = append([]CarouselImage(nil), (*p.Images)...)
	}

	setInt(&f.AutoAdvance, p.AutoAdvance)
	setBool(&f.ShowDots, p.ShowDots)
	setBool(&f.CanUpload, p.CanUpload)
	setBool(&f.CanDownload, p.CanDownload)
	setBool(&f.CanView, p.CanView)
}

// ImageCap is the effective carousel image limit for this field.
func (f *Field) ImageCap() int {
	if f.MaxImages > 0 && f.MaxImages <= MaxCarouselImages {
		return f.MaxImages
	}
	return MaxCarouselImages
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func setBool(dst *bool, src *bool) {
	if src != nil {
		*dst = *src
	}
}

func setInt(dst *int, src *int) {
	if src != nil {
		*dst = *src
	}
}
