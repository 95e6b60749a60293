// Package renderer turns form fields into HTML widgets. Rendering is a pure
// dispatch on the field type: edit mode produces the inert canvas widget,
// preview mode produces the live control wired for submission.
package renderer

import (
	"fmt"
	"html"
	"strings"

	"github.com/eventtalk/formbuilder/internal/schema"
	"github.com/microcosm-cc/bluemonday"
)

type Mode int

const (
	ModeEdit Mode = iota
	ModePreview
)

// ResumeDelayMS is how long a carousel waits after manual navigation before
// auto-advance resumes.
const ResumeDelayMS = 5000

var policy = bluemonday.UGCPolicy()

// esc escapes a value for use inside an attribute.
func esc(s string) string {
	return html.EscapeString(s)
}

// clean sanitizes author-provided text rendered as element content. The
// policy entity-encodes its output, so no further escaping is applied.
func clean(s string) string {
	return policy.Sanitize(s)
}

// RenderField renders one field widget. Unknown field types return an error
// instead of markup so a stale schema fails loudly at the boundary.
func RenderField(f schema.Field, mode Mode, value string) (string, error) {
	var body string
	switch f.Type {
	case schema.TypeTextInput:
		body = renderTextInput(f, mode, value)
	case schema.TypeTextArea:
		body = renderTextArea(f, mode, value)
	case schema.TypeCheckbox:
		body = renderCheckbox(f, mode, value)
	case schema.TypeSelect:
		body = renderSelect(f, mode, value)
	case schema.TypeRadio:
		body = renderRadio(f, mode, value)
	case schema.TypeDate:
		body = renderDate(f, mode, value)
	case schema.TypeToggle:
		body = renderToggle(f, mode, value)
	case schema.TypeNumber:
		body = renderNumber(f, mode, value)
	case schema.TypeEmail:
		body = renderEmail(f, mode, value)
	case schema.TypeMobileWithCheckbox:
		body = renderMobileWithCheckbox(f, mode, value)
	case schema.TypeFileUpload, schema.TypeResumeUpload, schema.TypeMediaUpload:
		body = renderFileDrop(f, mode)
	case schema.TypeBannerUpload:
		body = renderBanner(f, mode)
	case schema.TypePDFUpload:
		body = renderPDF(f, mode)
	case schema.TypeCarouselUpload:
		body = renderCarousel(f, mode)
	default:
		return "", fmt.Errorf("unknown field type %q", f.Type)
	}

	var b strings.Builder
	classes := "fb-field fb-grid-" + gridColumn(f)
	if f.CSSClasses != "" {
		classes += " " + esc(f.CSSClasses)
	}
	fmt.Fprintf(&b, `<div class="%s" data-field-id="%s" data-field-type="%s">`,
		classes, esc(f.ID), f.Type)
	if !f.HideLabel && !isBlockType(f.Type) {
		required := ""
		if f.Required {
			required = ` <span class="fb-required">*</span>`
		}
		fmt.Fprintf(&b, `<label class="fb-label" for="%s">%s%s</label>`,
			inputID(f), clean(f.Label), required)
	}
	b.WriteString(body)
	if f.HelperText != "" && !isBlockType(f.Type) {
		fmt.Fprintf(&b, `<p class="fb-helper">%s</p>`, clean(f.HelperText))
	}
	if f.ErrMessage != "" {
		fmt.Fprintf(&b, `<p class="fb-error">%s</p>`, clean(f.ErrMessage))
	}
	b.WriteString(`</div>`)
	return b.String(), nil
}

func gridColumn(f schema.Field) string {
	if f.GridColumn == schema.GridHalf {
		return schema.GridHalf
	}
	return schema.GridFull
}

// Block types render their own chrome (banner, pdf, carousel own the whole
// surface, label included).
func isBlockType(t schema.FieldType) bool {
	switch t {
	case schema.TypeBannerUpload, schema.TypePDFUpload, schema.TypeCarouselUpload:
		return true
	}
	return false
}

func inputID(f schema.Field) string {
	return "field-" + esc(f.ID)
}

// inputName is the multipart key the public form posts this field under.
func inputName(f schema.Field) string {
	return "data[" + esc(f.ID) + "]"
}

// commonAttrs assembles the attribute fragment shared by input-like widgets.
// Validation attributes are only enforced in preview mode; the edit-mode
// canvas shows a disabled facsimile.
func commonAttrs(f schema.Field, mode Mode) string {
	var b strings.Builder
	fmt.Fprintf(&b, ` id="%s" name="%s"`, inputID(f), inputName(f))
	if f.Placeholder != "" {
		fmt.Fprintf(&b, ` placeholder="%s"`, esc(f.Placeholder))
	}
	if mode == ModeEdit {
		b.WriteString(` disabled`)
		return b.String()
	}
	if f.Required {
		b.WriteString(` required`)
	}
	if f.ReadOnly {
		b.WriteString(` readonly`)
	}
	return b.String()
}
