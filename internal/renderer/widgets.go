package renderer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/eventtalk/formbuilder/internal/schema"
)

func renderTextInput(f schema.Field, mode Mode, value string) string {
	var b strings.Builder
	fmt.Fprintf(&b, `<input type="text" class="fb-input"%s`, commonAttrs(f, mode))
	if mode == ModePreview {
		if f.MinLength != nil {
			fmt.Fprintf(&b, ` minlength="%d"`, *f.MinLength)
		}
		if f.MaxLength != nil {
			fmt.Fprintf(&b, ` maxlength="%d"`, *f.MaxLength)
		}
	}
	if value != "" {
		fmt.Fprintf(&b, ` value="%s"`, esc(value))
	}
	b.WriteString(`>`)
	return b.String()
}

func renderTextArea(f schema.Field, mode Mode, value string) string {
	rows := f.Rows
	if rows <= 0 {
		rows = 3
	}
	var b strings.Builder
	fmt.Fprintf(&b, `<textarea class="fb-textarea" rows="%d"%s`, rows, commonAttrs(f, mode))
	if mode == ModePreview {
		if f.MinLength != nil {
			fmt.Fprintf(&b, ` minlength="%d"`, *f.MinLength)
		}
		if f.MaxLength != nil {
			fmt.Fprintf(&b, ` maxlength="%d"`, *f.MaxLength)
		}
	}
	fmt.Fprintf(&b, `>%s</textarea>`, esc(value))
	return b.String()
}

func renderCheckbox(f schema.Field, mode Mode, value string) string {
	checked := ""
	if value == "true" {
		checked = ` checked`
	}
	var b strings.Builder
	b.WriteString(`<div class="fb-checkbox">`)
	fmt.Fprintf(&b, `<input type="checkbox" value="true"%s%s>`, commonAttrs(f, mode), checked)
	fmt.Fprintf(&b, `<span class="fb-checkbox-label">%s</span>`, clean(f.CheckboxLabel))
	if f.CheckboxText != "" {
		fmt.Fprintf(&b, `<p class="fb-checkbox-text">%s</p>`, clean(f.CheckboxText))
	}
	b.WriteString(`</div>`)
	return b.String()
}

func renderSelect(f schema.Field, mode Mode, value string) string {
	var b strings.Builder
	fmt.Fprintf(&b, `<select class="fb-select"%s>`, commonAttrs(f, mode))
	placeholder := f.Placeholder
	if placeholder == "" {
		placeholder = "Please select an option"
	}
	fmt.Fprintf(&b, `<option value="">%s</option>`, clean(placeholder))
	for _, opt := range f.Options {
		selected := ""
		if value != "" && opt.Value == value {
			selected = ` selected`
		}
		fmt.Fprintf(&b, `<option value="%s"%s>%s</option>`,
			esc(opt.Value), selected, clean(opt.Label))
	}
	b.WriteString(`</select>`)
	return b.String()
}

func renderRadio(f schema.Field, mode Mode, value string) string {
	var b strings.Builder
	b.WriteString(`<div class="fb-radio-group" role="radiogroup">`)
	for i, opt := range f.Options {
		checked := ""
		if value != "" && opt.Value == value {
			checked = ` checked`
		}
		disabled := ""
		if mode == ModeEdit {
			disabled = ` disabled`
		}
		required := ""
		if mode == ModePreview && f.Required && i == 0 {
			required = ` required`
		}
		fmt.Fprintf(&b,
			`<label class="fb-radio"><input type="radio" name="%s" value="%s"%s%s%s> %s</label>`,
			inputName(f), esc(opt.Value), checked, disabled, required, clean(opt.Label))
	}
	b.WriteString(`</div>`)
	return b.String()
}

func renderDate(f schema.Field, mode Mode, value string) string {
	var b strings.Builder
	fmt.Fprintf(&b, `<input type="date" class="fb-input"%s`, commonAttrs(f, mode))
	if value != "" {
		fmt.Fprintf(&b, ` value="%s"`, esc(value))
	}
	b.WriteString(`>`)
	return b.String()
}

func renderToggle(f schema.Field, mode Mode, value string) string {
	checked := ""
	if value == "true" || (value == "" && f.DefaultChecked) {
		checked = ` checked`
	}
	var b strings.Builder
	b.WriteString(`<label class="fb-toggle">`)
	fmt.Fprintf(&b, `<input type="checkbox" role="switch" value="true"%s%s>`,
		commonAttrs(f, mode), checked)
	fmt.Fprintf(&b, `<span class="fb-toggle-label">%s</span>`, clean(f.ToggleLabel))
	b.WriteString(`</label>`)
	return b.String()
}

func renderNumber(f schema.Field, mode Mode, value string) string {
	var b strings.Builder
	fmt.Fprintf(&b, `<input type="number" class="fb-input"%s`, commonAttrs(f, mode))
	if mode == ModePreview {
		if f.Min != nil {
			fmt.Fprintf(&b, ` min="%s"`, formatNumber(*f.Min))
		}
		if f.Max != nil {
			fmt.Fprintf(&b, ` max="%s"`, formatNumber(*f.Max))
		}
		if f.Step != 0 {
			fmt.Fprintf(&b, ` step="%s"`, formatNumber(f.Step))
		}
	}
	if value != "" {
		fmt.Fprintf(&b, ` value="%s"`, esc(value))
	}
	b.WriteString(`>`)
	return b.String()
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func renderEmail(f schema.Field, mode Mode, value string) string {
	var b strings.Builder
	fmt.Fprintf(&b, `<input type="email" class="fb-input"%s`, commonAttrs(f, mode))
	if mode == ModePreview && f.Pattern != "" {
		fmt.Fprintf(&b, ` pattern="%s"`, esc(f.Pattern))
	}
	if value != "" {
		fmt.Fprintf(&b, ` value="%s"`, esc(value))
	}
	b.WriteString(`>`)
	return b.String()
}

func renderMobileWithCheckbox(f schema.Field, mode Mode, value string) string {
	var b strings.Builder
	b.WriteString(`<div class="fb-mobile-composite">`)
	fmt.Fprintf(&b, `<input type="tel" class="fb-input"%s`, commonAttrs(f, mode))
	if value != "" {
		fmt.Fprintf(&b, ` value="%s"`, esc(value))
	}
	b.WriteString(`>`)
	disabled := ""
	if mode == ModeEdit {
		disabled = ` disabled`
	}
	fmt.Fprintf(&b,
		`<label class="fb-mobile-checkbox"><input type="checkbox" name="%s" value="true"%s> %s</label>`,
		inputName(f)+"[optin]", disabled, clean(f.CheckboxLabel))
	if f.CheckboxText != "" {
		fmt.Fprintf(&b, `<p class="fb-checkbox-text">%s</p>`, clean(f.CheckboxText))
	}
	b.WriteString(`</div>`)
	return b.String()
}

// renderFileDrop is the drag-and-drop plus click-to-browse surface shared by
// fileUpload, resumeUpload and mediaUpload. The chosen file is read into an
// in-memory data URL client-side and reported with its metadata.
func renderFileDrop(f schema.Field, mode Mode) string {
	hint := f.FileTypeText
	if hint == "" {
		hint = f.MediaTypeText
	}
	disabled := ""
	if mode == ModeEdit {
		disabled = ` disabled`
	}
	var b strings.Builder
	fmt.Fprintf(&b,
		`<div class="fb-dropzone" data-max-file-size="%d" data-allowed-types="%s">`,
		f.MaxFileSize, esc(f.AllowedTypes))
	fmt.Fprintf(&b,
		`<input type="file" id="%s" name="files[%s]" accept="%s"%s>`,
		inputID(f), esc(f.ID), esc(f.AllowedTypes), disabled)
	fmt.Fprintf(&b, `<p class="fb-dropzone-hint">%s</p>`, clean(hint))
	b.WriteString(`</div>`)
	return b.String()
}

func renderBanner(f schema.Field, mode Mode) string {
	var b strings.Builder
	fmt.Fprintf(&b, `<div class="fb-banner fb-banner-%s">`, esc(bannerPosition(f)))
	if f.BannerURL != "" {
		fmt.Fprintf(&b, `<img class="fb-banner-img" src="%s" alt="%s">`,
			esc(f.BannerURL), esc(f.Label))
	} else {
		fmt.Fprintf(&b, `<div class="fb-banner-placeholder"><p>%s</p><p class="fb-helper">%s</p></div>`,
			clean(f.Label), clean(f.HelperText))
	}
	if mode == ModeEdit && f.CanUpload {
		fmt.Fprintf(&b, `<input type="file" accept="%s" data-field-id="%s">`,
			esc(f.AllowedTypes), esc(f.ID))
	}
	if f.BannerURL != "" && f.CanDownload {
		fmt.Fprintf(&b, `<a class="fb-download" href="%s" download>Download</a>`, esc(f.BannerURL))
	}
	b.WriteString(`</div>`)
	return b.String()
}

func renderPDF(f schema.Field, mode Mode) string {
	var b strings.Builder
	fmt.Fprintf(&b, `<div class="fb-pdf fb-pdf-%s">`, esc(bannerPosition(f)))
	if f.PDFURL != "" && f.CanView {
		fmt.Fprintf(&b, `<object class="fb-pdf-viewer" data="%s" type="application/pdf"></object>`,
			esc(f.PDFURL))
	} else {
		fmt.Fprintf(&b, `<div class="fb-pdf-placeholder"><p>%s</p><p class="fb-helper">%s</p></div>`,
			clean(f.Label), clean(f.HelperText))
	}
	if mode == ModeEdit && f.CanUpload {
		fmt.Fprintf(&b, `<input type="file" accept="%s" data-field-id="%s">`,
			esc(f.AllowedTypes), esc(f.ID))
	}
	if f.PDFURL != "" && f.CanDownload {
		fmt.Fprintf(&b, `<a class="fb-download" href="%s" download>Download PDF</a>`, esc(f.PDFURL))
	}
	b.WriteString(`</div>`)
	return b.String()
}

func bannerPosition(f schema.Field) string {
	if f.Position == schema.PositionTop {
		return schema.PositionTop
	}
	return schema.PositionLeft
}
