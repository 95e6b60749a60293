// Package property renders the attribute panel for the active field. The
// panel is stateless: every control writes straight through the store's
// update operation, keyed by the data-prop attribute. The Apply Changes
// button exists for reassurance only; edits are already live.
package property

import (
	"fmt"
	"html"
	"strings"

	"github.com/eventtalk/formbuilder/internal/schema"
)

func esc(s string) string { return html.EscapeString(s) }

// Render produces the property panel for the given field. Callers pass the
// store's active field; RenderEmpty covers the no-selection state.
func Render(f schema.Field) (string, error) {
	sections, err := sectionsFor(f)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, `<div class="fb-properties" data-field-id="%s">`, esc(f.ID))
	fmt.Fprintf(&b, `<h2 class="fb-properties-title">Properties</h2>`)
	fmt.Fprintf(&b, `<p class="fb-properties-type">%s</p>`, f.Type)
	for _, s := range sections {
		b.WriteString(s)
	}
	b.WriteString(`<button type="button" class="fb-apply" data-action="apply">Apply Changes</button>`)
	b.WriteString(`</div>`)
	return b.String(), nil
}

// RenderEmpty is the panel shown when no field is active.
func RenderEmpty() string {
	return `<div class="fb-properties fb-properties-empty">` +
		`<h2 class="fb-properties-title">Properties</h2>` +
		`<p>Select a field to edit its properties</p></div>`
}

// sectionsFor picks the attribute sections relevant to the field type. The
// switch is exhaustive over the registry; an unknown type is a configuration
// error, not something to render around.
func sectionsFor(f schema.Field) ([]string, error) {
	switch f.Type {
	case schema.TypeTextInput, schema.TypeTextArea:
		return []string{
			general(f), textValidation(f), advanced(f),
		}, nil
	case schema.TypeEmail:
		return []string{
			general(f), emailValidation(f), advanced(f),
		}, nil
	case schema.TypeNumber:
		return []string{
			general(f), numberValidation(f), advanced(f),
		}, nil
	case schema.TypeCheckbox, schema.TypeToggle, schema.TypeMobileWithCheckbox:
		return []string{
			general(f), checkboxSettings(f), advanced(f),
		}, nil
	case schema.TypeSelect, schema.TypeRadio:
		return []string{
			general(f), optionsEditor(f), advanced(f),
		}, nil
	case schema.TypeDate:
		return []string{general(f), advanced(f)}, nil
	case schema.TypeFileUpload, schema.TypeResumeUpload, schema.TypeMediaUpload:
		return []string{general(f), uploadSettings(f), advanced(f)}, nil
	case schema.TypeBannerUpload, schema.TypePDFUpload:
		return []string{general(f), blockSettings(f), advanced(f)}, nil
	case schema.TypeCarouselUpload:
		return []string{general(f), carouselSettings(f), blockSettings(f), advanced(f)}, nil
	default:
		return nil, fmt.Errorf("unknown field type %q", f.Type)
	}
}

func textProp(label, prop, value string) string {
	return fmt.Sprintf(
		`<label class="fb-prop"><span>%s</span><input type="text" data-prop="%s" value="%s"></label>`,
		label, prop, esc(value))
}

func boolProp(label, prop string, value bool) string {
	checked := ""
	if value {
		checked = ` checked`
	}
	return fmt.Sprintf(
		`<label class="fb-prop fb-prop-bool"><input type="checkbox" data-prop="%s"%s><span>%s</span></label>`,
		prop, checked, label)
}

func numberProp(label, prop, value string) string {
	return fmt.Sprintf(
		`<label class="fb-prop"><span>%s</span><input type="number" data-prop="%s" value="%s"></label>`,
		label, prop, esc(value))
}

// section wraps a group of property controls. Collapsible sections start
// collapsed.
func section(title string, collapsible bool, controls ...string) string {
	var b strings.Builder
	if collapsible {
		fmt.Fprintf(&b, `<details class="fb-section"><summary>%s</summary>`, title)
	} else {
		fmt.Fprintf(&b, `<div class="fb-section"><h3>%s</h3>`, title)
	}
	for _, c := range controls {
		b.WriteString(c)
	}
	if collapsible {
		b.WriteString(`</details>`)
	} else {
		b.WriteString(`</div>`)
	}
	return b.String()
}

func general(f schema.Field) string {
	controls := []string{
		textProp("Label", "label", f.Label),
		textProp("Helper Text", "helperText", f.HelperText),
		boolProp("Required", "required", f.Required),
	}
	if f.Placeholder != "" || hasPlaceholder(f.Type) {
		controls = append(controls, textProp("Placeholder", "placeholder", f.Placeholder))
	}
	return section("General", false, controls...)
}

func hasPlaceholder(t schema.FieldType) bool {
	switch t {
	case schema.TypeTextInput, schema.TypeTextArea, schema.TypeSelect,
		schema.TypeNumber, schema.TypeEmail:
		return true
	}
	return false
}

func textValidation(f schema.Field) string {
	return section("Validation Rules", true,
		numberProp("Min Length", "minLength", intPtrValue(f.MinLength)),
		numberProp("Max Length", "maxLength", intPtrValue(f.MaxLength)),
	)
}

func emailValidation(f schema.Field) string {
	return section("Validation Rules", true,
		textProp("Pattern", "pattern", f.Pattern),
	)
}

func numberValidation(f schema.Field) string {
	return section("Validation Rules", true,
		numberProp("Min", "min", floatPtrValue(f.Min)),
		numberProp("Max", "max", floatPtrValue(f.Max)),
		numberProp("Step", "step", trimFloat(f.Step)),
	)
}

func checkboxSettings(f schema.Field) string {
	controls := []string{
		textProp("Checkbox Label", "checkboxLabel", f.CheckboxLabel),
		textProp("Checkbox Text", "checkboxText", f.CheckboxText),
	}
	if f.Type == schema.TypeToggle {
		controls = []string{
			textProp("Toggle Label", "toggleLabel", f.ToggleLabel),
			boolProp("Checked by default", "defaultChecked", f.DefaultChecked),
		}
	}
	return section("Settings", false, controls...)
}

func uploadSettings(f schema.Field) string {
	return section("Upload Settings", false,
		textProp("Allowed Types", "allowedTypes", f.AllowedTypes),
		textProp("Hint Text", "fileTypeText", f.FileTypeText),
		numberProp("Max File Size (MB)", "maxFileSize", fmt.Sprint(f.MaxFileSize)),
	)
}

func blockSettings(f schema.Field) string {
	return section("Display", false,
		textProp("Position (left/top)", "position", f.Position),
		boolProp("Allow Upload", "canUpload", f.CanUpload),
		boolProp("Allow Download", "canDownload", f.CanDownload),
		boolProp("Allow View", "canView", f.CanView),
	)
}

func carouselSettings(f schema.Field) string {
	return section("Carousel", false,
		numberProp("Auto-advance (ms)", "autoAdvanceTime", fmt.Sprint(f.AutoAdvance)),
		numberProp("Max Images", "maxImages", fmt.Sprint(f.ImageCap())),
		boolProp("Show Dots", "showDots", f.ShowDots),
	)
}

// optionsEditor renders the per-row label/value table with append and remove
// controls for select and radio fields.
func optionsEditor(f schema.Field) string {
	var b strings.Builder
	b.WriteString(`<div class="fb-section fb-options"><h3>Options</h3>`)
	for i, opt := range f.Options {
		fmt.Fprintf(&b, `<div class="fb-option-row" data-index="%d">`, i)
		fmt.Fprintf(&b, `<input type="text" data-option-prop="label" value="%s">`, esc(opt.Label))
		fmt.Fprintf(&b, `<input type="text" data-option-prop="value" value="%s">`, esc(opt.Value))
		fmt.Fprintf(&b, `<button type="button" data-action="remove-option" data-index="%d">&times;</button>`, i)
		b.WriteString(`</div>`)
	}
	b.WriteString(`<button type="button" data-action="add-option">Add Option</button>`)
	b.WriteString(`</div>`)
	return b.String()
}

func advanced(f schema.Field) string {
	return section("Advanced Settings", true,
		textProp("CSS Classes", "cssClasses", f.CSSClasses),
		textProp("Error Message", "errorMessage", f.ErrMessage),
		boolProp("Hide Label", "hideLabel", f.HideLabel),
		boolProp("Read Only", "readOnly", f.ReadOnly),
		textProp("Grid Column (full/half)", "gridColumn", f.GridColumn),
	)
}

func intPtrValue(p *int) string {
	if p == nil {
		return ""
	}
	return fmt.Sprint(*p)
}

func floatPtrValue(p *float64) string {
	if p == nil {
		return ""
	}
	return trimFloat(*p)
}

func trimFloat(v float64) string {
	s := fmt.Sprintf("%g", v)
	return s
}
