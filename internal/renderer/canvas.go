package renderer

import (
	"fmt"
	"strings"

	"github.com/eventtalk/formbuilder/internal/builder"
	"github.com/eventtalk/formbuilder/internal/schema"
)

// Values binds submitted or in-progress values by field id for preview
// rendering.
type Values map[string]string

// RenderCanvas renders the ordered field list. In edit mode each widget is
// wrapped with the per-field administrative controls (move up/down, delete)
// and the active field is highlighted; in preview mode the result is the
// live submission form.
func RenderCanvas(form builder.Form, mode Mode, values Values) (string, error) {
	if mode == ModePreview {
		return renderPreviewForm(form, values)
	}

	var b strings.Builder
	b.WriteString(`<div class="fb-canvas">`)
	if len(form.Fields) == 0 {
		b.WriteString(`<div class="fb-canvas-empty">Drag and drop components here</div>`)
	}
	for i, f := range form.Fields {
		widget, err := RenderField(f, ModeEdit, values[f.ID])
		if err != nil {
			return "", err
		}
		active := ""
		if form.ActiveField == f.ID {
			active = " fb-canvas-item-active"
		}
		fmt.Fprintf(&b, `<div class="fb-canvas-item%s" data-field-id="%s">`, active, esc(f.ID))
		fmt.Fprintf(&b, `<div class="fb-canvas-controls">`)
		fmt.Fprintf(&b, `<button type="button" data-action="move-up" data-index="%d"%s aria-label="Move up">&uarr;</button>`,
			i, disabledAt(i == 0))
		fmt.Fprintf(&b, `<button type="button" data-action="move-down" data-index="%d"%s aria-label="Move down">&darr;</button>`,
			i, disabledAt(i == len(form.Fields)-1))
		fmt.Fprintf(&b, `<button type="button" data-action="delete" data-field-id="%s" aria-label="Delete">&times;</button>`,
			esc(f.ID))
		b.WriteString(`</div>`)
		b.WriteString(widget)
		b.WriteString(`</div>`)
	}
	b.WriteString(`</div>`)
	return b.String(), nil
}

func disabledAt(edge bool) string {
	if edge {
		return ` disabled`
	}
	return ""
}

// renderPreviewForm produces the public submission form. A banner field
// switches the page to the two-column (or stacked, for position=top) layout
// with the remaining fields beside it, matching the published page.
func renderPreviewForm(form builder.Form, values Values) (string, error) {
	var banner *schema.Field
	rest := make([]schema.Field, 0, len(form.Fields))
	for i := range form.Fields {
		if form.Fields[i].Type == schema.TypeBannerUpload && banner == nil {
			banner = &form.Fields[i]
			continue
		}
		rest = append(rest, form.Fields[i])
	}

	var b strings.Builder
	action := ""
	if form.ID != "" {
		action = fmt.Sprintf(` action="/api/forms/%s/submit"`, esc(form.ID))
	}
	fmt.Fprintf(&b, `<form class="fb-form" method="post" enctype="multipart/form-data"%s>`, action)

	layout := "single"
	if banner != nil {
		layout = "banner-" + bannerPosition(*banner)
	}
	fmt.Fprintf(&b, `<div class="fb-layout fb-layout-%s">`, layout)

	if banner != nil {
		widget, err := RenderField(*banner, ModePreview, "")
		if err != nil {
			return "", err
		}
		b.WriteString(widget)
	}

	b.WriteString(`<div class="fb-form-body">`)
	name := form.Name
	if name == "" {
		name = "Untitled Form"
	}
	fmt.Fprintf(&b, `<h1 class="fb-form-title">%s</h1>`, clean(name))
	if form.Description != "" {
		fmt.Fprintf(&b, `<p class="fb-form-description">%s</p>`, clean(form.Description))
	}
	b.WriteString(`<div class="fb-form-grid">`)
	for _, f := range rest {
		widget, err := RenderField(f, ModePreview, values[f.ID])
		if err != nil {
			return "", err
		}
		b.WriteString(widget)
	}
	b.WriteString(`</div>`)
	b.WriteString(`<button type="submit" class="fb-submit">Submit</button>`)
	b.WriteString(`</div></div></form>`)
	return b.String(), nil
}
