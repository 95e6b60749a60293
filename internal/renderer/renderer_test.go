package renderer_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/eventtalk/formbuilder/internal/builder"
	"github.com/eventtalk/formbuilder/internal/renderer"
	"github.com/eventtalk/formbuilder/internal/schema"
	"github.com/stretchr/testify/assert"
)

// ========== FIELD DISPATCH ==========

func TestRenderFieldDispatch(t *testing.T) {
	t.Run("Every palette entry renders in both modes", func(t *testing.T) {
		for _, key := range schema.PaletteKeys() {
			f, ok := schema.NewField(key)
			assert.True(t, ok)

			for _, mode := range []renderer.Mode{renderer.ModeEdit, renderer.ModePreview} {
				html, err := renderer.RenderField(f, mode, "")
				assert.NoError(t, err, "palette key %q", key)
				assert.Contains(t, html, `data-field-id="`+f.ID+`"`)
			}
		}
	})

	t.Run("Error - Unknown type fails loudly", func(t *testing.T) {
		f := schema.Field{ID: "x", Type: "hologram"}
		_, err := renderer.RenderField(f, renderer.ModePreview, "")
		assert.Error(t, err)
	})
}

func TestFieldChrome(t *testing.T) {
	t.Run("Label with required marker", func(t *testing.T) {
		f, _ := schema.NewField(string(schema.TypeTextInput))
		f.Label = "Full Name"
		f.Required = true

		html, err := renderer.RenderField(f, renderer.ModePreview, "")
		assert.NoError(t, err)
		assert.Contains(t, html, "Full Name")
		assert.Contains(t, html, `<span class="fb-required">*</span>`)
		assert.Contains(t, html, `<p class="fb-helper">`)
	})

	t.Run("HideLabel suppresses the label", func(t *testing.T) {
		f, _ := schema.NewField(string(schema.TypeTextInput))
		f.HideLabel = true

		html, err := renderer.RenderField(f, renderer.ModePreview, "")
		assert.NoError(t, err)
		assert.NotContains(t, html, `<label`)
	})

	t.Run("Half grid column class", func(t *testing.T) {
		f, _ := schema.NewField(string(schema.TypeTextInput))
		f.GridColumn = schema.GridHalf

		html, _ := renderer.RenderField(f, renderer.ModePreview, "")
		assert.Contains(t, html, "fb-grid-half")
	})

	t.Run("Label HTML is escaped", func(t *testing.T) {
		f, _ := schema.NewField(string(schema.TypeTextInput))
		f.Label = `<script>alert("x")</script>Name`

		html, _ := renderer.RenderField(f, renderer.ModePreview, "")
		assert.NotContains(t, html, "<script>")
	})

	t.Run("Entities are encoded once", func(t *testing.T) {
		f, _ := schema.NewField(string(schema.TypeTextInput))
		f.Label = "Q&A Session"

		html, _ := renderer.RenderField(f, renderer.ModePreview, `He said "hi"`)
		assert.Contains(t, html, "Q&amp;A Session")
		assert.Contains(t, html, `value="He said &#34;hi&#34;"`)
		assert.NotContains(t, html, "&amp;amp;")
		assert.NotContains(t, html, "&amp;#34;")
	})
}

func TestModeAttributes(t *testing.T) {
	f, _ := schema.NewField(string(schema.TypeTextInput))
	f.Required = true
	min := 2
	f.MinLength = &min

	t.Run("Edit mode renders disabled facsimile", func(t *testing.T) {
		html, _ := renderer.RenderField(f, renderer.ModeEdit, "")
		assert.Contains(t, html, " disabled")
		assert.NotContains(t, html, " required")
		assert.NotContains(t, html, "minlength")
	})

	t.Run("Preview mode enforces validation attrs", func(t *testing.T) {
		html, _ := renderer.RenderField(f, renderer.ModePreview, "")
		assert.Contains(t, html, " required")
		assert.Contains(t, html, `minlength="2"`)
		assert.NotContains(t, html, " disabled")
	})

	t.Run("Submission name uses the data[] convention", func(t *testing.T) {
		html, _ := renderer.RenderField(f, renderer.ModePreview, "")
		assert.Contains(t, html, fmt.Sprintf(`name="data[%s]"`, f.ID))
	})
}

// ========== WIDGET SPECIFICS ==========

func TestSelectWidget(t *testing.T) {
	f, _ := schema.NewField(string(schema.TypeSelect))

	html, _ := renderer.RenderField(f, renderer.ModePreview, "option2")
	assert.Contains(t, html, `<option value="">Please select an option</option>`)
	assert.Contains(t, html, `<option value="option2" selected>Option 2</option>`)
}

func TestRadioWidget(t *testing.T) {
	f, _ := schema.NewField(schema.PresetGender)

	html, _ := renderer.RenderField(f, renderer.ModePreview, "")
	assert.Contains(t, html, `role="radiogroup"`)
	// Required lands on the first input only; one per group satisfies the
	// browser's constraint validation.
	assert.Equal(t, 1, strings.Count(html, " required"))
}

func TestToggleWidget(t *testing.T) {
	f, _ := schema.NewField(string(schema.TypeToggle))
	f.DefaultChecked = true

	html, _ := renderer.RenderField(f, renderer.ModePreview, "")
	assert.Contains(t, html, `role="switch"`)
	assert.Contains(t, html, " checked")

	html, _ = renderer.RenderField(f, renderer.ModePreview, "false")
	assert.NotContains(t, html, " checked")
}

func TestFileDropWidget(t *testing.T) {
	f, _ := schema.NewField(string(schema.TypeFileUpload))

	html, _ := renderer.RenderField(f, renderer.ModePreview, "")
	assert.Contains(t, html, `data-max-file-size="10"`)
	assert.Contains(t, html, fmt.Sprintf(`name="files[%s]"`, f.ID))
}

func TestBannerWidget(t *testing.T) {
	f, _ := schema.NewField(string(schema.TypeBannerUpload))

	t.Run("Placeholder before upload", func(t *testing.T) {
		html, _ := renderer.RenderField(f, renderer.ModePreview, "")
		assert.Contains(t, html, "fb-banner-placeholder")
		assert.NotContains(t, html, "<img")
	})

	t.Run("Image after upload", func(t *testing.T) {
		f := f.Clone()
		f.BannerURL = "/uploads/images/banner.png"
		html, _ := renderer.RenderField(f, renderer.ModePreview, "")
		assert.Contains(t, html, `src="/uploads/images/banner.png"`)
		assert.Contains(t, html, "Download")
	})

	t.Run("Edit mode offers upload input when allowed", func(t *testing.T) {
		html, _ := renderer.RenderField(f, renderer.ModeEdit, "")
		assert.Contains(t, html, `type="file"`)
	})

	t.Run("Position top changes wrapper class", func(t *testing.T) {
		f := f.Clone()
		f.Position = schema.PositionTop
		html, _ := renderer.RenderField(f, renderer.ModePreview, "")
		assert.Contains(t, html, "fb-banner-top")
	})
}

func TestCarouselWidget(t *testing.T) {
	f, _ := schema.NewField(string(schema.TypeCarouselUpload))
	f.Images = []schema.CarouselImage{
		{Src: "/uploads/images/a.png", Alt: "Slide A"},
		{Src: "/uploads/images/b.png", Alt: "Slide B"},
	}

	html, err := renderer.RenderField(f, renderer.ModePreview, "")
	assert.NoError(t, err)
	assert.Contains(t, html, `data-auto-advance="20000"`)
	assert.Contains(t, html, fmt.Sprintf(`data-resume-delay="%d"`, renderer.ResumeDelayMS))
	assert.Contains(t, html, `data-max-images="8"`)
	assert.Equal(t, 2, strings.Count(html, `<div class="fb-slide`))
	assert.Equal(t, 2, strings.Count(html, `class="fb-dot`))
}

// ========== CANVAS ==========

func TestRenderCanvasEdit(t *testing.T) {
	b := builder.New()
	b.AddField(string(schema.TypeTextInput))
	b.AddField(string(schema.TypeEmail))
	form := b.Snapshot()

	html, err := renderer.RenderCanvas(form, renderer.ModeEdit, nil)
	assert.NoError(t, err)

	t.Run("Controls on every item, edges disabled", func(t *testing.T) {
		assert.Equal(t, 2, strings.Count(html, `data-action="move-up"`))
		assert.Equal(t, 2, strings.Count(html, `data-action="move-down"`))
		assert.Equal(t, 2, strings.Count(html, `data-action="delete"`))
		assert.Contains(t, html, `data-action="move-up" data-index="0" disabled`)
		assert.Contains(t, html, `data-action="move-down" data-index="1" disabled`)
	})

	t.Run("Active field highlighted", func(t *testing.T) {
		assert.Equal(t, 1, strings.Count(html, "fb-canvas-item-active"))
	})

	t.Run("Empty canvas shows drop hint", func(t *testing.T) {
		empty, err := renderer.RenderCanvas(builder.New().Snapshot(), renderer.ModeEdit, nil)
		assert.NoError(t, err)
		assert.Contains(t, empty, "Drag and drop components here")
	})
}

func TestRenderCanvasPreview(t *testing.T) {
	b := builder.New()
	b.SetName("Event Signup")
	b.AddField(string(schema.TypeTextInput))
	b.SetID("42")
	form := b.Snapshot()

	t.Run("Form posts to the submit endpoint", func(t *testing.T) {
		html, err := renderer.RenderCanvas(form, renderer.ModePreview, nil)
		assert.NoError(t, err)
		assert.Contains(t, html, `action="/api/forms/42/submit"`)
		assert.Contains(t, html, `enctype="multipart/form-data"`)
		assert.Contains(t, html, "Event Signup")
	})

	t.Run("Unsaved form omits action", func(t *testing.T) {
		unsaved := builder.New()
		unsaved.AddField(string(schema.TypeTextInput))
		html, err := renderer.RenderCanvas(unsaved.Snapshot(), renderer.ModePreview, nil)
		assert.NoError(t, err)
		assert.NotContains(t, html, "action=")
	})

	t.Run("Untitled fallback", func(t *testing.T) {
		unnamed := builder.New()
		html, err := renderer.RenderCanvas(unnamed.Snapshot(), renderer.ModePreview, nil)
		assert.NoError(t, err)
		assert.Contains(t, html, "Untitled Form")
	})

	t.Run("Banner switches to two-column layout", func(t *testing.T) {
		wb := builder.New()
		wb.AddField(string(schema.TypeBannerUpload))
		wb.AddField(string(schema.TypeTextInput))
		html, err := renderer.RenderCanvas(wb.Snapshot(), renderer.ModePreview, nil)
		assert.NoError(t, err)
		assert.Contains(t, html, "fb-layout-banner-left")
	})

	t.Run("Values bind into widgets", func(t *testing.T) {
		html, err := renderer.RenderCanvas(form, renderer.ModePreview, renderer.Values{
			form.Fields[0].ID: "Jane",
		})
		assert.NoError(t, err)
		assert.Contains(t, html, `value="Jane"`)
	})
}
