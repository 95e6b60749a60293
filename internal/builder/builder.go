// Package builder holds the in-memory form definition being edited: an
// ordered list of fields, form-level metadata and the active-field pointer.
// All mutations are synchronous; readers only ever see full snapshots.
package builder

import (
	"fmt"

	"github.com/eventtalk/formbuilder/internal/schema"
)

const (
	StatusDraft     = "draft"
	StatusPublished = "published"
)

// Form is the editable form definition.
type Form struct {
	ID           string         `json:"id,omitempty"`
	Name         string         `json:"name"`
	Description  string         `json:"description"`
	Fields       []schema.Field `json:"fields"`
	ActiveField  string         `json:"activeField,omitempty"`
	Status       string         `json:"status"`
	PublishedURL string         `json:"publishedUrl,omitempty"`
}

// Clone returns a deep copy of the form.
func (f Form) Clone() Form {
	c := f
	c.Fields = make([]schema.Field, len(f.Fields))
	for i, fld := range f.Fields {
		c.Fields[i] = fld.Clone()
	}
	return c
}

// Builder owns the form state plus the preview/publish modal flags the
// editor UI keys off.
type Builder struct {
	form             Form
	ShowPreviewModal bool
	ShowPublishModal bool
}

func New() *Builder {
	return &Builder{form: initialForm()}
}

func initialForm() Form {
	return Form{Status: StatusDraft, Fields: []schema.Field{}}
}

// Snapshot returns a deep copy of the current form state.
func (b *Builder) Snapshot() Form {
	return b.form.Clone()
}

// SetName / SetDescription edit form-level metadata.
func (b *Builder) SetName(name string)        { b.form.Name = name }
func (b *Builder) SetDescription(desc string) { b.form.Description = desc }

// Load replaces the builder state with a fetched form, e.g. when editing an
// existing draft.
func (b *Builder) Load(f Form) {
	b.form = f.Clone()
	if b.form.Fields == nil {
		b.form.Fields = []schema.Field{}
	}
}

// HasType reports whether any field of the given type exists.
func (b *Builder) HasType(t schema.FieldType) bool {
	for _, f := range b.form.Fields {
		if f.Type == t {
			return true
		}
	}
	return false
}

// AddField appends a fresh field minted from the registry entry for
// paletteKey and makes it active. Unknown keys and second instances of
// singleton-constrained types are silent no-ops, matching the palette's
// drop behavior.
func (b *Builder) AddField(paletteKey string) {
	field, ok := schema.NewField(paletteKey)
	if !ok {
		return
	}
	if schema.Singleton(field.Type) && b.HasType(field.Type) {
		return
	}
	b.form.Fields = append(b.form.Fields, field)
	b.form.ActiveField = field.ID
}

// SetActiveField points the property editor at a field. An empty id or an id
// that no longer exists clears the pointer.
func (b *Builder) SetActiveField(id string) {
	if id != "" && b.fieldIndex(id) < 0 {
		id = ""
	}
	b.form.ActiveField = id
}

// ActiveField returns a copy of the active field, or false when none is set.
func (b *Builder) ActiveField() (schema.Field, bool) {
	i := b.fieldIndex(b.form.ActiveField)
	if i < 0 {
		return schema.Field{}, false
	}
	return b.form.Fields[i].Clone(), true
}

// UpdateFieldProperties merges a patch into the field with the given id.
// No-op when the id is unknown. Field identity (id, type) is not patchable.
func (b *Builder) UpdateFieldProperties(id string, patch schema.FieldPatch) {
	i := b.fieldIndex(id)
	if i < 0 {
		return
	}
	patch.Apply(&b.form.Fields[i])
}

// MoveFieldUp swaps fields[index] with its predecessor. Boundary and
// out-of-range indices are no-ops.
func (b *Builder) MoveFieldUp(index int) {
	if index <= 0 || index >= len(b.form.Fields) {
		return
	}
	fs := b.form.Fields
	fs[index], fs[index-1] = fs[index-1], fs[index]
}

// MoveFieldDown swaps fields[index] with its successor. Boundary and
// out-of-range indices are no-ops.
func (b *Builder) MoveFieldDown(index int) {
	if index < 0 || index >= len(b.form.Fields)-1 {
		return
	}
	fs := b.form.Fields
	fs[index], fs[index+1] = fs[index+1], fs[index]
}

// DeleteField removes the field with the given id and clears the active
// pointer if it referenced it.
func (b *Builder) DeleteField(id string) {
	i := b.fieldIndex(id)
	if i < 0 {
		return
	}
	b.form.Fields = append(b.form.Fields[:i], b.form.Fields[i+1:]...)
	if b.form.ActiveField == id {
		b.form.ActiveField = ""
	}
}

// Reset restores the all-defaults draft state and closes any open modals.
func (b *Builder) Reset() {
	b.form = initialForm()
	b.ShowPreviewModal = false
	b.ShowPublishModal = false
}

// MarkPublished records a successful publish.
func (b *Builder) MarkPublished(publishedURL string) {
	b.form.Status = StatusPublished
	b.form.PublishedURL = publishedURL
}

// SetID records the server-assigned identifier after the first save.
func (b *Builder) SetID(id string) {
	b.form.ID = id
}

func (b *Builder) fieldIndex(id string) int {
	if id == "" {
		return -1
	}
	for i := range b.form.Fields {
		if b.form.Fields[i].ID == id {
			return i
		}
	}
	return -1
}

// AppendOption adds a synthesized "Option N+1" row to a select/radio field,
// the way the property editor's Add Option button does.
func (b *Builder) AppendOption(fieldID string) {
	i := b.fieldIndex(fieldID)
	if i < 0 {
		return
	}
	f := &b.form.Fields[i]
	if f.Type != schema.TypeSelect && f.Type != schema.TypeRadio {
		return
	}
	n := len(f.Options) + 1
	f.Options = append(f.Options, schema.Option{
		Label: fmt.Sprintf("Option %d", n),
		Value: fmt.Sprintf("option%d", n),
	})
}

// UpdateOption edits one option row by index.
func (b *Builder) UpdateOption(fieldID string, index int, opt schema.Option) {
	i := b.fieldIndex(fieldID)
	if i < 0 {
		return
	}
	f := &b.form.Fields[i]
	if index < 0 || index >= len(f.Options) {
		return
	}
	f.Options[index] = opt
}

// RemoveOption deletes one option row by index.
func (b *Builder) RemoveOption(fieldID string, index int) {
	i := b.fieldIndex(fieldID)
	if i < 0 {
		return
	}
	f := &b.form.Fields[i]
	if index < 0 || index >= len(f.Options) {
		return
	}
	f.Options = append(f.Options[:index], f.Options[index+1:]...)
}

// AddCarouselImage appends an image to a carousel field. Returns an error
// when the effective image cap would be exceeded; the list is never
// truncated-and-accepted.
func (b *Builder) AddCarouselImage(fieldID string, img schema.CarouselImage) error {
	i := b.fieldIndex(fieldID)
	if i < 0 {
		return fmt.Errorf("field %q not found", fieldID)
	}
	f := &b.form.Fields[i]
	if f.Type != schema.TypeCarouselUpload {
		return fmt.Errorf("field %q is not a carousel", fieldID)
	}
	if len(f.Images) >= f.ImageCap() {
		return fmt.Errorf("carousel accepts at most %d images", f.ImageCap())
	}
	f.Images = append(f.Images, img)
	return nil
}

// RemoveCarouselImage deletes one carousel image by index.
func (b *Builder) RemoveCarouselImage(fieldID string, index int) {
	i := b.fieldIndex(fieldID)
	if i < 0 {
		return
	}
	f := &b.form.Fields[i]
	if f.Type != schema.TypeCarouselUpload || index < 0 || index >= len(f.Images) {
		return
	}
	f.Images = append(f.Images[:index], f.Images[index+1:]...)
}
