package builder_test

import (
	"sort"
	"testing"

	"github.com/eventtalk/formbuilder/internal/builder"
	"github.com/eventtalk/formbuilder/internal/schema"
	"github.com/stretchr/testify/assert"
)

func fieldIDs(f builder.Form) []string {
	ids := make([]string, len(f.Fields))
	for i, fld := range f.Fields {
		ids[i] = fld.ID
	}
	return ids
}

func strPtr(s string) *string { return &s }

// ========== ADD / ACTIVATE ==========

func TestAddField(t *testing.T) {
	t.Run("Appends and activates", func(t *testing.T) {
		b := builder.New()
		b.AddField(string(schema.TypeTextInput))
		b.AddField(string(schema.TypeEmail))

		snap := b.Snapshot()
		assert.Len(t, snap.Fields, 2)
		assert.Equal(t, snap.Fields[1].ID, snap.ActiveField)
	})

	t.Run("Every add mints a unique id", func(t *testing.T) {
		b := builder.New()
		for i := 0; i < 10; i++ {
			b.AddField(string(schema.TypeTextInput))
		}

		ids := fieldIDs(b.Snapshot())
		seen := map[string]bool{}
		for _, id := range ids {
			assert.False(t, seen[id], "duplicate id %q", id)
			seen[id] = true
		}
	})

	t.Run("Unknown palette key is a no-op", func(t *testing.T) {
		b := builder.New()
		b.AddField("hologram")
		assert.Empty(t, b.Snapshot().Fields)
	})

	t.Run("Second singleton add is a silent no-op", func(t *testing.T) {
		for _, key := range []string{
			string(schema.TypeBannerUpload),
			string(schema.TypePDFUpload),
			string(schema.TypeCarouselUpload),
		} {
			b := builder.New()
			b.AddField(key)
			b.AddField(key)
			assert.Len(t, b.Snapshot().Fields, 1, "palette key %q", key)
		}
	})

	t.Run("Non-singleton types repeat freely", func(t *testing.T) {
		b := builder.New()
		b.AddField(string(schema.TypeFileUpload))
		b.AddField(string(schema.TypeFileUpload))
		assert.Len(t, b.Snapshot().Fields, 2)
	})
}

func TestSetActiveField(t *testing.T) {
	b := builder.New()
	b.AddField(string(schema.TypeTextInput))
	id := b.Snapshot().Fields[0].ID

	t.Run("Known id activates", func(t *testing.T) {
		b.SetActiveField(id)
		f, ok := b.ActiveField()
		assert.True(t, ok)
		assert.Equal(t, id, f.ID)
	})

	t.Run("Unknown id clears", func(t *testing.T) {
		b.SetActiveField("nope")
		_, ok := b.ActiveField()
		assert.False(t, ok)
		assert.Empty(t, b.Snapshot().ActiveField)
	})

	t.Run("ActiveField returns a copy", func(t *testing.T) {
		b.SetActiveField(id)
		f, _ := b.ActiveField()
		f.Label = "Mutated"

		again, _ := b.ActiveField()
		assert.NotEqual(t, "Mutated", again.Label)
	})
}

// ========== PATCH ==========

func TestUpdateFieldProperties(t *testing.T) {
	t.Run("Patch reaches only the targeted field", func(t *testing.T) {
		b := builder.New()
		b.AddField(string(schema.TypeTextInput))
		b.AddField(string(schema.TypeTextInput))
		snap := b.Snapshot()

		b.UpdateFieldProperties(snap.Fields[0].ID, schema.FieldPatch{Label: strPtr("First")})

		snap = b.Snapshot()
		assert.Equal(t, "First", snap.Fields[0].Label)
		assert.Equal(t, "Text Input", snap.Fields[1].Label)
	})

	t.Run("Unknown id is a no-op", func(t *testing.T) {
		b := builder.New()
		b.AddField(string(schema.TypeTextInput))
		before := b.Snapshot()

		b.UpdateFieldProperties("nope", schema.FieldPatch{Label: strPtr("X")})
		assert.Equal(t, before, b.Snapshot())
	})

	t.Run("Identity survives any patch", func(t *testing.T) {
		b := builder.New()
		b.AddField(string(schema.TypeEmail))
		snap := b.Snapshot()
		id := snap.Fields[0].ID

		b.UpdateFieldProperties(id, schema.FieldPatch{Label: strPtr("Contact")})

		snap = b.Snapshot()
		assert.Equal(t, id, snap.Fields[0].ID)
		assert.Equal(t, schema.TypeEmail, snap.Fields[0].Type)
	})
}

// ========== REORDER ==========

func TestMoveField(t *testing.T) {
	setup := func() (*builder.Builder, []string) {
		b := builder.New()
		b.AddField(string(schema.TypeTextInput))
		b.AddField(string(schema.TypeEmail))
		b.AddField(string(schema.TypeNumber))
		return b, fieldIDs(b.Snapshot())
	}

	t.Run("Move up swaps with predecessor", func(t *testing.T) {
		b, ids := setup()
		b.MoveFieldUp(1)
		assert.Equal(t, []string{ids[1], ids[0], ids[2]}, fieldIDs(b.Snapshot()))
	})

	t.Run("Move down swaps with successor", func(t *testing.T) {
		b, ids := setup()
		b.MoveFieldDown(1)
		assert.Equal(t, []string{ids[0], ids[2], ids[1]}, fieldIDs(b.Snapshot()))
	})

	t.Run("Boundary moves are no-ops", func(t *testing.T) {
		b, ids := setup()
		b.MoveFieldUp(0)
		b.MoveFieldDown(2)
		b.MoveFieldUp(-1)
		b.MoveFieldDown(99)
		assert.Equal(t, ids, fieldIDs(b.Snapshot()))
	})

	t.Run("Reordering preserves the id multiset", func(t *testing.T) {
		b, ids := setup()
		b.MoveFieldDown(0)
		b.MoveFieldDown(1)
		b.MoveFieldUp(1)
		b.MoveFieldUp(2)

		got := fieldIDs(b.Snapshot())
		sort.Strings(ids)
		sort.Strings(got)
		assert.Equal(t, ids, got)
	})
}

// ========== DELETE / RESET ==========

func TestDeleteField(t *testing.T) {
	t.Run("Removes and clears active pointer", func(t *testing.T) {
		b := builder.New()
		b.AddField(string(schema.TypeTextInput))
		b.AddField(string(schema.TypeEmail))
		snap := b.Snapshot()
		active := snap.ActiveField

		b.DeleteField(active)

		snap = b.Snapshot()
		assert.Len(t, snap.Fields, 1)
		assert.Empty(t, snap.ActiveField)
	})

	t.Run("Deleting inactive field keeps pointer", func(t *testing.T) {
		b := builder.New()
		b.AddField(string(schema.TypeTextInput))
		b.AddField(string(schema.TypeEmail))
		snap := b.Snapshot()

		b.DeleteField(snap.Fields[0].ID)

		assert.Equal(t, snap.ActiveField, b.Snapshot().ActiveField)
	})

	t.Run("Unknown id is a no-op", func(t *testing.T) {
		b := builder.New()
		b.AddField(string(schema.TypeTextInput))
		b.DeleteField("nope")
		assert.Len(t, b.Snapshot().Fields, 1)
	})

	t.Run("Singleton can be re-added after delete", func(t *testing.T) {
		b := builder.New()
		b.AddField(string(schema.TypeBannerUpload))
		id := b.Snapshot().Fields[0].ID
		b.DeleteField(id)
		b.AddField(string(schema.TypeBannerUpload))
		assert.Len(t, b.Snapshot().Fields, 1)
	})
}

func TestReset(t *testing.T) {
	b := builder.New()
	b.SetName("My Form")
	b.AddField(string(schema.TypeTextInput))
	b.ShowPreviewModal = true
	b.ShowPublishModal = true

	b.Reset()

	snap := b.Snapshot()
	assert.Empty(t, snap.Name)
	assert.Empty(t, snap.Fields)
	assert.Equal(t, builder.StatusDraft, snap.Status)
	assert.False(t, b.ShowPreviewModal)
	assert.False(t, b.ShowPublishModal)
}

// ========== SNAPSHOT ISOLATION ==========

func TestSnapshotIsolation(t *testing.T) {
	b := builder.New()
	b.AddField(string(schema.TypeSelect))

	snap := b.Snapshot()
	snap.Fields[0].Options[0].Label = "Mutated"
	snap.Name = "Mutated"

	fresh := b.Snapshot()
	assert.Equal(t, "Option 1", fresh.Fields[0].Options[0].Label)
	assert.Empty(t, fresh.Name)
}

// ========== OPTIONS ==========

func TestOptionEditing(t *testing.T) {
	b := builder.New()
	b.AddField(string(schema.TypeSelect))
	id := b.Snapshot().Fields[0].ID

	t.Run("Append synthesizes Option N+1", func(t *testing.T) {
		b.AppendOption(id)
		opts := b.Snapshot().Fields[0].Options
		assert.Len(t, opts, 4)
		assert.Equal(t, schema.Option{Label: "Option 4", Value: "option4"}, opts[3])
	})

	t.Run("Update edits one row", func(t *testing.T) {
		b.UpdateOption(id, 0, schema.Option{Label: "Yes", Value: "yes"})
		assert.Equal(t, "Yes", b.Snapshot().Fields[0].Options[0].Label)
	})

	t.Run("Remove deletes one row", func(t *testing.T) {
		before := len(b.Snapshot().Fields[0].Options)
		b.RemoveOption(id, 0)
		assert.Len(t, b.Snapshot().Fields[0].Options, before-1)
	})

	t.Run("Append on non-option field is a no-op", func(t *testing.T) {
		b.AddField(string(schema.TypeTextInput))
		textID := b.Snapshot().ActiveField
		b.AppendOption(textID)
		for _, f := range b.Snapshot().Fields {
			if f.ID == textID {
				assert.Empty(t, f.Options)
			}
		}
	})
}

// ========== CAROUSEL ==========

func TestCarouselImages(t *testing.T) {
	b := builder.New()
	b.AddField(string(schema.TypeCarouselUpload))
	id := b.Snapshot().Fields[0].ID

	t.Run("Accepts up to the cap", func(t *testing.T) {
		for i := 0; i < schema.MaxCarouselImages; i++ {
			err := b.AddCarouselImage(id, schema.CarouselImage{Src: "img.png"})
			assert.NoError(t, err)
		}
		assert.Len(t, b.Snapshot().Fields[0].Images, schema.MaxCarouselImages)
	})

	t.Run("Rejects past the cap", func(t *testing.T) {
		err := b.AddCarouselImage(id, schema.CarouselImage{Src: "extra.png"})
		assert.Error(t, err)
		assert.Len(t, b.Snapshot().Fields[0].Images, schema.MaxCarouselImages)
	})

	t.Run("Remove frees a slot", func(t *testing.T) {
		b.RemoveCarouselImage(id, 0)
		err := b.AddCarouselImage(id, schema.CarouselImage{Src: "replacement.png"})
		assert.NoError(t, err)
	})

	t.Run("Non-carousel field rejects images", func(t *testing.T) {
		b.AddField(string(schema.TypeTextInput))
		textID := b.Snapshot().ActiveField
		err := b.AddCarouselImage(textID, schema.CarouselImage{Src: "img.png"})
		assert.Error(t, err)
	})
}
