package editor

import (
	"fmt"
	"io"

	"github.com/eventtalk/formbuilder/internal/builder"
	"github.com/eventtalk/formbuilder/internal/schema"
	"github.com/eventtalk/formbuilder/internal/utils"
)

// Async upload previews: initiating a read returns immediately and the data
// URL lands in the store when the read completes. Each read's completion
// closes over the target field id and metadata captured at call time, never
// over "whatever field is active by then", so a slow read can't be
// misattributed. Until completion the field simply has no preview attribute,
// which every renderer tolerates.

// AttachBannerAsync reads an image into a data URL and sets it as the banner
// field's payload. The returned channel reports completion.
func (e *Editor) AttachBannerAsync(fieldID, contentType string, r io.Reader) <-chan error {
	done := make(chan error, 1)
	go func() {
		dataURL, err := utils.ReadDataURL(r, contentType)
		if err != nil {
			done <- fmt.Errorf("failed to read banner image: %v", err)
			return
		}
		e.Do(func(b *builder.Builder) {
			b.UpdateFieldProperties(fieldID, schema.FieldPatch{BannerURL: &dataURL})
		})
		done <- nil
	}()
	return done
}

// AttachPDFAsync reads a PDF into a data URL and sets it as the PDF field's
// payload.
func (e *Editor) AttachPDFAsync(fieldID, contentType string, r io.Reader) <-chan error {
	done := make(chan error, 1)
	go func() {
		dataURL, err := utils.ReadDataURL(r, contentType)
		if err != nil {
			done <- fmt.Errorf("failed to read PDF: %v", err)
			return
		}
		e.Do(func(b *builder.Builder) {
			b.UpdateFieldProperties(fieldID, schema.FieldPatch{PDFURL: &dataURL})
		})
		done <- nil
	}()
	return done
}

// CarouselFile is one pending carousel image read.
type CarouselFile struct {
	FileName    string
	ContentType string
	Reader      io.Reader
}

// AddCarouselImagesAsync reads each file concurrently and appends it to the
// carousel on completion. The image cap is enforced per append under the
// store lock, so a bulk upload past the cap rejects the overflow instead of
// truncating silently; each rejection is reported.
func (e *Editor) AddCarouselImagesAsync(fieldID string, files []CarouselFile) <-chan error {
	done := make(chan error, len(files))
	for _, f := range files {
		f := f
		go func() {
			dataURL, err := utils.ReadDataURL(f.Reader, f.ContentType)
			if err != nil {
				done <- fmt.Errorf("failed to read %s: %v", f.FileName, err)
				return
			}
			var addErr error
			e.Do(func(b *builder.Builder) {
				addErr = b.AddCarouselImage(fieldID, schema.CarouselImage{
					Src:      dataURL,
					FileName: f.FileName,
					FileType: f.ContentType,
				})
			})
			if addErr != nil {
				e.notifier.Notify(Notice{Level: LevelError, Title: "Error",
					Message: addErr.Error()})
			}
			done <- addErr
		}()
	}
	return done
}
