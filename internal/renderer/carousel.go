package renderer

import (
	"fmt"
	"strings"

	"github.com/eventtalk/formbuilder/internal/schema"
)

// renderCarousel emits the auto-advancing image rotator. Rotation timing,
// dot pagination and the manual-override pause (auto-advance resumes
// ResumeDelayMS after the last manual navigation) are driven client-side off
// the data attributes; the progress bar element is restarted per slide.
func renderCarousel(f schema.Field, mode Mode) string {
	var b strings.Builder
	fmt.Fprintf(&b,
		`<div class="fb-carousel fb-carousel-%s" data-auto-advance="%d" data-resume-delay="%d" data-max-images="%d">`,
		esc(bannerPosition(f)), f.AutoAdvance, ResumeDelayMS, f.ImageCap())

	if len(f.Images) == 0 {
		fmt.Fprintf(&b, `<div class="fb-carousel-placeholder"><p>%s</p><p class="fb-helper">%s</p></div>`,
			clean(f.Label), clean(f.HelperText))
	} else {
		b.WriteString(`<div class="fb-carousel-track">`)
		for i, img := range f.Images {
			active := ""
			if i == 0 {
				active = " fb-slide-active"
			}
			alt := img.Alt
			if alt == "" {
				alt = img.FileName
			}
			fmt.Fprintf(&b, `<div class="fb-slide%s"><img src="%s" alt="%s"></div>`,
				active, esc(img.Src), esc(alt))
		}
		b.WriteString(`</div>`)

		b.WriteString(`<button type="button" class="fb-carousel-prev" aria-label="Previous slide">&lsaquo;</button>`)
		b.WriteString(`<button type="button" class="fb-carousel-next" aria-label="Next slide">&rsaquo;</button>`)

		if f.ShowDots {
			b.WriteString(`<div class="fb-carousel-dots">`)
			for i := range f.Images {
				active := ""
				if i == 0 {
					active = " fb-dot-active"
				}
				fmt.Fprintf(&b, `<button type="button" class="fb-dot%s" data-slide="%d"></button>`,
					active, i)
			}
			b.WriteString(`</div>`)
		}

		b.WriteString(`<div class="fb-carousel-progress"><div class="fb-carousel-progress-bar"></div></div>`)
	}

	if mode == ModeEdit && f.CanUpload && len(f.Images) < f.ImageCap() {
		fmt.Fprintf(&b, `<input type="file" accept="%s" multiple data-field-id="%s">`,
			esc(f.AllowedTypes), esc(f.ID))
	}
	b.WriteString(`</div>`)
	return b.String()
}
