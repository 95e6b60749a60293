package schema

import (
	"fmt"
	"regexp"
	"strings"
)

// ValidateValue checks a submitted value against the field's validation
// attributes. Required fields need a non-false value: nil, empty string and
// explicit false all block, matching the public form client's truthiness
// check.
func ValidateValue(f Field, value interface{}) error {
	if value == nil || value == "" || value == false {
		if f.Required {
			return fmt.Errorf("field '%s' is required", f.Label)
		}
		if value == nil || value == "" {
			return nil
		}
	}

	switch f.Type {
	case TypeTextInput, TypeTextArea:
		return validateText(f, value)
	case TypeEmail:
		return validateEmail(f, value)
	case TypeNumber:
		return validateNumber(f, value)
	case TypeCheckbox, TypeToggle:
		if _, ok := value.(bool); !ok {
			return fmt.Errorf("field '%s' must be boolean", f.Label)
		}
	case TypeSelect, TypeRadio:
		return validateOption(f, value)
	case TypeDate, TypeMobileWithCheckbox:
		if _, ok := value.(string); !ok {
			return fmt.Errorf("field '%s' must be a string", f.Label)
		}
	case TypeFileUpload, TypeResumeUpload, TypeMediaUpload,
		TypeBannerUpload, TypePDFUpload, TypeCarouselUpload:
		// File payloads are validated against AllowedTypes/MaxFileSize at
		// upload time, not here.
	default:
		return fmt.Errorf("unknown field type %q", f.Type)
	}
	return nil
}

func validateText(f Field, value interface{}) error {
	s, ok := value.(string)
	if !ok {
		return fmt.Errorf("field '%s' must be a string", f.Label)
	}
	if f.MinLength != nil && len(s) < *f.MinLength {
		return fmt.Errorf("field '%s' must be at least %d characters", f.Label, *f.MinLength)
	}
	if f.MaxLength != nil && len(s) > *f.MaxLength {
		return fmt.Errorf("field '%s' must be at most %d characters", f.Label, *f.MaxLength)
	}
	return nil
}

func validateEmail(f Field, value interface{}) error {
	s, ok := value.(string)
	if !ok {
		return fmt.Errorf("field '%s' must be a string", f.Label)
	}
	pattern := f.Pattern
	if pattern == "" {
		pattern = `^[^\s@]+@[^\s@]+\.[^\s@]+$`
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return fmt.Errorf("field '%s' has an invalid pattern", f.Label)
	}
	if !re.MatchString(s) {
		return fmt.Errorf("field '%s' must be a valid email address", f.Label)
	}
	return nil
}

func validateNumber(f Field, value interface{}) error {
	var n float64
	switch v := value.(type) {
	case float64:
		n = v
	case int:
		n = float64(v)
	default:
		return fmt.Errorf("field '%s' must be a number", f.Label)
	}
	if f.Min != nil && n < *f.Min {
		return fmt.Errorf("field '%s' must be >= %v", f.Label, *f.Min)
	}
	if f.Max != nil && n > *f.Max {
		return fmt.Errorf("field '%s' must be <= %v", f.Label, *f.Max)
	}
	return nil
}

func validateOption(f Field, value interface{}) error {
	s, ok := value.(string)
	if !ok {
		return fmt.Errorf("field '%s' must be a string", f.Label)
	}
	if len(f.Options) == 0 {
		return nil
	}
	for _, opt := range f.Options {
		if opt.Value == s {
			return nil
		}
	}
	return fmt.Errorf("field '%s' has no option %q", f.Label, s)
}

// AllowsContentType checks an uploaded file's MIME type against the field's
// AllowedTypes list ("image/*,application/pdf" style).
func AllowsContentType(f Field, contentType string) bool {
	if f.AllowedTypes == "" {
		return true
	}
	for _, allowed := range strings.Split(f.AllowedTypes, ",") {
		allowed = strings.TrimSpace(allowed)
		if allowed == contentType {
			return true
		}
		if prefix, ok := strings.CutSuffix(allowed, "/*"); ok &&
			strings.HasPrefix(contentType, prefix+"/") {
			return true
		}
	}
	return false
}
