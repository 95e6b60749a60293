package submission

import (
	"encoding/json"
	"fmt"
	"mime/multipart"
	"strings"

	"github.com/eventtalk/formbuilder/internal/database"
	"github.com/eventtalk/formbuilder/internal/models"
	"github.com/eventtalk/formbuilder/internal/schema"
	"github.com/eventtalk/formbuilder/internal/utils"
	"gorm.io/datatypes"
)

// FileMeta is the companion metadata sent alongside each uploaded file under
// fileData[fieldId].
type FileMeta struct {
	FileName string `json:"fileName"`
	FileType string `json:"fileType"`
	FileSize int64  `json:"fileSize"`
}

// ParseValues decodes the data[fieldId] multipart values. Each value is a
// JSON-encoded scalar; a bare string that fails to decode is kept as-is.
func ParseValues(form *multipart.Form) map[string]interface{} {
	values := make(map[string]interface{})
	for key, vals := range form.Value {
		fieldID, ok := bracketKey(key, "data")
		if !ok || len(vals) == 0 {
			continue
		}
		var v interface{}
		if err := json.Unmarshal([]byte(vals[0]), &v); err != nil {
			v = vals[0]
		}
		values[fieldID] = v
	}
	return values
}

// ParseFileMeta decodes the fileData[fieldId] metadata entries.
func ParseFileMeta(form *multipart.Form) map[string]FileMeta {
	meta := make(map[string]FileMeta)
	for key, vals := range form.Value {
		fieldID, ok := bracketKey(key, "fileData")
		if !ok || len(vals) == 0 {
			continue
		}
		var m FileMeta
		if err := json.Unmarshal([]byte(vals[0]), &m); err == nil {
			meta[fieldID] = m
		}
	}
	return meta
}

// bracketKey extracts "abc" from "prefix[abc]". Composite widgets post
// sub-values as "prefix[abc][sub]"; those fold to the flat key "abc_sub" so
// every control keeps one column in the stored data.
func bracketKey(key, prefix string) (string, bool) {
	if len(key) < len(prefix)+2 || key[:len(prefix)] != prefix {
		return "", false
	}
	rest := key[len(prefix):]
	if rest[0] != '[' || rest[len(rest)-1] != ']' {
		return "", false
	}
	inner := rest[1 : len(rest)-1]
	if i := strings.Index(inner, "]["); i >= 0 {
		return inner[:i] + "_" + inner[i+2:], true
	}
	if strings.ContainsAny(inner, "[]") {
		return "", false
	}
	return inner, true
}

// Validate checks submitted values against the form's field list. Required
// fields must carry a non-false value; typed fields get per-type checks. The
// declared type in fileData metadata wins over the multipart part header,
// which browsers often leave as octet-stream.
func Validate(s *schema.Schema, values map[string]interface{}, files map[string][]*multipart.FileHeader, meta map[string]FileMeta) error {
	for _, f := range s.Fields {
		switch f.Type {
		case schema.TypeBannerUpload, schema.TypePDFUpload, schema.TypeCarouselUpload:
			continue
		case schema.TypeFileUpload, schema.TypeResumeUpload, schema.TypeMediaUpload:
			fhs := files["files["+f.ID+"]"]
			if f.Required && len(fhs) == 0 {
				return fmt.Errorf("field '%s' is required", f.Label)
			}
			for _, fh := range fhs {
				ct := fh.Header.Get("Content-Type")
				if m, ok := meta[f.ID]; ok && m.FileType != "" {
					ct = m.FileType
				}
				if !schema.AllowsContentType(f, ct) {
					return fmt.Errorf("field '%s' does not accept files of type %s", f.Label, ct)
				}
				if f.MaxFileSize > 0 && fh.Size > int64(f.MaxFileSize)*1024*1024 {
					return fmt.Errorf("field '%s' file exceeds %dMB limit", f.Label, f.MaxFileSize)
				}
			}
		default:
			if err := schema.ValidateValue(f, values[f.ID]); err != nil {
				return err
			}
		}
	}
	return nil
}

// Record stores a submission and its uploaded files. Files are persisted to
// the configured storage backend before the database row is written; a
// failed row write cleans the stored files back up.
func Record(f *models.Form, values map[string]interface{}, form *multipart.Form) (*models.Submission, error) {
	jsonData, err := json.Marshal(values)
	if err != nil {
		return nil, err
	}

	sub := models.Submission{
		FormID: f.ID,
		Data:   datatypes.JSON(jsonData),
	}

	meta := ParseFileMeta(form)
	var stored []string
	for key, fhs := range form.File {
		fieldID, ok := bracketKey(key, "files")
		if !ok {
			continue
		}
		for _, fh := range fhs {
			url, err := utils.UploadFile(fh)
			if err != nil {
				cleanup(stored)
				return nil, fmt.Errorf("failed to store uploaded file: %v", err)
			}
			stored = append(stored, url)

			name := fh.Filename
			ctype := fh.Header.Get("Content-Type")
			size := fh.Size
			if m, ok := meta[fieldID]; ok {
				if m.FileName != "" {
					name = m.FileName
				}
				if m.FileType != "" {
					ctype = m.FileType
				}
				if m.FileSize > 0 {
					size = m.FileSize
				}
			}

			sub.Files = append(sub.Files, models.SubmissionFile{
				FieldID:  fieldID,
				FileName: name,
				URL:      url,
				Type:     ctype,
				Size:     size,
			})
		}
	}

	if err := database.DB.Create(&sub).Error; err != nil {
		cleanup(stored)
		return nil, err
	}
	return &sub, nil
}

func cleanup(urls []string) {
	for _, u := range urls {
		utils.DeleteFile(u)
	}
}

// ListForForm returns a form's submissions newest first. A non-empty search
// term filters on the raw submission data.
func ListForForm(formID uint, search string) ([]models.Submission, error) {
	query := database.DB.Where("form_id = ?", formID)
	if search != "" {
		if database.DB.Dialector.Name() == "postgres" {
			query = query.Where("data::text ILIKE ?", "%"+search+"%")
		} else {
			query = query.Where("data LIKE ?", "%"+search+"%")
		}
	}

	var subs []models.Submission
	if err := query.Preload("Files").Order("created_at DESC").Find(&subs).Error; err != nil {
		return nil, err
	}
	return subs, nil
}
