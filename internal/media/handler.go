package media

import (
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"mime/multipart"
	"strings"

	"github.com/eventtalk/formbuilder/internal/response"
	"github.com/eventtalk/formbuilder/internal/utils"
	"github.com/gofiber/fiber/v2"
)

// Asset is the stored-file descriptor returned to the editor. The editor
// embeds the URL directly into the field attribute it was uploaded for, so
// no database row is kept.
type Asset struct {
	URL      string `json:"url"`
	FileName string `json:"fileName"`
	Type     string `json:"fileType"`
	Size     int64  `json:"fileSize"`
	Width    *int   `json:"width,omitempty"`
	Height   *int   `json:"height,omitempty"`
}

func maxSizeFor(contentType string) int64 {
	if strings.HasPrefix(contentType, "video/") {
		return 100 * 1024 * 1024
	}
	return 10 * 1024 * 1024
}

func storeAsset(file *multipart.FileHeader) (*Asset, error) {
	url, err := utils.UploadFile(file)
	if err != nil {
		return nil, err
	}

	asset := &Asset{
		URL:      url,
		FileName: file.Filename,
		Type:     file.Header.Get("Content-Type"),
		Size:     file.Size,
	}

	if strings.HasPrefix(asset.Type, "image/") {
		if width, height, err := getImageDimensions(file); err == nil {
			asset.Width = &width
			asset.Height = &height
		}
	}

	return asset, nil
}

// UploadAssetHandler stores a single editor asset (banner image, PDF,
// carousel slide) and returns its URL and metadata.
func UploadAssetHandler(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return response.BadRequest(c, "File is required", nil)
	}

	maxSize := maxSizeFor(file.Header.Get("Content-Type"))
	if file.Size > maxSize {
		return response.BadRequest(c, "File too large", map[string]interface{}{
			"max_size_mb":  maxSize / (1024 * 1024),
			"file_size_mb": file.Size / (1024 * 1024),
		})
	}

	asset, err := storeAsset(file)
	if err != nil {
		return response.InternalError(c, "Failed to upload file: "+err.Error())
	}

	return response.Created(c, asset, "File uploaded successfully")
}

// BulkUploadAssetsHandler stores several assets in one request, as the
// carousel image picker sends. Per-file failures are reported alongside the
// successes rather than failing the batch.
func BulkUploadAssetsHandler(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return response.BadRequest(c, "Invalid form data", err.Error())
	}

	files := form.File["files"]
	if len(files) == 0 {
		return response.BadRequest(c, "No files provided", nil)
	}

	uploaded := []*Asset{}
	errors := []map[string]string{}

	for _, file := range files {
		if file.Size > maxSizeFor(file.Header.Get("Content-Type")) {
			errors = append(errors, map[string]string{
				"filename": file.Filename,
				"error":    "file too large",
			})
			continue
		}
		asset, err := storeAsset(file)
		if err != nil {
			errors = append(errors, map[string]string{
				"filename": file.Filename,
				"error":    err.Error(),
			})
			continue
		}
		uploaded = append(uploaded, asset)
	}

	result := fiber.Map{
		"uploaded": len(uploaded),
		"failed":   len(errors),
		"files":    uploaded,
	}
	if len(errors) > 0 {
		result["errors"] = errors
	}

	return response.Created(c, result, "Bulk upload completed")
}

// DeleteAssetHandler removes a stored asset by URL, for when the editor
// replaces or discards an upload.
func DeleteAssetHandler(c *fiber.Ctx) error {
	var body struct {
		URL string `json:"url"`
	}
	if err := c.BodyParser(&body); err != nil {
		return response.BadRequest(c, "Invalid request body", err.Error())
	}
	if body.URL == "" {
		return response.ValidationError(c, map[string]string{"url": "url is required"})
	}

	if err := utils.DeleteFile(body.URL); err != nil {
		return response.InternalError(c, "Failed to delete file")
	}

	return response.NoContent(c)
}

func getImageDimensions(file *multipart.FileHeader) (int, int, error) {
	src, err := file.Open()
	if err != nil {
		return 0, 0, err
	}
	defer src.Close()

	img, _, err := image.DecodeConfig(src)
	if err != nil {
		return 0, 0, err
	}

	return img.Width, img.Height, nil
}
