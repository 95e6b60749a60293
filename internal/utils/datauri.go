package utils

import (
	"encoding/base64"
	"fmt"
	"io"
)

// MaxDataURLBytes caps in-memory upload previews at the 10MB the upload
// fields advertise.
const MaxDataURLBytes = 10 * 1024 * 1024

// EncodeDataURL encodes raw bytes as a data: URL.
func EncodeDataURL(contentType string, data []byte) string {
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	return "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(data)
}

// ReadDataURL reads a file into an in-memory data URL for previewing.
func ReadDataURL(r io.Reader, contentType string) (string, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxDataURLBytes+1))
	if err != nil {
		return "", fmt.Errorf("failed to read file: %v", err)
	}
	if len(data) > MaxDataURLBytes {
		return "", fmt.Errorf("file too large for preview (max %dMB)", MaxDataURLBytes/(1024*1024))
	}
	return EncodeDataURL(contentType, data), nil
}
