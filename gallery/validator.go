package gallery

import (
	"fmt"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// MaxFileSize is the upload ceiling in bytes.
const MaxFileSize = 10 * 1024 * 1024

var (
	allowedExtensions = map[string]bool{"png": true}
	allowedMimeTypes  = map[string]bool{"image/png": true}
)

// Validate is the cheap pre-read check on filename and declared content type.
func Validate(filename, contentType string) error {
	if filename == "" {
		return &ValidationError{"No file provided"}
	}
	if !allowedExtensions[fileExt(filename)] {
		return &ValidationError{"Invalid file extension. Allowed: .png"}
	}
	if contentType != "" && !allowedMimeTypes[contentType] {
		return &ValidationError{"Invalid file type. Allowed: image/png"}
	}
	return nil
}

// ValidateUpload checks the full payload after it has been read and returns
// the mime type to trust for it. A declared type outside the allowed set is
// not taken at face value; the actual content signature decides.
func ValidateUpload(content []byte, filename, contentType string) (string, error) {
	if len(content) > MaxFileSize {
		return "", &ValidationError{fmt.Sprintf("File too large. Maximum size is %dMB", MaxFileSize/(1024*1024))}
	}
	if len(content) == 0 {
		return "", &ValidationError{"File is empty"}
	}
	if filename == "" {
		return "", &ValidationError{"No file provided"}
	}
	if !allowedExtensions[fileExt(filename)] {
		return "", &ValidationError{"Invalid file extension. Allowed: .png"}
	}

	mimeType := contentType
	if !allowedMimeTypes[mimeType] {
		detected := mimetype.Detect(content)
		if !allowedMimeTypes[detected.String()] {
			return "", &ValidationError{"Invalid file type. Allowed: image/png"}
		}
		mimeType = detected.String()
	}
	return mimeType, nil
}

// fileExt returns the lowercased substring after the last dot, or "".
func fileExt(filename string) string {
	name := strings.ToLower(filename)
	i := strings.LastIndex(name, ".")
	if i < 0 {
		return ""
	}
	return name[i+1:]
}
