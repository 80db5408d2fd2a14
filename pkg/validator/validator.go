package validator

import (
	"bytes"
	"mime"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/microcosm-cc/bluemonday"
)

var (
	validate  *validator.Validate
	sanitizer *bluemonday.Policy
)

func Init() {
	validate = validator.New()

	sanitizer = bluemonday.UGCPolicy()

	registerCustomValidations(validate)

	if engine, ok := binding.Validator.Engine().(*validator.Validate); ok {
		registerCustomValidations(engine)
	}
}

func registerCustomValidations(v *validator.Validate) {
	v.RegisterValidation("slug", validateSlug)
	v.RegisterValidation("no_html", validateNoHTML)
}

func Validate(s interface{}) error {
	return validate.Struct(s)
}

// SanitizeHTML cleans user-authored markup (rich text sections, descriptions).
func SanitizeHTML(html string) string {
	return sanitizer.Sanitize(html)
}

// SanitizeString strips all markup, leaving plain text.
func SanitizeString(s string) string {
	return bluemonday.StrictPolicy().Sanitize(s)
}

func validateSlug(fl validator.FieldLevel) bool {
	slug := fl.Field().String()
	matched, _ := regexp.MatchString(`^[a-z0-9-]+$`, slug)
	return matched
}

func validateNoHTML(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return !strings.Contains(value, "<") && !strings.Contains(value, ">")
}

func SanitizeFilename(filename string) string {
	reg := regexp.MustCompile(`[^a-zA-Z0-9._-]`)
	return reg.ReplaceAllString(filename, "_")
}

func ValidateImageExtension(filename string) bool {
	allowedExtensions := []string{".jpg", ".jpeg", ".png", ".gif", ".webp"}
	filename = strings.ToLower(filename)

	for _, ext := range allowedExtensions {
		if strings.HasSuffix(filename, ext) {
			return true
		}
	}
	return false
}

func ValidateVideoExtension(filename string) bool {
	allowedExtensions := []string{".mp4", ".m4v", ".mov", ".webm"}
	filename = strings.ToLower(filename)

	for _, ext := range allowedExtensions {
		if strings.HasSuffix(filename, ext) {
			return true
		}
	}
	return false
}

func ValidateFileSize(size int64, maxSize int64) bool {
	return size > 0 && size <= maxSize
}

// ValidateContentType checks a MIME type against an allow list, supporting
// wildcard entries such as "image/*".
func ValidateContentType(contentType string, allowedMimeTypes []string) bool {
	if contentType == "" || len(allowedMimeTypes) == 0 {
		return false
	}

	mimeType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}

	mimeType = strings.ToLower(strings.TrimSpace(mimeType))

	for _, allowed := range allowedMimeTypes {
		allowed = strings.ToLower(strings.TrimSpace(allowed))

		if mimeType == allowed {
			return true
		}

		if strings.HasSuffix(allowed, "/*") {
			prefix := strings.TrimSuffix(allowed, "/*")
			if strings.HasPrefix(mimeType, prefix+"/") {
				return true
			}
		}
	}

	return false
}

func ValidateImageContentType(contentType string) bool {
	allowedMimeTypes := []string{
		"image/jpeg",
		"image/png",
		"image/gif",
		"image/webp",
	}
	return ValidateContentType(contentType, allowedMimeTypes)
}

func ValidateVideoContentType(contentType string) bool {
	allowedMimeTypes := []string{
		"video/mp4",
		"video/quicktime",
		"video/x-m4v",
		"video/webm",
	}
	return ValidateContentType(contentType, allowedMimeTypes)
}

// DetectFileType sniffs the actual MIME type from leading file bytes.
// Returns an empty string when the content is not a supported media format.
func DetectFileType(data []byte) string {
	if len(data) == 0 {
		return ""
	}

	if bytes.HasPrefix(data, []byte{0x89, 0x50, 0x4E, 0x47}) {
		return "image/png"
	}
	if bytes.HasPrefix(data, []byte{0xFF, 0xD8, 0xFF}) {
		return "image/jpeg"
	}
	if bytes.HasPrefix(data, []byte{0x47, 0x49, 0x46, 0x38}) {
		return "image/gif"
	}
	if bytes.HasPrefix(data, []byte{0x52, 0x49, 0x46, 0x46}) && len(data) > 12 &&
		bytes.HasPrefix(data[8:], []byte{0x57, 0x45, 0x42, 0x50}) {
		return "image/webp"
	}

	if len(data) > 12 && bytes.HasPrefix(data[4:], []byte{0x66, 0x74, 0x79, 0x70}) {
		return "video/mp4"
	}

	return ""
}
