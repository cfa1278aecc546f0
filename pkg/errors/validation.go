package errors

import (
	"strings"
	"unicode"
)

// ValidateIdentifier checks that a row identifier can be written as the
// first field of a selection line. Identifiers are otherwise opaque, but
// the selection format is space- and newline-delimited, so an identifier
// must be non-empty and free of whitespace and control characters.
func ValidateIdentifier(id string) error {
	if id == "" {
		return New(ErrCodeInvalidInput, "identifier cannot be empty")
	}
	for _, r := range id {
		if unicode.IsSpace(r) || unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "identifier %q contains whitespace or control characters", id)
		}
	}
	return nil
}

// ValidateMapName validates the base name used for rendered map files.
//
// Validation rules:
//   - Name cannot be empty
//   - Maximum length of 255 characters
//   - No null bytes or control characters
//   - No trailing path separator (the name is a file stem, not a directory)
func ValidateMapName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidInput, "map name cannot be empty")
	}

	const maxNameLength = 255
	if len(name) > maxNameLength {
		return New(ErrCodeInvalidInput, "map name too long (max %d characters)", maxNameLength)
	}

	for _, r := range name {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "map name contains invalid control characters")
		}
	}

	if strings.HasSuffix(name, "/") || strings.HasSuffix(name, "\\") {
		return New(ErrCodeInvalidInput, "map name %q must not end with a path separator", name)
	}

	return nil
}
