package validator

import (
	"fmt"
	"strings"
)

// Location names the part of a request a field lives in.
type Location string

const (
	LocationBody   Location = "body"
	LocationParams Location = "params"
	LocationQuery  Location = "query"
)

// ValidationError describes a single field failure with translation support.
type ValidationError struct {
	Path              string         `json:"path"`
	Value             any            `json:"value"`
	Message           string         `json:"message"`
	Location          Location       `json:"location"`
	TranslationKey    string         `json:"-"`
	TranslationValues map[string]any `json:"-"`
}

// ValidationErrors is the ordered outcome of one validation pass.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}

	parts := make([]string, 0, len(ve))
	for _, err := range ve {
		parts = append(parts, fmt.Sprintf("%s.%s: %s", err.Location, err.Path, err.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (ve *ValidationErrors) Add(err ValidationError) {
	*ve = append(*ve, err)
}

func (ve ValidationErrors) Has(path string) bool {
	for _, err := range ve {
		if err.Path == path {
			return true
		}
	}
	return false
}

func (ve ValidationErrors) Get(path string) []string {
	var messages []string
	for _, err := range ve {
		if err.Path == path {
			messages = append(messages, err.Message)
		}
	}
	return messages
}

func (ve ValidationErrors) GetErrors(path string) []ValidationError {
	var errors []ValidationError
	for _, err := range ve {
		if err.Path == path {
			errors = append(errors, err)
		}
	}
	return errors
}

// ByLocation keeps only failures from loc, preserving order.
func (ve ValidationErrors) ByLocation(loc Location) ValidationErrors {
	var errors ValidationErrors
	for _, err := range ve {
		if err.Location == loc {
			errors = append(errors, err)
		}
	}
	return errors
}

func (ve ValidationErrors) Fields() []string {
	var fields []string
	seen := make(map[string]bool)
	for _, err := range ve {
		if !seen[err.Path] {
			fields = append(fields, err.Path)
			seen[err.Path] = true
		}
	}
	return fields
}

func (ve ValidationErrors) IsEmpty() bool {
	return len(ve) == 0
}
