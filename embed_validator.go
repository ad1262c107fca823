package blurplehook

import (
	"fmt"
)

// Limits the remote service enforces on embeds. The builders deliberately do
// not enforce these; validation is opt-in through EmbedValidator.
const (
	maxEmbedTitleLength       = 256
	maxEmbedDescriptionLength = 4096
	maxEmbedFields            = 25
	maxFieldNameLength        = 256
	maxFieldValueLength       = 1024
	maxFooterTextLength       = 2048
	maxAuthorNameLength       = 256
)

// EmbedValidator validates embed objects against the remote service's
// documented limits.
type EmbedValidator struct{}

// NewEmbedValidator creates a new embed validator
func NewEmbedValidator() *EmbedValidator {
	return &EmbedValidator{}
}

// ValidateEmbed validates an embed
func (ev *EmbedValidator) ValidateEmbed(embed Embed) error {
	if len(embed.Title) > maxEmbedTitleLength {
		return NewValidationError("title", embed.Title, "title cannot exceed 256 characters")
	}

	if len(embed.Description) > maxEmbedDescriptionLength {
		return NewValidationError("description", embed.Description, "description cannot exceed 4096 characters")
	}

	if len(embed.Fields) > maxEmbedFields {
		return NewValidationError("fields", embed.Fields, "cannot have more than 25 fields")
	}

	for i, field := range embed.Fields {
		if field.Name == "" {
			return NewValidationError("field_name", field.Name, fmt.Sprintf("field %d name cannot be empty", i))
		}
		if field.Value == "" {
			return NewValidationError("field_value", field.Value, fmt.Sprintf("field %d value cannot be empty", i))
		}
		if len(field.Name) > maxFieldNameLength {
			return NewValidationError("field_name", field.Name, fmt.Sprintf("field %d name cannot exceed 256 characters", i))
		}
		if len(field.Value) > maxFieldValueLength {
			return NewValidationError("field_value", field.Value, fmt.Sprintf("field %d value cannot exceed 1024 characters", i))
		}
	}

	if embed.Footer != nil && len(embed.Footer.Text) > maxFooterTextLength {
		return NewValidationError("footer_text", embed.Footer.Text, "footer text cannot exceed 2048 characters")
	}

	if embed.Author != nil && len(embed.Author.Name) > maxAuthorNameLength {
		return NewValidationError("author_name", embed.Author.Name, "author name cannot exceed 256 characters")
	}

	return nil
}
