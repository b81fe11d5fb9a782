package validation

import (
	"fmt"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/journalist-portfolio-api/internal/models"
)

const (
	maxTitleLength    = 200
	maxExcerptLength  = 500
	maxCategoryLength = 100
	maxTagLength      = 50
	maxTagCount       = 20
)

// ValidationError represents a single validation error
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Errors is the blocking result of a failed validation; nothing is
// persisted when it is non-empty.
type Errors []ValidationError

func (e Errors) Error() string {
	if len(e) == 0 {
		return "validation failed"
	}
	fields := make([]string, len(e))
	for i, v := range e {
		fields[i] = v.Field
	}
	return "validation failed: " + strings.Join(fields, ", ")
}

// ValidateArticleInput validates an editor payload. Title and content are
// required; everything else is bounded but optional.
func ValidateArticleInput(in *models.ArticleInput) Errors {
	var errors Errors

	if strings.TrimSpace(in.Title) == "" {
		errors = append(errors, ValidationError{Field: "title", Message: "title is required"})
	} else if utf8.RuneCountInString(in.Title) > maxTitleLength {
		errors = append(errors, ValidationError{
			Field:   "title",
			Message: fmt.Sprintf("title must be at most %d characters", maxTitleLength),
		})
	}

	if strings.TrimSpace(in.Content) == "" {
		errors = append(errors, ValidationError{Field: "content", Message: "content is required"})
	}

	if utf8.RuneCountInString(in.Excerpt) > maxExcerptLength {
		errors = append(errors, ValidationError{
			Field:   "excerpt",
			Message: fmt.Sprintf("excerpt must be at most %d characters", maxExcerptLength),
		})
	}

	if in.FeaturedImage != "" && !isValidImageURL(in.FeaturedImage) {
		errors = append(errors, ValidationError{
			Field:   "featured_image",
			Message: "featured_image must be a valid http(s) URL",
		})
	}

	if utf8.RuneCountInString(in.Category) > maxCategoryLength {
		errors = append(errors, ValidationError{
			Field:   "category",
			Message: fmt.Sprintf("category must be at most %d characters", maxCategoryLength),
		})
	}

	if len(in.Tags) > maxTagCount {
		errors = append(errors, ValidationError{
			Field:   "tags",
			Message: fmt.Sprintf("at most %d tags allowed", maxTagCount),
		})
	}
	for _, tag := range in.Tags {
		if utf8.RuneCountInString(tag) > maxTagLength {
			errors = append(errors, ValidationError{
				Field:   "tags",
				Message: fmt.Sprintf("tag %q exceeds %d characters", tag, maxTagLength),
			})
			break
		}
	}

	return errors
}

func isValidImageURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
