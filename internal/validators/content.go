package validators

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/MKhiriev/go-kb-sync/models"
)

const (
	FieldName       = "name"
	FieldTitle      = "title"
	FieldSlug       = "slug"
	FieldPassword   = "password"
	FieldCategoryID = "category_id"
)

// slugTag is registered on the validator instance owned by ContentValidator.
const slugTag = "slug"

type ContentValidator struct {
	validate *validator.Validate
}

func NewContentValidator() Validator {
	validate := validator.New(validator.WithRequiredStructEnabled())
	// registration only fails on an empty tag or a nil func
	_ = validate.RegisterValidation(slugTag, isSlug)

	return &ContentValidator{validate: validate}
}

// Validate checks a category or a post. With no fields every rule for the
// type runs.
func (v *ContentValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Category:
		return v.validateCategory(ctx, value, fields...)
	case *models.Category:
		return v.validateCategory(ctx, *value, fields...)

	case models.Post:
		return v.validatePost(ctx, value, fields...)
	case *models.Post:
		return v.validatePost(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *ContentValidator) validateCategory(_ context.Context, c models.Category, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldSlug}
	}

	for _, field := range fields {
		switch field {
		case FieldName:
			if strings.TrimSpace(c.Name) == "" {
				return ErrEmptyName
			}
		case FieldSlug:
			if err := v.validateSlug(c.Slug); err != nil {
				return err
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	return nil
}

func (v *ContentValidator) validatePost(_ context.Context, p models.Post, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldSlug, FieldPassword, FieldCategoryID}
	}

	for _, field := range fields {
		switch field {
		case FieldTitle:
			if strings.TrimSpace(p.Title) == "" {
				return ErrEmptyTitle
			}
		case FieldSlug:
			if err := v.validateSlug(p.Slug); err != nil {
				return err
			}
		case FieldPassword:
			if p.Visibility == models.VisibilityPassword && p.Password == "" {
				return ErrPasswordRequired
			}
		case FieldCategoryID:
			if p.CategoryID != nil && *p.CategoryID <= 0 {
				return ErrInvalidCategory
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	return nil
}

func (v *ContentValidator) validateSlug(slug string) error {
	if err := v.validate.Var(slug, "required,"+slugTag); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidSlug, slug)
	}
	return nil
}

// isSlug accepts lower case ASCII letters and digits in groups joined by
// single hyphens.
func isSlug(fl validator.FieldLevel) bool {
	slug := fl.Field().String()
	if slug == "" || slug[0] == '-' || slug[len(slug)-1] == '-' {
		return false
	}

	for i := 0; i < len(slug); i++ {
		switch c := slug[i]; {
		case c >= 'a' && c <= 'z', c >= '0' && c <= '9':
		case c == '-':
			if slug[i-1] == '-' {
				return false
			}
		default:
			return false
		}
	}

	return true
}
