package models

import "time"

// CategoryRequest is the body of the category create/update endpoints.
type CategoryRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	Slug        string `json:"slug" validate:"required,max=100"`
	Description string `json:"description" validate:"max=1000"`
}

// PostRequest is the body of the post create/update endpoints.
type PostRequest struct {
	Title        string     `json:"title" validate:"required,max=255"`
	Slug         string     `json:"slug" validate:"required,max=255"`
	Content      string     `json:"content"`
	Excerpt      string     `json:"excerpt"`
	MetaKeywords string     `json:"meta_keywords"`
	PublishedAt  *time.Time `json:"published_at"`
	Status       PostStatus `json:"status" validate:"required,oneof=DRAFT PUBLISHED ARCHIVED"`
	Visibility   Visibility `json:"visibility" validate:"required,oneof=PUBLIC PASSWORD PRIVATE"`
	Password     string     `json:"password"`
	CategoryID   *int64     `json:"category_id"`
}

// ToCategory maps the request onto a new active category.
func (r CategoryRequest) ToCategory() Category {
	return Category{
		Name:        r.Name,
		Slug:        r.Slug,
		Description: r.Description,
		IsActive:    true,
	}
}

// ToPost maps the request onto a post value.
func (r PostRequest) ToPost() Post {
	return Post{
		Title:        r.Title,
		Slug:         r.Slug,
		Content:      r.Content,
		Excerpt:      r.Excerpt,
		MetaKeywords: r.MetaKeywords,
		PublishedAt:  r.PublishedAt,
		Status:       r.Status,
		Visibility:   r.Visibility,
		Password:     r.Password,
		CategoryID:   r.CategoryID,
	}
}
