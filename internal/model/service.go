package model

import "time"

// Service categories.
const (
	ServiceCategoryTechnology = "technology"
	ServiceCategoryBusiness   = "business"
)

// Defaults applied to service fields the admin form leaves out.
const (
	DefaultServiceIcon     = "rocket"
	DefaultServiceCategory = ServiceCategoryTechnology
)

// Service is an offering shown on the services pages.
type Service struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description *string   `json:"description"`
	Icon        string    `json:"icon"`
	Category    string    `json:"category"`
	Featured    bool      `json:"featured"`
	SortOrder   int       `json:"sort_order"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ServiceInput is the admin create/update payload. A nil field was not sent
// and takes its default; a zero value that was sent is kept as is.
type ServiceInput struct {
	Name        *string `json:"name"`
	Slug        *string `json:"slug"`
	Description *string `json:"description"`
	Icon        *string `json:"icon"`
	Category    *string `json:"category"`
	Featured    *bool   `json:"featured"`
	SortOrder   *int    `json:"sort_order"`
}

// ServiceFilter narrows ListServices. Both predicates are ANDed.
type ServiceFilter struct {
	// Category restricts to an exact category match when non-empty.
	Category     string
	FeaturedOnly bool
}

// IsServiceCategory reports whether c is a known service category.
func IsServiceCategory(c string) bool {
	return c == ServiceCategoryTechnology || c == ServiceCategoryBusiness
}
