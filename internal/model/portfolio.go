package model

import "time"

// PortfolioItem is a case study, joined with the name of the service it belongs to.
type PortfolioItem struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	ClientName  string    `json:"client_name"`
	Description string    `json:"description"`
	Challenge   string    `json:"challenge"`
	Solution    string    `json:"solution"`
	Results     string    `json:"results"`
	ServiceID   *int64    `json:"service_id"`
	ServiceName *string   `json:"service_name"`
	Featured    bool      `json:"featured"`
	CreatedAt   time.Time `json:"created_at"`
}

// PortfolioFilter narrows ListPortfolio.
type PortfolioFilter struct {
	FeaturedOnly bool
}
