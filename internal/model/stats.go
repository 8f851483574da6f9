package model

// DashboardStats is the row count of each content table.
type DashboardStats struct {
	Services           int `json:"services"`
	Portfolio          int `json:"portfolio"`
	BlogPosts          int `json:"blog_posts"`
	ContactSubmissions int `json:"contact_submissions"`
}
