package handler

import "net/http"

// Handlers bundles everything NewRouter mounts.
type Handlers struct {
	App       *Handler
	Services  *ServiceHandler
	Portfolio *PortfolioHandler
	Blog      *BlogHandler
	Contact   *ContactHandler
	Admin     *AdminHandler
	// ContactLimiter throttles public form submissions; nil means no limit.
	ContactLimiter *RateLimiter
}

// NewRouter registers every API route and wraps the mux in the middleware
// chain: request logging, security headers, then CORS.
func NewRouter(h Handlers) http.Handler {
	submit := http.Handler(http.HandlerFunc(h.Contact.Submit))
	if h.ContactLimiter != nil {
		submit = h.ContactLimiter.Middleware(submit)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/health", h.App.Health)

	// サービス API（管理用の CRUD を含む）
	mux.HandleFunc("GET /api/services", h.Services.List)
	mux.HandleFunc("GET /api/services/{slug}", h.Services.GetBySlug)
	mux.HandleFunc("GET /api/services/id/{id}", h.Services.GetByID)
	mux.HandleFunc("POST /api/services", h.Services.Create)
	mux.HandleFunc("PUT /api/services/{id}", h.Services.Update)
	mux.HandleFunc("DELETE /api/services/{id}", h.Services.Delete)

	mux.HandleFunc("GET /api/portfolio", h.Portfolio.List)
	mux.HandleFunc("GET /api/portfolio/{slug}", h.Portfolio.GetBySlug)

	mux.HandleFunc("GET /api/blog", h.Blog.List)
	mux.HandleFunc("GET /api/blog/{slug}", h.Blog.GetBySlug)

	// お問い合わせ API
	mux.Handle("POST /api/contact", submit)
	mux.HandleFunc("GET /api/contact", h.Contact.List)
	mux.HandleFunc("GET /api/contact/categories", h.Contact.Categories)
	mux.HandleFunc("GET /api/contact/export", h.Contact.Export)
	mux.HandleFunc("DELETE /api/contact", h.Contact.BulkDelete)
	mux.HandleFunc("DELETE /api/contact/{id}", h.Contact.Delete)

	mux.HandleFunc("GET /api/admin/stats", h.Admin.Stats)

	return RequestLogger(SecurityHeaders(h.App.CORS(mux)))
}
