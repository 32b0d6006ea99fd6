// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package router sets up all HTTP routes and middleware chains. It
// organizes routes into public and admin groups with appropriate
// middleware stacks.
package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"teknoblogoji/internal/handlers"
	"teknoblogoji/internal/middleware"
	"teknoblogoji/internal/session"
)

// Comment submission is the only write endpoint open to anonymous
// readers, so it gets its own tight rate limit.
const (
	commentRateLimit  = 5
	commentRateWindow = time.Minute
)

// New creates and returns the configured Chi router with all middleware
// and route groups wired up.
func New(sessionStore *session.Store, public *handlers.Public, sm *handlers.Sitemap, auth *handlers.Auth, admin *handlers.Admin) chi.Router {
	r := chi.NewRouter()

	// Global middleware — applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.CanonicalSlugRedirect)
	r.Use(middleware.LoadSession(sessionStore))

	// Health check.
	r.Get("/health", healthHandler)

	// Sitemap endpoints handle their own method checks so non-GET
	// requests get the JSON 405 body.
	r.Handle("/sitemap.xml", http.HandlerFunc(sm.Serve))
	r.Handle("/sitemap-simple.xml", http.HandlerFunc(sm.ServeSimple))

	// Public JSON API.
	r.Route("/api", func(r chi.Router) {
		r.Handle("/regenerate-sitemap", http.HandlerFunc(sm.Regenerate))

		r.Get("/posts", public.ListPosts)
		r.Get("/posts/{categorySlug}/{postSlug}", public.PostDetail)
		r.Get("/posts/{categorySlug}/{postSlug}/comments", public.ListComments)

		commentLimiter := middleware.NewRateLimiter(commentRateLimit, commentRateWindow)
		r.With(commentLimiter.Middleware).
			Post("/posts/{categorySlug}/{postSlug}/comments", public.CreateComment)

		r.Get("/kategoriler", public.ListCategories)
		r.Get("/kategori/{slug}", public.CategoryPage)
		r.Get("/etiket/{tag}", public.TagPage)
		r.Get("/rehberler", public.GuidesPage)
		r.Get("/search", public.Search)

		r.Get("/headlines", public.Headlines)
		r.Get("/trending-tags", public.TrendingTags)
		r.Get("/featured-review", public.FeaturedReview)
		r.Get("/popular-guides", public.PopularGuides)
	})

	// Admin routes — session auth with mandatory TOTP.
	r.Route("/admin", func(r chi.Router) {
		r.Post("/login", auth.Login)
		r.Post("/logout", auth.Logout)

		// 2FA enrollment and verification require a session but not
		// completed 2FA.
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth)
			r.Post("/2fa/setup", auth.TwoFASetup)
			r.Post("/2fa/verify", auth.TwoFAVerify)
		})

		// Authenticated + 2FA-verified admin area.
		r.Route("/api", func(r chi.Router) {
			r.Use(middleware.RequireAuth)
			r.Use(middleware.Require2FA)

			r.Get("/me", auth.Me)

			r.Route("/posts", func(r chi.Router) {
				r.Get("/", admin.ListPosts)
				r.Post("/", admin.CreatePost)
				r.Get("/{id}", admin.GetPost)
				r.Put("/{id}", admin.UpdatePost)
				r.Delete("/{id}", admin.DeletePost)
			})

			r.Route("/categories", func(r chi.Router) {
				r.Post("/", admin.CreateCategory)
				r.Put("/{id}", admin.UpdateCategory)
				r.Delete("/{id}", admin.DeleteCategory)
			})

			// User management — admin only.
			r.Route("/users", func(r chi.Router) {
				r.Use(middleware.RequireAdmin)
				r.Get("/", admin.ListUsers)
				r.Post("/", admin.CreateUser)
				r.Post("/{id}/reset-2fa", admin.ResetUser2FA)
			})

			r.Route("/comments", func(r chi.Router) {
				r.Get("/", admin.ListComments)
				r.Post("/{id}/approve", admin.ApproveComment)
				r.Delete("/{id}", admin.DeleteComment)
			})

			// Curation tables use replace semantics.
			r.Put("/headlines", admin.SaveHeadlines)
			r.Put("/trending-tags", admin.SaveTrendingTags)
			r.Put("/featured-review", admin.SaveFeaturedReview)
			r.Put("/popular-guides", admin.SavePopularGuides)

			r.Post("/images", admin.UploadImage)
			r.Delete("/images", admin.DeleteImage)
		})
	})

	return r
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
