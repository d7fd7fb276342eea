package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/rpupo63/portfolio-backend/auth"
)

// mountCRUD registers the five admin routes of one entity under prefix
func mountCRUD(r chi.Router, session sessionMiddleware, prefix string, h crudHandlerSet) {
	r.Route(prefix, func(r chi.Router) {
		r.Get("/", session.requireAdmin(h.list()))
		r.Post("/", session.requireAdmin(h.create()))
		r.Get("/{id}", session.requireAdmin(h.get()))
		r.Put("/{id}", session.requireAdmin(h.update()))
		r.Delete("/{id}", session.requireAdmin(h.remove()))
	})
}

// setupAPIRoutes sets up every /api route. Public routes have no gate; the
// rest go through the session middleware's admin gate.
func setupAPIRoutes(r chi.Router, handlers *routeHandlers) {
	s := handlers.session

	r.Route("/api", func(r chi.Router) {
		r.Get("/portfolio", handlers.portfolioHandler.getPortfolio())
		r.Get("/articles", handlers.articleHandler.listPublished())
		r.Get("/articles/{slug}", handlers.articleHandler.getPublished())
		r.Get("/services", handlers.publicHandler.activeServices())
		r.Get("/social-media", handlers.publicHandler.activeSocialMedia())

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", handlers.authHandler.login())
			r.Post("/logout", handlers.authHandler.logout())
			r.Get("/session", s.requirePolicy(auth.Session, handlers.authHandler.session()))
		})

		r.Route("/contact", func(r chi.Router) {
			r.Post("/", handlers.contactHandler.submit())

			r.Get("/", s.requireAdmin(handlers.contactHandler.list()))
			r.Get("/stats", s.requireAdmin(handlers.contactHandler.stats()))
			r.Get("/{id}", s.requireAdmin(handlers.contactHandler.get()))
			r.Patch("/{id}", s.requireAdmin(handlers.contactHandler.markRead()))
			r.Delete("/{id}", s.requireAdmin(handlers.contactHandler.remove()))
		})

		r.Post("/upload", s.requireAdmin(handlers.uploadHandler.upload()))

		r.Route("/admin", func(r chi.Router) {
			mountCRUD(r, s, "/activities", handlers.activityHandler)
			mountCRUD(r, s, "/education", handlers.educationHandler)
			mountCRUD(r, s, "/experiences", handlers.experienceHandler)
			mountCRUD(r, s, "/organizations", handlers.organizationHandler)
			mountCRUD(r, s, "/projects", handlers.projectHandler)
			mountCRUD(r, s, "/skills", handlers.skillHandler)
			mountCRUD(r, s, "/articles", handlers.articleHandler.admin)
			mountCRUD(r, s, "/social-media", handlers.socialMediaHandler)
			mountCRUD(r, s, "/services", handlers.serviceHandler)

			r.Get("/profile", s.requireAdmin(handlers.profileHandler.getProfile()))
			r.Post("/profile", s.requireAdmin(handlers.profileHandler.saveProfile()))
			r.Get("/stats", s.requireAdmin(handlers.statsHandler.getStats()))
		})
	})
}

// setupPageRoutes sets up the health check and the admin panel pages
func setupPageRoutes(r chi.Router, handlers *routeHandlers, adminStaticDir string) {
	r.Get("/healthz", handlers.healthHandler.healthz())

	pages := adminPages(adminStaticDir)
	r.Group(func(r chi.Router) {
		r.Use(pageGate)
		r.Handle("/admin", pages)
		r.Handle("/admin/*", pages)
	})
}
