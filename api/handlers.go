package api

import (
	"github.com/rpupo63/portfolio-backend/database"
	"github.com/rpupo63/portfolio-backend/models"
)

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(db database.Database, deps Dependencies, cookie cookieSettings) *routeHandlers {
	v := newRequestValidator()

	return &routeHandlers{
		session: newSessionMiddleware(deps.Issuer, cookie.Name),

		activityHandler:     newActivityHandler(db, v),
		educationHandler:    newEducationHandler(db, v),
		experienceHandler:   newExperienceHandler(db, v),
		organizationHandler: newOrganizationHandler(db, v),
		projectHandler:      newProjectHandler(db, v),
		skillHandler:        newSkillHandler(db, v),
		socialMediaHandler:  newCRUDHandler[models.SocialMedia, socialMediaInput]("socialMediaHandler", "Social media", db.SocialMediaRepo(), v),
		serviceHandler:      newCRUDHandler[models.Service, serviceInput]("serviceHandler", "Service", db.ServiceRepo(), v),

		articleHandler:   newArticleHandler(db.ArticleRepo(), v),
		profileHandler:   newProfileHandler(db.ProfileRepo(), v),
		contactHandler:   newContactHandler(db.ContactRepo(), v, deps.Notifier),
		statsHandler:     newStatsHandler(db),
		portfolioHandler: newPortfolioHandler(db),
		publicHandler:    newPublicHandler(db.ServiceRepo(), db.SocialMediaRepo()),
		authHandler:      newAuthHandler(db.UserRepo(), deps.Issuer, cookie, v),
		uploadHandler:    newUploadHandler(deps.Uploader),
		healthHandler:    newHealthHandler(db),
	}
}
