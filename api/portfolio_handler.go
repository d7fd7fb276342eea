package api

import (
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/rpupo63/portfolio-backend/database"
	"github.com/rpupo63/portfolio-backend/errs"
	"github.com/rpupo63/portfolio-backend/models"
)

// placeholderProfile stands in on the home page until a profile is saved.
type placeholderProfile struct {
	Name        string `json:"name"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Photo       string `json:"photo"`
	Location    string `json:"location"`
	Email       string `json:"email"`
	Resume      string `json:"resume"`
}

var fallbackProfile = placeholderProfile{
	Name:        "Portfolio Owner",
	Title:       "Developer",
	Description: "Welcome to my portfolio",
	Photo:       "/placeholder-avatar.jpg",
	Location:    "Indonesia",
	Email:       "contact@example.com",
	Resume:      "/resume.pdf",
}

type PortfolioResponse struct {
	Profile       any                    `json:"profile"`
	Skills        []*models.Skill        `json:"skills"`
	Education     []*models.Education    `json:"education"`
	Experiences   []*models.Experience   `json:"experiences"`
	Projects      []*models.Project      `json:"projects"`
	Organizations []*models.Organization `json:"organizations"`
	Activities    []*models.Activity     `json:"activities"`
	SocialMedia   []*models.SocialMedia  `json:"socialMedia"`
}

type portfolioHandler struct {
	responder Responder
	logger    zerolog.Logger
	db        database.Database
}

func newPortfolioHandler(db database.Database) portfolioHandler {
	logger := log.With().Str("handlerName", "portfolioHandler").Logger()
	return portfolioHandler{responder: NewResponder(logger), logger: logger, db: db}
}

// getPortfolio assembles the home page from eight concurrent queries
func (h portfolioHandler) getPortfolio() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var resp PortfolioResponse
		g, ctx := errgroup.WithContext(r.Context())

		g.Go(func() error {
			profile, err := h.db.ProfileRepo().First(ctx)
			switch {
			case errs.IsNotFound(err):
				resp.Profile = fallbackProfile
			case err != nil:
				return err
			default:
				resp.Profile = profile
			}
			return nil
		})
		g.Go(func() (err error) {
			resp.Skills, err = h.db.SkillRepo().FindAll(ctx)
			return err
		})
		g.Go(func() (err error) {
			resp.Education, err = h.db.EducationRepo().FindAll(ctx)
			return err
		})
		g.Go(func() (err error) {
			resp.Experiences, err = h.db.ExperienceRepo().FindAll(ctx)
			return err
		})
		g.Go(func() (err error) {
			resp.Projects, err = h.db.ProjectRepo().FindAll(ctx)
			return err
		})
		g.Go(func() (err error) {
			resp.Organizations, err = h.db.OrganizationRepo().FindAll(ctx)
			return err
		})
		g.Go(func() (err error) {
			resp.Activities, err = h.db.ActivityRepo().FindAll(ctx)
			return err
		})
		g.Go(func() (err error) {
			resp.SocialMedia, err = h.db.SocialMediaRepo().FindActive(ctx)
			return err
		})

		if err := g.Wait(); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("load", "portfolio", err))
			return
		}

		h.responder.WriteJSON(w, resp)
	}
}
