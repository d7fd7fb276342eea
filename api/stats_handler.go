package api

import (
	"context"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/rpupo63/portfolio-backend/auth"
	"github.com/rpupo63/portfolio-backend/database"
)

type counter interface {
	Count(ctx context.Context) (int64, error)
}

type statsHandler struct {
	responder Responder
	logger    zerolog.Logger
	db        database.Database
}

func newStatsHandler(db database.Database) statsHandler {
	logger := log.With().Str("handlerName", "statsHandler").Logger()
	return statsHandler{responder: NewResponder(logger), logger: logger, db: db}
}

type StatsResponse struct {
	TotalProjects    int64 `json:"totalProjects"`
	TotalArticles    int64 `json:"totalArticles"`
	TotalContacts    int64 `json:"totalContacts"`
	TotalSkills      int64 `json:"totalSkills"`
	TotalExperiences int64 `json:"totalExperiences"`
	TotalEducation   int64 `json:"totalEducation"`
}

// getStats counts the dashboard totals concurrently. One failed count fails
// the request.
func (h statsHandler) getStats() adminHandlerFunc {
	return func(w http.ResponseWriter, r *http.Request, _ auth.Identity) {
		var stats StatsResponse
		counts := []struct {
			repo counter
			dst  *int64
		}{
			{h.db.ProjectRepo(), &stats.TotalProjects},
			{h.db.ArticleRepo(), &stats.TotalArticles},
			{h.db.ContactRepo(), &stats.TotalContacts},
			{h.db.SkillRepo(), &stats.TotalSkills},
			{h.db.ExperienceRepo(), &stats.TotalExperiences},
			{h.db.EducationRepo(), &stats.TotalEducation},
		}

		g, ctx := errgroup.WithContext(r.Context())
		for _, c := range counts {
			c := c
			g.Go(func() error {
				n, err := c.repo.Count(ctx)
				if err != nil {
					return err
				}
				*c.dst = n
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("count", "records", err))
			return
		}

		h.responder.WriteJSON(w, stats)
	}
}
