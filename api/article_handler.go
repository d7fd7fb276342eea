package api

import (
	"context"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/portfolio-backend/database"
	"github.com/rpupo63/portfolio-backend/errs"
	"github.com/rpupo63/portfolio-backend/models"
)

// featuredCount is how many articles featured=true returns. The first
// results of the current page stand in for a stored featured flag.
const featuredCount = 3

type articleHandler struct {
	responder   Responder
	logger      zerolog.Logger
	articleRepo *database.ArticleRepo
	admin       crudHandler[models.Article, articleInput]
}

func newArticleHandler(articleRepo *database.ArticleRepo, validator *requestValidator) articleHandler {
	logger := log.With().Str("handlerName", "articleHandler").Logger()

	admin := newCRUDHandler[models.Article, articleInput]("articleAdminHandler", "Article", articleRepo, validator)
	admin.beforeWrite = slugAvailable(articleRepo)

	return articleHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		articleRepo: articleRepo,
		admin:       admin,
	}
}

// slugAvailable rejects a slug already used by a different article
func slugAvailable(repo *database.ArticleRepo) func(ctx context.Context, a *models.Article, id uuid.UUID) error {
	return func(ctx context.Context, a *models.Article, id uuid.UUID) error {
		taken, err := repo.SlugTaken(ctx, a.Slug, id)
		if err != nil {
			return wrapDatabaseError("check slug of", "Article", err)
		}
		if taken {
			return errs.NewAlreadyExists("Slug")
		}
		return nil
	}
}

type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

func newPagination(p database.Page, total int64) Pagination {
	return Pagination{
		Page:       p.Page,
		Limit:      p.Limit,
		Total:      total,
		TotalPages: p.TotalPages(total),
	}
}

type ArticleListResponse struct {
	Articles   []*models.Article `json:"articles"`
	Pagination Pagination        `json:"pagination"`
}

// listPublished serves GET /api/articles. Drafts never appear. The category
// parameter is accepted but articles have no category to filter on.
func (h articleHandler) listPublished() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		page := pageFromQuery(r)

		articles, total, err := h.articleRepo.ListPublished(r.Context(), database.ArticleQuery{
			Page:   page,
			Search: strings.TrimSpace(q.Get("search")),
			Tag:    strings.TrimSpace(q.Get("tag")),
		})
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("list", "articles", err))
			return
		}

		if q.Get("featured") == "true" && len(articles) > featuredCount {
			articles = articles[:featuredCount]
		}

		h.responder.WriteJSON(w, ArticleListResponse{
			Articles:   articles,
			Pagination: newPagination(page, total),
		})
	}
}

// getPublished serves GET /api/articles/{slug}. Unpublished articles are
// reported exactly like missing ones.
func (h articleHandler) getPublished() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := chi.URLParam(r, "slug")

		article, err := h.articleRepo.FindPublishedBySlug(r.Context(), slug)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "Article", err))
			return
		}
		h.responder.WriteJSON(w, article)
	}
}
