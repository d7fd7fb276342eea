package database

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rpupo63/portfolio-backend/models"
	"github.com/rpupo63/portfolio-backend/shaping"
)

// articleSummaryColumns leaves out the body, which list views never show.
var articleSummaryColumns = []string{
	"id", "title", "slug", "excerpt", "image", "published", "tags", "created_at", "updated_at",
}

// ArticleQuery filters the public article list.
type ArticleQuery struct {
	Page
	Search string
	Tag    string
}

type ArticleRepo struct{ repo[models.Article] }

func NewArticleRepo(db *gorm.DB) *ArticleRepo {
	return &ArticleRepo{repo[models.Article]{db}}
}

// FindAll returns every article, drafts included, newest first
func (r *ArticleRepo) FindAll(ctx context.Context) ([]*models.Article, error) {
	return r.findAll(ctx, "created_at desc")
}

// FindPublishedBySlug returns a published article. Drafts are reported as
// not found.
func (r *ArticleRepo) FindPublishedBySlug(ctx context.Context, slug string) (*models.Article, error) {
	var article models.Article
	err := r.db.WithContext(ctx).
		Where("slug = ? AND published = ?", slug, true).
		First(&article).Error
	if err != nil {
		return nil, notFound(err)
	}
	return &article, nil
}

// ListPublished returns one page of published article summaries and the
// total number of matches.
func (r *ArticleRepo) ListPublished(ctx context.Context, q ArticleQuery) ([]*models.Article, int64, error) {
	q.Page = q.Page.Normalize()

	scope := r.db.WithContext(ctx).Model(&models.Article{}).Where("published = ?", true)
	if q.Search != "" {
		pattern := containsPattern(q.Search)
		scope = scope.Where(
			"(LOWER(title) LIKE ? ESCAPE '"+likeEscape+"' OR LOWER(excerpt) LIKE ? ESCAPE '"+likeEscape+"' OR LOWER(content) LIKE ? ESCAPE '"+likeEscape+"')",
			pattern, pattern, pattern,
		)
	}
	if q.Tag != "" {
		// tags are stored as a JSON array, so match the quoted element
		scope = scope.Where("LOWER(tags) LIKE ? ESCAPE '"+likeEscape+"'", containsPattern(shaping.EncodeItem(q.Tag)))
	}

	var total int64
	if err := scope.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	articles := []*models.Article{}
	err := scope.Session(&gorm.Session{}).
		Select(articleSummaryColumns).
		Order("created_at desc").
		Offset(q.Offset()).
		Limit(q.Limit).
		Find(&articles).Error
	if err != nil {
		return nil, 0, err
	}
	return articles, total, nil
}

// SlugTaken reports whether another article already uses slug. Pass
// uuid.Nil as exclude when creating.
func (r *ArticleRepo) SlugTaken(ctx context.Context, slug string, exclude uuid.UUID) (bool, error) {
	var article models.Article
	err := r.db.WithContext(ctx).Select("id").Where("slug = ?", slug).First(&article).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return article.ID != exclude, nil
}
