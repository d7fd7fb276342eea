package database

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/rpupo63/portfolio-backend/models"
)

// "order" is a reserved word, so the column is always quoted by the dialect.
var displayOrder = clause.OrderByColumn{Column: clause.Column{Name: "order"}}

type SocialMediaRepo struct{ repo[models.SocialMedia] }

func NewSocialMediaRepo(db *gorm.DB) *SocialMediaRepo {
	return &SocialMediaRepo{repo[models.SocialMedia]{db}}
}

func (r *SocialMediaRepo) FindAll(ctx context.Context) ([]*models.SocialMedia, error) {
	return r.findAll(ctx, displayOrder)
}

// FindActive returns the links shown publicly, in display order
func (r *SocialMediaRepo) FindActive(ctx context.Context) ([]*models.SocialMedia, error) {
	links := []*models.SocialMedia{}
	err := r.db.WithContext(ctx).
		Where("active = ?", true).
		Order(displayOrder).
		Find(&links).Error
	return links, err
}
