package database

import (
	"context"

	"gorm.io/gorm"

	"github.com/rpupo63/portfolio-backend/models"
)

type ProjectRepo struct{ repo[models.Project] }

func NewProjectRepo(db *gorm.DB) *ProjectRepo {
	return &ProjectRepo{repo[models.Project]{db}}
}

// FindAll returns all projects, newest first
func (r *ProjectRepo) FindAll(ctx context.Context) ([]*models.Project, error) {
	return r.findAll(ctx, "created_at desc")
}

// FindFeatured returns the projects flagged for the home page
func (r *ProjectRepo) FindFeatured(ctx context.Context) ([]*models.Project, error) {
	projects := []*models.Project{}
	err := r.db.WithContext(ctx).
		Where("featured = ?", true).
		Order("created_at desc").
		Find(&projects).Error
	return projects, err
}
