package database

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/rpupo63/portfolio-backend/models"
)

type ActivityRepo struct{ repo[models.Activity] }

func NewActivityRepo(db *gorm.DB) *ActivityRepo {
	return &ActivityRepo{repo[models.Activity]{db}}
}

// FindAll returns activities, most recent first
func (r *ActivityRepo) FindAll(ctx context.Context) ([]*models.Activity, error) {
	return r.findAll(ctx, clause.OrderByColumn{Column: clause.Column{Name: "date"}, Desc: true})
}

type EducationRepo struct{ repo[models.Education] }

func NewEducationRepo(db *gorm.DB) *EducationRepo {
	return &EducationRepo{repo[models.Education]{db}}
}

// FindAll returns education entries by start date, newest first
func (r *EducationRepo) FindAll(ctx context.Context) ([]*models.Education, error) {
	return r.findAll(ctx, "start_date desc")
}

type ExperienceRepo struct{ repo[models.Experience] }

func NewExperienceRepo(db *gorm.DB) *ExperienceRepo {
	return &ExperienceRepo{repo[models.Experience]{db}}
}

func (r *ExperienceRepo) FindAll(ctx context.Context) ([]*models.Experience, error) {
	return r.findAll(ctx, "start_date desc")
}

type OrganizationRepo struct{ repo[models.Organization] }

func NewOrganizationRepo(db *gorm.DB) *OrganizationRepo {
	return &OrganizationRepo{repo[models.Organization]{db}}
}

func (r *OrganizationRepo) FindAll(ctx context.Context) ([]*models.Organization, error) {
	return r.findAll(ctx, "start_date desc")
}

type SkillRepo struct{ repo[models.Skill] }

func NewSkillRepo(db *gorm.DB) *SkillRepo {
	return &SkillRepo{repo[models.Skill]{db}}
}

// FindAll returns skills grouped by category, then by name
func (r *SkillRepo) FindAll(ctx context.Context) ([]*models.Skill, error) {
	return r.findAll(ctx, "category asc, name asc")
}
