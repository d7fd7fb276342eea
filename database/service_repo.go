package database

import (
	"context"

	"gorm.io/gorm"

	"github.com/rpupo63/portfolio-backend/models"
)

type ServiceRepo struct{ repo[models.Service] }

func NewServiceRepo(db *gorm.DB) *ServiceRepo {
	return &ServiceRepo{repo[models.Service]{db}}
}

func (r *ServiceRepo) FindAll(ctx context.Context) ([]*models.Service, error) {
	return r.findAll(ctx, "created_at desc")
}

// FindActive returns the services offered on the public contact page
func (r *ServiceRepo) FindActive(ctx context.Context) ([]*models.Service, error) {
	services := []*models.Service{}
	err := r.db.WithContext(ctx).
		Where("active = ?", true).
		Order("created_at desc").
		Find(&services).Error
	return services, err
}
