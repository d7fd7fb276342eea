package database

import (
	"context"

	"gorm.io/gorm"

	"github.com/rpupo63/portfolio-backend/models"
)

type ProfileRepo struct{ repo[models.Profile] }

func NewProfileRepo(db *gorm.DB) *ProfileRepo {
	return &ProfileRepo{repo[models.Profile]{db}}
}

// First returns the site profile or errs.ErrNotFound when none was saved yet
func (r *ProfileRepo) First(ctx context.Context) (*models.Profile, error) {
	var profile models.Profile
	err := r.db.WithContext(ctx).Order("created_at asc").First(&profile).Error
	if err != nil {
		return nil, notFound(err)
	}
	return &profile, nil
}

// Upsert overwrites the existing profile or creates the first one. It reads
// then writes without a transaction.
func (r *ProfileRepo) Upsert(ctx context.Context, profile *models.Profile) error {
	existing, err := r.First(ctx)
	switch {
	case err == nil:
		profile.ID = existing.ID
		profile.CreatedAt = existing.CreatedAt
		return r.Update(ctx, profile)
	case notFoundErr(err):
		return r.Add(ctx, profile)
	default:
		return err
	}
}
