package database

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/rpupo63/portfolio-backend/models"
)

type UserRepo struct{ repo[models.User] }

func NewUserRepo(db *gorm.DB) *UserRepo {
	return &UserRepo{repo[models.User]{db}}
}

// FindByEmail looks a user up by (case-insensitive) email
func (r *UserRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).
		Where("LOWER(email) = ?", strings.ToLower(strings.TrimSpace(email))).
		First(&user).Error
	if err != nil {
		return nil, notFound(err)
	}
	return &user, nil
}
