package database

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/rpupo63/portfolio-backend/models"
)

// ContactQuery filters the admin inbox. A nil Read lists everything.
type ContactQuery struct {
	Page
	Read *bool
}

type ContactStats struct {
	Total     int64 `json:"total"`
	Unread    int64 `json:"unread"`
	ThisMonth int64 `json:"thisMonth"`
}

type ContactRepo struct{ repo[models.Contact] }

func NewContactRepo(db *gorm.DB) *ContactRepo {
	return &ContactRepo{repo[models.Contact]{db}}
}

func readIs(read bool) clause.Expression {
	return clause.Eq{Column: clause.Column{Name: "read"}, Value: read}
}

// List returns one page of contacts, newest first, and the total count
func (r *ContactRepo) List(ctx context.Context, q ContactQuery) ([]*models.Contact, int64, error) {
	q.Page = q.Page.Normalize()

	scope := r.db.WithContext(ctx).Model(&models.Contact{})
	if q.Read != nil {
		scope = scope.Where(readIs(*q.Read))
	}

	var total int64
	if err := scope.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	contacts := []*models.Contact{}
	err := scope.Session(&gorm.Session{}).
		Order("created_at desc").
		Offset(q.Offset()).
		Limit(q.Limit).
		Find(&contacts).Error
	if err != nil {
		return nil, 0, err
	}
	return contacts, total, nil
}

// SetRead updates the read flag and returns the updated contact. A missing
// contact is errs.ErrNotFound.
func (r *ContactRepo) SetRead(ctx context.Context, id uuid.UUID, read bool) (*models.Contact, error) {
	res := r.db.WithContext(ctx).
		Model(&models.Contact{}).
		Where("id = ?", id).
		Update("read", read)
	if res.Error != nil {
		return nil, res.Error
	}
	// MySQL reports unchanged rows as unaffected, so existence is
	// settled by the read.
	return r.FindByID(ctx, id)
}

// Stats counts all contacts, unread ones, and those received since
// monthStart. The three counts run concurrently.
func (r *ContactRepo) Stats(ctx context.Context, monthStart time.Time) (ContactStats, error) {
	var stats ContactStats
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return r.db.WithContext(gctx).Model(&models.Contact{}).Count(&stats.Total).Error
	})
	g.Go(func() error {
		return r.db.WithContext(gctx).Model(&models.Contact{}).Where(readIs(false)).Count(&stats.Unread).Error
	})
	g.Go(func() error {
		return r.db.WithContext(gctx).Model(&models.Contact{}).Where("created_at >= ?", monthStart).Count(&stats.ThisMonth).Error
	})

	if err := g.Wait(); err != nil {
		return ContactStats{}, err
	}
	return stats, nil
}

// MonthStart returns midnight UTC on the first day of t's month.
func MonthStart(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), 1, 0, 0, 0, 0, time.UTC)
}
