package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func init() {
	// prices go over the wire as JSON numbers
	decimal.MarshalJSONWithoutQuotes = true
}

// Base carries the identity and timestamps every record shares.
type Base struct {
	ID        uuid.UUID `json:"id" db:"id" gorm:"type:varchar(36);primaryKey;not null"`
	CreatedAt time.Time `json:"createdAt" db:"created_at" gorm:"not null;index"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at" gorm:"not null"`
}

func (b *Base) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

// All lists every persisted model, in migration order.
func All() []any {
	return []any{
		&User{},
		&Profile{},
		&Skill{},
		&Education{},
		&Experience{},
		&Project{},
		&Organization{},
		&Activity{},
		&Article{},
		&SocialMedia{},
		&Service{},
		&Contact{},
	}
}
