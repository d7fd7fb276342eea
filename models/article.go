package models

import "github.com/rpupo63/portfolio-backend/shaping"

// Article is a blog post. Only published articles are visible publicly.
type Article struct {
	Base
	Title     string       `json:"title" db:"title" gorm:"type:varchar(255);not null"`
	Slug      string       `json:"slug" db:"slug" gorm:"type:varchar(191);not null;uniqueIndex"`
	Content   string       `json:"content,omitempty" db:"content" gorm:"type:text;not null"`
	Excerpt   *string      `json:"excerpt" db:"excerpt" gorm:"type:text"`
	Image     *string      `json:"image" db:"image" gorm:"type:text"`
	Published bool         `json:"published" db:"published" gorm:"not null;index"`
	Tags      shaping.List `json:"tags" db:"tags" gorm:"type:text"`
}
