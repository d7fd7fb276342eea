package models

import "github.com/rpupo63/portfolio-backend/shaping"

type Activity struct {
	Base
	Title       string       `json:"title" db:"title" gorm:"type:varchar(255);not null"`
	Description string       `json:"description" db:"description" gorm:"type:text;not null"`
	Date        shaping.Date `json:"date" db:"date" gorm:"not null"`
	Location    *string      `json:"location" db:"location" gorm:"type:varchar(255)"`
	Image       *string      `json:"image" db:"image" gorm:"type:text"`
}

func (Activity) TableName() string {
	return "activities"
}
