package models

import "github.com/rpupo63/portfolio-backend/shaping"

type Organization struct {
	Base
	Name        string        `json:"name" db:"name" gorm:"type:varchar(255);not null"`
	Position    string        `json:"position" db:"position" gorm:"type:varchar(255);not null"`
	StartDate   shaping.Date  `json:"startDate" db:"start_date" gorm:"not null"`
	EndDate     *shaping.Date `json:"endDate" db:"end_date"`
	Current     bool          `json:"current" db:"current" gorm:"not null"`
	Description *string       `json:"description" db:"description" gorm:"type:text"`
}
