package models

import "github.com/rpupo63/portfolio-backend/shaping"

// Experience is a job. Current positions never carry an EndDate.
type Experience struct {
	Base
	Company     string        `json:"company" db:"company" gorm:"type:varchar(255);not null"`
	Position    string        `json:"position" db:"position" gorm:"type:varchar(255);not null"`
	Location    *string       `json:"location" db:"location" gorm:"type:varchar(255)"`
	StartDate   shaping.Date  `json:"startDate" db:"start_date" gorm:"not null"`
	EndDate     *shaping.Date `json:"endDate" db:"end_date"`
	Current     bool          `json:"current" db:"current" gorm:"not null"`
	Description *string       `json:"description" db:"description" gorm:"type:text"`
	Skills      shaping.List  `json:"skills" db:"skills" gorm:"type:text"`
}
