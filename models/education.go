package models

import "github.com/rpupo63/portfolio-backend/shaping"

// Education with a nil EndDate is still in progress.
type Education struct {
	Base
	Institution string        `json:"institution" db:"institution" gorm:"type:varchar(255);not null"`
	Degree      string        `json:"degree" db:"degree" gorm:"type:varchar(255);not null"`
	Field       *string       `json:"field" db:"field" gorm:"type:varchar(255)"`
	StartDate   shaping.Date  `json:"startDate" db:"start_date" gorm:"not null"`
	EndDate     *shaping.Date `json:"endDate" db:"end_date"`
	GPA         *string       `json:"gpa" db:"gpa" gorm:"column:gpa;type:varchar(32)"`
	Description *string       `json:"description" db:"description" gorm:"type:text"`
}

func (Education) TableName() string {
	return "education"
}
