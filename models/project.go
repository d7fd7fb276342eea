package models

import "github.com/rpupo63/portfolio-backend/shaping"

type Project struct {
	Base
	Title        string       `json:"title" db:"title" gorm:"type:varchar(255);not null"`
	Description  *string      `json:"description" db:"description" gorm:"type:text"`
	Image        *string      `json:"image" db:"image" gorm:"type:text"`
	Technologies shaping.List `json:"technologies" db:"technologies" gorm:"type:text"`
	GithubURL    *string      `json:"githubUrl" db:"github_url" gorm:"column:github_url;type:text"`
	LiveURL      *string      `json:"liveUrl" db:"live_url" gorm:"column:live_url;type:text"`
	Category     *string      `json:"category" db:"category" gorm:"type:varchar(255)"`
	Featured     bool         `json:"featured" db:"featured" gorm:"not null"`
}
