package models

import (
	"github.com/rpupo63/portfolio-backend/shaping"
	"github.com/shopspring/decimal"
)

const DefaultServiceUnit = "hour"

var ServiceUnits = []string{"hour", "day", "project"}

// Service is a priced offering shown on the contact page.
type Service struct {
	Base
	Name        string          `json:"name" db:"name" gorm:"type:varchar(255);not null"`
	Description *string         `json:"description" db:"description" gorm:"type:text"`
	Price       decimal.Decimal `json:"price" db:"price" gorm:"type:decimal(10,2);not null"`
	Unit        string          `json:"unit" db:"unit" gorm:"type:varchar(20);not null"`
	Features    shaping.List    `json:"features" db:"features" gorm:"type:text"`
	Active      bool            `json:"active" db:"active" gorm:"not null"`
}
