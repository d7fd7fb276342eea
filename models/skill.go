package models

type Skill struct {
	Base
	Name     string  `json:"name" db:"name" gorm:"type:varchar(255);not null"`
	Category string  `json:"category" db:"category" gorm:"type:varchar(255);not null"`
	Level    int     `json:"level" db:"level" gorm:"not null"`
	Icon     *string `json:"icon" db:"icon" gorm:"type:text"`
}
