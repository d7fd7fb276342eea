package models

// Profile is the site owner's card. At most one row exists.
type Profile struct {
	Base
	Name        string  `json:"name" db:"name" gorm:"type:varchar(255);not null"`
	Title       *string `json:"title" db:"title" gorm:"type:varchar(255)"`
	Description *string `json:"description" db:"description" gorm:"type:text"`
	Email       *string `json:"email" db:"email" gorm:"type:varchar(255)"`
	Phone       *string `json:"phone" db:"phone" gorm:"type:varchar(64)"`
	Location    *string `json:"location" db:"location" gorm:"type:varchar(255)"`
	Website     *string `json:"website" db:"website" gorm:"type:text"`
	Photo       *string `json:"photo" db:"photo" gorm:"type:text"`
	Resume      *string `json:"resume" db:"resume" gorm:"type:text"`
}
