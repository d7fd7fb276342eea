package models

// Contact is a message left through the public contact form.
type Contact struct {
	Base
	Name    string  `json:"name" db:"name" gorm:"type:varchar(100);not null"`
	Email   string  `json:"email" db:"email" gorm:"type:varchar(255);not null"`
	Subject *string `json:"subject" db:"subject" gorm:"type:varchar(200)"`
	Message string  `json:"message" db:"message" gorm:"type:text;not null"`
	Read    bool    `json:"read" db:"read" gorm:"column:read;not null;index"`
}
