package models

type SocialMedia struct {
	Base
	Platform string  `json:"platform" db:"platform" gorm:"type:varchar(100);not null"`
	Username string  `json:"username" db:"username" gorm:"type:varchar(255);not null"`
	URL      string  `json:"url" db:"url" gorm:"column:url;type:text;not null"`
	Icon     *string `json:"icon" db:"icon" gorm:"type:text"`
	Order    int     `json:"order" db:"order" gorm:"column:order;not null"`
	Active   bool    `json:"active" db:"active" gorm:"not null"`
}

func (SocialMedia) TableName() string {
	return "social_media"
}
