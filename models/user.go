package models

import "github.com/rpupo63/portfolio-backend/auth"

type User struct {
	Base
	Email    string    `json:"email" db:"email" gorm:"type:varchar(191);not null;uniqueIndex"`
	Password string    `json:"-" db:"password" gorm:"type:varchar(255);not null"`
	Name     *string   `json:"name" db:"name" gorm:"type:varchar(255)"`
	Role     auth.Role `json:"role" db:"role" gorm:"type:varchar(20);not null"`
}

func (u User) Identity() auth.Identity {
	id := auth.Identity{UserID: u.ID.String(), Email: u.Email, Role: u.Role}
	if u.Name != nil {
		id.Name = *u.Name
	}
	return id
}
