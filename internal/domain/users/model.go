package users

import "time"

type User struct {
	ID           string  `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Name         string  `json:"name"`
	Email        string  `json:"email" gorm:"not null;uniqueIndex:idx_users_email"`
	Password     *string `json:"-"`
	AuthProvider string  `json:"authProvider" gorm:"type:varchar(20);not null;default:'local'"`
	GoogleSub    *string `json:"-" gorm:"uniqueIndex:idx_users_google_sub"`
	Role         string  `json:"role" gorm:"type:varchar(20);not null;default:'user'"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
