package posts

import (
	"time"

	"growing-backend/internal/domain/users"
)

type Post struct {
	ID        string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	UserID    string     `json:"userId" gorm:"type:uuid;not null;index"`
	User      users.User `json:"user" gorm:"foreignKey:UserID"`
	Content   string     `json:"content" gorm:"type:text;not null"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}
