package finance

import "time"

type Expense struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	UserID    string    `json:"userId" gorm:"type:uuid;not null;index"`
	Label     string    `json:"label" gorm:"not null"`
	Amount    float64   `json:"amount" gorm:"not null"`
	Category  string    `json:"category"`
	SpentAt   time.Time `json:"spentAt"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type Goal struct {
	ID            string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	UserID        string     `json:"userId" gorm:"type:uuid;not null;index"`
	Name          string     `json:"name" gorm:"not null"`
	TargetAmount  float64    `json:"targetAmount" gorm:"not null"`
	CurrentAmount float64    `json:"currentAmount" gorm:"not null;default:0"`
	Deadline      *time.Time `json:"deadline"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}
