package model

import "time"

// Account is a payment destination reachable through a Pix key.
type Account struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"size:100;not null;index"`
	PixKey    string    `json:"pix_key" gorm:"size:100;not null"`
	City      string    `json:"city" gorm:"size:100;not null"`
	UserID    uint      `json:"user_id" gorm:"not null;index"`
	User      *User     `json:"user,omitempty" gorm:"foreignKey:UserID"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
