package model

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Transaction records an expense paid into an account on behalf of a group.
type Transaction struct {
	ID        uint            `json:"id" gorm:"primaryKey"`
	Value     decimal.Decimal `json:"value" gorm:"type:decimal(13,2);not null"`
	Date      time.Time       `json:"date" gorm:"not null;index"`
	AccountID uint            `json:"account_id" gorm:"not null;index"`
	Account   *Account        `json:"account,omitempty" gorm:"foreignKey:AccountID"`
	GroupID   uint            `json:"group_id" gorm:"not null;index"`
	Group     *Group          `json:"group,omitempty" gorm:"foreignKey:GroupID"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// BeforeCreate stamps the transaction date when the caller does not supply one.
func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.Date.IsZero() {
		t.Date = time.Now()
	}
	return nil
}
