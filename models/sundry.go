package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// SundryDebtor is money owed to the hotel (accounts receivable).
type SundryDebtor struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	Name        string          `gorm:"size:200" json:"name"`
	Contact     string          `gorm:"size:20" json:"contact"`
	Email       string          `gorm:"size:150" json:"email"`
	AmountDue   decimal.Decimal `gorm:"type:decimal(10,2)" json:"amount_due"`
	DueDate     time.Time       `gorm:"type:date" json:"due_date"`
	Description string          `gorm:"type:text" json:"description"`
	IsPaid      bool            `gorm:"default:false" json:"is_paid"`
	PaymentDate *time.Time      `gorm:"type:date" json:"payment_date"` // meaningful only when IsPaid
	CreatedAt   time.Time       `json:"created_at"`
}

// SundryCreditor is money the hotel owes (accounts payable).
type SundryCreditor struct {
	ID            uint            `gorm:"primaryKey" json:"id"`
	Name          string          `gorm:"size:200" json:"name"`
	Contact       string          `gorm:"size:20" json:"contact"`
	Email         string          `gorm:"size:150" json:"email"`
	AmountPayable decimal.Decimal `gorm:"type:decimal(10,2)" json:"amount_payable"`
	DueDate       time.Time       `gorm:"type:date" json:"due_date"`
	Description   string          `gorm:"type:text" json:"description"`
	IsPaid        bool            `gorm:"default:false" json:"is_paid"`
	PaymentDate   *time.Time      `gorm:"type:date" json:"payment_date"`
	CreatedAt     time.Time       `json:"created_at"`
}
