package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense categories from the finance module.
const (
	ExpenseCategoryUtilities   = "utilities"
	ExpenseCategorySupplies    = "supplies"
	ExpenseCategoryMaintenance = "maintenance"
	ExpenseCategoryMarketing   = "marketing"
	ExpenseCategoryTransport   = "transport"
	ExpenseCategoryOther       = "other"
)

type Expense struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	Title       string          `gorm:"size:200" json:"title"`
	Description string          `gorm:"type:text" json:"description"`
	Amount      decimal.Decimal `gorm:"type:decimal(10,2)" json:"amount"`
	Category    string          `gorm:"size:50" json:"category"`
	Date        time.Time       `gorm:"type:date" json:"date"`
	CreatedAt   time.Time       `json:"created_at"`
}

func ValidExpenseCategory(c string) bool {
	switch c {
	case ExpenseCategoryUtilities, ExpenseCategorySupplies, ExpenseCategoryMaintenance,
		ExpenseCategoryMarketing, ExpenseCategoryTransport, ExpenseCategoryOther:
		return true
	}
	return false
}
