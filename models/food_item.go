package models

import (
	"github.com/shopspring/decimal"
)

type FoodItem struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	Name        string          `gorm:"size:100" json:"name"`
	Description string          `gorm:"type:text" json:"description"`
	Price       decimal.Decimal `gorm:"type:decimal(8,2)" json:"price"`
	Available   bool            `gorm:"default:true" json:"available"`
}
