package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type InventoryItem struct {
	ID           uint            `gorm:"primaryKey" json:"id"`
	Name         string          `gorm:"size:100" json:"name"`
	Description  string          `gorm:"type:text" json:"description"`
	Quantity     uint            `gorm:"default:0" json:"quantity"`
	Unit         string          `gorm:"size:20" json:"unit"`
	PricePerUnit decimal.Decimal `gorm:"type:decimal(10,2)" json:"price_per_unit"`
	LastUpdated  time.Time       `gorm:"autoUpdateTime" json:"last_updated"`
}
