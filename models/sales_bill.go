package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment methods accepted on a bill.
const (
	PaymentMethodCash   = "cash"
	PaymentMethodCard   = "card"
	PaymentMethodOnline = "online"
	PaymentMethodUPI    = "upi"
)

type SalesBill struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	GuestName string    `gorm:"size:100" json:"guest_name"`

	RoomID *uint `gorm:"index;column:room_id" json:"room_id"`
	Room   *Room `gorm:"foreignKey:RoomID;references:ID" json:"room,omitempty"`

	RoomCharge         decimal.Decimal `gorm:"type:decimal(10,2)" json:"room_charge"`
	DiscountPercentage decimal.Decimal `gorm:"type:decimal(5,2)" json:"discount_percentage"`
	DiscountAmount     decimal.Decimal `gorm:"type:decimal(10,2)" json:"discount_amount"`
	TotalAmount        decimal.Decimal `gorm:"type:decimal(10,2)" json:"total_amount"`

	Items    []SalesBillItem `gorm:"foreignKey:SalesBillID" json:"items,omitempty"`
	Payments []PaymentDetail `gorm:"foreignKey:SalesBillID" json:"payments,omitempty"`
}

// SalesBillItem keeps a copy of the food price at bill time, so later
// catalog price changes never alter historical bills.
type SalesBillItem struct {
	ID          uint `gorm:"primaryKey" json:"id"`
	SalesBillID uint `gorm:"index;column:sales_bill_id" json:"sales_bill_id"`
	FoodItemID  uint `gorm:"index;column:food_item_id" json:"food_item_id"`

	Quantity uint            `gorm:"default:1" json:"quantity"`
	Price    decimal.Decimal `gorm:"type:decimal(8,2)" json:"price"`

	FoodItem FoodItem `gorm:"foreignKey:FoodItemID;references:ID" json:"food_item,omitempty"`
}

type PaymentDetail struct {
	ID            uint            `gorm:"primaryKey" json:"id"`
	SalesBillID   uint            `gorm:"index;column:sales_bill_id" json:"sales_bill_id"`
	PaymentMethod string          `gorm:"size:10" json:"payment_method"`
	Amount        decimal.Decimal `gorm:"type:decimal(10,2)" json:"amount"`
	CreatedAt     time.Time       `json:"created_at"`
}

func ValidPaymentMethod(m string) bool {
	switch m {
	case PaymentMethodCash, PaymentMethodCard, PaymentMethodOnline, PaymentMethodUPI:
		return true
	}
	return false
}
