package models

import (
	"github.com/shopspring/decimal"
)

// Room types and statuses accepted by the rooms module.
const (
	RoomTypeSingle = "single"
	RoomTypeDouble = "double"
	RoomTypeSuite  = "suite"

	RoomStatusAvailable   = "available"
	RoomStatusBooked      = "booked"
	RoomStatusOccupied    = "occupied"
	RoomStatusMaintenance = "maintenance"
)

type Room struct {
	ID            uint            `gorm:"primaryKey" json:"id"`
	Number        string          `gorm:"uniqueIndex;size:10" json:"number"`
	RoomType      string          `gorm:"size:10" json:"room_type"`
	Status        string          `gorm:"size:15;default:available" json:"status"`
	IsAvailable   bool            `gorm:"default:true" json:"is_available"`
	PricePerNight decimal.Decimal `gorm:"type:decimal(8,2)" json:"price_per_night"`

	Guests []Guest `gorm:"foreignKey:RoomID" json:"guests,omitempty"`
}

func ValidRoomType(t string) bool {
	return t == RoomTypeSingle || t == RoomTypeDouble || t == RoomTypeSuite
}

func ValidRoomStatus(s string) bool {
	switch s {
	case RoomStatusAvailable, RoomStatusBooked, RoomStatusOccupied, RoomStatusMaintenance:
		return true
	}
	return false
}
