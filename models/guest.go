package models

import "time"

type Guest struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	FirstName string    `gorm:"size:50" json:"first_name"`
	LastName  string    `gorm:"size:50" json:"last_name"`
	Email     string    `gorm:"size:150" json:"email"`
	Phone     string    `gorm:"size:20" json:"phone"`
	CheckIn   time.Time `gorm:"type:date" json:"check_in"`
	CheckOut  time.Time `gorm:"type:date" json:"check_out"`

	RoomID uint `gorm:"index;column:room_id" json:"room_id"`
	Room   Room `gorm:"foreignKey:RoomID;references:ID" json:"room,omitempty"`
}
