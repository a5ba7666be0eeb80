package services

import (
	"errors"

	"hotel-backoffice/models"

	"gorm.io/gorm"
)

type RoomService struct {
	DB *gorm.DB
}

func NewRoomService(db *gorm.DB) *RoomService {
	return &RoomService{DB: db}
}

func (s *RoomService) Create(room *models.Room) error {
	return s.DB.Create(room).Error
}

func (s *RoomService) GetAll() ([]models.Room, error) {
	var rooms []models.Room
	err := s.DB.Order("number").Find(&rooms).Error
	return rooms, err
}

func (s *RoomService) GetByID(id uint) (models.Room, error) {
	var room models.Room
	err := s.DB.First(&room, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Room{}, ErrRoomNotFound
	}
	return room, err
}

func (s *RoomService) Update(id uint, updates map[string]interface{}) error {
	res := s.DB.Model(&models.Room{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrRoomNotFound
	}
	return nil
}

// Delete removes a room, deletes its guests and nulls the room reference
// on any sales bill, all in one transaction. Bills survive the room.
func (s *RoomService) Delete(id uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var room models.Room
		if err := tx.First(&room, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRoomNotFound
			}
			return err
		}
		if err := tx.Where("room_id = ?", id).Delete(&models.Guest{}).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.SalesBill{}).Where("room_id = ?", id).
			Update("room_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Room{}, id).Error
	})
}
