package controllers

import (
	"errors"
	"net/http"
	"time"

	"hotel-backoffice/config"
	"hotel-backoffice/models"
	"hotel-backoffice/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type guestPayload struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	CheckIn   string `json:"check_in"`  // YYYY-MM-DD
	CheckOut  string `json:"check_out"` // YYYY-MM-DD
	RoomID    uint   `json:"room_id"`
}

func (p guestPayload) apply(guest *models.Guest) error {
	checkIn, err := time.Parse("2006-01-02", p.CheckIn)
	if err != nil {
		return errors.New("check_in must be YYYY-MM-DD")
	}
	checkOut, err := time.Parse("2006-01-02", p.CheckOut)
	if err != nil {
		return errors.New("check_out must be YYYY-MM-DD")
	}

	guest.FirstName = p.FirstName
	guest.LastName = p.LastName
	guest.Email = p.Email
	guest.Phone = p.Phone
	guest.CheckIn = checkIn
	guest.CheckOut = checkOut
	guest.RoomID = p.RoomID
	return nil
}

func GetGuests(c *gin.Context) {
	var guests []models.Guest
	if err := config.DB.Preload("Room").Find(&guests).Error; err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, guests)
}

func CreateGuest(c *gin.Context) {
	var payload guestPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	var room models.Room
	if err := config.DB.First(&room, payload.RoomID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.JSONError(c, http.StatusBadRequest, "room not found")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}

	var guest models.Guest
	if err := payload.apply(&guest); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	if err := config.DB.Create(&guest).Error; err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, guest)
}

func UpdateGuest(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	var guest models.Guest
	if err := config.DB.First(&guest, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.JSONError(c, http.StatusNotFound, "guest not found")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}

	var payload guestPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	var room models.Room
	if err := config.DB.First(&room, payload.RoomID).Error; err != nil {
		utils.JSONError(c, http.StatusBadRequest, "room not found")
		return
	}

	if err := payload.apply(&guest); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	if err := config.DB.Save(&guest).Error; err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, guest)
}

func DeleteGuest(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	result := config.DB.Delete(&models.Guest{}, id)
	if result.Error != nil {
		utils.JSONError(c, http.StatusInternalServerError, result.Error.Error())
		return
	}
	if result.RowsAffected == 0 {
		utils.JSONError(c, http.StatusNotFound, "guest not found")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "guest deleted"})
}
