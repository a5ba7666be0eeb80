package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"hotel-backoffice/models"
	"hotel-backoffice/services"
	"hotel-backoffice/utils"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type RoomController struct {
	Service *services.RoomService
}

func NewRoomController(service *services.RoomService) *RoomController {
	return &RoomController{Service: service}
}

type roomPayload struct {
	Number        string          `json:"number"`
	RoomType      string          `json:"room_type"`
	Status        string          `json:"status"`
	IsAvailable   *bool           `json:"is_available"`
	PricePerNight decimal.Decimal `json:"price_per_night"`
}

func parseID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", c.Param("id"))
	}
	return uint(id), nil
}

func (rc *RoomController) GetRooms(c *gin.Context) {
	rooms, err := rc.Service.GetAll()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, rooms)
}

func (rc *RoomController) CreateRoom(c *gin.Context) {
	var payload roomPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	payload.Number = strings.TrimSpace(payload.Number)
	if payload.Number == "" {
		utils.JSONError(c, http.StatusBadRequest, "room number is required")
		return
	}
	if !models.ValidRoomType(payload.RoomType) {
		utils.JSONError(c, http.StatusBadRequest, "room_type must be single, double or suite")
		return
	}
	if payload.Status == "" {
		payload.Status = models.RoomStatusAvailable
	}
	if !models.ValidRoomStatus(payload.Status) {
		utils.JSONError(c, http.StatusBadRequest, "invalid room status")
		return
	}

	room := models.Room{
		Number:        payload.Number,
		RoomType:      payload.RoomType,
		Status:        payload.Status,
		IsAvailable:   payload.IsAvailable == nil || *payload.IsAvailable,
		PricePerNight: payload.PricePerNight,
	}
	if err := rc.Service.Create(&room); err != nil {
		if strings.Contains(err.Error(), "Duplicate entry") || strings.Contains(err.Error(), "UNIQUE constraint failed") {
			utils.JSONError(c, http.StatusConflict, fmt.Sprintf("room number %q already exists", room.Number))
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, room)
}

func (rc *RoomController) UpdateRoom(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	var updateData map[string]interface{}
	if err := c.ShouldBindJSON(&updateData); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	delete(updateData, "id")
	if t, ok := updateData["room_type"].(string); ok && !models.ValidRoomType(t) {
		utils.JSONError(c, http.StatusBadRequest, "room_type must be single, double or suite")
		return
	}
	if st, ok := updateData["status"].(string); ok && !models.ValidRoomStatus(st) {
		utils.JSONError(c, http.StatusBadRequest, "invalid room status")
		return
	}

	if err := rc.Service.Update(id, updateData); err != nil {
		if errors.Is(err, services.ErrRoomNotFound) {
			utils.JSONError(c, http.StatusNotFound, "room not found")
			return
		}
		if strings.Contains(err.Error(), "Duplicate entry") || strings.Contains(err.Error(), "UNIQUE constraint failed") {
			utils.JSONError(c, http.StatusConflict, "room number already exists")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "room updated"})
}

func (rc *RoomController) DeleteRoom(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := rc.Service.Delete(id); err != nil {
		if errors.Is(err, services.ErrRoomNotFound) {
			utils.JSONError(c, http.StatusNotFound, "room not found")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "room deleted"})
}
