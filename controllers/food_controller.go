package controllers

import (
	"errors"
	"net/http"
	"strings"

	"hotel-backoffice/config"
	"hotel-backoffice/models"
	"hotel-backoffice/utils"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type foodItemPayload struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Available   *bool           `json:"available"`
}

func GetFoodItems(c *gin.Context) {
	var items []models.FoodItem
	if err := config.DB.Order("name").Find(&items).Error; err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, items)
}

func CreateFoodItem(c *gin.Context) {
	var payload foodItemPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}
	if strings.TrimSpace(payload.Name) == "" {
		utils.JSONError(c, http.StatusBadRequest, "name is required")
		return
	}

	item := models.FoodItem{
		Name:        strings.TrimSpace(payload.Name),
		Description: payload.Description,
		Price:       payload.Price,
		Available:   payload.Available == nil || *payload.Available,
	}
	if err := config.DB.Create(&item).Error; err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, item)
}

func UpdateFoodItem(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	var item models.FoodItem
	if err := config.DB.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.JSONError(c, http.StatusNotFound, "food item not found")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}

	var payload foodItemPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	item.Name = payload.Name
	item.Description = payload.Description
	item.Price = payload.Price
	if payload.Available != nil {
		item.Available = *payload.Available
	}

	if err := config.DB.Save(&item).Error; err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, item)
}

func DeleteFoodItem(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	result := config.DB.Delete(&models.FoodItem{}, id)
	if result.Error != nil {
		utils.JSONError(c, http.StatusInternalServerError, result.Error.Error())
		return
	}
	if result.RowsAffected == 0 {
		utils.JSONError(c, http.StatusNotFound, "food item not found")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "food item deleted"})
}
