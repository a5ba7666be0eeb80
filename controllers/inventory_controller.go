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

type inventoryPayload struct {
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	Quantity     uint            `json:"quantity"`
	Unit         string          `json:"unit"`
	PricePerUnit decimal.Decimal `json:"price_per_unit"`
}

func GetInventoryItems(c *gin.Context) {
	var items []models.InventoryItem
	if err := config.DB.Order("last_updated DESC").Find(&items).Error; err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, items)
}

func CreateInventoryItem(c *gin.Context) {
	var payload inventoryPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	if strings.TrimSpace(payload.Name) == "" {
		utils.JSONError(c, http.StatusBadRequest, "name is required")
		return
	}

	item := models.InventoryItem{
		Name:         strings.TrimSpace(payload.Name),
		Description:  payload.Description,
		Quantity:     payload.Quantity,
		Unit:         payload.Unit,
		PricePerUnit: payload.PricePerUnit,
	}
	if err := config.DB.Create(&item).Error; err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, item)
}

func UpdateInventoryItem(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	var item models.InventoryItem
	if err := config.DB.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.JSONError(c, http.StatusNotFound, "inventory item not found")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}

	var payload inventoryPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	item.Name = payload.Name
	item.Description = payload.Description
	item.Quantity = payload.Quantity
	item.Unit = payload.Unit
	item.PricePerUnit = payload.PricePerUnit

	if err := config.DB.Save(&item).Error; err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, item)
}

func DeleteInventoryItem(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	result := config.DB.Delete(&models.InventoryItem{}, id)
	if result.Error != nil {
		utils.JSONError(c, http.StatusInternalServerError, result.Error.Error())
		return
	}
	if result.RowsAffected == 0 {
		utils.JSONError(c, http.StatusNotFound, "inventory item not found")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "inventory item deleted"})
}
