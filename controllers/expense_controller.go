package controllers

import (
	"errors"
	"net/http"
	"time"

	"hotel-backoffice/config"
	"hotel-backoffice/models"
	"hotel-backoffice/utils"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type expensePayload struct {
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	Date        string          `json:"date"` // YYYY-MM-DD
}

func (p expensePayload) apply(expense *models.Expense) error {
	if p.Title == "" {
		return errors.New("title is required")
	}
	if !models.ValidExpenseCategory(p.Category) {
		return errors.New("invalid expense category")
	}
	date, err := time.Parse("2006-01-02", p.Date)
	if err != nil {
		return errors.New("date must be YYYY-MM-DD")
	}

	expense.Title = p.Title
	expense.Description = p.Description
	expense.Amount = p.Amount
	expense.Category = p.Category
	expense.Date = date
	return nil
}

func GetExpenses(c *gin.Context) {
	var expenses []models.Expense
	if err := config.DB.Order("date DESC").Find(&expenses).Error; err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, expenses)
}

func CreateExpense(c *gin.Context) {
	var payload expensePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	var expense models.Expense
	if err := payload.apply(&expense); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	if err := config.DB.Create(&expense).Error; err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, expense)
}

func UpdateExpense(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	var expense models.Expense
	if err := config.DB.First(&expense, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.JSONError(c, http.StatusNotFound, "expense not found")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}

	var payload expensePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}
	if err := payload.apply(&expense); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	if err := config.DB.Save(&expense).Error; err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, expense)
}

func DeleteExpense(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	result := config.DB.Delete(&models.Expense{}, id)
	if result.Error != nil {
		utils.JSONError(c, http.StatusInternalServerError, result.Error.Error())
		return
	}
	if result.RowsAffected == 0 {
		utils.JSONError(c, http.StatusNotFound, "expense not found")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "expense deleted"})
}
