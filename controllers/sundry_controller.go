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

// Debtors and creditors share the same shape; Amount maps to amount_due on
// a debtor and amount_payable on a creditor.
type sundryPayload struct {
	Name        string          `json:"name"`
	Contact     string          `json:"contact"`
	Email       string          `json:"email"`
	Amount      decimal.Decimal `json:"amount"`
	DueDate     string          `json:"due_date"` // YYYY-MM-DD
	Description string          `json:"description"`
	IsPaid      bool            `json:"is_paid"`
	PaymentDate string          `json:"payment_date"` // YYYY-MM-DD, only when is_paid
}

func (p sundryPayload) dates() (time.Time, *time.Time, error) {
	if p.Name == "" {
		return time.Time{}, nil, errors.New("name is required")
	}
	due, err := time.Parse("2006-01-02", p.DueDate)
	if err != nil {
		return time.Time{}, nil, errors.New("due_date must be YYYY-MM-DD")
	}
	var paid *time.Time
	if p.IsPaid && p.PaymentDate != "" {
		t, err := time.Parse("2006-01-02", p.PaymentDate)
		if err != nil {
			return time.Time{}, nil, errors.New("payment_date must be YYYY-MM-DD")
		}
		paid = &t
	}
	return due, paid, nil
}

// ---- debtors ----

func GetDebtors(c *gin.Context) {
	var debtors []models.SundryDebtor
	if err := config.DB.Order("due_date").Find(&debtors).Error; err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, debtors)
}

func CreateDebtor(c *gin.Context) {
	var payload sundryPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}
	due, paid, err := payload.dates()
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	debtor := models.SundryDebtor{
		Name:        payload.Name,
		Contact:     payload.Contact,
		Email:       payload.Email,
		AmountDue:   payload.Amount,
		DueDate:     due,
		Description: payload.Description,
		IsPaid:      payload.IsPaid,
		PaymentDate: paid,
	}
	if err := config.DB.Create(&debtor).Error; err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, debtor)
}

func UpdateDebtor(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	var debtor models.SundryDebtor
	if err := config.DB.First(&debtor, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.JSONError(c, http.StatusNotFound, "debtor not found")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}

	var payload sundryPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}
	due, paid, err := payload.dates()
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	debtor.Name = payload.Name
	debtor.Contact = payload.Contact
	debtor.Email = payload.Email
	debtor.AmountDue = payload.Amount
	debtor.DueDate = due
	debtor.Description = payload.Description
	debtor.IsPaid = payload.IsPaid
	debtor.PaymentDate = paid

	if err := config.DB.Save(&debtor).Error; err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, debtor)
}

func DeleteDebtor(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	result := config.DB.Delete(&models.SundryDebtor{}, id)
	if result.Error != nil {
		utils.JSONError(c, http.StatusInternalServerError, result.Error.Error())
		return
	}
	if result.RowsAffected == 0 {
		utils.JSONError(c, http.StatusNotFound, "debtor not found")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "debtor deleted"})
}

// ---- creditors ----

func GetCreditors(c *gin.Context) {
	var creditors []models.SundryCreditor
	if err := config.DB.Order("due_date").Find(&creditors).Error; err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, creditors)
}

func CreateCreditor(c *gin.Context) {
	var payload sundryPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}
	due, paid, err := payload.dates()
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	creditor := models.SundryCreditor{
		Name:          payload.Name,
		Contact:       payload.Contact,
		Email:         payload.Email,
		AmountPayable: payload.Amount,
		DueDate:       due,
		Description:   payload.Description,
		IsPaid:        payload.IsPaid,
		PaymentDate:   paid,
	}
	if err := config.DB.Create(&creditor).Error; err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, creditor)
}

func UpdateCreditor(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	var creditor models.SundryCreditor
	if err := config.DB.First(&creditor, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.JSONError(c, http.StatusNotFound, "creditor not found")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}

	var payload sundryPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}
	due, paid, err := payload.dates()
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	creditor.Name = payload.Name
	creditor.Contact = payload.Contact
	creditor.Email = payload.Email
	creditor.AmountPayable = payload.Amount
	creditor.DueDate = due
	creditor.Description = payload.Description
	creditor.IsPaid = payload.IsPaid
	creditor.PaymentDate = paid

	if err := config.DB.Save(&creditor).Error; err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, creditor)
}

func DeleteCreditor(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	result := config.DB.Delete(&models.SundryCreditor{}, id)
	if result.Error != nil {
		utils.JSONError(c, http.StatusInternalServerError, result.Error.Error())
		return
	}
	if result.RowsAffected == 0 {
		utils.JSONError(c, http.StatusNotFound, "creditor not found")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "creditor deleted"})
}
