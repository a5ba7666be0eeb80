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

type employeePayload struct {
	Name          string          `json:"name"`
	Position      string          `json:"position"`
	Phone         string          `json:"phone"`
	Email         string          `json:"email"`
	Address       string          `json:"address"`
	MonthlySalary decimal.Decimal `json:"monthly_salary"`
	DateJoined    string          `json:"date_joined"` // YYYY-MM-DD
	IsActive      *bool           `json:"is_active"`
}

func (p employeePayload) apply(employee *models.Employee) error {
	if p.Name == "" {
		return errors.New("name is required")
	}
	if !models.ValidPosition(p.Position) {
		return errors.New("invalid position")
	}
	joined, err := time.Parse("2006-01-02", p.DateJoined)
	if err != nil {
		return errors.New("date_joined must be YYYY-MM-DD")
	}

	employee.Name = p.Name
	employee.Position = p.Position
	employee.Phone = p.Phone
	employee.Email = p.Email
	employee.Address = p.Address
	employee.MonthlySalary = p.MonthlySalary
	employee.DateJoined = joined
	employee.IsActive = p.IsActive == nil || *p.IsActive
	return nil
}

func GetEmployees(c *gin.Context) {
	var employees []models.Employee
	if err := config.DB.Order("name").Find(&employees).Error; err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, employees)
}

func CreateEmployee(c *gin.Context) {
	var payload employeePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	var employee models.Employee
	if err := payload.apply(&employee); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	if err := config.DB.Create(&employee).Error; err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, employee)
}

func UpdateEmployee(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	var employee models.Employee
	if err := config.DB.First(&employee, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.JSONError(c, http.StatusNotFound, "employee not found")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}

	var payload employeePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}
	if err := payload.apply(&employee); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	if err := config.DB.Save(&employee).Error; err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, employee)
}

func DeleteEmployee(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	result := config.DB.Delete(&models.Employee{}, id)
	if result.Error != nil {
		utils.JSONError(c, http.StatusInternalServerError, result.Error.Error())
		return
	}
	if result.RowsAffected == 0 {
		utils.JSONError(c, http.StatusNotFound, "employee not found")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "employee deleted"})
}

// ---- salary payments ----

type salaryPaymentPayload struct {
	EmployeeID  uint            `json:"employee_id"`
	Amount      decimal.Decimal `json:"amount"`
	PaymentDate string          `json:"payment_date"` // YYYY-MM-DD
	Month       string          `json:"month"`        // e.g. "January 2026"
	Notes       string          `json:"notes"`
}

func GetSalaryPayments(c *gin.Context) {
	var payments []models.SalaryPayment
	if err := config.DB.Preload("Employee").Order("payment_date DESC").Find(&payments).Error; err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, payments)
}

func CreateSalaryPayment(c *gin.Context) {
	var payload salaryPaymentPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	var employee models.Employee
	if err := config.DB.First(&employee, payload.EmployeeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.JSONError(c, http.StatusBadRequest, "employee not found")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}

	paymentDate, err := time.Parse("2006-01-02", payload.PaymentDate)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "payment_date must be YYYY-MM-DD")
		return
	}

	payment := models.SalaryPayment{
		EmployeeID:  employee.ID,
		Amount:      payload.Amount,
		PaymentDate: paymentDate,
		Month:       payload.Month,
		Notes:       payload.Notes,
	}
	if err := config.DB.Create(&payment).Error; err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, payment)
}

func DeleteSalaryPayment(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	result := config.DB.Delete(&models.SalaryPayment{}, id)
	if result.Error != nil {
		utils.JSONError(c, http.StatusInternalServerError, result.Error.Error())
		return
	}
	if result.RowsAffected == 0 {
		utils.JSONError(c, http.StatusNotFound, "salary payment not found")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "salary payment deleted"})
}
