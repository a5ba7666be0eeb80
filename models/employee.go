package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Employee positions from the finance module.
const (
	PositionManager      = "manager"
	PositionReceptionist = "receptionist"
	PositionHousekeeping = "housekeeping"
	PositionChef         = "chef"
	PositionWaiter       = "waiter"
	PositionSecurity     = "security"
	PositionMaintenance  = "maintenance"
	PositionOther        = "other"
)

type Employee struct {
	ID            uint            `gorm:"primaryKey" json:"id"`
	Name          string          `gorm:"size:200" json:"name"`
	Position      string          `gorm:"size:50" json:"position"`
	Phone         string          `gorm:"size:20" json:"phone"`
	Email         string          `gorm:"size:150" json:"email"`
	Address       string          `gorm:"type:text" json:"address"`
	MonthlySalary decimal.Decimal `gorm:"type:decimal(10,2)" json:"monthly_salary"`
	DateJoined    time.Time       `gorm:"type:date" json:"date_joined"`
	IsActive      bool            `gorm:"default:true" json:"is_active"`
	CreatedAt     time.Time       `json:"created_at"`

	SalaryPayments []SalaryPayment `gorm:"foreignKey:EmployeeID" json:"salary_payments,omitempty"`
}

type SalaryPayment struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	EmployeeID  uint            `gorm:"index;column:employee_id" json:"employee_id"`
	Amount      decimal.Decimal `gorm:"type:decimal(10,2)" json:"amount"`
	PaymentDate time.Time       `gorm:"type:date" json:"payment_date"`
	Month       string          `gorm:"size:20" json:"month"` // e.g. "January 2026"
	Notes       string          `gorm:"type:text" json:"notes"`
	CreatedAt   time.Time       `json:"created_at"`

	Employee Employee `gorm:"foreignKey:EmployeeID;references:ID" json:"employee,omitempty"`
}

func ValidPosition(p string) bool {
	switch p {
	case PositionManager, PositionReceptionist, PositionHousekeeping, PositionChef,
		PositionWaiter, PositionSecurity, PositionMaintenance, PositionOther:
		return true
	}
	return false
}
