package services

import (
	"time"

	"hotel-backoffice/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ReportService computes the read-only reports: the balance sheet and the
// dashboard summary. Everything is recomputed from live aggregates on each
// call, nothing is cached.
type ReportService struct {
	DB *gorm.DB
}

func NewReportService(db *gorm.DB) *ReportService {
	return &ReportService{DB: db}
}

type BalanceSheet struct {
	InventoryValue    decimal.Decimal `json:"inventory_value"`
	TotalCash         decimal.Decimal `json:"total_cash"`
	TotalDebtors      decimal.Decimal `json:"total_debtors"`
	TotalAssets       decimal.Decimal `json:"total_assets"`
	TotalCreditors    decimal.Decimal `json:"total_creditors"`
	TotalExpenses     decimal.Decimal `json:"total_expenses"`
	TotalSalariesPaid decimal.Decimal `json:"total_salaries_paid"`
	TotalLiabilities  decimal.Decimal `json:"total_liabilities"`
	TotalEquity       decimal.Decimal `json:"total_equity"`
}

type sumRow struct {
	Total decimal.Decimal
}

func (s *ReportService) sum(query *gorm.DB, expr string) (decimal.Decimal, error) {
	var row sumRow
	if err := query.Select("COALESCE(SUM(" + expr + "), 0) AS total").Scan(&row).Error; err != nil {
		return decimal.Zero, err
	}
	return row.Total, nil
}

// GetBalanceSheet sums assets (inventory value, all-time sales, unpaid
// debtors) against liabilities (unpaid creditors, expenses, salaries paid).
func (s *ReportService) GetBalanceSheet() (BalanceSheet, error) {
	var sheet BalanceSheet
	var err error

	if sheet.InventoryValue, err = s.sum(s.DB.Model(&models.InventoryItem{}), "quantity * price_per_unit"); err != nil {
		return sheet, err
	}
	if sheet.TotalCash, err = s.sum(s.DB.Model(&models.SalesBill{}), "total_amount"); err != nil {
		return sheet, err
	}
	if sheet.TotalDebtors, err = s.sum(s.DB.Model(&models.SundryDebtor{}).Where("is_paid = ?", false), "amount_due"); err != nil {
		return sheet, err
	}
	sheet.TotalAssets = sheet.InventoryValue.Add(sheet.TotalCash).Add(sheet.TotalDebtors)

	if sheet.TotalCreditors, err = s.sum(s.DB.Model(&models.SundryCreditor{}).Where("is_paid = ?", false), "amount_payable"); err != nil {
		return sheet, err
	}
	if sheet.TotalExpenses, err = s.sum(s.DB.Model(&models.Expense{}), "amount"); err != nil {
		return sheet, err
	}
	if sheet.TotalSalariesPaid, err = s.sum(s.DB.Model(&models.SalaryPayment{}), "amount"); err != nil {
		return sheet, err
	}
	sheet.TotalLiabilities = sheet.TotalCreditors.Add(sheet.TotalExpenses).Add(sheet.TotalSalariesPaid)

	sheet.TotalEquity = sheet.TotalAssets.Sub(sheet.TotalLiabilities)
	return sheet, nil
}

type DailySale struct {
	Label  string          `json:"label"` // e.g. "Jan 02"
	Amount decimal.Decimal `json:"amount"`
}

type DashboardStats struct {
	InventoryCount       int64           `json:"inventory_count"`
	TotalInventoryAmount decimal.Decimal `json:"total_inventory_amount"`
	SalesCount           int64           `json:"sales_count"`
	TotalSalesAmount     decimal.Decimal `json:"total_sales_amount"`
	DailySales           []DailySale     `json:"daily_sales"`
}

// GetDashboardStats returns the headline counts plus a last-7-days sales
// series, one range query per day.
func (s *ReportService) GetDashboardStats() (DashboardStats, error) {
	var stats DashboardStats
	var err error

	if err = s.DB.Model(&models.InventoryItem{}).Count(&stats.InventoryCount).Error; err != nil {
		return stats, err
	}
	if stats.TotalInventoryAmount, err = s.sum(s.DB.Model(&models.InventoryItem{}), "quantity * price_per_unit"); err != nil {
		return stats, err
	}
	if err = s.DB.Model(&models.SalesBill{}).Count(&stats.SalesCount).Error; err != nil {
		return stats, err
	}
	if stats.TotalSalesAmount, err = s.sum(s.DB.Model(&models.SalesBill{}), "total_amount"); err != nil {
		return stats, err
	}

	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	stats.DailySales = make([]DailySale, 0, 7)
	for i := 6; i >= 0; i-- {
		day := today.AddDate(0, 0, -i)
		next := day.AddDate(0, 0, 1)
		amount, err := s.sum(
			s.DB.Model(&models.SalesBill{}).Where("created_at >= ? AND created_at < ?", day, next),
			"total_amount",
		)
		if err != nil {
			return stats, err
		}
		stats.DailySales = append(stats.DailySales, DailySale{
			Label:  day.Format("Jan 02"),
			Amount: amount,
		})
	}

	return stats, nil
}
