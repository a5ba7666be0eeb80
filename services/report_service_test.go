package services

import (
	"testing"
	"time"

	"hotel-backoffice/models"
)

func TestBalanceSheetEmptyDatabase(t *testing.T) {
	db := newTestDB(t)
	svc := NewReportService(db)

	sheet, err := svc.GetBalanceSheet()
	if err != nil {
		t.Fatalf("GetBalanceSheet: %v", err)
	}

	if !sheet.TotalAssets.IsZero() || !sheet.TotalLiabilities.IsZero() || !sheet.TotalEquity.IsZero() {
		t.Errorf("empty database sheet = %+v, want all zeros", sheet)
	}
}

func TestBalanceSheetAggregation(t *testing.T) {
	db := newTestDB(t)
	svc := NewReportService(db)

	due := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)

	// assets: 10*5 inventory + 100 sales + 30 unpaid debtor = 180
	mustCreate(t, db, &models.InventoryItem{Name: "Rice", Quantity: 10, Unit: "kg", PricePerUnit: dec("5")})
	mustCreate(t, db, &models.SalesBill{GuestName: "Guest", TotalAmount: dec("100")})
	mustCreate(t, db, &models.SundryDebtor{Name: "Acme Travel", AmountDue: dec("30"), DueDate: due})
	paidOn := due
	mustCreate(t, db, &models.SundryDebtor{Name: "Settled Co", AmountDue: dec("99"), DueDate: due, IsPaid: true, PaymentDate: &paidOn})

	// liabilities: 20 unpaid creditor + 10 expense + 15 salary = 45
	mustCreate(t, db, &models.SundryCreditor{Name: "Supplier", AmountPayable: dec("20"), DueDate: due})
	mustCreate(t, db, &models.SundryCreditor{Name: "Paid Supplier", AmountPayable: dec("77"), DueDate: due, IsPaid: true})
	mustCreate(t, db, &models.Expense{Title: "Bulbs", Amount: dec("10"), Category: models.ExpenseCategorySupplies, Date: due})
	emp := models.Employee{Name: "Ravi", Position: models.PositionChef, MonthlySalary: dec("15"), DateJoined: due, IsActive: true}
	mustCreate(t, db, &emp)
	mustCreate(t, db, &models.SalaryPayment{EmployeeID: emp.ID, Amount: dec("15"), PaymentDate: due, Month: "August 2026"})

	sheet, err := svc.GetBalanceSheet()
	if err != nil {
		t.Fatalf("GetBalanceSheet: %v", err)
	}

	if !sheet.TotalAssets.Equal(dec("180")) {
		t.Errorf("total assets = %s, want 180", sheet.TotalAssets)
	}
	if !sheet.TotalLiabilities.Equal(dec("45")) {
		t.Errorf("total liabilities = %s, want 45", sheet.TotalLiabilities)
	}
	if !sheet.TotalEquity.Equal(dec("135")) {
		t.Errorf("total equity = %s, want 135", sheet.TotalEquity)
	}
	if !sheet.TotalDebtors.Equal(dec("30")) {
		t.Errorf("unpaid debtors = %s, want 30 (paid debtors excluded)", sheet.TotalDebtors)
	}
	if !sheet.TotalCreditors.Equal(dec("20")) {
		t.Errorf("unpaid creditors = %s, want 20 (paid creditors excluded)", sheet.TotalCreditors)
	}
}

func TestDashboardStats(t *testing.T) {
	db := newTestDB(t)
	svc := NewReportService(db)

	mustCreate(t, db, &models.InventoryItem{Name: "Soap", Quantity: 4, Unit: "pcs", PricePerUnit: dec("25")})
	mustCreate(t, db, &models.SalesBill{GuestName: "Today", TotalAmount: dec("300")})

	stats, err := svc.GetDashboardStats()
	if err != nil {
		t.Fatalf("GetDashboardStats: %v", err)
	}

	if stats.InventoryCount != 1 || stats.SalesCount != 1 {
		t.Errorf("counts = %d inventory, %d sales, want 1 and 1", stats.InventoryCount, stats.SalesCount)
	}
	if !stats.TotalInventoryAmount.Equal(dec("100")) {
		t.Errorf("inventory amount = %s, want 100", stats.TotalInventoryAmount)
	}
	if !stats.TotalSalesAmount.Equal(dec("300")) {
		t.Errorf("sales amount = %s, want 300", stats.TotalSalesAmount)
	}
	if len(stats.DailySales) != 7 {
		t.Fatalf("daily sales has %d entries, want 7", len(stats.DailySales))
	}
	// the bill was created just now, so today's bucket carries it
	today := stats.DailySales[6]
	if !today.Amount.Equal(dec("300")) {
		t.Errorf("today's sales = %s, want 300", today.Amount)
	}
}
