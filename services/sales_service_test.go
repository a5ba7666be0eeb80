package services

import (
	"errors"
	"testing"

	"hotel-backoffice/models"

	"github.com/shopspring/decimal"
)

func TestCreateBillTotal(t *testing.T) {
	db := newTestDB(t)
	svc := NewSalesService(db)

	room := models.Room{Number: "101", RoomType: models.RoomTypeSingle, PricePerNight: dec("2000")}
	mustCreate(t, db, &room)
	coffee := models.FoodItem{Name: "Coffee", Price: dec("50"), Available: true}
	mustCreate(t, db, &coffee)

	bill, err := svc.CreateBill(CreateBillInput{
		GuestName: "John Doe",
		RoomID:    &room.ID,
		Items: []BillLineInput{
			{FoodItemID: coffee.ID, Quantity: 2},
		},
		DiscountAmount: decimal.Zero,
		Payments: []BillPaymentInput{
			{PaymentMethod: models.PaymentMethodCash, Amount: dec("2100")},
		},
	})
	if err != nil {
		t.Fatalf("CreateBill: %v", err)
	}

	// 2000 room charge + 50*2 food - 0 discount
	if !bill.TotalAmount.Equal(dec("2100")) {
		t.Errorf("total_amount = %s, want 2100", bill.TotalAmount)
	}
	if !bill.RoomCharge.Equal(dec("2000")) {
		t.Errorf("room_charge = %s, want 2000", bill.RoomCharge)
	}

	var items []models.SalesBillItem
	if err := db.Where("sales_bill_id = ?", bill.ID).Find(&items).Error; err != nil {
		t.Fatalf("load items: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("got %d line items, want 1", len(items))
	}
	if items[0].Quantity != 2 || !items[0].Price.Equal(dec("50")) {
		t.Errorf("line item = qty %d price %s, want qty 2 price 50", items[0].Quantity, items[0].Price)
	}

	var payments []models.PaymentDetail
	if err := db.Where("sales_bill_id = ?", bill.ID).Find(&payments).Error; err != nil {
		t.Fatalf("load payments: %v", err)
	}
	if len(payments) != 1 || payments[0].PaymentMethod != models.PaymentMethodCash {
		t.Errorf("payments = %+v, want one cash payment", payments)
	}
}

func TestCreateBillSkipsEmptyLines(t *testing.T) {
	db := newTestDB(t)
	svc := NewSalesService(db)

	tea := models.FoodItem{Name: "Tea", Price: dec("30"), Available: true}
	mustCreate(t, db, &tea)

	bill, err := svc.CreateBill(CreateBillInput{
		GuestName: "Walk-in",
		Items: []BillLineInput{
			{FoodItemID: 0, Quantity: 5},      // no item selected
			{FoodItemID: tea.ID, Quantity: 0}, // zero quantity
			{FoodItemID: tea.ID, Quantity: 3},
		},
		Payments: []BillPaymentInput{
			{PaymentMethod: "", Amount: dec("90")},   // blank method skipped
			{PaymentMethod: models.PaymentMethodUPI}, // zero amount skipped
		},
	})
	if err != nil {
		t.Fatalf("CreateBill: %v", err)
	}

	if !bill.TotalAmount.Equal(dec("90")) {
		t.Errorf("total_amount = %s, want 90", bill.TotalAmount)
	}
	if n := countRows(t, db, &models.SalesBillItem{}); n != 1 {
		t.Errorf("got %d line items, want 1", n)
	}
	if n := countRows(t, db, &models.PaymentDetail{}); n != 0 {
		t.Errorf("got %d payment rows, want 0", n)
	}
}

func TestCreateBillMissingFoodItemFails(t *testing.T) {
	db := newTestDB(t)
	svc := NewSalesService(db)

	_, err := svc.CreateBill(CreateBillInput{
		GuestName: "Ghost",
		Items:     []BillLineInput{{FoodItemID: 999, Quantity: 1}},
	})
	if !errors.Is(err, ErrFoodItemNotFound) {
		t.Fatalf("err = %v, want ErrFoodItemNotFound", err)
	}
	if n := countRows(t, db, &models.SalesBill{}); n != 0 {
		t.Errorf("got %d bills after failed create, want 0", n)
	}
}

func TestCreateBillDiscountPercentageStoredNotApplied(t *testing.T) {
	db := newTestDB(t)
	svc := NewSalesService(db)

	snack := models.FoodItem{Name: "Snack", Price: dec("100"), Available: true}
	mustCreate(t, db, &snack)

	bill, err := svc.CreateBill(CreateBillInput{
		GuestName:          "Guest",
		Items:              []BillLineInput{{FoodItemID: snack.ID, Quantity: 1}},
		DiscountPercentage: dec("10"),
		DiscountAmount:     dec("5"),
	})
	if err != nil {
		t.Fatalf("CreateBill: %v", err)
	}

	// Only the flat discount_amount is subtracted.
	if !bill.TotalAmount.Equal(dec("95")) {
		t.Errorf("total_amount = %s, want 95", bill.TotalAmount)
	}
	if !bill.DiscountPercentage.Equal(dec("10")) {
		t.Errorf("discount_percentage = %s, want 10", bill.DiscountPercentage)
	}
}

func TestBillItemPriceIsSnapshot(t *testing.T) {
	db := newTestDB(t)
	svc := NewSalesService(db)

	soup := models.FoodItem{Name: "Soup", Price: dec("80"), Available: true}
	mustCreate(t, db, &soup)

	bill, err := svc.CreateBill(CreateBillInput{
		GuestName: "Guest",
		Items:     []BillLineInput{{FoodItemID: soup.ID, Quantity: 1}},
	})
	if err != nil {
		t.Fatalf("CreateBill: %v", err)
	}

	if err := db.Model(&models.FoodItem{}).Where("id = ?", soup.ID).
		Update("price", dec("120")).Error; err != nil {
		t.Fatalf("update food price: %v", err)
	}

	var item models.SalesBillItem
	if err := db.Where("sales_bill_id = ?", bill.ID).First(&item).Error; err != nil {
		t.Fatalf("load line item: %v", err)
	}
	if !item.Price.Equal(dec("80")) {
		t.Errorf("line item price = %s after catalog change, want 80", item.Price)
	}
}

func TestDeleteBillRemovesItemsAndPayments(t *testing.T) {
	db := newTestDB(t)
	svc := NewSalesService(db)

	cake := models.FoodItem{Name: "Cake", Price: dec("60"), Available: true}
	mustCreate(t, db, &cake)

	bill, err := svc.CreateBill(CreateBillInput{
		GuestName: "Guest",
		Items:     []BillLineInput{{FoodItemID: cake.ID, Quantity: 2}},
		Payments:  []BillPaymentInput{{PaymentMethod: models.PaymentMethodCard, Amount: dec("120")}},
	})
	if err != nil {
		t.Fatalf("CreateBill: %v", err)
	}

	if err := svc.Delete(bill.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	if n := countRows(t, db, &models.SalesBill{}); n != 0 {
		t.Errorf("bills remaining = %d, want 0", n)
	}
	if n := countRows(t, db, &models.SalesBillItem{}); n != 0 {
		t.Errorf("line items remaining = %d, want 0", n)
	}
	if n := countRows(t, db, &models.PaymentDetail{}); n != 0 {
		t.Errorf("payments remaining = %d, want 0", n)
	}

	if err := svc.Delete(bill.ID); !errors.Is(err, ErrBillNotFound) {
		t.Errorf("second delete err = %v, want ErrBillNotFound", err)
	}
}
