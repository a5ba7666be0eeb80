package services

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"hotel-backoffice/models"

	"gorm.io/gorm"
)

func seedExportable(t *testing.T, db *gorm.DB) (models.Room, models.FoodItem) {
	t.Helper()

	room := models.Room{Number: "101", RoomType: models.RoomTypeSingle, Status: models.RoomStatusAvailable, IsAvailable: true, PricePerNight: dec("2000")}
	mustCreate(t, db, &room)

	mustCreate(t, db, &models.InventoryItem{Name: "Rice", Description: "basmati", Quantity: 12, Unit: "kg", PricePerUnit: dec("80.50")})

	guest := models.Guest{
		FirstName: "Meera",
		LastName:  "Nair",
		Email:     "meera@example.com",
		Phone:     "555-0101",
		CheckIn:   time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC),
		CheckOut:  time.Date(2026, 8, 22, 0, 0, 0, 0, time.UTC),
		RoomID:    room.ID,
	}
	mustCreate(t, db, &guest)

	coffee := models.FoodItem{Name: "Coffee", Price: dec("50"), Available: true}
	mustCreate(t, db, &coffee)

	return room, coffee
}

func TestExportImportRoundTrip(t *testing.T) {
	db := newTestDB(t)
	svc := NewSettingsService(db)
	salesSvc := NewSalesService(db)

	room, coffee := seedExportable(t, db)

	bill, err := salesSvc.CreateBill(CreateBillInput{
		GuestName: "Meera Nair",
		RoomID:    &room.ID,
		Items:     []BillLineInput{{FoodItemID: coffee.ID, Quantity: 2}},
	})
	if err != nil {
		t.Fatalf("CreateBill: %v", err)
	}

	payload, err := svc.Export()
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal export: %v", err)
	}

	if err := svc.DeleteAll(ConfirmationCode); err != nil {
		t.Fatalf("DeleteAll: %v", err)
	}
	if n := countRows(t, db, &models.Room{}); n != 0 {
		t.Fatalf("rooms remaining after delete-all = %d, want 0", n)
	}

	if err := svc.Import(raw); err != nil {
		t.Fatalf("Import: %v", err)
	}

	var gotRoom models.Room
	if err := db.First(&gotRoom, room.ID).Error; err != nil {
		t.Fatalf("room not restored: %v", err)
	}
	if gotRoom.Number != "101" || !gotRoom.PricePerNight.Equal(dec("2000")) {
		t.Errorf("restored room = %+v", gotRoom)
	}

	var gotGuest models.Guest
	if err := db.Where("first_name = ?", "Meera").First(&gotGuest).Error; err != nil {
		t.Fatalf("guest not restored: %v", err)
	}
	if gotGuest.RoomID != room.ID {
		t.Errorf("guest room_id = %d, want %d", gotGuest.RoomID, room.ID)
	}
	if !gotGuest.CheckIn.Equal(time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("guest check_in = %s", gotGuest.CheckIn)
	}

	var gotBill models.SalesBill
	if err := db.First(&gotBill, bill.ID).Error; err != nil {
		t.Fatalf("bill not restored: %v", err)
	}
	if !gotBill.TotalAmount.Equal(dec("2100")) {
		t.Errorf("restored bill total = %s, want 2100", gotBill.TotalAmount)
	}
	if gotBill.RoomID == nil || *gotBill.RoomID != room.ID {
		t.Errorf("restored bill room_id = %v, want %d", gotBill.RoomID, room.ID)
	}

	var gotItems []models.SalesBillItem
	if err := db.Where("sales_bill_id = ?", bill.ID).Find(&gotItems).Error; err != nil {
		t.Fatalf("bill items not restored: %v", err)
	}
	if len(gotItems) != 1 || gotItems[0].Quantity != 2 || !gotItems[0].Price.Equal(dec("50")) {
		t.Errorf("restored bill items = %+v", gotItems)
	}

	var gotInv models.InventoryItem
	if err := db.Where("name = ?", "Rice").First(&gotInv).Error; err != nil {
		t.Fatalf("inventory not restored: %v", err)
	}
	if gotInv.Quantity != 12 || !gotInv.PricePerUnit.Equal(dec("80.50")) {
		t.Errorf("restored inventory = %+v", gotInv)
	}
}

func TestImportUpsertsByPrimaryKey(t *testing.T) {
	db := newTestDB(t)
	svc := NewSettingsService(db)

	mustCreate(t, db, &models.FoodItem{Name: "Old Name", Price: dec("10"), Available: false})

	raw := []byte(`{
		"food_items": [
			{"pk": 1, "fields": {"name": "New Name", "description": "", "price": "25.00", "available": true}}
		]
	}`)
	if err := svc.Import(raw); err != nil {
		t.Fatalf("Import: %v", err)
	}

	var got models.FoodItem
	if err := db.First(&got, 1).Error; err != nil {
		t.Fatalf("load food item: %v", err)
	}
	if got.Name != "New Name" || !got.Price.Equal(dec("25")) || !got.Available {
		t.Errorf("upserted food item = %+v", got)
	}
	if n := countRows(t, db, &models.FoodItem{}); n != 1 {
		t.Errorf("food items = %d, want 1 (update, not insert)", n)
	}
}

func TestImportMissingForeignKeyAborts(t *testing.T) {
	db := newTestDB(t)
	svc := NewSettingsService(db)

	raw := []byte(`{
		"guests": [
			{"pk": 1, "fields": {"first_name": "N", "last_name": "O", "email": "", "phone": "",
				"check_in": "2026-08-01", "check_out": "2026-08-02", "room": 77}}
		]
	}`)
	if err := svc.Import(raw); err == nil {
		t.Fatal("Import succeeded with dangling room reference, want error")
	}
	if n := countRows(t, db, &models.Guest{}); n != 0 {
		t.Errorf("guests = %d after failed import, want 0", n)
	}
}

func TestImportMalformedPayload(t *testing.T) {
	db := newTestDB(t)
	svc := NewSettingsService(db)

	if err := svc.Import([]byte(`{not json`)); err == nil {
		t.Fatal("Import accepted malformed JSON, want error")
	}
}

func TestDeleteAllRequiresExactCode(t *testing.T) {
	db := newTestDB(t)
	svc := NewSettingsService(db)

	seedExportable(t, db)
	before := countRows(t, db, &models.Room{})

	if err := svc.DeleteAll("WRONG"); !errors.Is(err, ErrBadConfirmationCode) {
		t.Fatalf("err = %v, want ErrBadConfirmationCode", err)
	}
	if n := countRows(t, db, &models.Room{}); n != before {
		t.Errorf("rooms = %d after rejected delete-all, want %d", n, before)
	}
}

func TestDeleteAllEmptiesExportableTables(t *testing.T) {
	db := newTestDB(t)
	svc := NewSettingsService(db)

	seedExportable(t, db)
	// finance rows stay out of delete-all's scope
	mustCreate(t, db, &models.Expense{Title: "Paint", Amount: dec("40"), Category: models.ExpenseCategoryMaintenance, Date: time.Now()})

	if err := svc.DeleteAll(ConfirmationCode); err != nil {
		t.Fatalf("DeleteAll: %v", err)
	}

	for _, model := range []interface{}{
		&models.InventoryItem{}, &models.Room{}, &models.Guest{},
		&models.FoodItem{}, &models.SalesBill{}, &models.SalesBillItem{},
		&models.PaymentDetail{},
	} {
		if n := countRows(t, db, model); n != 0 {
			t.Errorf("%T rows = %d after delete-all, want 0", model, n)
		}
	}
	if n := countRows(t, db, &models.Expense{}); n != 1 {
		t.Errorf("expenses = %d, want 1 (finance untouched)", n)
	}

	var logEntry models.BackupLog
	if err := db.Where("action = ?", models.BackupActionDeleteAll).First(&logEntry).Error; err != nil {
		t.Errorf("expected a delete_all backup log entry: %v", err)
	}
}

func TestExportEmptyDatabaseUsesEmptyArrays(t *testing.T) {
	db := newTestDB(t)
	svc := NewSettingsService(db)

	payload, err := svc.Export()
	if err != nil {
		t.Fatalf("Export() error: %v", err)
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal export payload: %v", err)
	}
	if strings.Contains(string(raw), "null") {
		t.Fatalf("empty-table export contains null: %s", raw)
	}
	for _, key := range []string{
		"inventory_items", "rooms", "guests",
		"food_items", "sales_bills", "sales_bill_items",
	} {
		if !strings.Contains(string(raw), `"`+key+`":[]`) {
			t.Errorf("expected %q to marshal as an empty array: %s", key, raw)
		}
	}
}
