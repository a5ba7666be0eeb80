package services

import (
	"errors"
	"testing"
	"time"

	"hotel-backoffice/models"
)

func TestDeleteRoomCascades(t *testing.T) {
	db := newTestDB(t)
	roomSvc := NewRoomService(db)
	salesSvc := NewSalesService(db)

	room := models.Room{Number: "202", RoomType: models.RoomTypeDouble, PricePerNight: dec("1500")}
	mustCreate(t, db, &room)

	guest := models.Guest{
		FirstName: "Asha",
		LastName:  "Verma",
		CheckIn:   time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
		CheckOut:  time.Date(2026, 8, 3, 0, 0, 0, 0, time.UTC),
		RoomID:    room.ID,
	}
	mustCreate(t, db, &guest)

	bill, err := salesSvc.CreateBill(CreateBillInput{GuestName: "Asha Verma", RoomID: &room.ID})
	if err != nil {
		t.Fatalf("CreateBill: %v", err)
	}

	if err := roomSvc.Delete(room.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	if n := countRows(t, db, &models.Guest{}); n != 0 {
		t.Errorf("guests remaining = %d, want 0", n)
	}

	// The bill survives with its room reference nulled.
	var got models.SalesBill
	if err := db.First(&got, bill.ID).Error; err != nil {
		t.Fatalf("bill should survive room deletion: %v", err)
	}
	if got.RoomID != nil {
		t.Errorf("bill room_id = %v, want nil", *got.RoomID)
	}
}

func TestDeleteRoomNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewRoomService(db)

	if err := svc.Delete(42); !errors.Is(err, ErrRoomNotFound) {
		t.Errorf("err = %v, want ErrRoomNotFound", err)
	}
}

func TestRoomUpdate(t *testing.T) {
	db := newTestDB(t)
	svc := NewRoomService(db)

	room := models.Room{Number: "303", RoomType: models.RoomTypeSuite, Status: models.RoomStatusAvailable, PricePerNight: dec("5000")}
	mustCreate(t, db, &room)

	if err := svc.Update(room.ID, map[string]interface{}{"status": models.RoomStatusOccupied, "is_available": false}); err != nil {
		t.Fatalf("Update: %v", err)
	}

	got, err := svc.GetByID(room.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Status != models.RoomStatusOccupied || got.IsAvailable {
		t.Errorf("room = %+v, want occupied and unavailable", got)
	}

	if err := svc.Update(999, map[string]interface{}{"status": models.RoomStatusBooked}); !errors.Is(err, ErrRoomNotFound) {
		t.Errorf("err = %v, want ErrRoomNotFound", err)
	}
}
