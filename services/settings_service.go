package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"hotel-backoffice/models"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ConfirmationCode must be posted verbatim before delete-all runs.
const ConfirmationCode = "DELETE123"

var ErrBadConfirmationCode = errors.New("invalid confirmation code")

const dateLayout = "2006-01-02"

// SettingsService implements the full-database JSON export, the matching
// re-import and the guarded delete-all.
type SettingsService struct {
	DB *gorm.DB
}

func NewSettingsService(db *gorm.DB) *SettingsService {
	return &SettingsService{DB: db}
}

// ExportRecord is one serialized row: primary key plus a column->value map.
type ExportRecord struct {
	PK     uint                   `json:"pk"`
	Fields map[string]interface{} `json:"fields"`
}

// ExportPayload groups rows by table. Foreign keys are carried as the
// referenced row's id.
type ExportPayload struct {
	InventoryItems []ExportRecord `json:"inventory_items"`
	Rooms          []ExportRecord `json:"rooms"`
	Guests         []ExportRecord `json:"guests"`
	FoodItems      []ExportRecord `json:"food_items"`
	SalesBills     []ExportRecord `json:"sales_bills"`
	SalesBillItems []ExportRecord `json:"sales_bill_items"`
}

// Export serializes every exportable table. Slices are always non-nil so an
// empty table marshals as [] rather than null.
func (s *SettingsService) Export() (ExportPayload, error) {
	payload := ExportPayload{
		InventoryItems: []ExportRecord{},
		Rooms:          []ExportRecord{},
		Guests:         []ExportRecord{},
		FoodItems:      []ExportRecord{},
		SalesBills:     []ExportRecord{},
		SalesBillItems: []ExportRecord{},
	}

	var items []models.InventoryItem
	if err := s.DB.Order("id").Find(&items).Error; err != nil {
		return payload, err
	}
	for _, it := range items {
		payload.InventoryItems = append(payload.InventoryItems, ExportRecord{
			PK: it.ID,
			Fields: map[string]interface{}{
				"name":           it.Name,
				"description":    it.Description,
				"quantity":       it.Quantity,
				"unit":           it.Unit,
				"price_per_unit": it.PricePerUnit,
				"last_updated":   it.LastUpdated.Format(time.RFC3339),
			},
		})
	}

	var rooms []models.Room
	if err := s.DB.Order("id").Find(&rooms).Error; err != nil {
		return payload, err
	}
	for _, r := range rooms {
		payload.Rooms = append(payload.Rooms, ExportRecord{
			PK: r.ID,
			Fields: map[string]interface{}{
				"number":          r.Number,
				"room_type":       r.RoomType,
				"status":          r.Status,
				"is_available":    r.IsAvailable,
				"price_per_night": r.PricePerNight,
			},
		})
	}

	var guests []models.Guest
	if err := s.DB.Order("id").Find(&guests).Error; err != nil {
		return payload, err
	}
	for _, g := range guests {
		payload.Guests = append(payload.Guests, ExportRecord{
			PK: g.ID,
			Fields: map[string]interface{}{
				"first_name": g.FirstName,
				"last_name":  g.LastName,
				"email":      g.Email,
				"phone":      g.Phone,
				"check_in":   g.CheckIn.Format(dateLayout),
				"check_out":  g.CheckOut.Format(dateLayout),
				"room":       g.RoomID,
			},
		})
	}

	var foods []models.FoodItem
	if err := s.DB.Order("id").Find(&foods).Error; err != nil {
		return payload, err
	}
	for _, f := range foods {
		payload.FoodItems = append(payload.FoodItems, ExportRecord{
			PK: f.ID,
			Fields: map[string]interface{}{
				"name":        f.Name,
				"description": f.Description,
				"price":       f.Price,
				"available":   f.Available,
			},
		})
	}

	var bills []models.SalesBill
	if err := s.DB.Order("id").Find(&bills).Error; err != nil {
		return payload, err
	}
	for _, b := range bills {
		fields := map[string]interface{}{
			"created_at":          b.CreatedAt.Format(time.RFC3339),
			"guest_name":          b.GuestName,
			"room":                nil,
			"room_charge":         b.RoomCharge,
			"discount_percentage": b.DiscountPercentage,
			"discount_amount":     b.DiscountAmount,
			"total_amount":        b.TotalAmount,
		}
		if b.RoomID != nil {
			fields["room"] = *b.RoomID
		}
		payload.SalesBills = append(payload.SalesBills, ExportRecord{PK: b.ID, Fields: fields})
	}

	var billItems []models.SalesBillItem
	if err := s.DB.Order("id").Find(&billItems).Error; err != nil {
		return payload, err
	}
	for _, bi := range billItems {
		payload.SalesBillItems = append(payload.SalesBillItems, ExportRecord{
			PK: bi.ID,
			Fields: map[string]interface{}{
				"sales_bill": bi.SalesBillID,
				"food_item":  bi.FoodItemID,
				"quantity":   bi.Quantity,
				"price":      bi.Price,
			},
		})
	}

	s.logBackup(models.BackupActionExport, map[string]int{
		"inventory_items":  len(payload.InventoryItems),
		"rooms":            len(payload.Rooms),
		"guests":           len(payload.Guests),
		"food_items":       len(payload.FoodItems),
		"sales_bills":      len(payload.SalesBills),
		"sales_bill_items": len(payload.SalesBillItems),
	})

	return payload, nil
}

// Import upserts rows by primary key in fixed dependency order. A foreign
// key that does not resolve, or a malformed field, aborts the import; rows
// applied before the failure stay committed.
func (s *SettingsService) Import(raw []byte) error {
	var payload ExportPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return fmt.Errorf("malformed import payload: %w", err)
	}

	for _, rec := range payload.InventoryItems {
		item := models.InventoryItem{
			ID:          rec.PK,
			Name:        fieldString(rec.Fields, "name"),
			Description: fieldString(rec.Fields, "description"),
			Unit:        fieldString(rec.Fields, "unit"),
		}
		var err error
		if item.Quantity, err = fieldUint(rec.Fields, "quantity"); err != nil {
			return err
		}
		if item.PricePerUnit, err = fieldDecimal(rec.Fields, "price_per_unit"); err != nil {
			return err
		}
		if err := upsert(s.DB, &models.InventoryItem{}, rec.PK, &item); err != nil {
			return err
		}
	}

	for _, rec := range payload.Rooms {
		room := models.Room{
			ID:          rec.PK,
			Number:      fieldString(rec.Fields, "number"),
			RoomType:    fieldString(rec.Fields, "room_type"),
			Status:      fieldString(rec.Fields, "status"),
			IsAvailable: fieldBool(rec.Fields, "is_available"),
		}
		var err error
		if room.PricePerNight, err = fieldDecimal(rec.Fields, "price_per_night"); err != nil {
			return err
		}
		if err := upsert(s.DB, &models.Room{}, rec.PK, &room); err != nil {
			return err
		}
	}

	for _, rec := range payload.Guests {
		guest := models.Guest{
			ID:        rec.PK,
			FirstName: fieldString(rec.Fields, "first_name"),
			LastName:  fieldString(rec.Fields, "last_name"),
			Email:     fieldString(rec.Fields, "email"),
			Phone:     fieldString(rec.Fields, "phone"),
		}
		var err error
		if guest.CheckIn, err = fieldDate(rec.Fields, "check_in"); err != nil {
			return err
		}
		if guest.CheckOut, err = fieldDate(rec.Fields, "check_out"); err != nil {
			return err
		}
		roomID, err := fieldUint(rec.Fields, "room")
		if err != nil {
			return err
		}
		if err := s.requireRow(&models.Room{}, roomID, "guest room"); err != nil {
			return err
		}
		guest.RoomID = roomID
		if err := upsert(s.DB, &models.Guest{}, rec.PK, &guest); err != nil {
			return err
		}
	}

	for _, rec := range payload.FoodItems {
		food := models.FoodItem{
			ID:          rec.PK,
			Name:        fieldString(rec.Fields, "name"),
			Description: fieldString(rec.Fields, "description"),
			Available:   fieldBool(rec.Fields, "available"),
		}
		var err error
		if food.Price, err = fieldDecimal(rec.Fields, "price"); err != nil {
			return err
		}
		if err := upsert(s.DB, &models.FoodItem{}, rec.PK, &food); err != nil {
			return err
		}
	}

	for _, rec := range payload.SalesBills {
		bill := models.SalesBill{
			ID:        rec.PK,
			GuestName: fieldString(rec.Fields, "guest_name"),
		}
		var err error
		if bill.CreatedAt, err = fieldTime(rec.Fields, "created_at"); err != nil {
			return err
		}
		if bill.RoomCharge, err = fieldDecimal(rec.Fields, "room_charge"); err != nil {
			return err
		}
		if bill.DiscountPercentage, err = fieldDecimal(rec.Fields, "discount_percentage"); err != nil {
			return err
		}
		if bill.DiscountAmount, err = fieldDecimal(rec.Fields, "discount_amount"); err != nil {
			return err
		}
		if bill.TotalAmount, err = fieldDecimal(rec.Fields, "total_amount"); err != nil {
			return err
		}
		if v, ok := rec.Fields["room"]; ok && v != nil {
			roomID, err := fieldUint(rec.Fields, "room")
			if err != nil {
				return err
			}
			if roomID != 0 {
				if err := s.requireRow(&models.Room{}, roomID, "bill room"); err != nil {
					return err
				}
				bill.RoomID = &roomID
			}
		}
		if err := upsert(s.DB, &models.SalesBill{}, rec.PK, &bill); err != nil {
			return err
		}
	}

	for _, rec := range payload.SalesBillItems {
		item := models.SalesBillItem{ID: rec.PK}
		var err error
		if item.Quantity, err = fieldUint(rec.Fields, "quantity"); err != nil {
			return err
		}
		if item.Price, err = fieldDecimal(rec.Fields, "price"); err != nil {
			return err
		}
		billID, err := fieldUint(rec.Fields, "sales_bill")
		if err != nil {
			return err
		}
		if err := s.requireRow(&models.SalesBill{}, billID, "bill item bill"); err != nil {
			return err
		}
		foodID, err := fieldUint(rec.Fields, "food_item")
		if err != nil {
			return err
		}
		if err := s.requireRow(&models.FoodItem{}, foodID, "bill item food"); err != nil {
			return err
		}
		item.SalesBillID = billID
		item.FoodItemID = foodID
		if err := upsert(s.DB, &models.SalesBillItem{}, rec.PK, &item); err != nil {
			return err
		}
	}

	s.logBackup(models.BackupActionImport, map[string]int{
		"inventory_items":  len(payload.InventoryItems),
		"rooms":            len(payload.Rooms),
		"guests":           len(payload.Guests),
		"food_items":       len(payload.FoodItems),
		"sales_bills":      len(payload.SalesBills),
		"sales_bill_items": len(payload.SalesBillItems),
	})

	return nil
}

// DeleteAll wipes the exportable tables in reverse dependency order. The
// confirmation code must match exactly or nothing is touched.
func (s *SettingsService) DeleteAll(confirmationCode string) error {
	if confirmationCode != ConfirmationCode {
		return ErrBadConfirmationCode
	}

	order := []interface{}{
		&models.PaymentDetail{},
		&models.SalesBillItem{},
		&models.SalesBill{},
		&models.Guest{},
		&models.FoodItem{},
		&models.Room{},
		&models.InventoryItem{},
	}
	counts := map[string]int{}
	for _, model := range order {
		res := s.DB.Where("1 = 1").Delete(model)
		if res.Error != nil {
			return res.Error
		}
		counts[fmt.Sprintf("%T", model)] = int(res.RowsAffected)
	}

	s.logBackup(models.BackupActionDeleteAll, counts)
	return nil
}

func (s *SettingsService) requireRow(model interface{}, id uint, what string) error {
	err := s.DB.First(model, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%s %d not found", what, id)
	}
	return err
}

// upsert inserts the row when the primary key is absent, otherwise
// overwrites every field of the existing row.
func upsert(db *gorm.DB, probe interface{}, pk uint, row interface{}) error {
	err := db.First(probe, pk).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return db.Create(row).Error
	}
	if err != nil {
		return err
	}
	return db.Save(row).Error
}

// logBackup is best effort; a failed audit write never fails the operation.
func (s *SettingsService) logBackup(action string, counts map[string]int) {
	detail, err := json.Marshal(counts)
	if err != nil {
		return
	}
	s.DB.Create(&models.BackupLog{Action: action, Detail: datatypes.JSON(detail)})
}

func fieldString(fields map[string]interface{}, key string) string {
	if v, ok := fields[key]; ok && v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func fieldBool(fields map[string]interface{}, key string) bool {
	if v, ok := fields[key]; ok && v != nil {
		if b, ok := v.(bool); ok {
			return b
		}
	}
	return false
}

func fieldUint(fields map[string]interface{}, key string) (uint, error) {
	v, ok := fields[key]
	if !ok || v == nil {
		return 0, nil
	}
	switch n := v.(type) {
	case float64:
		if n < 0 {
			return 0, fmt.Errorf("field %q must be non-negative", key)
		}
		return uint(n), nil
	case string:
		d, err := decimal.NewFromString(n)
		if err != nil {
			return 0, fmt.Errorf("field %q is not a number: %w", key, err)
		}
		return uint(d.IntPart()), nil
	default:
		return 0, fmt.Errorf("field %q is not a number", key)
	}
}

func fieldDecimal(fields map[string]interface{}, key string) (decimal.Decimal, error) {
	v, ok := fields[key]
	if !ok || v == nil {
		return decimal.Zero, nil
	}
	switch n := v.(type) {
	case float64:
		return decimal.NewFromFloat(n), nil
	case string:
		d, err := decimal.NewFromString(n)
		if err != nil {
			return decimal.Zero, fmt.Errorf("field %q is not a decimal: %w", key, err)
		}
		return d, nil
	default:
		return decimal.Zero, fmt.Errorf("field %q is not a decimal", key)
	}
}

func fieldDate(fields map[string]interface{}, key string) (time.Time, error) {
	raw := fieldString(fields, key)
	if raw == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("field %q is not a date: %w", key, err)
	}
	return t, nil
}

func fieldTime(fields map[string]interface{}, key string) (time.Time, error) {
	raw := fieldString(fields, key)
	if raw == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("field %q is not a timestamp: %w", key, err)
	}
	return t, nil
}
