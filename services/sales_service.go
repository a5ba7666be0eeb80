package services

import (
	"errors"
	"fmt"

	"hotel-backoffice/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrRoomNotFound     = errors.New("room not found")
	ErrFoodItemNotFound = errors.New("food item not found")
	ErrBillNotFound     = errors.New("sales bill not found")
)

// SalesService owns the only multi-step write in the system: creating a
// bill together with its line items and payment rows.
type SalesService struct {
	DB *gorm.DB
}

func NewSalesService(db *gorm.DB) *SalesService {
	return &SalesService{DB: db}
}

type BillLineInput struct {
	FoodItemID uint `json:"food_item_id"`
	Quantity   uint `json:"quantity"`
}

type BillPaymentInput struct {
	PaymentMethod string          `json:"payment_method"`
	Amount        decimal.Decimal `json:"amount"`
}

type CreateBillInput struct {
	GuestName          string             `json:"guest_name"`
	RoomID             *uint              `json:"room_id"`
	Items              []BillLineInput    `json:"items"`
	DiscountPercentage decimal.Decimal    `json:"discount_percentage"`
	DiscountAmount     decimal.Decimal    `json:"discount_amount"`
	Payments           []BillPaymentInput `json:"payments"`
}

// CreateBill resolves the room charge, snapshots current food prices into
// line items and records the payment rows. Lines with a zero item id or a
// zero quantity are skipped; an id that does not resolve fails the whole
// request. discount_percentage is stored on the bill but only
// discount_amount is subtracted from the total:
//
//	total_amount = sum(price * qty) + room_charge - discount_amount
func (s *SalesService) CreateBill(in CreateBillInput) (models.SalesBill, error) {
	roomCharge := decimal.Zero
	var roomID *uint
	if in.RoomID != nil && *in.RoomID != 0 {
		var room models.Room
		if err := s.DB.First(&room, *in.RoomID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.SalesBill{}, ErrRoomNotFound
			}
			return models.SalesBill{}, fmt.Errorf("failed to resolve room: %w", err)
		}
		roomCharge = room.PricePerNight
		roomID = &room.ID
	}

	itemsTotal := decimal.Zero
	lineItems := make([]models.SalesBillItem, 0, len(in.Items))
	for _, line := range in.Items {
		if line.FoodItemID == 0 || line.Quantity == 0 {
			continue
		}
		var food models.FoodItem
		if err := s.DB.First(&food, line.FoodItemID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.SalesBill{}, ErrFoodItemNotFound
			}
			return models.SalesBill{}, fmt.Errorf("failed to resolve food item: %w", err)
		}
		itemsTotal = itemsTotal.Add(food.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
		lineItems = append(lineItems, models.SalesBillItem{
			FoodItemID: food.ID,
			Quantity:   line.Quantity,
			Price:      food.Price,
		})
	}

	subtotal := itemsTotal.Add(roomCharge)

	bill := models.SalesBill{
		GuestName:          in.GuestName,
		RoomID:             roomID,
		RoomCharge:         roomCharge,
		DiscountPercentage: in.DiscountPercentage,
		DiscountAmount:     in.DiscountAmount,
		TotalAmount:        subtotal.Sub(in.DiscountAmount),
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&bill).Error; err != nil {
			return fmt.Errorf("failed to create bill: %w", err)
		}

		for i := range lineItems {
			lineItems[i].SalesBillID = bill.ID
		}
		if len(lineItems) > 0 {
			if err := tx.Create(&lineItems).Error; err != nil {
				return fmt.Errorf("failed to create bill items: %w", err)
			}
		}

		for _, p := range in.Payments {
			if p.PaymentMethod == "" || p.Amount.IsZero() {
				continue
			}
			detail := models.PaymentDetail{
				SalesBillID:   bill.ID,
				PaymentMethod: p.PaymentMethod,
				Amount:        p.Amount,
			}
			if err := tx.Create(&detail).Error; err != nil {
				return fmt.Errorf("failed to create payment detail: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return models.SalesBill{}, err
	}

	bill.Items = lineItems
	return bill, nil
}

func (s *SalesService) GetAll() ([]models.SalesBill, error) {
	var bills []models.SalesBill
	err := s.DB.Order("created_at DESC").Find(&bills).Error
	return bills, err
}

func (s *SalesService) GetByID(id uint) (models.SalesBill, error) {
	var bill models.SalesBill
	err := s.DB.
		Preload("Room").
		Preload("Items.FoodItem").
		Preload("Payments").
		First(&bill, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.SalesBill{}, ErrBillNotFound
	}
	return bill, err
}

// Delete removes a bill with its line items and payment rows.
func (s *SalesService) Delete(id uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var bill models.SalesBill
		if err := tx.First(&bill, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrBillNotFound
			}
			return err
		}
		if err := tx.Where("sales_bill_id = ?", id).Delete(&models.SalesBillItem{}).Error; err != nil {
			return err
		}
		if err := tx.Where("sales_bill_id = ?", id).Delete(&models.PaymentDetail{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.SalesBill{}, id).Error
	})
}
