package controllers

import (
	"errors"
	"net/http"
	"strings"

	"hotel-backoffice/models"
	"hotel-backoffice/services"
	"hotel-backoffice/utils"

	"github.com/gin-gonic/gin"
)

type SalesController struct {
	Service *services.SalesService
}

func NewSalesController(service *services.SalesService) *SalesController {
	return &SalesController{Service: service}
}

func (sc *SalesController) GetBills(c *gin.Context) {
	bills, err := sc.Service.GetAll()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, bills)
}

func (sc *SalesController) GetBillDetail(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	bill, err := sc.Service.GetByID(id)
	if err != nil {
		if errors.Is(err, services.ErrBillNotFound) {
			utils.JSONError(c, http.StatusNotFound, "sales bill not found")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, bill)
}

func (sc *SalesController) CreateBill(c *gin.Context) {
	var input services.CreateBillInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	if strings.TrimSpace(input.GuestName) == "" {
		utils.JSONError(c, http.StatusBadRequest, "guest_name is required")
		return
	}
	for _, p := range input.Payments {
		if p.PaymentMethod != "" && !models.ValidPaymentMethod(p.PaymentMethod) {
			utils.JSONError(c, http.StatusBadRequest, "payment_method must be cash, card, online or upi")
			return
		}
	}

	bill, err := sc.Service.CreateBill(input)
	if err != nil {
		if errors.Is(err, services.ErrRoomNotFound) || errors.Is(err, services.ErrFoodItemNotFound) {
			utils.JSONError(c, http.StatusBadRequest, err.Error())
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, bill)
}

func (sc *SalesController) DeleteBill(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := sc.Service.Delete(id); err != nil {
		if errors.Is(err, services.ErrBillNotFound) {
			utils.JSONError(c, http.StatusNotFound, "sales bill not found")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "sales bill deleted"})
}
