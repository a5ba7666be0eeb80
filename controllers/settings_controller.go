package controllers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"hotel-backoffice/services"
	"hotel-backoffice/utils"

	"github.com/gin-gonic/gin"
)

type SettingsController struct {
	Service *services.SettingsService
}

func NewSettingsController(service *services.SettingsService) *SettingsController {
	return &SettingsController{Service: service}
}

// Export streams the full database dump as a downloadable JSON attachment.
func (sc *SettingsController) Export(c *gin.Context) {
	payload, err := sc.Service.Export()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}

	body, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.Header("Content-Disposition", `attachment; filename="hotel_data_export.json"`)
	c.Data(http.StatusOK, "application/json", body)
}

// Import reads the uploaded dump and re-applies it row by row.
func (sc *SettingsController) Import(c *gin.Context) {
	fileHeader, err := c.FormFile("import_file")
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "no file uploaded")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "could not read uploaded file")
		return
	}
	defer file.Close()

	raw, err := io.ReadAll(file)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "could not read uploaded file")
		return
	}

	if err := sc.Service.Import(raw); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "error importing data: "+err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "data imported successfully"})
}

type deleteAllPayload struct {
	ConfirmationCode string `json:"confirmation_code" form:"confirmation_code"`
}

// DeleteAll wipes the database after an exact confirmation-code match.
func (sc *SettingsController) DeleteAll(c *gin.Context) {
	var payload deleteAllPayload
	if err := c.ShouldBind(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	if err := sc.Service.DeleteAll(payload.ConfirmationCode); err != nil {
		if errors.Is(err, services.ErrBadConfirmationCode) {
			utils.JSONError(c, http.StatusBadRequest, "invalid confirmation code, data not deleted")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "all data deleted"})
}
