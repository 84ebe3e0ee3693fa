// controllers/settings_controller.go
package controllers

import (
	"net/http"

	"pupinn-backend/config"
	"pupinn-backend/models"
	"pupinn-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
)

type UpdateSettingsRequest struct {
	Name      string         `json:"name"`
	Address   string         `json:"address"`
	Phone     string         `json:"phone"`
	Email     string         `json:"email"`
	Amenities datatypes.JSON `json:"amenities"`
}

// GetHotelSettings returns the single hotel profile row, creating a
// default one on first read.
func GetHotelSettings(c *gin.Context) {
	var setting models.HotelSetting
	if err := config.DB.FirstOrCreate(&setting, models.HotelSetting{ID: 1}).Error; err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "INTERNAL_ERROR", "failed to load settings")
		return
	}
	c.JSON(http.StatusOK, setting)
}

func UpdateHotelSettings(c *gin.Context) {
	var req UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid payload")
		return
	}

	var setting models.HotelSetting
	if err := config.DB.FirstOrCreate(&setting, models.HotelSetting{ID: 1}).Error; err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "INTERNAL_ERROR", "failed to load settings")
		return
	}

	updates := map[string]interface{}{
		"name":    req.Name,
		"address": req.Address,
		"phone":   req.Phone,
		"email":   req.Email,
	}
	if len(req.Amenities) > 0 {
		updates["amenities"] = req.Amenities
	}
	if err := config.DB.Model(&setting).Updates(updates).Error; err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "INTERNAL_ERROR", "failed to update settings")
		return
	}
	c.JSON(http.StatusOK, setting)
}
