package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Kas-Kady/bbq/internal/helpers"
	"github.com/Kas-Kady/bbq/internal/models"
)

// ListMyAttendances returns every BBQ the caller is registered for,
// together with their own attendance record.
func ListMyAttendances(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		helpers.RespondWithError(c, http.StatusUnauthorized, "User ID not found in token.")
		return
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	var attendances []models.Attendee
	err := gormDB.
		Preload("BBQ.Upgrades").
		Preload("ChosenUpgrades").
		Where("user_id = ?", fmt.Sprint(userID)).
		Find(&attendances).Error
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving attendances.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"attendances": attendances,
	})
}
