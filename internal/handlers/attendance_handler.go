package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Kas-Kady/bbq/internal/helpers"
	"github.com/Kas-Kady/bbq/internal/models"
)

type AttendanceRequest struct {
	AvailableDates []string    `json:"available_dates"`
	UpgradeIDs     []uuid.UUID `json:"upgrade_ids"`
	Brings         *string     `json:"brings"`
}

// UpsertAttendance registers the caller for a BBQ or replaces their
// existing registration wholesale: available dates, chosen upgrades and
// the brings note all take the submitted values.
func UpsertAttendance(c *gin.Context) {
	bbqSlug := c.Param("slug")

	var req AttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}

	userID, exists := c.Get("user_id")
	if !exists {
		helpers.RespondWithError(c, http.StatusUnauthorized, "User ID not found in token.")
		return
	}
	uid, err := uuid.Parse(fmt.Sprint(userID))
	if err != nil {
		helpers.RespondWithError(c, http.StatusUnauthorized, "Invalid user ID in token.")
		return
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	var bbq models.BBQ
	if err := gormDB.Preload("Upgrades").Where("slug = ?", bbqSlug).First(&bbq).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			helpers.RespondWithError(c, http.StatusNotFound, "BBQ not found.")
			return
		}
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving BBQ.")
		return
	}

	// Availability only makes sense against the current proposal list, so
	// it is checked here at write time and never retroactively.
	if len(bbq.ProposedDates) > 0 && len(req.AvailableDates) == 0 {
		helpers.RespondWithError(c, http.StatusBadRequest, "Pick at least one date.")
		return
	}
	for _, date := range req.AvailableDates {
		if !bbq.HasProposedDate(date) {
			helpers.RespondWithError(c, http.StatusBadRequest, "One or more dates are not proposed for this BBQ.")
			return
		}
	}

	// Upgrades are matched by id, not by description.
	upgradesByID := make(map[uuid.UUID]models.Upgrade, len(bbq.Upgrades))
	for _, upgrade := range bbq.Upgrades {
		upgradesByID[upgrade.ID] = upgrade
	}
	chosen := make([]models.Upgrade, 0, len(req.UpgradeIDs))
	for _, id := range req.UpgradeIDs {
		upgrade, ok := upgradesByID[id]
		if !ok {
			helpers.RespondWithError(c, http.StatusBadRequest, "One or more upgrades do not belong to this BBQ.")
			return
		}
		chosen = append(chosen, upgrade)
	}

	var attendee models.Attendee
	err = gormDB.Where("bbq_id = ? AND user_id = ?", bbq.ID, uid).First(&attendee).Error
	if err != nil && err != gorm.ErrRecordNotFound {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving attendance.")
		return
	}

	if err == gorm.ErrRecordNotFound {
		attendee = models.Attendee{
			ID:             uuid.New(),
			BBQID:          bbq.ID,
			UserID:         uid,
			AvailableDates: req.AvailableDates,
			ChosenUpgrades: chosen,
			Brings:         req.Brings,
		}
		if err := gormDB.Create(&attendee).Error; err != nil {
			helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to register attendance.")
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"message":     "Attendance registered successfully.",
			"attendee_id": attendee.ID,
		})
		return
	}

	attendee.AvailableDates = req.AvailableDates
	attendee.Brings = req.Brings
	if err := gormDB.Save(&attendee).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to update attendance.")
		return
	}
	if err := gormDB.Model(&attendee).Association("ChosenUpgrades").Replace(chosen); err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error updating chosen upgrades.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     "Attendance updated successfully.",
		"attendee_id": attendee.ID,
	})
}

// DeleteAttendance withdraws the caller from a BBQ.
func DeleteAttendance(c *gin.Context) {
	bbqSlug := c.Param("slug")

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

	var bbq models.BBQ
	if err := gormDB.Where("slug = ?", bbqSlug).First(&bbq).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			helpers.RespondWithError(c, http.StatusNotFound, "BBQ not found.")
			return
		}
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving BBQ.")
		return
	}

	var attendee models.Attendee
	if err := gormDB.Where("bbq_id = ? AND user_id = ?", bbq.ID, fmt.Sprint(userID)).First(&attendee).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			helpers.RespondWithError(c, http.StatusNotFound, "You are not registered for this BBQ.")
			return
		}
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving attendance.")
		return
	}

	if err := gormDB.Select(clause.Associations).Delete(&attendee).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to withdraw attendance.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "You have been withdrawn from this BBQ.",
	})
}
