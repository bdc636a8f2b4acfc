package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Kas-Kady/bbq/internal/helpers"
	"github.com/Kas-Kady/bbq/internal/middleware"
	"github.com/Kas-Kady/bbq/internal/planner"
	"github.com/Kas-Kady/bbq/internal/storage"
)

type pickerPerson struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type pickerRow struct {
	Date            string         `json:"date"`
	Present         []pickerPerson `json:"present"`
	Absent          []pickerPerson `json:"absent"`
	Popularity      float64        `json:"popularity"`
	PopularityLabel string         `json:"popularity_label"`
}

type attendeeOverview struct {
	Name     string   `json:"name"`
	Brings   *string  `json:"brings"`
	Upgrades []string `json:"upgrades"`
}

// GetDatePicker serves the admin's date picker: per selected date who can
// make it, who can't, and how popular the date is, most popular first.
func GetDatePicker(c *gin.Context) {
	bbqSlug := c.Param("slug")

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	store := storage.NewGormStore(db.(*gorm.DB))

	bbq, err := store.GetBBQ(c.Request.Context(), bbqSlug)
	if err != nil {
		if errors.Is(err, planner.ErrNotFound) {
			helpers.RespondWithError(c, http.StatusNotFound, "BBQ not found.")
			return
		}
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving BBQ.")
		return
	}

	rows := make([]pickerRow, 0)
	for _, bucket := range planner.Aggregate(bbq) {
		row := pickerRow{
			Date:            bucket.Date,
			Present:         make([]pickerPerson, 0, len(bucket.Attendees)),
			Absent:          make([]pickerPerson, 0),
			Popularity:      bucket.Popularity,
			PopularityLabel: helpers.FormatPercentageToLocale(bucket.Popularity),
		}
		for _, attendee := range bucket.Attendees {
			row.Present = append(row.Present, pickerPerson{ID: attendee.User.ID, Name: attendee.User.Name})
		}
		for _, user := range planner.Absentees(bucket, bbq.Attendees) {
			row.Absent = append(row.Absent, pickerPerson{ID: user.ID, Name: user.Name})
		}
		rows = append(rows, row)
	}

	attendees := make([]attendeeOverview, 0, len(bbq.Attendees))
	for _, attendee := range bbq.Attendees {
		overview := attendeeOverview{
			Name:     attendee.User.Name,
			Brings:   attendee.Brings,
			Upgrades: make([]string, 0, len(attendee.ChosenUpgrades)),
		}
		for _, upgrade := range attendee.ChosenUpgrades {
			overview.Upgrades = append(overview.Upgrades, upgrade.Description)
		}
		attendees = append(attendees, overview)
	}

	c.JSON(http.StatusOK, gin.H{
		"slug":      bbq.Slug,
		"title":     bbq.Title,
		"date":      bbq.Date,
		"dates":     rows,
		"attendees": attendees,
	})
}

type CommitDateRequest struct {
	Date string `json:"date" binding:"required"`
}

// CommitDate finalizes the date for a BBQ and notifies every attendee by
// mail. A failed dispatch after a successful commit is reported as a
// partial success, not rolled back.
func CommitDate(c *gin.Context) {
	bbqSlug := c.Param("slug")

	var req CommitDateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "No date selected.")
		return
	}

	committer := middleware.GetCommitter(c)
	if committer == nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Committer not found.")
		return
	}

	bbq, err := committer.Commit(c.Request.Context(), bbqSlug, req.Date)

	var dispatchErr *planner.DispatchError
	switch {
	case errors.Is(err, planner.ErrNotFound):
		helpers.RespondWithError(c, http.StatusNotFound, "BBQ not found.")
	case errors.Is(err, planner.ErrInvalidDate):
		helpers.RespondWithError(c, http.StatusUnprocessableEntity, "Chosen date is not one of the proposed dates.")
	case errors.As(err, &dispatchErr):
		c.JSON(http.StatusOK, gin.H{
			"message":   "Date saved, but sending the confirmation mails failed.",
			"slug":      bbq.Slug,
			"date":      bbq.Date,
			"mail_sent": false,
		})
	case err != nil:
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to commit date.")
	default:
		c.JSON(http.StatusOK, gin.H{
			"message":   "Date saved and attendees notified.",
			"slug":      bbq.Slug,
			"date":      bbq.Date,
			"mail_sent": true,
		})
	}
}
