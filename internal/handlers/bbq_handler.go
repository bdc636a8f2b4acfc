package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/Kas-Kady/bbq/internal/helpers"
	"github.com/Kas-Kady/bbq/internal/models"
)

type UpgradeRequest struct {
	Description string          `json:"description" binding:"required"`
	Amount      decimal.Decimal `json:"amount"`
}

type BBQRequest struct {
	Title         string           `json:"title" binding:"required"`
	Description   string           `json:"description" binding:"required"`
	ProposedDates []string         `json:"proposed_dates"`
	Date          *string          `json:"date"`
	Upgrades      []UpgradeRequest `json:"upgrades"`
}

// validateBBQRequest checks the cross-field rules binding tags can't
// express: parseable dates and upgrades that are unique by description
// with a non-negative amount.
func validateBBQRequest(req *BBQRequest) string {
	for _, date := range req.ProposedDates {
		if _, err := helpers.ParseDate(date); err != nil {
			return "Proposed dates must be RFC3339 timestamps."
		}
	}
	if req.Date != nil {
		if _, err := helpers.ParseDate(*req.Date); err != nil {
			return "Date must be an RFC3339 timestamp."
		}
	}
	seen := make(map[string]bool, len(req.Upgrades))
	for _, upgrade := range req.Upgrades {
		if upgrade.Amount.IsNegative() {
			return "Upgrade amounts cannot be negative."
		}
		if seen[upgrade.Description] {
			return "Upgrade descriptions must be unique."
		}
		seen[upgrade.Description] = true
	}
	return ""
}

func CreateBBQ(c *gin.Context) {
	var req BBQRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}

	if msg := validateBBQRequest(&req); msg != "" {
		helpers.RespondWithError(c, http.StatusBadRequest, msg)
		return
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	bbqSlug := slug.Make(req.Title)

	var existing models.BBQ
	if result := gormDB.Where("slug = ?", bbqSlug).First(&existing); result.Error == nil {
		helpers.RespondWithError(c, http.StatusConflict, "A BBQ with this title already exists.")
		return
	}

	bbq := models.BBQ{
		ID:            uuid.New(),
		Slug:          bbqSlug,
		Title:         req.Title,
		Description:   req.Description,
		ProposedDates: req.ProposedDates,
	}

	// A fixed date may be supplied directly, skipping the proposal phase.
	if req.Date != nil {
		date, _ := helpers.ParseDate(*req.Date)
		bbq.Date = &date
	}

	for _, upgrade := range req.Upgrades {
		bbq.Upgrades = append(bbq.Upgrades, models.Upgrade{
			ID:          uuid.New(),
			Description: upgrade.Description,
			Amount:      upgrade.Amount,
		})
	}

	if err := gormDB.Create(&bbq).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to create BBQ.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "BBQ created successfully.",
		"slug":    bbq.Slug,
		"bbq_id":  bbq.ID,
	})
}

func UpdateBBQ(c *gin.Context) {
	bbqSlug := c.Param("slug")

	var req BBQRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}

	if msg := validateBBQRequest(&req); msg != "" {
		helpers.RespondWithError(c, http.StatusBadRequest, msg)
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
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error finding BBQ.")
		return
	}

	newSlug := slug.Make(req.Title)
	if newSlug != bbq.Slug {
		var existing models.BBQ
		if result := gormDB.Where("slug = ?", newSlug).First(&existing); result.Error == nil {
			helpers.RespondWithError(c, http.StatusConflict, "A BBQ with this title already exists.")
			return
		}
	}

	bbq.Slug = newSlug
	bbq.Title = req.Title
	bbq.Description = req.Description
	bbq.ProposedDates = req.ProposedDates
	if req.Date != nil {
		date, _ := helpers.ParseDate(*req.Date)
		bbq.Date = &date
	}

	if err := gormDB.Save(&bbq).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to update BBQ.")
		return
	}

	// Upgrades are replaced wholesale, like the rest of the form.
	if err := gormDB.Where("bbq_id = ?", bbq.ID).Delete(&models.Upgrade{}).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error updating upgrades.")
		return
	}
	for _, upgrade := range req.Upgrades {
		record := models.Upgrade{
			ID:          uuid.New(),
			Description: upgrade.Description,
			Amount:      upgrade.Amount,
			BBQID:       bbq.ID,
		}
		if err := gormDB.Create(&record).Error; err != nil {
			helpers.RespondWithError(c, http.StatusInternalServerError, "Error updating upgrades.")
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "BBQ updated successfully.",
		"slug":    bbq.Slug,
	})
}

func GetBBQ(c *gin.Context) {
	bbqSlug := c.Param("slug")

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

	c.JSON(http.StatusOK, bbq)
}

func ListBBQs(c *gin.Context) {
	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	page := c.DefaultQuery("page", "1")
	limit := c.DefaultQuery("limit", "10")

	pageNum, err := helpers.StringToInt(page)
	if err != nil || pageNum < 1 {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid page number.")
		return
	}

	limitNum, err := helpers.StringToInt(limit)
	if err != nil || limitNum < 1 {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid limit.")
		return
	}

	query := gormDB.Model(&models.BBQ{})

	var totalCount int64
	query.Count(&totalCount)

	var bbqs []models.BBQ
	offset := (pageNum - 1) * limitNum
	err = query.Preload("Upgrades").Offset(offset).Limit(limitNum).Order("created_at DESC").Find(&bbqs).Error
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving BBQs.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"bbqs":        bbqs,
		"total":       totalCount,
		"page":        pageNum,
		"limit":       limitNum,
		"total_pages": (totalCount + int64(limitNum) - 1) / int64(limitNum),
	})
}
