package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/PierrunoYT/financeflow/models"
)

// BudgetHandler serves /api/budgets.
type BudgetHandler struct {
	db *gorm.DB
}

func NewBudgetHandler(db *gorm.DB) *BudgetHandler {
	return &BudgetHandler{db: db}
}

// BudgetInput carries the fields accepted when creating a budget. A missing
// or zero categoryId fails the category lookup rather than the bind.
type BudgetInput struct {
	CategoryID    uint    `json:"categoryId"`
	Month         int     `json:"month"`
	Year          int     `json:"year"`
	PlannedAmount float64 `json:"plannedAmount"`
	Notes         string  `json:"notes"`
}

// BudgetUpdateInput is the partial payload of a PUT.
type BudgetUpdateInput struct {
	CategoryID    *uint    `json:"categoryId"`
	Month         *int     `json:"month"`
	Year          *int     `json:"year"`
	PlannedAmount *float64 `json:"plannedAmount"`
	Notes         *string  `json:"notes"`
}

// List returns all budgets with their category attached.
func (h *BudgetHandler) List(c *gin.Context) {
	var budgets []models.Budget
	if err := h.db.Preload("Category").Find(&budgets).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Fehler beim Abrufen der Budgets"})
		return
	}
	if budgets == nil {
		budgets = make([]models.Budget, 0)
	}
	c.JSON(http.StatusOK, budgets)
}

// Create resolves the referenced category and stores a new budget. The same
// category may hold several budgets for one month; nothing deduplicates.
func (h *BudgetHandler) Create(c *gin.Context) {
	var input BudgetInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var category models.Category
	if err := h.db.First(&category, input.CategoryID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"message": "Kategorie nicht gefunden"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Fehler beim Erstellen des Budgets"})
		return
	}

	budget := models.Budget{
		Month:         input.Month,
		Year:          input.Year,
		PlannedAmount: input.PlannedAmount,
		CategoryID:    category.ID,
		Notes:         input.Notes,
	}
	if err := h.db.Omit("Category").Create(&budget).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Fehler beim Erstellen des Budgets"})
		return
	}
	budget.Category = category
	c.JSON(http.StatusCreated, budget)
}

// Update merges the supplied fields into an existing budget.
func (h *BudgetHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
		return
	}

	var budget models.Budget
	if err := h.db.Preload("Category").First(&budget, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"message": "Budget nicht gefunden"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Fehler beim Aktualisieren des Budgets"})
		return
	}

	var input BudgetUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.CategoryID != nil {
		var category models.Category
		if err := h.db.First(&category, *input.CategoryID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"message": "Kategorie nicht gefunden"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Fehler beim Aktualisieren des Budgets"})
			return
		}
		budget.CategoryID = category.ID
		budget.Category = category
	}
	if input.Month != nil {
		budget.Month = *input.Month
	}
	if input.Year != nil {
		budget.Year = *input.Year
	}
	if input.PlannedAmount != nil {
		budget.PlannedAmount = *input.PlannedAmount
	}
	if input.Notes != nil {
		budget.Notes = *input.Notes
	}

	if err := h.db.Omit("Category").Save(&budget).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Fehler beim Aktualisieren des Budgets"})
		return
	}
	c.JSON(http.StatusOK, budget)
}

// Delete removes a budget by id.
func (h *BudgetHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
		return
	}

	result := h.db.Delete(&models.Budget{}, id)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Fehler beim Löschen des Budgets"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "Budget nicht gefunden"})
		return
	}
	c.Status(http.StatusNoContent)
}
