package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/PierrunoYT/financeflow/models"
)

// CategoryHandler serves /api/categories.
type CategoryHandler struct {
	db *gorm.DB
}

func NewCategoryHandler(db *gorm.DB) *CategoryHandler {
	return &CategoryHandler{db: db}
}

// CategoryInput carries the fields accepted when creating a category.
type CategoryInput struct {
	Name  string `json:"name" binding:"required"`
	Type  string `json:"type" binding:"required"`
	Color string `json:"color"`
	Icon  string `json:"icon"`
}

// CategoryUpdateInput is the partial payload of a PUT. Only non-nil fields
// are merged into the stored record.
type CategoryUpdateInput struct {
	Name  *string `json:"name"`
	Type  *string `json:"type"`
	Color *string `json:"color"`
	Icon  *string `json:"icon"`
}

// List returns all categories.
func (h *CategoryHandler) List(c *gin.Context) {
	var categories []models.Category
	if err := h.db.Find(&categories).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Fehler beim Abrufen der Kategorien"})
		return
	}
	if categories == nil {
		categories = make([]models.Category, 0)
	}
	c.JSON(http.StatusOK, categories)
}

// Create stores a new category. Name uniqueness is enforced by the schema,
// so a duplicate surfaces as the generic storage failure.
func (h *CategoryHandler) Create(c *gin.Context) {
	var input CategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	category := models.Category{
		Name:  input.Name,
		Type:  input.Type,
		Color: input.Color,
		Icon:  input.Icon,
	}
	if err := h.db.Create(&category).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Fehler beim Erstellen der Kategorie"})
		return
	}
	c.JSON(http.StatusCreated, category)
}

// Update merges the supplied fields into an existing category.
func (h *CategoryHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
		return
	}

	var category models.Category
	if err := h.db.First(&category, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"message": "Kategorie nicht gefunden"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Fehler beim Aktualisieren der Kategorie"})
		return
	}

	var input CategoryUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.Name != nil {
		category.Name = *input.Name
	}
	if input.Type != nil {
		category.Type = *input.Type
	}
	if input.Color != nil {
		category.Color = *input.Color
	}
	if input.Icon != nil {
		category.Icon = *input.Icon
	}

	if err := h.db.Save(&category).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Fehler beim Aktualisieren der Kategorie"})
		return
	}
	c.JSON(http.StatusOK, category)
}

// Delete removes a category. Categories still referenced by transactions or
// budgets are protected by the RESTRICT constraint and fail the storage call.
func (h *CategoryHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
		return
	}

	result := h.db.Delete(&models.Category{}, id)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Fehler beim Löschen der Kategorie"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "Kategorie nicht gefunden"})
		return
	}
	c.Status(http.StatusNoContent)
}
