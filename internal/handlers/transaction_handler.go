package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/PierrunoYT/financeflow/models"
)

// TransactionHandler serves /api/transactions.
type TransactionHandler struct {
	db *gorm.DB
}

func NewTransactionHandler(db *gorm.DB) *TransactionHandler {
	return &TransactionHandler{db: db}
}

// TransactionInput carries the fields accepted when creating a transaction.
// The category reference is resolved before anything is written; a missing
// or zero categoryId simply fails that lookup.
type TransactionInput struct {
	CategoryID  uint    `json:"categoryId"`
	Type        string  `json:"type"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
	Date        string  `json:"date"`
	Notes       string  `json:"notes"`
}

// TransactionUpdateInput is the partial payload of a PUT. Only non-nil
// fields are merged; a supplied categoryId is re-resolved first.
type TransactionUpdateInput struct {
	CategoryID  *uint    `json:"categoryId"`
	Type        *string  `json:"type"`
	Amount      *float64 `json:"amount"`
	Description *string  `json:"description"`
	Date        *string  `json:"date"`
	Notes       *string  `json:"notes"`
}

// List returns all transactions with their category attached.
func (h *TransactionHandler) List(c *gin.Context) {
	var transactions []models.Transaction
	if err := h.db.Preload("Category").Find(&transactions).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Fehler beim Abrufen der Transaktionen"})
		return
	}
	if transactions == nil {
		transactions = make([]models.Transaction, 0)
	}
	c.JSON(http.StatusOK, transactions)
}

// Create resolves the referenced category and stores a new transaction.
func (h *TransactionHandler) Create(c *gin.Context) {
	var input TransactionInput
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
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Fehler beim Erstellen der Transaktion"})
		return
	}

	date, err := parseDate(input.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format"})
		return
	}

	transaction := models.Transaction{
		Type:        input.Type,
		Amount:      input.Amount,
		Description: input.Description,
		CategoryID:  category.ID,
		Date:        date,
		Notes:       input.Notes,
	}
	if err := h.db.Omit("Category").Create(&transaction).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Fehler beim Erstellen der Transaktion"})
		return
	}
	transaction.Category = category
	c.JSON(http.StatusCreated, transaction)
}

// Update merges the supplied fields into an existing transaction.
func (h *TransactionHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
		return
	}

	var transaction models.Transaction
	if err := h.db.Preload("Category").First(&transaction, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"message": "Transaktion nicht gefunden"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Fehler beim Aktualisieren der Transaktion"})
		return
	}

	var input TransactionUpdateInput
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
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Fehler beim Aktualisieren der Transaktion"})
			return
		}
		transaction.CategoryID = category.ID
		transaction.Category = category
	}
	if input.Type != nil {
		transaction.Type = *input.Type
	}
	if input.Amount != nil {
		transaction.Amount = *input.Amount
	}
	if input.Description != nil {
		transaction.Description = *input.Description
	}
	if input.Date != nil {
		date, err := parseDate(*input.Date)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format"})
			return
		}
		transaction.Date = date
	}
	if input.Notes != nil {
		transaction.Notes = *input.Notes
	}

	if err := h.db.Omit("Category").Save(&transaction).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Fehler beim Aktualisieren der Transaktion"})
		return
	}
	c.JSON(http.StatusOK, transaction)
}

// Delete removes a transaction by id.
func (h *TransactionHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
		return
	}

	result := h.db.Delete(&models.Transaction{}, id)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Fehler beim Löschen der Transaktion"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "Transaktion nicht gefunden"})
		return
	}
	c.Status(http.StatusNoContent)
}
